package roster

import (
	"fmt"
	"strings"
	"time"
)

// Availability is everything known about one sampler's time when evaluating
// a candidate shift: their committed intervals, hours already booked inside
// the accounting week, and the end of their most recent commitment.
type Availability struct {
	Conflicts    []Interval
	WeeklyHours  float64
	LastShiftEnd time.Time // zero when the sampler has no prior commitment
}

// CanAssign decides whether sampler can take shift. Rules are checked in
// order and the first failure wins; the verdict's reason names it.
// skipRestCheck is true only for the office-sampling continuation, where
// the shift starts the instant the previous stint ends.
func CanAssign(s Sampler, shift Shift, avail Availability, week WeekWindow, skipRestCheck bool) Verdict {
	if !s.Active {
		return Verdict{Reason: "Sampler is inactive"}
	}

	if touchesRestrictedDay(shift, s.RestrictedWeekdays) {
		return Verdict{Reason: "Cannot work on restricted days: " + weekdayNames(s.RestrictedWeekdays)}
	}

	for _, c := range avail.Conflicts {
		if overlaps(shift.Start, shift.End, c.Start, c.End) {
			return Verdict{Reason: fmt.Sprintf("Conflicts with %s assignment", c.Source)}
		}
	}

	if !skipRestCheck && !avail.LastShiftEnd.IsZero() {
		if rest := hoursBetween(avail.LastShiftEnd, shift.Start); rest < MinRestHours {
			return Verdict{Reason: fmt.Sprintf("Insufficient rest: %.1fh (min %dh)", rest, MinRestHours)}
		}
	}

	if s.Has24HourRestriction {
		shiftHours := shift.Hours()
		projected := avail.WeeklyHours + shiftHours
		if projected > WeeklyMaxRestricted {
			return Verdict{Reason: fmt.Sprintf("Weekly limit exceeded: %.1fh + %.1fh = %.1fh (max %dh)",
				avail.WeeklyHours, shiftHours, projected, WeeklyMaxRestricted)}
		}
	}

	return Verdict{Valid: true}
}

// touchesRestrictedDay checks every calendar day the shift spans, not just
// its start day: a night shift into Saturday counts as working Saturday.
func touchesRestrictedDay(shift Shift, restricted []time.Weekday) bool {
	if len(restricted) == 0 {
		return false
	}
	day := time.Date(shift.Start.Year(), shift.Start.Month(), shift.Start.Day(),
		0, 0, 0, 0, shift.Start.Location())
	for !day.After(shift.End) {
		for _, r := range restricted {
			if day.Weekday() == r {
				return true
			}
		}
		day = day.AddDate(0, 0, 1)
	}
	return false
}

func weekdayNames(days []time.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return strings.Join(names, ", ")
}

// weeklyHours sums the sampler's committed hours that fall inside the week,
// clipping intervals that straddle the window bounds.
func weeklyHours(name string, conflicts []Interval, week WeekWindow) float64 {
	var total float64
	for _, c := range conflicts {
		if c.Sampler != name {
			continue
		}
		start, end := c.Start, c.End
		if start.Before(week.Start) {
			start = week.Start
		}
		if end.After(week.End) {
			end = week.End
		}
		if start.Before(end) {
			total += hoursBetween(start, end)
		}
	}
	return total
}

// lastShiftEnd returns the latest end instant among the sampler's
// commitments, or the zero time when there are none.
func lastShiftEnd(name string, conflicts []Interval) time.Time {
	var last time.Time
	for _, c := range conflicts {
		if c.Sampler == name && c.End.After(last) {
			last = c.End
		}
	}
	return last
}

func conflictsFor(name string, conflicts []Interval) []Interval {
	var out []Interval
	for _, c := range conflicts {
		if c.Sampler == name {
			out = append(out, c)
		}
	}
	return out
}
