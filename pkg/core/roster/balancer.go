package roster

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Continuation describes an office sampling stint whose end may hand over
// directly into the first line sampling shift.
type Continuation struct {
	Sampler string
	Start   time.Time
	End     time.Time
}

// Assignment is the balancer's output: the shift sequence with samplers
// filled in where possible, plus the run diagnostics.
type Assignment struct {
	Shifts      []Shift
	Warnings    []string
	Errors      []string
	DecisionLog []string
}

// AssignShifts walks the shifts in chronological order and assigns the best
// qualified sampler to each. Candidates are ranked by shifts already taken
// in this run, then projected weekly hours, then name (so equal candidates
// resolve deterministically). Each accepted assignment is committed back
// into the conflict index before the next shift is considered. Shifts with
// no qualifying candidate are left unassigned with a warning and an error.
func AssignShifts(shifts []Shift, samplers []Sampler, conflicts []Interval, cont *Continuation, dischargeStart time.Time) Assignment {
	var out Assignment

	active := make([]Sampler, 0, len(samplers))
	for _, s := range samplers {
		if s.Active {
			active = append(active, s)
		}
	}
	if len(active) == 0 {
		out.Shifts = shifts
		out.Errors = append(out.Errors, "No active samplers available")
		return out
	}

	usage := make(map[string]int, len(active))
	for _, s := range active {
		usage[s.Name] = 0
	}

	for i := range shifts {
		shift := &shifts[i]
		week := WeekOf(shift.Start)

		if i == 0 && cont != nil {
			if extendOfficeSampler(shift, active, &conflicts, usage, cont, dischargeStart, week, &out) {
				continue
			}
		}

		type candidate struct {
			sampler     Sampler
			usage       int
			weeklyHours float64
			lastEnd     time.Time
		}
		candidates := make([]candidate, 0, len(active))
		for _, s := range active {
			candidates = append(candidates, candidate{
				sampler:     s,
				usage:       usage[s.Name],
				weeklyHours: weeklyHours(s.Name, conflicts, week),
				lastEnd:     lastShiftEnd(s.Name, conflicts),
			})
		}
		slices.SortFunc(candidates, func(a, b candidate) int {
			if a.usage != b.usage {
				return a.usage - b.usage
			}
			if c := cmp.Compare(a.weeklyHours, b.weeklyHours); c != 0 {
				return c
			}
			return strings.Compare(a.sampler.Name, b.sampler.Name)
		})

		assigned := false
		for _, c := range candidates {
			avail := Availability{
				Conflicts:    conflictsFor(c.sampler.Name, conflicts),
				WeeklyHours:  c.weeklyHours,
				LastShiftEnd: c.lastEnd,
			}
			verdict := CanAssign(c.sampler, *shift, avail, week, false)
			if !verdict.Valid {
				out.DecisionLog = append(out.DecisionLog,
					fmt.Sprintf("Shift %d: %s - %s", i+1, c.sampler.Name, verdict.Reason))
				continue
			}

			shift.Sampler = c.sampler.Name
			usage[c.sampler.Name]++
			conflicts = append(conflicts, Interval{
				Sampler: c.sampler.Name,
				Start:   shift.Start,
				End:     shift.End,
				Source:  SourceLineSampling,
			})
			out.DecisionLog = append(out.DecisionLog,
				fmt.Sprintf("Shift %d (%s - %s): Assigned to %s",
					i+1, formatInstant(shift.Start), formatInstant(shift.End), c.sampler.Name))
			assigned = true
			break
		}

		if !assigned {
			out.Errors = append(out.Errors, fmt.Sprintf(
				"Shift %d (%s - %s): No available sampler",
				i+1, formatInstant(shift.Start), formatInstant(shift.End)))
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"No sampler could be assigned to shift starting at %s. Please assign manually.",
				formatInstant(shift.Start)))
		}
	}

	out.Shifts = shifts
	return out
}

// extendOfficeSampler tries the first-shift continuation: if office sampling
// ends at the exact minute discharge starts, off the 07:00/19:00 boundaries,
// the same sampler may carry straight over into the first shift as long as
// office plus first-shift hours stay within 12 and the evaluator agrees
// (with the rest check skipped, since there is no break to rest in).
// Returns true when the shift was assigned.
func extendOfficeSampler(shift *Shift, active []Sampler, conflicts *[]Interval, usage map[string]int, cont *Continuation, dischargeStart time.Time, week WeekWindow, out *Assignment) bool {
	out.DecisionLog = append(out.DecisionLog,
		fmt.Sprintf("First shift: checking office sampling continuation for %s", cont.Sampler))

	sameMinute := cont.End.Truncate(time.Minute).Equal(dischargeStart.Truncate(time.Minute))
	if !sameMinute {
		out.DecisionLog = append(out.DecisionLog,
			"First shift: office sampling finish does not match start discharge exactly")
		return false
	}
	if h := cont.End.Hour(); h == DayShiftStartHour || h == NightShiftStartHour {
		out.DecisionLog = append(out.DecisionLog, fmt.Sprintf(
			"First shift: office sampling finishes at %02d:00 (shift boundary), assigning a different sampler", h))
		return false
	}

	name := strings.TrimSpace(cont.Sampler)
	idx := slices.IndexFunc(active, func(s Sampler) bool { return strings.TrimSpace(s.Name) == name })
	if idx < 0 {
		out.DecisionLog = append(out.DecisionLog,
			fmt.Sprintf("First shift: office sampler %q not found among active samplers", name))
		return false
	}
	sampler := active[idx]

	officeHours := hoursBetween(cont.Start, cont.End)
	totalHours := officeHours + shift.Hours()
	if totalHours > ShiftDurationHours {
		out.DecisionLog = append(out.DecisionLog, fmt.Sprintf(
			"First shift: %s office %.2fh + line %.2fh = %.2fh exceeds %dh limit",
			sampler.Name, officeHours, shift.Hours(), totalHours, ShiftDurationHours))
		return false
	}

	avail := Availability{
		Conflicts: append(conflictsFor(sampler.Name, *conflicts), Interval{
			Sampler: sampler.Name,
			Start:   cont.Start,
			End:     cont.End,
			Source:  SourceLineSampling,
		}),
		WeeklyHours:  weeklyHours(sampler.Name, *conflicts, week),
		LastShiftEnd: cont.End,
	}
	verdict := CanAssign(sampler, *shift, avail, week, true)
	if !verdict.Valid {
		out.DecisionLog = append(out.DecisionLog,
			fmt.Sprintf("First shift: %s - %s", sampler.Name, verdict.Reason))
		return false
	}

	shift.Sampler = sampler.Name
	usage[sampler.Name]++
	*conflicts = append(*conflicts, Interval{
		Sampler: sampler.Name,
		Start:   shift.Start,
		End:     shift.End,
		Source:  SourceLineSampling,
	})
	out.DecisionLog = append(out.DecisionLog, fmt.Sprintf(
		"Shift 1 (%s - %s): Assigned to %s (office sampling continuation, %.2fh total)",
		formatInstant(shift.Start), formatInstant(shift.End), sampler.Name, totalHours))
	return true
}
