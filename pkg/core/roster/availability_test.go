package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func activeSampler(name string) Sampler {
	return Sampler{Name: name, Active: true}
}

func TestCanAssign_InactiveSampler(t *testing.T) {
	shift := Shift{Start: mar(4, 7, 0), End: mar(4, 19, 0)}
	v := CanAssign(Sampler{Name: "Dana", Active: false}, shift, Availability{}, WeekOf(shift.Start), false)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "inactive")
}

func TestCanAssign_RestrictedDayOnShiftStart(t *testing.T) {
	s := activeSampler("Dana")
	s.RestrictedWeekdays = []time.Weekday{time.Saturday}
	shift := Shift{Start: mar(9, 7, 0), End: mar(9, 19, 0)} // Saturday

	v := CanAssign(s, shift, Availability{}, WeekOf(shift.Start), false)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "restricted days")
	assert.Contains(t, v.Reason, "Saturday")
}

func TestCanAssign_RestrictedDayTouchedByNightShift(t *testing.T) {
	// A Friday night shift runs into Saturday morning, so a Saturday
	// restriction blocks it even though the shift starts on Friday.
	s := activeSampler("Dana")
	s.RestrictedWeekdays = []time.Weekday{time.Saturday}
	shift := Shift{Start: mar(8, 19, 0), End: mar(9, 7, 0)}

	v := CanAssign(s, shift, Availability{}, WeekOf(shift.Start), false)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "restricted days")
}

func TestCanAssign_OverlappingCommitment(t *testing.T) {
	s := activeSampler("Dana")
	shift := Shift{Start: mar(4, 7, 0), End: mar(4, 19, 0)}
	avail := Availability{Conflicts: []Interval{
		{Sampler: "Dana", Start: mar(4, 10, 0), End: mar(4, 12, 0), Source: SourceLoadingJob},
	}}

	v := CanAssign(s, shift, avail, WeekOf(shift.Start), false)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "loading-job")
}

func TestCanAssign_InsufficientRest(t *testing.T) {
	s := activeSampler("Dana")
	shift := Shift{Start: mar(5, 7, 0), End: mar(5, 19, 0)}
	avail := Availability{LastShiftEnd: mar(5, 0, 0)} // only 7h before the shift

	v := CanAssign(s, shift, avail, WeekOf(shift.Start), false)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "rest")
}

func TestCanAssign_RestCheckSkippedForContinuation(t *testing.T) {
	s := activeSampler("Dana")
	shift := Shift{Start: mar(5, 7, 0), End: mar(5, 19, 0)}
	avail := Availability{LastShiftEnd: mar(5, 7, 0)}

	v := CanAssign(s, shift, avail, WeekOf(shift.Start), true)

	assert.True(t, v.Valid)
}

func TestCanAssign_NoPriorCommitmentPassesRest(t *testing.T) {
	s := activeSampler("Dana")
	shift := Shift{Start: mar(5, 7, 0), End: mar(5, 19, 0)}

	v := CanAssign(s, shift, Availability{}, WeekOf(shift.Start), false)

	assert.True(t, v.Valid)
}

func TestCanAssign_WeeklyCapBlocksRestrictedSampler(t *testing.T) {
	s := activeSampler("Dana")
	s.Has24HourRestriction = true
	shift := Shift{Start: mar(6, 7, 0), End: mar(6, 19, 0)}
	avail := Availability{WeeklyHours: 20}

	v := CanAssign(s, shift, avail, WeekOf(shift.Start), false)

	assert.False(t, v.Valid)
	assert.Contains(t, v.Reason, "Weekly limit")
}

func TestCanAssign_WeeklyCapAllowsExactly24(t *testing.T) {
	s := activeSampler("Dana")
	s.Has24HourRestriction = true
	shift := Shift{Start: mar(6, 7, 0), End: mar(6, 19, 0)}
	avail := Availability{WeeklyHours: 12}

	v := CanAssign(s, shift, avail, WeekOf(shift.Start), false)

	assert.True(t, v.Valid)
}

func TestCanAssign_NoWeeklyCapWithoutRestriction(t *testing.T) {
	s := activeSampler("Dana")
	shift := Shift{Start: mar(6, 7, 0), End: mar(6, 19, 0)}
	avail := Availability{WeeklyHours: 60}

	v := CanAssign(s, shift, avail, WeekOf(shift.Start), false)

	assert.True(t, v.Valid)
}

func TestWeeklyHours_ClipsIntervalsToWindow(t *testing.T) {
	week := WeekOf(mar(4, 0, 0))
	conflicts := []Interval{
		// Fully inside the week.
		{Sampler: "Dana", Start: mar(5, 7, 0), End: mar(5, 19, 0)},
		// Straddles the Sunday end; only the in-week part counts.
		{Sampler: "Dana", Start: mar(10, 20, 0), End: mar(11, 8, 0)},
		// Someone else entirely.
		{Sampler: "Eli", Start: mar(6, 7, 0), End: mar(6, 19, 0)},
	}

	got := weeklyHours("Dana", conflicts, week)

	assert.InDelta(t, 12+4, got, 0.01)
}

func TestLastShiftEnd(t *testing.T) {
	conflicts := []Interval{
		{Sampler: "Dana", Start: mar(4, 7, 0), End: mar(4, 19, 0)},
		{Sampler: "Dana", Start: mar(6, 7, 0), End: mar(6, 19, 0)},
		{Sampler: "Eli", Start: mar(8, 7, 0), End: mar(8, 19, 0)},
	}

	assert.Equal(t, mar(6, 19, 0), lastShiftEnd("Dana", conflicts))
	assert.True(t, lastShiftEnd("Noa", conflicts).IsZero())
}
