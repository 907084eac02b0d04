package roster

import "time"

// Scheduling rules for line sampling coverage. Day shifts run 07:00-19:00
// and night shifts 19:00-07:00; samplers need 10 hours of rest between
// assignments, and restricted samplers are capped at 24 committed hours per
// Monday-Sunday week.
const (
	ShiftDurationHours  = 12
	DayShiftStartHour   = 7
	NightShiftStartHour = 19
	MinRestHours        = 10
	WeeklyMaxRestricted = 24
)

// Source identifies which module an existing commitment came from.
type Source string

const (
	SourceLoadingJob   Source = "loading-job"
	SourceMiscJob      Source = "misc-job"
	SourceLineSampling Source = "line-sampling"
)

// Sampler is one member of the sampling personnel roster. Samplers are
// joined across modules by display name, so names must be unique.
type Sampler struct {
	Name   string
	Active bool

	// Has24HourRestriction caps the sampler's total committed hours at 24
	// per week instead of the open standard target.
	Has24HourRestriction bool

	// RestrictedWeekdays are days the sampler can never work, for any part
	// of a shift touching that day. Sunday is 0.
	RestrictedWeekdays []time.Weekday
}

// Shift is one block of line sampling coverage. Sampler stays empty until
// the balancer assigns someone, or permanently if nobody qualifies.
type Shift struct {
	Start   time.Time
	End     time.Time
	Sampler string
}

// Hours returns the shift length in hours.
func (s Shift) Hours() float64 {
	return hoursBetween(s.Start, s.End)
}

// Interval is a committed block of a sampler's time observed from one of
// the conflict sources. Immutable once collected, except that the balancer
// appends new line-sampling intervals as it assigns shifts.
type Interval struct {
	Sampler string
	Start   time.Time
	End     time.Time
	Source  Source
}

// Verdict is the outcome of evaluating one sampler against one shift. When
// Valid is false, Reason names the first rule that failed.
type Verdict struct {
	Valid  bool
	Reason string
}

// Result is the output of one autogenerate run. Shifts, warnings and errors
// are always populated as far as the run got, so an operator can finish
// unassigned shifts by hand even when Success is false.
type Result struct {
	Success     bool
	Shifts      []Shift
	Warnings    []string
	Errors      []string
	DecisionLog []string
}
