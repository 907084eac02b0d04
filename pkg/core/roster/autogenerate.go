package roster

import (
	"context"
	"fmt"
	"time"
)

// SamplerSource lists the sampling personnel roster. Unlike the interval
// sources this read is required: without it nothing can be assigned, so a
// failure here is fatal to the run.
type SamplerSource interface {
	ListSamplers(ctx context.Context) ([]Sampler, error)
}

// Deps are the external collaborators one autogenerate run reads from.
type Deps struct {
	Samplers SamplerSource
	Loading  IntervalSource
	MiscJobs IntervalSource
}

// Input carries the discharge parameters for one run. Timestamps are the
// strings the web layer stores: RFC 3339, or a zoneless
// "2006-01-02T15:04" interpreted in local time.
type Input struct {
	StartDischarge     string
	DischargeTimeHours float64

	// OfficeSampling fields describe the office stint immediately before
	// the discharge, when the roster has one. All three must be set for
	// the first-shift continuation to be considered.
	OfficeSamplingSampler string
	OfficeSamplingStart   string
	OfficeSamplingFinish  string

	// CurrentShifts are the line sampling rows already on the roster being
	// edited; assigned ones count as commitments.
	CurrentShifts []Shift

	// Unavailability holds caller-supplied blocks (such as recurring
	// leave) merged into the conflict index as misc-job commitments.
	Unavailability []Interval

	// RequiresLineSampling is false for terminals that only need a single
	// manually staffed window around the estimated completion time.
	RequiresLineSampling bool
	ETC                  string
}

// ParseInstant parses the timestamp shapes the web layer stores.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02 15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// Autogenerate runs one synchronous assignment pass: partition the discharge
// window into shifts, collect conflicts for the week, and balance samplers
// across the shifts. The run owns all of its state; two concurrent runs for
// the same roster are not coordinated here and must be serialised by the
// caller. Fatal problems (unparseable discharge parameters, an unreadable
// sampler roster, a bypass run without ETC) short-circuit with Success false
// and a single error; everything else accumulates and partial results are
// always returned.
func Autogenerate(ctx context.Context, in Input, deps Deps) *Result {
	res := &Result{}
	res.logf("=== Starting autogenerate ===")
	res.logf("Terminal requires line sampling: %t", in.RequiresLineSampling)

	start, err := ParseInstant(in.StartDischarge)
	if err != nil {
		return res.fatal("Invalid start discharge date")
	}

	if !in.RequiresLineSampling {
		return res.bypassWithETC(in.ETC)
	}

	if in.DischargeTimeHours <= 0 {
		return res.fatal("Discharge time must be a positive number of hours")
	}

	res.logf("Start discharge: %s", formatInstant(start))
	res.logf("Discharge time: %g hours", in.DischargeTimeHours)

	shifts := PartitionShifts(start, in.DischargeTimeHours)
	res.logf("Generated %d shifts", len(shifts))

	samplers, err := deps.Samplers.ListSamplers(ctx)
	if err != nil {
		return res.fatal(fmt.Sprintf("Failed to fetch samplers: %v", err))
	}
	res.logf("Found %d samplers", len(samplers))

	week := WeekOf(start)
	res.logf("Week range: %s to %s", formatInstant(week.Start), formatInstant(week.End))

	conflicts, warnings := CollectConflicts(ctx, week, deps.Loading, deps.MiscJobs, in.CurrentShifts)
	res.Warnings = append(res.Warnings, warnings...)
	for _, w := range warnings {
		res.logf("WARNING: %s", w)
	}
	for _, iv := range in.Unavailability {
		if !overlaps(iv.Start, iv.End, week.Start, week.End) {
			continue
		}
		if iv.Source == "" {
			iv.Source = SourceMiscJob
		}
		conflicts = append(conflicts, iv)
	}
	res.logf("Found %d conflicting assignments", len(conflicts))

	var cont *Continuation
	if in.OfficeSamplingSampler != "" && in.OfficeSamplingStart != "" && in.OfficeSamplingFinish != "" {
		officeStart, errStart := ParseInstant(in.OfficeSamplingStart)
		officeEnd, errEnd := ParseInstant(in.OfficeSamplingFinish)
		if errStart == nil && errEnd == nil {
			cont = &Continuation{Sampler: in.OfficeSamplingSampler, Start: officeStart, End: officeEnd}
			res.logf("Office sampling: %s, %s - %s",
				cont.Sampler, formatInstant(cont.Start), formatInstant(cont.End))
		}
	}

	assignment := AssignShifts(shifts, samplers, conflicts, cont, start)
	res.Shifts = assignment.Shifts
	res.Warnings = append(res.Warnings, assignment.Warnings...)
	res.Errors = append(res.Errors, assignment.Errors...)
	res.DecisionLog = append(res.DecisionLog, assignment.DecisionLog...)

	res.Success = len(res.Errors) == 0
	res.logf("=== Autogenerate completed ===")
	return res
}

// bypassWithETC handles terminals that do not require line sampling: a
// single unassigned 4-hour shift starting one hour before the ETC, to be
// staffed manually.
func (r *Result) bypassWithETC(etc string) *Result {
	r.logf("Terminal does not require line sampling - generating single manual entry")

	if etc == "" {
		return r.fatal("ETC is required for terminals that do not require line sampling")
	}
	etcTime, err := ParseInstant(etc)
	if err != nil {
		return r.fatal(fmt.Sprintf("Invalid ETC date: %s", etc))
	}

	start := etcTime.Add(-1 * time.Hour)
	end := start.Add(4 * time.Hour)
	r.Shifts = []Shift{{Start: start, End: end}}
	r.Warnings = append(r.Warnings, "Sampler must be assigned manually before saving")
	r.logf("ETC: %s", formatInstant(etcTime))
	r.logf("Manual entry: %s - %s", formatInstant(start), formatInstant(end))
	r.Success = true
	return r
}

func (r *Result) logf(format string, args ...any) {
	r.DecisionLog = append(r.DecisionLog, fmt.Sprintf(format, args...))
}

func (r *Result) fatal(msg string) *Result {
	r.Success = false
	r.Errors = []string{msg}
	r.logf("ERROR: %s", msg)
	return r
}
