package roster

import (
	"context"
	"fmt"
	"sync"
)

// IntervalSource lists one module's committed time intervals. Implementations
// own their query timeouts; the collector treats every read as best-effort.
type IntervalSource interface {
	ListIntervals(ctx context.Context) ([]Interval, error)
}

// CollectConflicts gathers every known commitment overlapping the week from
// the loading-job and misc-job sources, plus the line sampling shifts already
// on the roster being edited. The two source reads run concurrently and both
// settle before it returns. A failed source degrades the run to a warning
// rather than aborting it: fewer known conflicts beats no roster at all.
func CollectConflicts(ctx context.Context, week WeekWindow, loading, misc IntervalSource, current []Shift) ([]Interval, []string) {
	type read struct {
		source Source
		src    IntervalSource
	}
	reads := []read{
		{SourceLoadingJob, loading},
		{SourceMiscJob, misc},
	}

	results := make([][]Interval, len(reads))
	errs := make([]error, len(reads))

	var wg sync.WaitGroup
	for i, r := range reads {
		i, r := i, r
		if r.src == nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errs[i] = r.src.ListIntervals(ctx)
		}()
	}
	wg.Wait()

	var conflicts []Interval
	var warnings []string
	for i, r := range reads {
		if r.src == nil {
			continue
		}
		if errs[i] != nil {
			warnings = append(warnings, fmt.Sprintf(
				"Could not load %s assignments (%v); continuing with reduced conflict data", r.source, errs[i]))
			continue
		}
		for _, iv := range results[i] {
			if overlaps(iv.Start, iv.End, week.Start, week.End) {
				iv.Source = r.source
				conflicts = append(conflicts, iv)
			}
		}
	}

	for _, s := range current {
		if s.Sampler == "" {
			continue
		}
		if !overlaps(s.Start, s.End, week.Start, week.End) {
			continue
		}
		conflicts = append(conflicts, Interval{
			Sampler: s.Sampler,
			Start:   s.Start,
			End:     s.End,
			Source:  SourceLineSampling,
		})
	}

	return conflicts, warnings
}
