package services

import (
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/portside-labs/vessel-ops/internal/config"
	"github.com/portside-labs/vessel-ops/pkg/core/roster"
)

// ExpandUnavailability expands configured recurrence rules into day-long
// unavailability intervals within the given week. Each occurrence blocks
// the whole calendar day, so any shift touching that day conflicts. Rules
// that fail to parse are skipped with a warning; config validation should
// have caught them already.
func ExpandUnavailability(rules []config.UnavailabilityRule, week roster.WeekWindow, logger *zap.Logger) []roster.Interval {
	var intervals []roster.Interval
	for _, r := range rules {
		rule, err := rrule.StrToRRule(r.RRule)
		if err != nil {
			logger.Warn("Skipping invalid unavailability rule",
				zap.String("sampler", r.Sampler), zap.String("rrule", r.RRule), zap.Error(err))
			continue
		}

		// Anchor the rule before the week so weekly patterns land on the
		// right occurrences regardless of when the rule was written.
		rule.DTStart(week.Start.AddDate(0, 0, -7))

		for _, occ := range rule.Between(week.Start, week.End, true) {
			dayStart := time.Date(occ.Year(), occ.Month(), occ.Day(), 0, 0, 0, 0, week.Start.Location())
			intervals = append(intervals, roster.Interval{
				Sampler: r.Sampler,
				Start:   dayStart,
				End:     dayStart.AddDate(0, 0, 1),
				Source:  roster.SourceMiscJob,
			})
		}
	}
	return intervals
}
