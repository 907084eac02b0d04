package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/portside-labs/vessel-ops/internal/config"
	"github.com/portside-labs/vessel-ops/pkg/core/roster"
	"github.com/portside-labs/vessel-ops/pkg/db"
)

// GenerateRosterStore is the slice of the database the roster generation
// service needs
type GenerateRosterStore interface {
	db.SamplerStore
	db.LoadingJobStore
	db.OtherJobStore
	db.RosterStore
}

// GenerateRosterResult represents the result of generating line sampling
// for one roster
type GenerateRosterResult struct {
	Ref    string
	Vessel string
	Saved  bool
	Run    *roster.Result
}

// GenerateRoster loads the roster identified by ref, runs the shift
// auto-assignment engine over it, and persists the resulting line sampling
// rows unless dryRun is set or the run reported errors. The partial result
// is returned either way so unassigned shifts can be completed by hand.
func GenerateRoster(ctx context.Context, database GenerateRosterStore, cfg *config.Config, logger *zap.Logger, ref string, dryRun bool) (*GenerateRosterResult, error) {
	logger.Debug("Generating line sampling roster", zap.String("ref", ref), zap.Bool("dry_run", dryRun))

	record, err := database.GetRosterByRef(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}

	logger.Debug("Roster loaded",
		zap.String("vessel", record.Vessel),
		zap.String("start_discharge", record.StartDischarge),
		zap.Float64("discharge_time_hours", record.DischargeTimeHours),
		zap.Bool("requires_line_sampling", record.RequiresLineSampling))

	in := roster.Input{
		StartDischarge:       record.StartDischarge,
		DischargeTimeHours:   record.DischargeTimeHours,
		CurrentShifts:        currentShifts(record.LineSampling, logger),
		RequiresLineSampling: record.RequiresLineSampling,
		ETC:                  record.ETC,
	}

	// The office stint immediately before the discharge is the last one on
	// record; earlier stints belong to earlier operations.
	if n := len(record.OfficeSampling); n > 0 {
		office := record.OfficeSampling[n-1]
		in.OfficeSamplingSampler = office.Who
		in.OfficeSamplingStart = office.StartOffice
		in.OfficeSamplingFinish = office.FinishSampling
	}

	if start, err := roster.ParseInstant(record.StartDischarge); err == nil {
		in.Unavailability = ExpandUnavailability(cfg.SamplerUnavailability, roster.WeekOf(start), logger)
	}

	deps := roster.Deps{
		Samplers: &samplerSource{store: database},
		Loading:  &loadingJobSource{store: database},
		MiscJobs: &otherJobSource{store: database},
	}

	run := roster.Autogenerate(ctx, in, deps)
	result := &GenerateRosterResult{Ref: record.Ref, Vessel: record.Vessel, Run: run}

	if !run.Success {
		logger.Warn("Roster generation finished with errors",
			zap.String("ref", ref), zap.Strings("errors", run.Errors))
		return result, nil
	}

	if dryRun {
		logger.Info("Dry run, not saving line sampling rows", zap.String("ref", ref))
		return result, nil
	}

	rows := make([]db.LineSamplingRecord, len(run.Shifts))
	for i, s := range run.Shifts {
		rows[i] = db.LineSamplingRecord{
			Who:                s.Sampler,
			StartLineSampling:  s.Start.Format(time.RFC3339),
			FinishLineSampling: s.End.Format(time.RFC3339),
			Hours:              s.Hours(),
		}
	}
	if err := database.ReplaceLineSampling(ctx, record.ID, rows); err != nil {
		return result, fmt.Errorf("failed to save line sampling: %w", err)
	}
	result.Saved = true

	logger.Info("Line sampling roster saved",
		zap.String("ref", ref), zap.Int("shifts", len(rows)))
	return result, nil
}

// currentShifts converts the line sampling rows already on the roster into
// engine shifts. Rows with unparseable timestamps are skipped.
func currentShifts(records []db.LineSamplingRecord, logger *zap.Logger) []roster.Shift {
	var shifts []roster.Shift
	for _, rec := range records {
		start, errStart := roster.ParseInstant(rec.StartLineSampling)
		end, errEnd := roster.ParseInstant(rec.FinishLineSampling)
		if errStart != nil || errEnd != nil {
			logger.Warn("Skipping line sampling row with invalid timestamps",
				zap.String("start", rec.StartLineSampling),
				zap.String("finish", rec.FinishLineSampling))
			continue
		}
		shifts = append(shifts, roster.Shift{Start: start, End: end, Sampler: rec.Who})
	}
	return shifts
}

// samplerSource adapts the sampler store to the engine's roster read
type samplerSource struct {
	store db.SamplerStore
}

func (s *samplerSource) ListSamplers(ctx context.Context) ([]roster.Sampler, error) {
	records, err := s.store.GetSamplers(ctx)
	if err != nil {
		return nil, err
	}

	samplers := make([]roster.Sampler, len(records))
	for i, rec := range records {
		days := make([]time.Weekday, len(rec.RestrictedDays))
		for j, d := range rec.RestrictedDays {
			days[j] = time.Weekday(d)
		}
		samplers[i] = roster.Sampler{
			Name:                 rec.Name,
			Active:               rec.IsActive,
			Has24HourRestriction: rec.Has24HourRestriction,
			RestrictedWeekdays:   days,
		}
	}
	return samplers, nil
}

// loadingJobSource adapts the loading job store to the engine's conflict
// read. Rows with unparseable timestamps are dropped rather than failing
// the whole read.
type loadingJobSource struct {
	store db.LoadingJobStore
}

func (s *loadingJobSource) ListIntervals(ctx context.Context) ([]roster.Interval, error) {
	jobs, err := s.store.GetLoadingJobs(ctx)
	if err != nil {
		return nil, err
	}

	var intervals []roster.Interval
	for _, job := range jobs {
		start, errStart := roster.ParseInstant(job.StartAt)
		end, errEnd := roster.ParseInstant(job.EndAt)
		if errStart != nil || errEnd != nil {
			continue
		}
		intervals = append(intervals, roster.Interval{Sampler: job.Who, Start: start, End: end})
	}
	return intervals, nil
}

// otherJobSource adapts the miscellaneous job store to the engine's
// conflict read
type otherJobSource struct {
	store db.OtherJobStore
}

func (s *otherJobSource) ListIntervals(ctx context.Context) ([]roster.Interval, error) {
	jobs, err := s.store.GetOtherJobs(ctx)
	if err != nil {
		return nil, err
	}

	var intervals []roster.Interval
	for _, job := range jobs {
		start, errStart := roster.ParseInstant(job.StartAt)
		end, errEnd := roster.ParseInstant(job.EndAt)
		if errStart != nil || errEnd != nil {
			continue
		}
		intervals = append(intervals, roster.Interval{Sampler: job.Who, Start: start, End: end})
	}
	return intervals, nil
}
