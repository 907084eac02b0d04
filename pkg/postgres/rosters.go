package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/portside-labs/vessel-ops/pkg/db"
)

// GetRosterByRef retrieves a sampling roster and its child records by
// vessel reference. Returns an error if no roster matches.
func (d *DB) GetRosterByRef(ctx context.Context, ref string) (*db.SamplingRoster, error) {
	var r db.SamplingRoster
	var berth *string
	var startDischarge time.Time
	var etc *time.Time
	err := d.pool.QueryRow(ctx, `
		SELECT id, ref, vessel, berth, start_discharge, discharge_time_hours,
		       etc, requires_line_sampling, status
		FROM sampling_roster
		WHERE ref = $1
	`, ref).Scan(&r.ID, &r.Ref, &r.Vessel, &berth, &startDischarge,
		&r.DischargeTimeHours, &etc, &r.RequiresLineSampling, &r.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no roster found for ref %s", ref)
		}
		return nil, fmt.Errorf("failed to query roster %s: %w", ref, err)
	}
	if berth != nil {
		r.Berth = *berth
	}
	r.StartDischarge = startDischarge.Format(time.RFC3339)
	if etc != nil {
		r.ETC = etc.Format(time.RFC3339)
	}

	office, err := d.getOfficeSampling(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	r.OfficeSampling = office

	line, err := d.getLineSampling(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	r.LineSampling = line

	return &r, nil
}

func (d *DB) getOfficeSampling(ctx context.Context, rosterID string) ([]db.OfficeSamplingRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT who, start_office, finish_sampling, hours
		FROM office_sampling
		WHERE roster_id = $1
		ORDER BY start_office
	`, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query office sampling: %w", err)
	}
	defer rows.Close()

	var records []db.OfficeSamplingRecord
	for rows.Next() {
		var rec db.OfficeSamplingRecord
		var start, finish time.Time
		if err := rows.Scan(&rec.Who, &start, &finish, &rec.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan office sampling: %w", err)
		}
		rec.StartOffice = start.Format(time.RFC3339)
		rec.FinishSampling = finish.Format(time.RFC3339)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating office sampling: %w", err)
	}

	return records, nil
}

func (d *DB) getLineSampling(ctx context.Context, rosterID string) ([]db.LineSamplingRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT who, start_line_sampling, finish_line_sampling, hours
		FROM line_sampling
		WHERE roster_id = $1
		ORDER BY start_line_sampling
	`, rosterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query line sampling: %w", err)
	}
	defer rows.Close()

	var records []db.LineSamplingRecord
	for rows.Next() {
		var rec db.LineSamplingRecord
		var who *string
		var start, finish time.Time
		if err := rows.Scan(&who, &start, &finish, &rec.Hours); err != nil {
			return nil, fmt.Errorf("failed to scan line sampling: %w", err)
		}
		if who != nil {
			rec.Who = *who
		}
		rec.StartLineSampling = start.Format(time.RFC3339)
		rec.FinishLineSampling = finish.Format(time.RFC3339)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line sampling: %w", err)
	}

	return records, nil
}

// ReplaceLineSampling swaps the line sampling rows of a roster for a new
// set inside a single transaction.
func (d *DB) ReplaceLineSampling(ctx context.Context, rosterID string, records []db.LineSamplingRecord) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM line_sampling WHERE roster_id = $1`, rosterID); err != nil {
		return fmt.Errorf("failed to clear line sampling: %w", err)
	}

	for _, rec := range records {
		start, err := time.Parse(time.RFC3339, rec.StartLineSampling)
		if err != nil {
			return fmt.Errorf("invalid line sampling start: %w", err)
		}
		finish, err := time.Parse(time.RFC3339, rec.FinishLineSampling)
		if err != nil {
			return fmt.Errorf("invalid line sampling finish: %w", err)
		}

		var who *string
		if rec.Who != "" {
			who = &rec.Who
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO line_sampling (id, roster_id, who, start_line_sampling, finish_line_sampling, hours)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, uuid.New().String(), rosterID, who, start, finish, rec.Hours)
		if err != nil {
			return fmt.Errorf("failed to insert line sampling row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit line sampling: %w", err)
	}

	return nil
}
