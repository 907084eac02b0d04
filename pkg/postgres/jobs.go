package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/portside-labs/vessel-ops/pkg/db"
)

// GetLoadingJobs retrieves all loading job records
func (d *DB) GetLoadingJobs(ctx context.Context) ([]db.LoadingJob, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, who, start_at, end_at
		FROM loading_job
		ORDER BY start_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query loading jobs: %w", err)
	}
	defer rows.Close()

	var jobs []db.LoadingJob
	for rows.Next() {
		var j db.LoadingJob
		var startAt, endAt time.Time
		if err := rows.Scan(&j.ID, &j.Who, &startAt, &endAt); err != nil {
			return nil, fmt.Errorf("failed to scan loading job: %w", err)
		}
		j.StartAt = startAt.Format(time.RFC3339)
		j.EndAt = endAt.Format(time.RFC3339)
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loading jobs: %w", err)
	}

	return jobs, nil
}

// GetOtherJobs retrieves all miscellaneous job records
func (d *DB) GetOtherJobs(ctx context.Context) ([]db.OtherJob, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, who, description, start_at, end_at
		FROM other_job
		ORDER BY start_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query other jobs: %w", err)
	}
	defer rows.Close()

	var jobs []db.OtherJob
	for rows.Next() {
		var j db.OtherJob
		var description *string
		var startAt, endAt time.Time
		if err := rows.Scan(&j.ID, &j.Who, &description, &startAt, &endAt); err != nil {
			return nil, fmt.Errorf("failed to scan other job: %w", err)
		}
		if description != nil {
			j.Description = *description
		}
		j.StartAt = startAt.Format(time.RFC3339)
		j.EndAt = endAt.Format(time.RFC3339)
		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating other jobs: %w", err)
	}

	return jobs, nil
}

// InsertOtherJob inserts a miscellaneous job record
func (d *DB) InsertOtherJob(ctx context.Context, job *db.OtherJob) error {
	startAt, err := time.Parse(time.RFC3339, job.StartAt)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}
	endAt, err := time.Parse(time.RFC3339, job.EndAt)
	if err != nil {
		return fmt.Errorf("invalid end time: %w", err)
	}

	var description *string
	if job.Description != "" {
		description = &job.Description
	}

	_, err = d.pool.Exec(ctx, `
		INSERT INTO other_job (id, who, description, start_at, end_at)
		VALUES ($1, $2, $3, $4, $5)
	`, job.ID, job.Who, description, startAt, endAt)
	if err != nil {
		return fmt.Errorf("failed to insert other job: %w", err)
	}

	return nil
}
