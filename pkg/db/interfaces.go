package db

import "context"

// SamplerStore defines the interface for sampler roster operations
type SamplerStore interface {
	GetSamplers(ctx context.Context) ([]Sampler, error)
}

// LoadingJobStore defines the interface for loading job operations
type LoadingJobStore interface {
	GetLoadingJobs(ctx context.Context) ([]LoadingJob, error)
}

// OtherJobStore defines the interface for miscellaneous job operations
type OtherJobStore interface {
	GetOtherJobs(ctx context.Context) ([]OtherJob, error)
	InsertOtherJob(ctx context.Context, job *OtherJob) error
}

// RosterStore defines the interface for sampling roster operations
type RosterStore interface {
	GetRosterByRef(ctx context.Context, ref string) (*SamplingRoster, error)
	ReplaceLineSampling(ctx context.Context, rosterID string, rows []LineSamplingRecord) error
}

// Database defines the interface for all database operations.
// The postgres-backed DB implements it; tests substitute mocks.
type Database interface {
	SamplerStore
	LoadingJobStore
	OtherJobStore
	RosterStore
}
