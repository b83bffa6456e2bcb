package repositories

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// JobReader defines read operations for the job catalog
type JobReader interface {
	// FindJobByID retrieves a specific job by its unique identifier.
	FindJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobs retrieves a page of jobs in catalog (insertion) order,
	// starting after the job identified by afterID ("" means from the start).
	ListJobs(ctx context.Context, afterID string, limit int) ([]domain.Job, error)

	// Snapshot returns the full catalog in insertion order. The returned
	// slice is a copy; aggregation runs over it without holding any lock.
	Snapshot(ctx context.Context) ([]domain.Job, error)

	// CountJobs returns the catalog size.
	CountJobs(ctx context.Context) (int, error)
}

// JobWriter defines write operations for the job catalog
type JobWriter interface {
	// SaveJob persists a new job.
	SaveJob(ctx context.Context, job domain.Job) error

	// ReplaceJob swaps a job for an updated value. expectedVersion is the
	// version the caller read the job at (see JobVersion); the replace
	// fails with ErrConflict when the stored job has moved on, serializing
	// writes per job.
	ReplaceJob(ctx context.Context, job domain.Job, expectedVersion int) error
}

// JobRepositoryFacade combines all job-related repository interfaces
type JobRepositoryFacade interface {
	JobReader
	JobWriter
}

// JobVersion derives a job's optimistic-concurrency version from its
// append-only history. Every write to a job appends either a timeline event
// or a payment, so the combined length strictly increases.
func JobVersion(job *domain.Job) int {
	return len(job.Timeline) + len(job.Payments)
}
