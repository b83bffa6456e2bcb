package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
)

// JobRepository is an in-memory job catalog. The catalog preserves insertion
// order, which the aggregation engine relies on for order-preserving date
// filters. Writes go through an optimistic version check so concurrent
// updates to the same job are serialized; cross-job writes are independent.
type JobRepository struct {
	mu    sync.RWMutex
	jobs  []domain.Job
	index map[string]int
}

// NewJobRepository creates an empty in-memory job repository.
func NewJobRepository() *JobRepository {
	return &JobRepository{index: make(map[string]int)}
}

var _ portsrepo.JobRepositoryFacade = (*JobRepository)(nil)

// SaveJob persists a new job.
func (r *JobRepository) SaveJob(_ context.Context, job domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[job.JobID]; exists {
		return fmt.Errorf("job %s: %w", job.JobID, apperrors.ErrDuplicate)
	}
	r.index[job.JobID] = len(r.jobs)
	r.jobs = append(r.jobs, job)
	return nil
}

// FindJobByID retrieves a job by its unique identifier.
func (r *JobRepository) FindJobByID(_ context.Context, jobID string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[jobID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	job := r.jobs[i]
	return &job, nil
}

// ListJobs returns a page of jobs in insertion order starting after afterID.
func (r *JobRepository) ListJobs(_ context.Context, afterID string, limit int) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if afterID != "" {
		i, ok := r.index[afterID]
		if !ok {
			return nil, fmt.Errorf("pagination cursor job %s: %w", afterID, apperrors.ErrNotFound)
		}
		start = i + 1
	}
	if start >= len(r.jobs) {
		return []domain.Job{}, nil
	}

	end := len(r.jobs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := make([]domain.Job, end-start)
	copy(page, r.jobs[start:end])
	return page, nil
}

// Snapshot returns a copy of the full catalog in insertion order.
func (r *JobRepository) Snapshot(_ context.Context) ([]domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	catalog := make([]domain.Job, len(r.jobs))
	copy(catalog, r.jobs)
	return catalog, nil
}

// CountJobs returns the catalog size.
func (r *JobRepository) CountJobs(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs), nil
}

// ReplaceJob swaps a job for an updated value if its version still matches.
func (r *JobRepository) ReplaceJob(_ context.Context, job domain.Job, expectedVersion int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[job.JobID]
	if !ok {
		return fmt.Errorf("job %s: %w", job.JobID, apperrors.ErrNotFound)
	}
	if current := portsrepo.JobVersion(&r.jobs[i]); current != expectedVersion {
		return fmt.Errorf("job %s is at version %d, expected %d: %w",
			job.JobID, current, expectedVersion, apperrors.ErrConflict)
	}
	r.jobs[i] = job
	return nil
}
