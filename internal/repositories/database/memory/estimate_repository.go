package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
)

// EstimateRepository is an in-memory estimate catalog in insertion order.
type EstimateRepository struct {
	mu        sync.RWMutex
	estimates []domain.Estimate
	index     map[string]int
}

// NewEstimateRepository creates an empty in-memory estimate repository.
func NewEstimateRepository() *EstimateRepository {
	return &EstimateRepository{index: make(map[string]int)}
}

var _ portsrepo.EstimateRepositoryFacade = (*EstimateRepository)(nil)

// SaveEstimate persists a new estimate.
func (r *EstimateRepository) SaveEstimate(_ context.Context, estimate domain.Estimate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[estimate.EstimateID]; exists {
		return fmt.Errorf("estimate %s: %w", estimate.EstimateID, apperrors.ErrDuplicate)
	}
	r.index[estimate.EstimateID] = len(r.estimates)
	r.estimates = append(r.estimates, estimate)
	return nil
}

// FindEstimateByID retrieves an estimate by its unique identifier.
func (r *EstimateRepository) FindEstimateByID(_ context.Context, estimateID string) (*domain.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[estimateID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	estimate := r.estimates[i]
	return &estimate, nil
}

// ListEstimates returns a page of estimates in insertion order starting after afterID.
func (r *EstimateRepository) ListEstimates(_ context.Context, afterID string, limit int) ([]domain.Estimate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if afterID != "" {
		i, ok := r.index[afterID]
		if !ok {
			return nil, fmt.Errorf("pagination cursor estimate %s: %w", afterID, apperrors.ErrNotFound)
		}
		start = i + 1
	}
	if start >= len(r.estimates) {
		return []domain.Estimate{}, nil
	}

	end := len(r.estimates)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := make([]domain.Estimate, end-start)
	copy(page, r.estimates[start:end])
	return page, nil
}

// UpdateEstimate replaces an existing estimate's value.
func (r *EstimateRepository) UpdateEstimate(_ context.Context, estimate domain.Estimate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[estimate.EstimateID]
	if !ok {
		return fmt.Errorf("estimate %s: %w", estimate.EstimateID, apperrors.ErrNotFound)
	}
	r.estimates[i] = estimate
	return nil
}
