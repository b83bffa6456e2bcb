package repositories

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// EstimateReader defines read operations for estimate data
type EstimateReader interface {
	// FindEstimateByID retrieves a specific estimate by its unique identifier.
	FindEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error)

	// ListEstimates retrieves a page of estimates in catalog order.
	ListEstimates(ctx context.Context, afterID string, limit int) ([]domain.Estimate, error)
}

// EstimateWriter defines write operations for estimate data
type EstimateWriter interface {
	// SaveEstimate persists a new estimate.
	SaveEstimate(ctx context.Context, estimate domain.Estimate) error

	// UpdateEstimate replaces an existing estimate's value.
	UpdateEstimate(ctx context.Context, estimate domain.Estimate) error
}

// EstimateRepositoryFacade combines all estimate-related repository interfaces
type EstimateRepositoryFacade interface {
	EstimateReader
	EstimateWriter
}
