package services

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/dto"
)

// EstimateReaderSvc defines read operations for estimates
type EstimateReaderSvc interface {
	// GetEstimateByID retrieves a specific estimate by its unique identifier.
	GetEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error)

	// ListEstimates retrieves a page of estimates in catalog order.
	ListEstimates(ctx context.Context, limit int, nextToken string) ([]domain.Estimate, string, error)
}

// EstimateWriterSvc defines write operations for estimates
type EstimateWriterSvc interface {
	// CreateEstimate persists a new estimate, computing its totals from the
	// line items and validating the total identity.
	CreateEstimate(ctx context.Context, req dto.CreateEstimateRequest) (*domain.Estimate, error)

	// UpdateEstimateStatus moves an estimate through draft/sent/approved/rejected.
	UpdateEstimateStatus(ctx context.Context, estimateID string, req dto.UpdateEstimateStatusRequest) (*domain.Estimate, error)

	// ConvertToJob creates a scheduled job from an approved estimate.
	ConvertToJob(ctx context.Context, estimateID string, req dto.ConvertEstimateRequest) (*domain.Job, error)
}

// EstimateSvcFacade combines all estimate-related service interfaces
type EstimateSvcFacade interface {
	EstimateReaderSvc
	EstimateWriterSvc
}
