package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/fieldhq/field_service_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// estimateServiceImpl implements the EstimateSvcFacade interface
type estimateServiceImpl struct {
	BaseService
	estimateRepo portsrepo.EstimateRepositoryFacade
	clientRepo   portsrepo.ClientReader
	jobService   portssvc.JobWriterSvc
}

// NewEstimateService creates a new estimate service. jobService is used to
// create the job when an approved estimate is converted.
func NewEstimateService(estimateRepo portsrepo.EstimateRepositoryFacade, clientRepo portsrepo.ClientReader, jobService portssvc.JobWriterSvc) portssvc.EstimateSvcFacade {
	return &estimateServiceImpl{
		estimateRepo: estimateRepo,
		clientRepo:   clientRepo,
		jobService:   jobService,
	}
}

var _ portssvc.EstimateSvcFacade = (*estimateServiceImpl)(nil)

func (s *estimateServiceImpl) CreateEstimate(ctx context.Context, req dto.CreateEstimateRequest) (*domain.Estimate, error) {
	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", req.ClientID, err)
	}

	items, subtotal := buildJobItems(req.Items)
	now := time.Now()

	estimate := domain.Estimate{
		EstimateID: uuid.NewString(),
		ClientID:   client.ClientID,
		ClientName: client.Name,
		Title:      req.Title,
		Status:     domain.EstimateStatusDraft,
		Items:      items,
		Subtotal:   subtotal,
		Discount:   req.Discount,
		Tax:        req.Tax,
		Total:      subtotal.Sub(req.Discount).Add(req.Tax),
		CreatedAt:  now,
		ValidUntil: req.ValidUntil,
	}

	if err := estimate.Validate(); err != nil {
		s.LogError(ctx, err, "New estimate failed invariant checks")
		return nil, err
	}

	if err := s.estimateRepo.SaveEstimate(ctx, estimate); err != nil {
		s.LogError(ctx, err, "Failed to save new estimate", slog.String("estimate_id", estimate.EstimateID))
		return nil, fmt.Errorf("failed to save estimate: %w", err)
	}

	s.LogInfo(ctx, "Estimate created", slog.String("estimate_id", estimate.EstimateID))
	return &estimate, nil
}

func (s *estimateServiceImpl) GetEstimateByID(ctx context.Context, estimateID string) (*domain.Estimate, error) {
	estimate, err := s.estimateRepo.FindEstimateByID(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("estimate %s: %w", estimateID, err)
	}
	return estimate, nil
}

func (s *estimateServiceImpl) ListEstimates(ctx context.Context, limit int, nextToken string) ([]domain.Estimate, string, error) {
	afterID := ""
	if nextToken != "" {
		var err error
		afterID, err = pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
		}
	}

	estimates, err := s.estimateRepo.ListEstimates(ctx, afterID, limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list estimates: %w", err)
	}

	token := ""
	if len(estimates) == limit && limit > 0 {
		token = pagination.EncodeCursor(estimates[len(estimates)-1].EstimateID)
	}
	return estimates, token, nil
}

func (s *estimateServiceImpl) UpdateEstimateStatus(ctx context.Context, estimateID string, req dto.UpdateEstimateStatusRequest) (*domain.Estimate, error) {
	estimate, err := s.estimateRepo.FindEstimateByID(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("estimate %s: %w", estimateID, err)
	}

	target := domain.EstimateStatus(req.Status)
	if !target.IsValid() {
		return nil, fmt.Errorf("unknown estimate status %q: %w", req.Status, apperrors.ErrValidation)
	}

	updated := *estimate
	updated.Status = target
	if err := s.estimateRepo.UpdateEstimate(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update estimate %s: %w", estimateID, err)
	}

	s.LogInfo(ctx, "Estimate status updated",
		slog.String("estimate_id", estimateID),
		slog.String("status", string(target)))
	return &updated, nil
}

func (s *estimateServiceImpl) ConvertToJob(ctx context.Context, estimateID string, req dto.ConvertEstimateRequest) (*domain.Job, error) {
	estimate, err := s.estimateRepo.FindEstimateByID(ctx, estimateID)
	if err != nil {
		return nil, fmt.Errorf("estimate %s: %w", estimateID, err)
	}
	if estimate.Status != domain.EstimateStatusApproved {
		return nil, fmt.Errorf("estimate %s is %s, only approved estimates convert to jobs: %w",
			estimateID, estimate.Status, apperrors.ErrInvalidTransition)
	}
	if estimate.ConvertedJobID != "" {
		return nil, fmt.Errorf("estimate %s was already converted to job %s: %w",
			estimateID, estimate.ConvertedJobID, apperrors.ErrInvalidTransition)
	}

	items := make([]dto.JobItemRequest, len(estimate.Items))
	for i, item := range estimate.Items {
		items[i] = dto.JobItemRequest{
			Name:        item.Name,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Type:        string(item.Type),
		}
	}

	job, err := s.jobService.CreateJob(ctx, dto.CreateJobRequest{
		ClientID:      estimate.ClientID,
		Title:         estimate.Title,
		Status:        string(domain.JobStatusScheduled),
		ScheduledDate: req.ScheduledDate,
		ScheduledTime: req.ScheduledTime,
		Items:         items,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create job from estimate %s: %w", estimateID, err)
	}

	converted := *estimate
	converted.ConvertedJobID = job.JobID
	if err := s.estimateRepo.UpdateEstimate(ctx, converted); err != nil {
		s.LogError(ctx, err, "Failed to record conversion on estimate",
			slog.String("estimate_id", estimateID),
			slog.String("job_id", job.JobID))
		return nil, fmt.Errorf("failed to update estimate %s: %w", estimateID, err)
	}

	s.LogInfo(ctx, "Estimate converted to job",
		slog.String("estimate_id", estimateID),
		slog.String("job_id", job.JobID))
	return job, nil
}
