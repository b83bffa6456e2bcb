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
	"github.com/fieldhq/field_service_app/internal/utils/reporting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// jobServiceImpl implements the JobSvcFacade interface
type jobServiceImpl struct {
	BaseService
	jobRepo     portsrepo.JobRepositoryFacade
	clientRepo  portsrepo.ClientReader
	invoiceRepo portsrepo.InvoiceRepositoryFacade
}

// JobServiceOption is a functional option for configuring the job service
type JobServiceOption func(*jobServiceImpl)

// WithInvoiceRepository lets payments recorded against an invoice settle the
// invoice in the same operation.
func WithInvoiceRepository(repo portsrepo.InvoiceRepositoryFacade) JobServiceOption {
	return func(s *jobServiceImpl) {
		s.invoiceRepo = repo
	}
}

// NewJobService creates a new job service with the provided options
func NewJobService(jobRepo portsrepo.JobRepositoryFacade, clientRepo portsrepo.ClientReader, options ...JobServiceOption) portssvc.JobSvcFacade {
	svc := &jobServiceImpl{
		jobRepo:    jobRepo,
		clientRepo: clientRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure jobServiceImpl implements the JobSvcFacade interface
var _ portssvc.JobSvcFacade = (*jobServiceImpl)(nil)

func (s *jobServiceImpl) CreateJob(ctx context.Context, req dto.CreateJobRequest) (*domain.Job, error) {
	scheduledDate, err := domain.ParseCalendarDate(req.ScheduledDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
	}

	client, err := s.clientRepo.FindClientByID(ctx, req.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Client lookup failed for new job", slog.String("client_id", req.ClientID))
		return nil, fmt.Errorf("client %s: %w", req.ClientID, err)
	}

	items, itemsTotal := buildJobItems(req.Items)
	total := req.Total
	if len(items) > 0 {
		if !req.Total.IsZero() && !req.Total.Equal(itemsTotal) {
			return nil, fmt.Errorf("declared total %s does not match item totals %s: %w",
				req.Total, itemsTotal, apperrors.ErrInvariantViolation)
		}
		total = itemsTotal
	}

	count, err := s.jobRepo.CountJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to number new job: %w", err)
	}

	now := time.Now()
	priority := domain.JobPriority(req.Priority)
	if priority == "" {
		priority = domain.PriorityMedium
	}

	job := domain.Job{
		JobID:             uuid.NewString(),
		JobNumber:         fmt.Sprintf("JOB-%04d", count+1),
		ClientID:          client.ClientID,
		ClientName:        client.Name,
		ClientPhone:       client.Phone,
		Title:             req.Title,
		Description:       req.Description,
		Status:            domain.JobStatus(req.Status),
		Priority:          priority,
		ScheduledDate:     scheduledDate,
		ScheduledTime:     req.ScheduledTime,
		ScheduledEndTime:  req.ScheduledEndTime,
		EstimatedDuration: req.EstimatedDuration,
		TechnicianID:      req.TechnicianID,
		TechnicianName:    req.TechnicianName,
		Address:           req.Address,
		City:              req.City,
		State:             req.State,
		Zip:               req.Zip,
		Total:             total,
		Paid:              decimal.Zero,
		Balance:           total,
		PaymentStatus:     domain.PaymentStatusUnpaid,
		Items:             items,
		Tags:              req.Tags,
		ServicePlan:       req.ServicePlan,
		Notes:             req.Notes,
		Timeline: []domain.JobTimelineEvent{{
			EventID:   uuid.NewString(),
			Status:    domain.JobStatus(req.Status),
			Timestamp: now,
			Note:      "Job created",
		}},
	}

	if err := job.Validate(); err != nil {
		s.LogError(ctx, err, "New job failed invariant checks")
		return nil, err
	}

	if err := s.jobRepo.SaveJob(ctx, job); err != nil {
		s.LogError(ctx, err, "Failed to save new job", slog.String("job_id", job.JobID))
		return nil, fmt.Errorf("failed to save job: %w", err)
	}

	s.LogInfo(ctx, "Job created", slog.String("job_id", job.JobID), slog.String("job_number", job.JobNumber))
	return &job, nil
}

func (s *jobServiceImpl) GetJobByID(ctx context.Context, jobID string) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", jobID, err)
	}
	return job, nil
}

func (s *jobServiceImpl) ListJobs(ctx context.Context, limit int, nextToken string) ([]domain.Job, string, error) {
	afterID := ""
	if nextToken != "" {
		var err error
		afterID, err = pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
		}
	}

	jobs, err := s.jobRepo.ListJobs(ctx, afterID, limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list jobs: %w", err)
	}

	token := ""
	if len(jobs) == limit && limit > 0 {
		token = pagination.EncodeCursor(jobs[len(jobs)-1].JobID)
	}
	return jobs, token, nil
}

func (s *jobServiceImpl) ListJobsOnDate(ctx context.Context, date domain.CalendarDate) ([]domain.Job, error) {
	catalog, err := s.jobRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot job catalog: %w", err)
	}

	var jobs []domain.Job
	for job := range reporting.JobsOnDate(catalog, date) {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

func (s *jobServiceImpl) AdvanceJobStatus(ctx context.Context, jobID string, req dto.AdvanceJobStatusRequest) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", jobID, err)
	}

	updated, err := job.WithStatus(domain.JobStatus(req.Status), time.Now(), req.Note)
	if err != nil {
		s.LogError(ctx, err, "Status transition rejected",
			slog.String("job_id", jobID),
			slog.String("from", string(job.Status)),
			slog.String("to", req.Status))
		return nil, err
	}

	if err := s.jobRepo.ReplaceJob(ctx, updated, portsrepo.JobVersion(job)); err != nil {
		s.LogError(ctx, err, "Failed to persist status transition", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update job %s: %w", jobID, err)
	}

	s.LogInfo(ctx, "Job status advanced",
		slog.String("job_id", jobID),
		slog.String("from", string(job.Status)),
		slog.String("to", string(updated.Status)))
	return &updated, nil
}

func (s *jobServiceImpl) RecordPayment(ctx context.Context, jobID string, req dto.RecordPaymentRequest) (*domain.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", jobID, err)
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		JobID:         jobID,
		InvoiceID:     req.InvoiceID,
		Amount:        req.Amount,
		Method:        domain.PaymentMethod(req.Method),
		TransactionID: req.TransactionID,
		Timestamp:     time.Now(),
		Notes:         req.Notes,
	}

	updated, err := job.WithPayment(payment)
	if err != nil {
		s.LogError(ctx, err, "Payment rejected", slog.String("job_id", jobID))
		return nil, err
	}

	// Validate the invoice side before touching either catalog, then write
	// the job first. The invoice is settled only once the payment actually
	// exists on a job, so a version conflict on the job cannot leave
	// invoice.paid reflecting a payment that was never recorded.
	var settled *domain.Invoice
	if req.InvoiceID != "" {
		settled, err = s.prepareInvoiceSettlement(ctx, payment)
		if err != nil {
			return nil, err
		}
	}

	if err := s.jobRepo.ReplaceJob(ctx, updated, portsrepo.JobVersion(job)); err != nil {
		s.LogError(ctx, err, "Failed to persist payment", slog.String("job_id", jobID))
		return nil, fmt.Errorf("failed to update job %s: %w", jobID, err)
	}

	if settled != nil {
		if err := s.invoiceRepo.UpdateInvoice(ctx, *settled); err != nil {
			// Put the job back so its payment list and the invoice stay in step.
			if rbErr := s.jobRepo.ReplaceJob(ctx, *job, portsrepo.JobVersion(&updated)); rbErr != nil {
				s.LogError(ctx, rbErr, "Failed to restore job after invoice update failure",
					slog.String("job_id", jobID))
			}
			s.LogError(ctx, err, "Failed to settle invoice", slog.String("invoice_id", settled.InvoiceID))
			return nil, fmt.Errorf("failed to update invoice %s: %w", settled.InvoiceID, err)
		}
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("job_id", jobID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()))
	return &updated, nil
}

// prepareInvoiceSettlement validates that the payment may settle its invoice
// and returns the settled invoice value without persisting it.
func (s *jobServiceImpl) prepareInvoiceSettlement(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	if s.invoiceRepo == nil {
		return nil, fmt.Errorf("invoice %s cannot be settled without an invoice catalog: %w",
			payment.InvoiceID, apperrors.ErrValidation)
	}
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, payment.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", payment.InvoiceID, err)
	}
	if invoice.JobID != payment.JobID {
		return nil, fmt.Errorf("invoice %s belongs to job %s, not %s: %w",
			invoice.InvoiceID, invoice.JobID, payment.JobID, apperrors.ErrValidation)
	}
	settled, err := invoice.WithPayment(payment)
	if err != nil {
		return nil, err
	}
	return &settled, nil
}

// buildJobItems assigns item IDs and computes line totals server-side.
func buildJobItems(reqs []dto.JobItemRequest) ([]domain.JobItem, decimal.Decimal) {
	if len(reqs) == 0 {
		return nil, decimal.Zero
	}
	items := make([]domain.JobItem, len(reqs))
	sum := decimal.Zero
	for i, r := range reqs {
		lineTotal := r.Quantity.Mul(r.Price)
		items[i] = domain.JobItem{
			ItemID:      uuid.NewString(),
			Name:        r.Name,
			Description: r.Description,
			Quantity:    r.Quantity,
			Price:       r.Price,
			Total:       lineTotal,
			Type:        domain.JobItemType(r.Type),
		}
		sum = sum.Add(lineTotal)
	}
	return items, sum
}
