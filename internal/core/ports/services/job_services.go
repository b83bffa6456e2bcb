package services

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/dto"
)

// JobReaderSvc defines read operations for jobs
type JobReaderSvc interface {
	// GetJobByID retrieves a specific job by its unique identifier.
	GetJobByID(ctx context.Context, jobID string) (*domain.Job, error)

	// ListJobs retrieves a page of jobs in catalog order. nextToken is the
	// opaque cursor from the previous page ("" for the first page); the
	// returned token is empty on the last page.
	ListJobs(ctx context.Context, limit int, nextToken string) ([]domain.Job, string, error)

	// ListJobsOnDate retrieves the jobs scheduled on a calendar date,
	// catalog order preserved.
	ListJobsOnDate(ctx context.Context, date domain.CalendarDate) ([]domain.Job, error)
}

// JobWriterSvc defines write operations for jobs
type JobWriterSvc interface {
	// CreateJob accepts a fully-formed new job, assigns it an ID, a job
	// number and an initial timeline event in status scheduled or estimate.
	CreateJob(ctx context.Context, req dto.CreateJobRequest) (*domain.Job, error)

	// AdvanceJobStatus moves a job one lifecycle step, appending exactly one
	// timeline event. Fails with ErrInvalidTransition for terminal or
	// non-adjacent targets.
	AdvanceJobStatus(ctx context.Context, jobID string, req dto.AdvanceJobStatusRequest) (*domain.Job, error)

	// RecordPayment appends a payment to a job and recomputes its
	// paid/balance/paymentStatus. If the payment names an invoice, the
	// invoice is settled in step.
	RecordPayment(ctx context.Context, jobID string, req dto.RecordPaymentRequest) (*domain.Job, error)
}

// JobSvcFacade combines all job-related service interfaces
type JobSvcFacade interface {
	JobReaderSvc
	JobWriterSvc
}
