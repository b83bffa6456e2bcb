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
	"github.com/shopspring/decimal"
)

// invoiceServiceImpl implements the InvoiceSvcFacade interface
type invoiceServiceImpl struct {
	BaseService
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	jobRepo     portsrepo.JobRepositoryFacade
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, jobRepo portsrepo.JobRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceServiceImpl{
		invoiceRepo: invoiceRepo,
		jobRepo:     jobRepo,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceServiceImpl)(nil)

func (s *invoiceServiceImpl) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	dueDate, err := domain.ParseCalendarDate(req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
	}

	job, err := s.jobRepo.FindJobByID(ctx, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", req.JobID, err)
	}

	if existing, err := s.invoiceRepo.FindInvoiceByJobID(ctx, req.JobID); err == nil {
		return nil, fmt.Errorf("job %s is already billed by invoice %s: %w",
			req.JobID, existing.InvoiceID, apperrors.ErrDuplicate)
	}

	amount := req.Amount
	if amount.IsZero() {
		amount = job.Balance
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("invoice amount %s must not be negative: %w", amount, apperrors.ErrValidation)
	}

	count, err := s.invoiceRepo.CountInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to number new invoice: %w", err)
	}

	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		JobID:         job.JobID,
		InvoiceNumber: fmt.Sprintf("INV-%04d", count+1),
		ClientID:      job.ClientID,
		ClientName:    job.ClientName,
		Amount:        amount,
		Paid:          decimal.Zero,
		Balance:       amount,
		Status:        domain.PaymentStatusUnpaid,
		DueDate:       dueDate,
		CreatedAt:     time.Now(),
	}

	if err := invoice.Validate(); err != nil {
		s.LogError(ctx, err, "New invoice failed invariant checks")
		return nil, err
	}

	// Stamp the invoice number onto the job first. A version conflict here
	// aborts before the invoice exists, so a failed create never leaves an
	// orphaned invoice blocking the job from being billed again.
	stamped := *job
	stamped.InvoiceNumber = invoice.InvoiceNumber
	if err := s.jobRepo.ReplaceJob(ctx, stamped, portsrepo.JobVersion(job)); err != nil {
		s.LogError(ctx, err, "Failed to stamp invoice number onto job", slog.String("job_id", job.JobID))
		return nil, fmt.Errorf("failed to update job %s: %w", job.JobID, err)
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		// Remove the stamp so the job does not reference an invoice that
		// was never created.
		if rbErr := s.jobRepo.ReplaceJob(ctx, *job, portsrepo.JobVersion(&stamped)); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to unstamp job after invoice save failure",
				slog.String("job_id", job.JobID))
		}
		s.LogError(ctx, err, "Failed to save new invoice", slog.String("invoice_id", invoice.InvoiceID))
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("job_id", job.JobID))
	return &invoice, nil
}

func (s *invoiceServiceImpl) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceServiceImpl) ListInvoices(ctx context.Context, limit int, nextToken string) ([]domain.Invoice, string, error) {
	afterID := ""
	if nextToken != "" {
		var err error
		afterID, err = pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
		}
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx, afterID, limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list invoices: %w", err)
	}

	token := ""
	if len(invoices) == limit && limit > 0 {
		token = pagination.EncodeCursor(invoices[len(invoices)-1].InvoiceID)
	}
	return invoices, token, nil
}
