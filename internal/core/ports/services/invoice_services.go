package services

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves a specific invoice by its unique identifier.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices in catalog order.
	ListInvoices(ctx context.Context, limit int, nextToken string) ([]domain.Invoice, string, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice bills a job, assigning the invoice an ID and number and
	// stamping the number back onto the job.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
