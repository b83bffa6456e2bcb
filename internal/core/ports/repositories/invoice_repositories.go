package repositories

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves a specific invoice by its unique identifier.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// FindInvoiceByJobID retrieves the invoice billed against a job, if any.
	FindInvoiceByJobID(ctx context.Context, jobID string) (*domain.Invoice, error)

	// ListInvoices retrieves a page of invoices in catalog order.
	ListInvoices(ctx context.Context, afterID string, limit int) ([]domain.Invoice, error)

	// CountInvoices returns the catalog size, used for invoice numbering.
	CountInvoices(ctx context.Context) (int, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice replaces an existing invoice's value.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
