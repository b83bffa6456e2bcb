package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
)

// InvoiceRepository is an in-memory invoice catalog in insertion order.
type InvoiceRepository struct {
	mu       sync.RWMutex
	invoices []domain.Invoice
	index    map[string]int
	byJob    map[string]int
}

// NewInvoiceRepository creates an empty in-memory invoice repository.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{
		index: make(map[string]int),
		byJob: make(map[string]int),
	}
}

var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

// SaveInvoice persists a new invoice. Each job carries at most one invoice.
func (r *InvoiceRepository) SaveInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[invoice.InvoiceID]; exists {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrDuplicate)
	}
	if _, exists := r.byJob[invoice.JobID]; exists {
		return fmt.Errorf("job %s already has an invoice: %w", invoice.JobID, apperrors.ErrDuplicate)
	}
	r.index[invoice.InvoiceID] = len(r.invoices)
	r.byJob[invoice.JobID] = len(r.invoices)
	r.invoices = append(r.invoices, invoice)
	return nil
}

// FindInvoiceByID retrieves an invoice by its unique identifier.
func (r *InvoiceRepository) FindInvoiceByID(_ context.Context, invoiceID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	invoice := r.invoices[i]
	return &invoice, nil
}

// FindInvoiceByJobID retrieves the invoice billed against a job, if any.
func (r *InvoiceRepository) FindInvoiceByJobID(_ context.Context, jobID string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byJob[jobID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	invoice := r.invoices[i]
	return &invoice, nil
}

// ListInvoices returns a page of invoices in insertion order starting after afterID.
func (r *InvoiceRepository) ListInvoices(_ context.Context, afterID string, limit int) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if afterID != "" {
		i, ok := r.index[afterID]
		if !ok {
			return nil, fmt.Errorf("pagination cursor invoice %s: %w", afterID, apperrors.ErrNotFound)
		}
		start = i + 1
	}
	if start >= len(r.invoices) {
		return []domain.Invoice{}, nil
	}

	end := len(r.invoices)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := make([]domain.Invoice, end-start)
	copy(page, r.invoices[start:end])
	return page, nil
}

// CountInvoices returns the catalog size.
func (r *InvoiceRepository) CountInvoices(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.invoices), nil
}

// UpdateInvoice replaces an existing invoice's value.
func (r *InvoiceRepository) UpdateInvoice(_ context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[invoice.InvoiceID]
	if !ok {
		return fmt.Errorf("invoice %s: %w", invoice.InvoiceID, apperrors.ErrNotFound)
	}
	r.invoices[i] = invoice
	return nil
}
