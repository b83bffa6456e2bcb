package dto

import (
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest bills a job. Amount defaults to the job's outstanding
// balance when omitted.
type CreateInvoiceRequest struct {
	JobID   string          `json:"jobID" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate string          `json:"dueDate" binding:"required,calendardate"` // YYYY-MM-DD
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	JobID         string          `json:"jobID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	Status        string          `json:"status"`
	DueDate       string          `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ListInvoicesResponse is a page of invoices plus the cursor for the next page.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		JobID:         inv.JobID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientID:      inv.ClientID,
		ClientName:    inv.ClientName,
		Amount:        inv.Amount,
		Paid:          inv.Paid,
		Balance:       inv.Balance,
		Status:        string(inv.Status),
		DueDate:       inv.DueDate.String(),
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
