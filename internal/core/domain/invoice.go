package domain

import (
	"fmt"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Invoice is a billing record tied to exactly one job, tracking amount owed
// and paid. Its status mirrors the job's payment status semantics.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"`
	JobID         string          `json:"jobID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientID      string          `json:"clientID"`
	ClientName    string          `json:"clientName"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	Status        PaymentStatus   `json:"status"`
	DueDate       CalendarDate    `json:"dueDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Validate checks the invoice's financial invariants.
func (inv Invoice) Validate() error {
	if inv.InvoiceID == "" {
		return fmt.Errorf("invoice is missing an ID: %w", apperrors.ErrValidation)
	}
	if inv.JobID == "" {
		return fmt.Errorf("invoice %s is missing a job reference: %w", inv.InvoiceID, apperrors.ErrValidation)
	}
	if inv.Amount.IsNegative() {
		return fmt.Errorf("invoice %s has negative amount %s: %w", inv.InvoiceID, inv.Amount, apperrors.ErrInvariantViolation)
	}
	if !inv.Balance.Equal(inv.Amount.Sub(inv.Paid)) {
		return fmt.Errorf("invoice %s balance %s does not equal amount %s minus paid %s: %w",
			inv.InvoiceID, inv.Balance, inv.Amount, inv.Paid, apperrors.ErrInvariantViolation)
	}
	if inv.Balance.IsNegative() {
		return fmt.Errorf("invoice %s balance %s is negative: %w", inv.InvoiceID, inv.Balance, apperrors.ErrInvariantViolation)
	}
	return nil
}

// WithPayment returns a copy of the invoice with the payment applied and
// paid/balance/status recomputed.
func (inv Invoice) WithPayment(p Payment) (Invoice, error) {
	if err := p.Validate(); err != nil {
		return Invoice{}, err
	}
	newPaid := inv.Paid.Add(p.Amount)
	if newPaid.GreaterThan(inv.Amount) {
		return Invoice{}, fmt.Errorf("payment %s of %s would overpay invoice %s (amount %s, already paid %s): %w",
			p.PaymentID, p.Amount, inv.InvoiceID, inv.Amount, inv.Paid, apperrors.ErrInvariantViolation)
	}

	updated := inv
	updated.Paid = newPaid
	updated.Balance = inv.Amount.Sub(newPaid)
	updated.Status = DerivePaymentStatus(inv.Amount, newPaid)
	return updated, nil
}
