package domain

import (
	"fmt"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a payment was taken in the field.
type PaymentMethod string

const (
	MethodCash  PaymentMethod = "cash"
	MethodCheck PaymentMethod = "check"
	MethodCard  PaymentMethod = "card"
	MethodOther PaymentMethod = "other"
)

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCheck, MethodCard, MethodOther:
		return true
	}
	return false
}

// Payment is an atomic monetary event against a job, optionally tied to an
// invoice. Payments are append-only: the system aggregates over them but
// never mutates or removes a recorded payment.
type Payment struct {
	PaymentID     string          `json:"paymentID"`
	JobID         string          `json:"jobID"`
	InvoiceID     string          `json:"invoiceID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Method        PaymentMethod   `json:"method"`
	TransactionID string          `json:"transactionID,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
	Notes         string          `json:"notes,omitempty"`
}

// Validate checks the payment's invariants.
func (p Payment) Validate() error {
	if p.PaymentID == "" {
		return fmt.Errorf("payment is missing an ID: %w", apperrors.ErrValidation)
	}
	if p.JobID == "" {
		return fmt.Errorf("payment %s is missing a job reference: %w", p.PaymentID, apperrors.ErrValidation)
	}
	if !p.Amount.GreaterThan(decimal.Zero) {
		return fmt.Errorf("payment %s amount %s must be positive: %w", p.PaymentID, p.Amount, apperrors.ErrInvariantViolation)
	}
	if !p.Method.IsValid() {
		return fmt.Errorf("payment %s has unknown method %q: %w", p.PaymentID, p.Method, apperrors.ErrValidation)
	}
	if p.Timestamp.IsZero() {
		return fmt.Errorf("payment %s is missing a timestamp: %w", p.PaymentID, apperrors.ErrValidation)
	}
	return nil
}
