package domain

import (
	"fmt"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// EstimateStatus is the state of a pre-job priced proposal.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusSent     EstimateStatus = "sent"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

// IsValid reports whether s is one of the known estimate statuses.
func (s EstimateStatus) IsValid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusSent, EstimateStatusApproved, EstimateStatusRejected:
		return true
	}
	return false
}

// Estimate is a priced proposal not yet converted into billable work.
type Estimate struct {
	EstimateID string          `json:"estimateID"`
	ClientID   string          `json:"clientID"`
	ClientName string          `json:"clientName"`
	Title      string          `json:"title"`
	Status     EstimateStatus  `json:"status"`
	Items      []JobItem       `json:"items,omitempty"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"createdAt"`
	ValidUntil time.Time       `json:"validUntil"`

	// ConvertedJobID is set once the estimate has been turned into a job;
	// a converted estimate cannot be converted again.
	ConvertedJobID string `json:"convertedJobID,omitempty"`
}

// Validate checks the estimate's financial identity and validity window.
func (e Estimate) Validate() error {
	if e.EstimateID == "" {
		return fmt.Errorf("estimate is missing an ID: %w", apperrors.ErrValidation)
	}
	if e.ClientID == "" {
		return fmt.Errorf("estimate %s is missing a client reference: %w", e.EstimateID, apperrors.ErrValidation)
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("estimate %s has unknown status %q: %w", e.EstimateID, e.Status, apperrors.ErrValidation)
	}
	if !e.Total.Equal(e.Subtotal.Sub(e.Discount).Add(e.Tax)) {
		return fmt.Errorf("estimate %s total %s does not equal subtotal - discount + tax: %w",
			e.EstimateID, e.Total, apperrors.ErrInvariantViolation)
	}
	if e.ValidUntil.Before(e.CreatedAt) {
		return fmt.Errorf("estimate %s expires before it was created: %w", e.EstimateID, apperrors.ErrInvariantViolation)
	}
	return nil
}
