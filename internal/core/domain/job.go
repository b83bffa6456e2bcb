package domain

import (
	"fmt"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// JobStatus indicates where a job sits in its lifecycle.
type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusEnRoute    JobStatus = "en_route"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
	// JobStatusEstimate marks a job that exists only as an unconverted estimate.
	JobStatusEstimate JobStatus = "estimate"
)

// IsValid reports whether s is one of the known job statuses.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusScheduled, JobStatusEnRoute, JobStatusInProgress,
		JobStatusCompleted, JobStatusCancelled, JobStatusEstimate:
		return true
	}
	return false
}

// PaymentStatus is derived from a job's paid amount versus its total.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// JobPriority indicates scheduling urgency.
type JobPriority string

const (
	PriorityLow    JobPriority = "low"
	PriorityMedium JobPriority = "medium"
	PriorityHigh   JobPriority = "high"
)

// JobItemType distinguishes labour from materials on a line item.
type JobItemType string

const (
	ItemTypeService JobItemType = "service"
	ItemTypePart    JobItemType = "part"
)

// JobItem is a single line on a job: quantity x price = total.
type JobItem struct {
	ItemID      string          `json:"itemID"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
	Type        JobItemType     `json:"type"`
}

// JobTimelineEvent is an append-only audit entry recording a status the job
// has passed through. Events are ordered by ascending timestamp and the most
// recent entry's status always equals the job's current status.
type JobTimelineEvent struct {
	EventID   string    `json:"eventID"`
	Status    JobStatus `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// Job is the central entity: a unit of field-service work tracked from
// scheduling through completion or cancellation. A Job value is immutable
// once in a catalog; recording a payment or advancing status produces a new
// value with appended history (see WithStatus and WithPayment).
type Job struct {
	JobID     string `json:"jobID"`
	JobNumber string `json:"jobNumber"`

	// Client snapshot taken at creation time; ClientID stays authoritative.
	ClientID    string `json:"clientID"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      JobStatus   `json:"status"`
	Priority    JobPriority `json:"priority"`

	ScheduledDate    CalendarDate `json:"scheduledDate"`
	ScheduledTime    string       `json:"scheduledTime,omitempty"`
	ScheduledEndTime string       `json:"scheduledEndTime,omitempty"`
	// EstimatedDuration is in minutes.
	EstimatedDuration int `json:"estimatedDuration,omitempty"`

	TechnicianID   string `json:"technicianID,omitempty"`
	TechnicianName string `json:"technicianName,omitempty"`

	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Distance string `json:"distance,omitempty"`

	Total         decimal.Decimal `json:"total"`
	Paid          decimal.Decimal `json:"paid"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	InvoiceNumber string          `json:"invoiceNumber,omitempty"`

	Items    []JobItem `json:"items,omitempty"`
	Payments []Payment `json:"payments,omitempty"`

	Tags        []string `json:"tags,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Attachments int      `json:"attachments,omitempty"`
	ServicePlan string   `json:"servicePlan,omitempty"`
	Notes       string   `json:"notes,omitempty"`

	Timeline []JobTimelineEvent `json:"timeline"`
}

// DerivePaymentStatus computes the payment status from total and paid amounts.
// paid: balance is zero and something was actually collected.
// partial: collected some but not all. unpaid: everything else, including a
// zero-total job with no payments.
func DerivePaymentStatus(total, paid decimal.Decimal) PaymentStatus {
	switch {
	case paid.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(total):
		return PaymentStatusPaid
	case paid.GreaterThan(decimal.Zero) && paid.LessThan(total):
		return PaymentStatusPartial
	default:
		return PaymentStatusUnpaid
	}
}

// Validate checks the job's financial and history invariants. It is called at
// construction time so the aggregation engine can stay total over any catalog.
func (j Job) Validate() error {
	if j.JobID == "" {
		return fmt.Errorf("job is missing an ID: %w", apperrors.ErrValidation)
	}
	if j.ClientID == "" {
		return fmt.Errorf("job %s is missing a client reference: %w", j.JobID, apperrors.ErrValidation)
	}
	if !j.Status.IsValid() {
		return fmt.Errorf("job %s has unknown status %q: %w", j.JobID, j.Status, apperrors.ErrValidation)
	}
	if j.Total.IsNegative() {
		return fmt.Errorf("job %s has negative total %s: %w", j.JobID, j.Total, apperrors.ErrInvariantViolation)
	}
	if !j.Balance.Equal(j.Total.Sub(j.Paid)) {
		return fmt.Errorf("job %s balance %s does not equal total %s minus paid %s: %w",
			j.JobID, j.Balance, j.Total, j.Paid, apperrors.ErrInvariantViolation)
	}
	if j.Balance.IsNegative() {
		return fmt.Errorf("job %s balance %s is negative: %w", j.JobID, j.Balance, apperrors.ErrInvariantViolation)
	}
	if len(j.Items) > 0 {
		sum := decimal.Zero
		for _, item := range j.Items {
			if !item.Total.Equal(item.Quantity.Mul(item.Price)) {
				return fmt.Errorf("job %s item %s total %s does not equal quantity x price: %w",
					j.JobID, item.ItemID, item.Total, apperrors.ErrInvariantViolation)
			}
			sum = sum.Add(item.Total)
		}
		if !sum.Equal(j.Total) {
			return fmt.Errorf("job %s item totals sum to %s but job total is %s: %w",
				j.JobID, sum, j.Total, apperrors.ErrInvariantViolation)
		}
	}
	for _, p := range j.Payments {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return j.validateTimeline()
}

func (j Job) validateTimeline() error {
	if len(j.Timeline) == 0 {
		return fmt.Errorf("job %s has no timeline: %w", j.JobID, apperrors.ErrValidation)
	}
	for i := 1; i < len(j.Timeline); i++ {
		if j.Timeline[i].Timestamp.Before(j.Timeline[i-1].Timestamp) {
			return fmt.Errorf("job %s timeline is not monotonic at index %d: %w",
				j.JobID, i, apperrors.ErrInvariantViolation)
		}
	}
	if latest := j.Timeline[len(j.Timeline)-1]; latest.Status != j.Status {
		return fmt.Errorf("job %s latest timeline status %q disagrees with job status %q: %w",
			j.JobID, latest.Status, j.Status, apperrors.ErrInvariantViolation)
	}
	return nil
}
