package domain

import (
	"fmt"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/google/uuid"
)

// validTransitions maps each non-terminal status to the statuses reachable
// from it. completed and cancelled are terminal and have no entry; backward
// moves are never valid (no undo).
var validTransitions = map[JobStatus][]JobStatus{
	JobStatusEstimate:   {JobStatusScheduled, JobStatusCancelled},
	JobStatusScheduled:  {JobStatusEnRoute, JobStatusCancelled},
	JobStatusEnRoute:    {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted, JobStatusCancelled},
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// CanTransitionTo reports whether a job in status s may move to target.
func (s JobStatus) CanTransitionTo(target JobStatus) bool {
	for _, next := range validTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// WithStatus returns a copy of the job advanced to target, with exactly one
// appended timeline event. The job itself is never mutated. The event
// timestamp is clamped forward if the clock reads earlier than the last
// recorded event, keeping the history monotonic.
func (j Job) WithStatus(target JobStatus, at time.Time, note string) (Job, error) {
	if !target.IsValid() {
		return Job{}, fmt.Errorf("unknown target status %q for job %s: %w", target, j.JobID, apperrors.ErrValidation)
	}
	if j.Status.IsTerminal() {
		return Job{}, fmt.Errorf("job %s is %s and cannot transition to %s: %w",
			j.JobID, j.Status, target, apperrors.ErrInvalidTransition)
	}
	if !j.Status.CanTransitionTo(target) {
		return Job{}, fmt.Errorf("job %s cannot transition from %s to %s: %w",
			j.JobID, j.Status, target, apperrors.ErrInvalidTransition)
	}
	if last := j.lastTimelineEvent(); last != nil && at.Before(last.Timestamp) {
		at = last.Timestamp
	}

	updated := j
	updated.Status = target
	updated.Timeline = append(append([]JobTimelineEvent{}, j.Timeline...), JobTimelineEvent{
		EventID:   uuid.NewString(),
		Status:    target,
		Timestamp: at,
		Note:      note,
	})
	return updated, nil
}

// WithPayment returns a copy of the job with the payment appended and
// paid/balance/paymentStatus recomputed. Payments are append-only; recorded
// payments are never altered or removed.
func (j Job) WithPayment(p Payment) (Job, error) {
	if err := p.Validate(); err != nil {
		return Job{}, err
	}
	if p.JobID != j.JobID {
		return Job{}, fmt.Errorf("payment %s references job %s, not %s: %w",
			p.PaymentID, p.JobID, j.JobID, apperrors.ErrValidation)
	}
	newPaid := j.Paid.Add(p.Amount)
	if newPaid.GreaterThan(j.Total) {
		return Job{}, fmt.Errorf("payment %s of %s would overpay job %s (total %s, already paid %s): %w",
			p.PaymentID, p.Amount, j.JobID, j.Total, j.Paid, apperrors.ErrInvariantViolation)
	}

	updated := j
	updated.Payments = append(append([]Payment{}, j.Payments...), p)
	updated.Paid = newPaid
	updated.Balance = j.Total.Sub(newPaid)
	updated.PaymentStatus = DerivePaymentStatus(j.Total, newPaid)
	return updated, nil
}

func (j Job) lastTimelineEvent() *JobTimelineEvent {
	if len(j.Timeline) == 0 {
		return nil
	}
	return &j.Timeline[len(j.Timeline)-1]
}
