package domain_test

import (
	"testing"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.JobStatus
		to     domain.JobStatus
		want   bool
	}{
		{name: "scheduled to en_route", from: domain.JobStatusScheduled, to: domain.JobStatusEnRoute, want: true},
		{name: "en_route to in_progress", from: domain.JobStatusEnRoute, to: domain.JobStatusInProgress, want: true},
		{name: "in_progress to completed", from: domain.JobStatusInProgress, to: domain.JobStatusCompleted, want: true},
		{name: "estimate to scheduled", from: domain.JobStatusEstimate, to: domain.JobStatusScheduled, want: true},
		{name: "scheduled to cancelled", from: domain.JobStatusScheduled, to: domain.JobStatusCancelled, want: true},
		{name: "in_progress to cancelled", from: domain.JobStatusInProgress, to: domain.JobStatusCancelled, want: true},
		{name: "no skipping ahead", from: domain.JobStatusScheduled, to: domain.JobStatusCompleted, want: false},
		{name: "no going backward", from: domain.JobStatusInProgress, to: domain.JobStatusScheduled, want: false},
		{name: "completed is terminal", from: domain.JobStatusCompleted, to: domain.JobStatusScheduled, want: false},
		{name: "cancelled is terminal", from: domain.JobStatusCancelled, to: domain.JobStatusInProgress, want: false},
		{name: "cancelled cannot be re-cancelled", from: domain.JobStatusCancelled, to: domain.JobStatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.True(t, domain.JobStatusCompleted.IsTerminal())
	assert.True(t, domain.JobStatusCancelled.IsTerminal())
	assert.False(t, domain.JobStatusScheduled.IsTerminal())
	assert.False(t, domain.JobStatusEstimate.IsTerminal())
}

func TestJob_WithStatus_AppendsOneEvent(t *testing.T) {
	job := validJob()
	at := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)

	updated, err := job.WithStatus(domain.JobStatusEnRoute, at, "Heading out")
	require.NoError(t, err)

	assert.Equal(t, domain.JobStatusEnRoute, updated.Status)
	require.Len(t, updated.Timeline, len(job.Timeline)+1)

	last := updated.Timeline[len(updated.Timeline)-1]
	assert.Equal(t, domain.JobStatusEnRoute, last.Status)
	assert.Equal(t, at, last.Timestamp)
	assert.Equal(t, "Heading out", last.Note)
	assert.NotEmpty(t, last.EventID)

	// The new value still satisfies every invariant.
	assert.NoError(t, updated.Validate())

	// The original value is untouched.
	assert.Equal(t, domain.JobStatusScheduled, job.Status)
	assert.Len(t, job.Timeline, 1)
}

func TestJob_WithStatus_FullLifecycle(t *testing.T) {
	job := validJob()
	at := job.Timeline[0].Timestamp

	for _, next := range []domain.JobStatus{
		domain.JobStatusEnRoute,
		domain.JobStatusInProgress,
		domain.JobStatusCompleted,
	} {
		at = at.Add(time.Hour)
		var err error
		job, err = job.WithStatus(next, at, "")
		require.NoError(t, err)
	}

	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Len(t, job.Timeline, 4)
	assert.NoError(t, job.Validate())
}

func TestJob_WithStatus_RejectsInvalidTransitions(t *testing.T) {
	job := validJob()

	_, err := job.WithStatus(domain.JobStatusCompleted, time.Now(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

	cancelled, err := job.WithStatus(domain.JobStatusCancelled, time.Now(), "Client cancelled")
	require.NoError(t, err)

	_, err = cancelled.WithStatus(domain.JobStatusInProgress, time.Now(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestJob_WithStatus_RejectsUnknownStatus(t *testing.T) {
	job := validJob()
	_, err := job.WithStatus("archived", time.Now(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestJob_WithStatus_ClampsBackwardClock(t *testing.T) {
	job := validJob()
	lastEventTime := job.Timeline[0].Timestamp

	// A clock reading before the last event must not break monotonicity.
	updated, err := job.WithStatus(domain.JobStatusEnRoute, lastEventTime.Add(-time.Hour), "")
	require.NoError(t, err)

	last := updated.Timeline[len(updated.Timeline)-1]
	assert.Equal(t, lastEventTime, last.Timestamp)
	assert.NoError(t, updated.Validate())
}
