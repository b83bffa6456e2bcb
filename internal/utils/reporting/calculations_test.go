package reporting_test

import (
	"testing"
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/utils/reporting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var (
	june1 = domain.CalendarDate{Year: 2024, Month: time.June, Day: 1}
	june2 = domain.CalendarDate{Year: 2024, Month: time.June, Day: 2}
)

func scheduledEvent(status domain.JobStatus) []domain.JobTimelineEvent {
	return []domain.JobTimelineEvent{{
		EventID:   "ev",
		Status:    status,
		Timestamp: time.Date(2024, time.May, 20, 9, 0, 0, 0, time.UTC),
	}}
}

// testCatalog builds the canonical two-days-of-work catalog used across the
// aggregation tests.
func testCatalog() []domain.Job {
	return []domain.Job{
		{
			JobID:         "job-1",
			ClientID:      "cl-1",
			Status:        domain.JobStatusCompleted,
			ScheduledDate: june1,
			Total:         decimal.NewFromInt(100),
			Paid:          decimal.NewFromInt(100),
			Balance:       decimal.Zero,
			PaymentStatus: domain.PaymentStatusPaid,
			Payments: []domain.Payment{{
				PaymentID: "pay-1",
				JobID:     "job-1",
				Amount:    decimal.NewFromInt(100),
				Method:    domain.MethodCard,
				Timestamp: time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC),
			}},
			Timeline: scheduledEvent(domain.JobStatusCompleted),
		},
		{
			JobID:         "job-2",
			ClientID:      "cl-2",
			Status:        domain.JobStatusScheduled,
			ScheduledDate: june1,
			Total:         decimal.NewFromInt(50),
			Paid:          decimal.Zero,
			Balance:       decimal.NewFromInt(50),
			PaymentStatus: domain.PaymentStatusUnpaid,
			Timeline:      scheduledEvent(domain.JobStatusScheduled),
		},
		{
			JobID:         "job-3",
			ClientID:      "cl-3",
			Status:        domain.JobStatusEstimate,
			ScheduledDate: june1,
			Total:         decimal.NewFromInt(75),
			Paid:          decimal.Zero,
			Balance:       decimal.NewFromInt(75),
			PaymentStatus: domain.PaymentStatusUnpaid,
			Timeline:      scheduledEvent(domain.JobStatusEstimate),
		},
		{
			JobID:         "job-4",
			ClientID:      "cl-1",
			Status:        domain.JobStatusInProgress,
			ScheduledDate: june2,
			Total:         decimal.NewFromInt(300),
			Paid:          decimal.NewFromInt(120),
			Balance:       decimal.NewFromInt(180),
			PaymentStatus: domain.PaymentStatusPartial,
			Payments: []domain.Payment{{
				PaymentID: "pay-2",
				JobID:     "job-4",
				Amount:    decimal.NewFromInt(120),
				Method:    domain.MethodCash,
				// Collected on June 1 even though the job runs June 2.
				Timestamp: time.Date(2024, time.June, 1, 18, 30, 0, 0, time.UTC),
			}},
			Timeline: scheduledEvent(domain.JobStatusInProgress),
		},
	}
}

func TestJobsOnDate(t *testing.T) {
	catalog := testCatalog()

	var ids []string
	for job := range reporting.JobsOnDate(catalog, june1) {
		ids = append(ids, job.JobID)
	}

	// Catalog order is preserved.
	assert.Equal(t, []string{"job-1", "job-2", "job-3"}, ids)
}

func TestJobsOnDate_IsRestartable(t *testing.T) {
	catalog := testCatalog()
	seq := reporting.JobsOnDate(catalog, june1)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	assert.Equal(t, first, second)
}

func TestJobsOnDate_EarlyBreak(t *testing.T) {
	catalog := testCatalog()

	count := 0
	for range reporting.JobsOnDate(catalog, june1) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestRevenueOnDate(t *testing.T) {
	catalog := testCatalog()

	// 100 + 50 + 75 scheduled on June 1; the estimate's total counts too.
	assert.Equal(t, "225", reporting.RevenueOnDate(catalog, june1).String())
	assert.Equal(t, "300", reporting.RevenueOnDate(catalog, june2).String())
}

func TestRevenueOnDate_EmptyCatalog(t *testing.T) {
	assert.True(t, reporting.RevenueOnDate(nil, june1).IsZero())
}

func TestSalesOnDate_EqualsRevenue(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t,
		reporting.RevenueOnDate(catalog, june1).String(),
		reporting.SalesOnDate(catalog, june1).String())
}

func TestPaymentsCollectedOnDate_FiltersByPaymentDateNotJobDate(t *testing.T) {
	catalog := testCatalog()

	// pay-1 (100, job on June 1) and pay-2 (120, job on June 2) were both
	// collected on June 1.
	assert.Equal(t, "220", reporting.PaymentsCollectedOnDate(catalog, june1).String())
	// Nothing was collected on June 2 even though job-4 runs that day.
	assert.True(t, reporting.PaymentsCollectedOnDate(catalog, june2).IsZero())
}

func TestEstimatesOnDate(t *testing.T) {
	catalog := testCatalog()
	assert.Equal(t, 1, reporting.EstimatesOnDate(catalog, june1))
	assert.Equal(t, 0, reporting.EstimatesOnDate(catalog, june2))
}

func TestJobsUndoneCount_IsCatalogWide(t *testing.T) {
	catalog := testCatalog()

	// job-2, job-3 and job-4 are not completed; the count ignores dates.
	assert.Equal(t, 3, reporting.JobsUndoneCount(catalog))
}

func TestJobsUndoneCount_CancelledCountsAsUndone(t *testing.T) {
	catalog := []domain.Job{{
		JobID:         "job-c",
		ClientID:      "cl-1",
		Status:        domain.JobStatusCancelled,
		ScheduledDate: june1,
		Timeline:      scheduledEvent(domain.JobStatusCancelled),
	}}
	assert.Equal(t, 1, reporting.JobsUndoneCount(catalog))
}

func TestSummarize(t *testing.T) {
	catalog := testCatalog()

	summary := reporting.Summarize(catalog, june1)

	assert.Equal(t, june1, summary.Date)
	assert.Equal(t, 3, summary.Jobs)
	assert.Equal(t, "225", summary.Revenue.String())
	assert.Equal(t, summary.Revenue.String(), summary.Sales.String())
	assert.Equal(t, "220", summary.Payments.String())
	assert.Equal(t, 1, summary.Estimates)
	assert.Equal(t, 3, summary.JobsUndone)
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	summary := reporting.Summarize(nil, june1)

	assert.Equal(t, june1, summary.Date)
	assert.Equal(t, 0, summary.Jobs)
	assert.True(t, summary.Revenue.IsZero())
	assert.True(t, summary.Sales.IsZero())
	assert.True(t, summary.Payments.IsZero())
	assert.Equal(t, 0, summary.Estimates)
	assert.Equal(t, 0, summary.JobsUndone)
}
