package reporting

import (
	"iter"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// This package is the dashboard aggregation engine: pure, deterministic
// functions over an immutable catalog snapshot. The catalog is passed into
// every call; there is no package-level state. All functions are total over
// any well-formed catalog, including an empty one.

// JobsOnDate yields the jobs scheduled on date, preserving catalog order.
// The sequence is finite and restartable.
func JobsOnDate(catalog []domain.Job, date domain.CalendarDate) iter.Seq[domain.Job] {
	return func(yield func(domain.Job) bool) {
		for _, job := range catalog {
			if job.ScheduledDate == date {
				if !yield(job) {
					return
				}
			}
		}
	}
}

// RevenueOnDate sums job totals over the jobs scheduled on date.
func RevenueOnDate(catalog []domain.Job, date domain.CalendarDate) decimal.Decimal {
	sum := decimal.Zero
	for job := range JobsOnDate(catalog, date) {
		sum = sum.Add(job.Total)
	}
	return sum
}

// SalesOnDate is currently defined identically to RevenueOnDate; the data
// model has no separate sale concept. Placeholder metric until product
// defines a distinction.
func SalesOnDate(catalog []domain.Job, date domain.CalendarDate) decimal.Decimal {
	return RevenueOnDate(catalog, date)
}

// PaymentsCollectedOnDate sums payment amounts whose timestamp falls on date,
// across ALL jobs in the catalog. This filters payments by collection date,
// not jobs by schedule date: a payment taken on date counts even when its
// parent job is scheduled for a different day.
func PaymentsCollectedOnDate(catalog []domain.Job, date domain.CalendarDate) decimal.Decimal {
	sum := decimal.Zero
	for _, job := range catalog {
		for _, p := range job.Payments {
			if domain.DateOf(p.Timestamp) == date {
				sum = sum.Add(p.Amount)
			}
		}
	}
	return sum
}

// EstimatesOnDate counts unconverted estimates scheduled on date.
func EstimatesOnDate(catalog []domain.Job, date domain.CalendarDate) int {
	count := 0
	for job := range JobsOnDate(catalog, date) {
		if job.Status == domain.JobStatusEstimate {
			count++
		}
	}
	return count
}

// JobsUndoneCount counts jobs that are not completed, across the entire
// catalog regardless of the reference date. Cancelled jobs count as undone.
func JobsUndoneCount(catalog []domain.Job) int {
	count := 0
	for _, job := range catalog {
		if job.Status != domain.JobStatusCompleted {
			count++
		}
	}
	return count
}

// Summarize computes the full KPI record for a reference date.
func Summarize(catalog []domain.Job, date domain.CalendarDate) domain.DashboardSummary {
	jobs := 0
	revenue := decimal.Zero
	for job := range JobsOnDate(catalog, date) {
		jobs++
		revenue = revenue.Add(job.Total)
	}
	return domain.DashboardSummary{
		Date:       date,
		Jobs:       jobs,
		Revenue:    revenue,
		Sales:      revenue,
		Payments:   PaymentsCollectedOnDate(catalog, date),
		Estimates:  EstimatesOnDate(catalog, date),
		JobsUndone: JobsUndoneCount(catalog),
	}
}
