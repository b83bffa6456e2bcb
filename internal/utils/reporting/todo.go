package reporting

import (
	"fmt"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TodoRule derives actionable summaries from the job catalog. Rules are
// pluggable: the dashboard service applies an ordered list of them and
// concatenates the results, so deployments can swap or extend the defaults
// without touching the engine.
type TodoRule func(catalog []domain.Job) []domain.TodoItem

// DefaultTodoRules returns the built-in rule set.
func DefaultTodoRules() []TodoRule {
	return []TodoRule{
		UnconvertedEstimatesRule,
		OutstandingBalancesRule,
		JobsInFieldRule,
	}
}

// ApplyTodoRules runs each rule over the catalog in order.
func ApplyTodoRules(rules []TodoRule, catalog []domain.Job) []domain.TodoItem {
	var items []domain.TodoItem
	for _, rule := range rules {
		items = append(items, rule(catalog)...)
	}
	return items
}

// UnconvertedEstimatesRule surfaces estimates that have not become real jobs.
func UnconvertedEstimatesRule(catalog []domain.Job) []domain.TodoItem {
	count := 0
	for _, job := range catalog {
		if job.Status == domain.JobStatusEstimate {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.TodoItem{{
		Title:  fmt.Sprintf("%d estimates awaiting conversion", count),
		Detail: "Review and schedule or cancel open estimates",
		Count:  count,
	}}
}

// OutstandingBalancesRule surfaces completed jobs that still owe money.
func OutstandingBalancesRule(catalog []domain.Job) []domain.TodoItem {
	count := 0
	outstanding := decimal.Zero
	for _, job := range catalog {
		if job.Status == domain.JobStatusCompleted && job.Balance.GreaterThan(decimal.Zero) {
			count++
			outstanding = outstanding.Add(job.Balance)
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.TodoItem{{
		Title:  fmt.Sprintf("%d completed jobs with unpaid balances", count),
		Detail: fmt.Sprintf("%s outstanding across completed work", outstanding),
		Count:  count,
	}}
}

// JobsInFieldRule surfaces jobs currently underway.
func JobsInFieldRule(catalog []domain.Job) []domain.TodoItem {
	count := 0
	for _, job := range catalog {
		if job.Status == domain.JobStatusEnRoute || job.Status == domain.JobStatusInProgress {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return []domain.TodoItem{{
		Title:  fmt.Sprintf("%d jobs currently in the field", count),
		Detail: "Technicians en route or on site",
		Count:  count,
	}}
}
