package domain

import (
	"github.com/shopspring/decimal"
)

// DashboardSummary is the KPI record for a single reference date. Counts are
// plain integers; monetary values are precise decimals (the presentation
// layer formats them as currency strings).
//
// JobsUndone is deliberately catalog-wide while every other metric is scoped
// to the reference date; the asymmetry matches observed product behavior and
// is preserved pending product clarification.
type DashboardSummary struct {
	Date       CalendarDate    `json:"date"`
	Jobs       int             `json:"jobs"`
	Revenue    decimal.Decimal `json:"revenue"`
	Sales      decimal.Decimal `json:"sales"`
	Payments   decimal.Decimal `json:"payments"`
	Estimates  int             `json:"estimates"`
	JobsUndone int             `json:"jobsUndone"`
}

// TodoItem is one actionable summary surfaced on the dashboard, produced by a
// pluggable rule over the job catalog rather than hand-authored text.
type TodoItem struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Count  int    `json:"count"`
}
