package services

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// DashboardSvc computes the KPI surface over an immutable catalog snapshot.
// Queries are read-only and safe to run concurrently for any number of
// reference dates.
type DashboardSvc interface {
	// Summary computes the KPI record for a reference date.
	Summary(ctx context.Context, date domain.CalendarDate) (domain.DashboardSummary, error)

	// Todos derives the actionable dashboard entries from the catalog via
	// the configured rule set.
	Todos(ctx context.Context) ([]domain.TodoItem, error)
}
