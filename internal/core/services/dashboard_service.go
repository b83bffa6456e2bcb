package services

import (
	"context"
	"fmt"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/utils/reporting"
)

// dashboardServiceImpl implements the DashboardSvc interface. It holds no
// state beyond its dependencies; every query works on a fresh catalog
// snapshot, so concurrent queries for different dates never interfere.
type dashboardServiceImpl struct {
	BaseService
	jobRepo   portsrepo.JobReader
	todoRules []reporting.TodoRule
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*dashboardServiceImpl)

// WithTodoRules replaces the default to-do rule set.
func WithTodoRules(rules []reporting.TodoRule) DashboardServiceOption {
	return func(s *dashboardServiceImpl) {
		s.todoRules = rules
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(jobRepo portsrepo.JobReader, options ...DashboardServiceOption) portssvc.DashboardSvc {
	svc := &dashboardServiceImpl{
		jobRepo:   jobRepo,
		todoRules: reporting.DefaultTodoRules(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*dashboardServiceImpl)(nil)

func (s *dashboardServiceImpl) Summary(ctx context.Context, date domain.CalendarDate) (domain.DashboardSummary, error) {
	catalog, err := s.jobRepo.Snapshot(ctx)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("failed to snapshot job catalog: %w", err)
	}
	return reporting.Summarize(catalog, date), nil
}

func (s *dashboardServiceImpl) Todos(ctx context.Context) ([]domain.TodoItem, error) {
	catalog, err := s.jobRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot job catalog: %w", err)
	}
	return reporting.ApplyTodoRules(s.todoRules, catalog), nil
}
