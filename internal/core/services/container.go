package services

import (
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/repositories/database/memory"
)

// NewServiceContainer wires all services over a repository container.
func NewServiceContainer(repos *memory.RepositoryContainer) *portssvc.ServiceContainer {
	jobService := NewJobService(repos.Job, repos.Client, WithInvoiceRepository(repos.Invoice))

	return &portssvc.ServiceContainer{
		Job:       jobService,
		Client:    NewClientService(repos.Client),
		Estimate:  NewEstimateService(repos.Estimate, repos.Client, jobService),
		Invoice:   NewInvoiceService(repos.Invoice, repos.Job),
		Dashboard: NewDashboardService(repos.Job),
		Message:   NewMessageService(repos.Message),
	}
}
