package services

import (
	"context"

	"github.com/fieldhq/field_service_app/internal/core/domain"
	"github.com/fieldhq/field_service_app/internal/dto"
)

// ClientReaderSvc defines read operations for clients
type ClientReaderSvc interface {
	// GetClientByID retrieves a specific client by its unique identifier.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a page of clients in catalog order.
	ListClients(ctx context.Context, limit int, nextToken string) ([]domain.Client, string, error)
}

// ClientWriterSvc defines write operations for clients
type ClientWriterSvc interface {
	// CreateClient persists a new client and assigns its ID.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
