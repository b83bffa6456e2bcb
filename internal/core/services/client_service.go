package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
	portssvc "github.com/fieldhq/field_service_app/internal/core/ports/services"
	"github.com/fieldhq/field_service_app/internal/dto"
	"github.com/fieldhq/field_service_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// clientServiceImpl implements the ClientSvcFacade interface
type clientServiceImpl struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new client service
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientServiceImpl{clientRepo: repo}
}

var _ portssvc.ClientSvcFacade = (*clientServiceImpl)(nil)

func (s *clientServiceImpl) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	client := domain.Client{
		ClientID:  uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save new client", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID), slog.String("name", client.Name))
	return &client, nil
}

func (s *clientServiceImpl) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientServiceImpl) ListClients(ctx context.Context, limit int, nextToken string) ([]domain.Client, string, error) {
	afterID := ""
	if nextToken != "" {
		var err error
		afterID, err = pagination.DecodeCursor(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", err, apperrors.ErrValidation)
		}
	}

	clients, err := s.clientRepo.ListClients(ctx, afterID, limit)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list clients: %w", err)
	}

	token := ""
	if len(clients) == limit && limit > 0 {
		token = pagination.EncodeCursor(clients[len(clients)-1].ClientID)
	}
	return clients, token, nil
}
