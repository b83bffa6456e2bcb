package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/fieldhq/field_service_app/internal/apperrors"
	"github.com/fieldhq/field_service_app/internal/core/domain"
	portsrepo "github.com/fieldhq/field_service_app/internal/core/ports/repositories"
)

// ClientRepository is an in-memory client catalog in insertion order.
type ClientRepository struct {
	mu      sync.RWMutex
	clients []domain.Client
	index   map[string]int
}

// NewClientRepository creates an empty in-memory client repository.
func NewClientRepository() *ClientRepository {
	return &ClientRepository{index: make(map[string]int)}
}

var _ portsrepo.ClientRepositoryFacade = (*ClientRepository)(nil)

// SaveClient persists a new client.
func (r *ClientRepository) SaveClient(_ context.Context, client domain.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[client.ClientID]; exists {
		return fmt.Errorf("client %s: %w", client.ClientID, apperrors.ErrDuplicate)
	}
	r.index[client.ClientID] = len(r.clients)
	r.clients = append(r.clients, client)
	return nil
}

// FindClientByID retrieves a client by its unique identifier.
func (r *ClientRepository) FindClientByID(_ context.Context, clientID string) (*domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[clientID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	client := r.clients[i]
	return &client, nil
}

// ListClients returns a page of clients in insertion order starting after afterID.
func (r *ClientRepository) ListClients(_ context.Context, afterID string, limit int) ([]domain.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if afterID != "" {
		i, ok := r.index[afterID]
		if !ok {
			return nil, fmt.Errorf("pagination cursor client %s: %w", afterID, apperrors.ErrNotFound)
		}
		start = i + 1
	}
	if start >= len(r.clients) {
		return []domain.Client{}, nil
	}

	end := len(r.clients)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	page := make([]domain.Client, end-start)
	copy(page, r.clients[start:end])
	return page, nil
}
