package dto

import (
	"time"

	"github.com/fieldhq/field_service_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a new client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Notes   string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	Zip       string    `json:"zip,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListClientsResponse is a page of clients plus the cursor for the next page.
type ListClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	NextToken string           `json:"nextToken,omitempty"`
}

// ToClientResponse converts a domain.Client to a ClientResponse DTO.
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  client.ClientID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		City:      client.City,
		State:     client.State,
		Zip:       client.Zip,
		Notes:     client.Notes,
		CreatedAt: client.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain.Client to []ClientResponse.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = ToClientResponse(&clients[i])
	}
	return responses
}
