package domain

import "time"

// Client is a customer the business does jobs for. Jobs keep a denormalized
// snapshot of the client's name and phone; the catalog entry here stays the
// source of truth for contact details.
type Client struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
