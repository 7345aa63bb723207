package dto

import (
	"time"

	"github.com/bookora/bookora_backend/internal/core/domain"
)

// CreateClientRequest creates a client of a store.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,e164"`
	Email string `json:"email" binding:"omitempty,email"`
}

// UpdateClientRequest updates a client's identity fields. The information
// history is append-only and has its own endpoint.
type UpdateClientRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone" binding:"omitempty,e164"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// AppendClientNoteRequest appends one entry to a client's information
// history. Entries whose trimmed note is empty and whose image list is empty
// are rejected.
type AppendClientNoteRequest struct {
	Note   string   `json:"note"`
	Images []string `json:"images" binding:"omitempty,dive,url"`
}

// ClientNoteResponse is one information history entry.
type ClientNoteResponse struct {
	Note   string    `json:"note"`
	Images []string  `json:"images"`
	Date   time.Time `json:"date"`
}

// ClientResponse is the outward representation of a client.
type ClientResponse struct {
	ClientID    string               `json:"clientID"`
	StoreID     string               `json:"storeID"`
	Name        string               `json:"name"`
	Phone       string               `json:"phone"`
	Email       string               `json:"email"`
	Information []ClientNoteResponse `json:"information"`
}

// ToClientResponse converts a domain.Client to a ClientResponse DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	info := make([]ClientNoteResponse, len(c.Information))
	for i, n := range c.Information {
		info[i] = ClientNoteResponse{Note: n.Note, Images: n.Images, Date: n.Date}
	}
	return ClientResponse{
		ClientID:    c.ClientID,
		StoreID:     c.StoreID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Information: info,
	}
}

// ToClientResponses converts a slice of clients.
func ToClientResponses(clients []domain.Client) []ClientResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return out
}
