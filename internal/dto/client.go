package dto

import (
	"github.com/noeia/noeia-backend/internal/core/domain"
)

// DateLayout is the wire format for day-precision dates (dob, invoice dates).
const DateLayout = "2006-01-02"

// CreateClientRequest defines the data needed to create a new client.
// Avatar is optional; a deterministic generated avatar seeded by the client
// name is used when it is omitted.
type CreateClientRequest struct {
	Name        string              `json:"name" binding:"required"`
	Email       string              `json:"email" binding:"required,email"`
	Phone       string              `json:"phone"`
	DateOfBirth string              `json:"dob" binding:"required,datetime=2006-01-02"`
	Status      domain.ClientStatus `json:"status" binding:"required,oneof=Active Inactive"`
	Related     string              `json:"related"`
	Avatar      string              `json:"avatar"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID    string              `json:"clientID"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Phone       string              `json:"phone"`
	DateOfBirth string              `json:"dob"`
	Status      domain.ClientStatus `json:"status"`
	Related     string              `json:"related"`
	Avatar      string              `json:"avatar"`
}

// ToClientResponse converts a domain.Client to its response DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:    c.ClientID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		DateOfBirth: c.DateOfBirth.Format(DateLayout),
		Status:      c.Status,
		Related:     c.Related,
		Avatar:      c.Avatar,
	}
}

// ToListClientResponse converts a slice of domain.Client to response DTOs.
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
