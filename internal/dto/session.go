package dto

import (
	"time"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSessionRequest defines the data needed to schedule a session. Client
// and professional references are optional. Type defaults to "Session" when
// omitted.
type CreateSessionRequest struct {
	Title          string               `json:"title" binding:"required"`
	ClientID       string               `json:"clientID"`
	ProfessionalID string               `json:"professionalID"`
	Start          time.Time            `json:"start" binding:"required"`
	End            time.Time            `json:"end" binding:"required"`
	Status         domain.SessionStatus `json:"status" binding:"required,oneof=Confirmed Pending Cancelled Completed"`
	Fee            decimal.Decimal      `json:"fee"`
	Notes          string               `json:"notes"`
	Color          string               `json:"color"`
	Type           string               `json:"type"`
}

// CompleteSessionRequest carries the final details recorded when a session is
// completed and invoiced.
type CompleteSessionRequest struct {
	Notes    string          `json:"notes"`
	FinalFee decimal.Decimal `json:"finalFee" binding:"required"`
}

// UpdateSessionNotesRequest replaces the session notes.
type UpdateSessionNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateSessionColorRequest replaces the session display color.
type UpdateSessionColorRequest struct {
	Color string `json:"color" binding:"required"`
}

// SessionResponse defines the data returned for a session.
type SessionResponse struct {
	SessionID      string               `json:"sessionID"`
	Title          string               `json:"title"`
	ClientID       string               `json:"clientID,omitempty"`
	ProfessionalID string               `json:"professionalID,omitempty"`
	Start          time.Time            `json:"start"`
	End            time.Time            `json:"end"`
	Status         domain.SessionStatus `json:"status"`
	Fee            decimal.Decimal      `json:"fee"`
	InvoiceID      string               `json:"invoiceID,omitempty"`
	Notes          string               `json:"notes,omitempty"`
	Color          string               `json:"color,omitempty"`
	Type           string               `json:"type,omitempty"`
}

// ToSessionResponse converts a domain.Session to its response DTO.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:      s.SessionID,
		Title:          s.Title,
		ClientID:       s.ClientID,
		ProfessionalID: s.ProfessionalID,
		Start:          s.Start,
		End:            s.End,
		Status:         s.Status,
		Fee:            s.Fee,
		InvoiceID:      s.InvoiceID,
		Notes:          s.Notes,
		Color:          s.Color,
		Type:           s.Type,
	}
}

// ToListSessionResponse converts a slice of domain.Session to response DTOs.
func ToListSessionResponse(sessions []domain.Session) []SessionResponse {
	res := make([]SessionResponse, len(sessions))
	for i := range sessions {
		res[i] = ToSessionResponse(&sessions[i])
	}
	return res
}

// CompleteSessionResponse returns the invoice produced by completing a session.
type CompleteSessionResponse struct {
	InvoiceID string `json:"invoiceID"`
}

// EnrichedSessionResponse is a session joined with display names for the UI.
type EnrichedSessionResponse struct {
	SessionResponse
	ClientName       string `json:"clientName"`
	ClientAvatar     string `json:"clientAvatar,omitempty"`
	ProfessionalName string `json:"professionalName"`
}

// ToListEnrichedSessionResponse converts enriched sessions to response DTOs.
func ToListEnrichedSessionResponse(sessions []domain.EnrichedSession) []EnrichedSessionResponse {
	res := make([]EnrichedSessionResponse, len(sessions))
	for i := range sessions {
		res[i] = EnrichedSessionResponse{
			SessionResponse:  ToSessionResponse(&sessions[i].Session),
			ClientName:       sessions[i].ClientName,
			ClientAvatar:     sessions[i].ClientAvatar,
			ProfessionalName: sessions[i].ProfessionalName,
		}
	}
	return res
}
