package domain

import (
	"fmt"
	"time"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SessionStatus indicates the lifecycle state of a session.
type SessionStatus string

const (
	SessionConfirmed SessionStatus = "Confirmed"
	SessionPending   SessionStatus = "Pending"
	SessionCancelled SessionStatus = "Cancelled"
	SessionCompleted SessionStatus = "Completed"
)

// ParseSessionStatus validates a raw status string read from the data source.
func ParseSessionStatus(raw string) (SessionStatus, error) {
	switch SessionStatus(raw) {
	case SessionConfirmed, SessionPending, SessionCancelled, SessionCompleted:
		return SessionStatus(raw), nil
	default:
		return "", fmt.Errorf("unrecognized session status %q: %w", raw, apperrors.ErrDecoding)
	}
}

// DefaultSessionType is applied when a session is created without an explicit type.
const DefaultSessionType = "Session"

// Session represents a scheduled appointment between a client and a
// professional. Client and professional references are optional (a session may
// be created before either is assigned). A completed session links to exactly
// one invoice via InvoiceID.
type Session struct {
	SessionID      string          `json:"sessionID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Title          string          `json:"title"`
	ClientID       string          `json:"clientID"`       // Optional, empty when unassigned
	ProfessionalID string          `json:"professionalID"` // Optional, empty when unassigned
	Start          time.Time       `json:"start"`
	End            time.Time       `json:"end"` // Invariant: End >= Start
	Status         SessionStatus   `json:"status"`
	Fee            decimal.Decimal `json:"fee"`
	InvoiceID      string          `json:"invoiceID,omitempty"` // Set once by session completion
	Notes          string          `json:"notes,omitempty"`
	Color          string          `json:"color,omitempty"` // Calendar display color
	Type           string          `json:"type,omitempty"`  // e.g. "Session", "Consultation"
	AuditFields
}
