package domain

import (
	"fmt"
	"time"

	"github.com/noeia/noeia-backend/internal/apperrors"
)

// ClientStatus indicates whether a client is currently in treatment.
type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientInactive ClientStatus = "Inactive"
)

// ParseClientStatus validates a raw status string read from the data source.
// Unrecognized values fail with a decoding error instead of being silently kept.
func ParseClientStatus(raw string) (ClientStatus, error) {
	switch ClientStatus(raw) {
	case ClientActive, ClientInactive:
		return ClientStatus(raw), nil
	default:
		return "", fmt.Errorf("unrecognized client status %q: %w", raw, apperrors.ErrDecoding)
	}
}

// Client represents a person receiving care within an organization.
type Client struct {
	ClientID       string       `json:"clientID"` // Primary Key (UUID)
	OrganizationID string       `json:"organizationID"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	DateOfBirth    time.Time    `json:"dateOfBirth"`
	Status         ClientStatus `json:"status"`
	Related        string       `json:"related"` // Related contact (e.g. guardian), free text
	Avatar         string       `json:"avatar"`
	AuditFields
}
