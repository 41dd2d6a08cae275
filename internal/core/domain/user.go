package domain

import (
	"fmt"
	"time"

	"github.com/noeia/noeia-backend/internal/apperrors"
)

// UserRole classifies how a user relates to their organization. It drives
// frontend routing after login and is carried in the token claims; it is not
// consumed by the store layer.
type UserRole string

const (
	RoleDoctor       UserRole = "DOCTOR"
	RoleClient       UserRole = "CLIENT"
	RoleOrganization UserRole = "ORGANIZATION"
)

// ParseUserRole validates a raw role string.
func ParseUserRole(raw string) (UserRole, error) {
	switch UserRole(raw) {
	case RoleDoctor, RoleClient, RoleOrganization:
		return UserRole(raw), nil
	default:
		return "", fmt.Errorf("unrecognized user role %q: %w", raw, apperrors.ErrDecoding)
	}
}

// User represents an authenticated user of the application.
type User struct {
	UserID         string   `json:"userID"`
	Username       string   `json:"username"`
	PasswordHash   string   `json:"-"`
	Name           string   `json:"name"`
	Role           UserRole `json:"role"`
	OrganizationID string   `json:"organizationID"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
