package mapping

import (
	"fmt"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/models"
)

// ToModelUser converts a domain.User to its row shape.
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		PasswordHash:   d.PasswordHash,
		Name:           d.Name,
		Role:           string(d.Role),
		OrganizationID: d.OrganizationID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainUser converts a users row to its domain shape, decoding the role.
func ToDomainUser(m models.User) (domain.User, error) {
	role, err := domain.ParseUserRole(m.Role)
	if err != nil {
		return domain.User{}, fmt.Errorf("user %s: %w", m.UserID, err)
	}
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		PasswordHash:   m.PasswordHash,
		Name:           m.Name,
		Role:           role,
		OrganizationID: m.OrganizationID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}, nil
}

// ToModelOrganization converts a domain.Organization to its row shape.
func ToModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrganization converts an organizations row to its domain shape.
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
