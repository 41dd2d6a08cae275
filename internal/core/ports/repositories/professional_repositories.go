package repositories

import (
	"context"

	"github.com/noeia/noeia-backend/internal/core/domain"
)

// ProfessionalRepository defines persistence operations for professionals.
// All reads are scoped to one organization.
type ProfessionalRepository interface {
	// ListProfessionals retrieves every professional of the organization.
	ListProfessionals(ctx context.Context, organizationID string) ([]domain.Professional, error)

	// FindProfessionalByID retrieves a specific professional.
	FindProfessionalByID(ctx context.Context, organizationID, professionalID string) (*domain.Professional, error)

	// SaveProfessional persists a new professional.
	SaveProfessional(ctx context.Context, professional domain.Professional) error
}
