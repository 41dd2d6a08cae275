package repositories

import (
	"context"

	"github.com/noeia/noeia-backend/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// OrganizationRepository defines persistence operations for organizations.
type OrganizationRepository interface {
	SaveOrganization(ctx context.Context, organization domain.Organization) error
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}
