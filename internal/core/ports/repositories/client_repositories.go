package repositories

import (
	"context"

	"github.com/noeia/noeia-backend/internal/core/domain"
)

// ClientRepository defines persistence operations for clients. All reads are
// scoped to one organization.
type ClientRepository interface {
	// ListClients retrieves every client of the organization.
	ListClients(ctx context.Context, organizationID string) ([]domain.Client, error)

	// FindClientByID retrieves a specific client.
	FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error)

	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error
}
