package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	"github.com/noeia/noeia-backend/internal/models"
	"github.com/noeia/noeia-backend/internal/utils/mapping"
)

type PgxOrganizationRepository struct {
	db *pgxpool.Pool
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{db: db}
}

// Ensure PgxOrganizationRepository implements portsrepo.OrganizationRepository
var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, organization domain.Organization) error {
	m := mapping.ToModelOrganization(organization)
	query := `
		INSERT INTO organizations (organization_id, name, is_active,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		m.OrganizationID,
		m.Name,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE organization_id = $1;
	`
	var m models.Organization
	err := r.db.QueryRow(ctx, query, organizationID).Scan(
		&m.OrganizationID,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}

	organization := mapping.ToDomainOrganization(m)
	return &organization, nil
}
