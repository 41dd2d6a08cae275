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

type PgxProfessionalRepository struct {
	db *pgxpool.Pool
}

func newPgxProfessionalRepository(db *pgxpool.Pool) portsrepo.ProfessionalRepository {
	return &PgxProfessionalRepository{db: db}
}

// Ensure PgxProfessionalRepository implements portsrepo.ProfessionalRepository
var _ portsrepo.ProfessionalRepository = (*PgxProfessionalRepository)(nil)

func (r *PgxProfessionalRepository) ListProfessionals(ctx context.Context, organizationID string) ([]domain.Professional, error) {
	query := `
		SELECT professional_id, organization_id, name, role, avatar,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM professionals
		WHERE organization_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query professionals: %w", err)
	}
	defer rows.Close()

	modelProfessionals := []models.Professional{}
	for rows.Next() {
		var m models.Professional
		err := rows.Scan(
			&m.ProfessionalID,
			&m.OrganizationID,
			&m.Name,
			&m.Role,
			&m.Avatar,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan professional row: %w", err)
		}
		modelProfessionals = append(modelProfessionals, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating professional rows: %w", rows.Err())
	}

	return mapping.ToDomainProfessionalSlice(modelProfessionals), nil
}

func (r *PgxProfessionalRepository) FindProfessionalByID(ctx context.Context, organizationID, professionalID string) (*domain.Professional, error) {
	query := `
		SELECT professional_id, organization_id, name, role, avatar,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM professionals
		WHERE organization_id = $1 AND professional_id = $2;
	`
	var m models.Professional
	err := r.db.QueryRow(ctx, query, organizationID, professionalID).Scan(
		&m.ProfessionalID,
		&m.OrganizationID,
		&m.Name,
		&m.Role,
		&m.Avatar,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find professional %s: %w", professionalID, err)
	}

	professional := mapping.ToDomainProfessional(m)
	return &professional, nil
}

func (r *PgxProfessionalRepository) SaveProfessional(ctx context.Context, professional domain.Professional) error {
	m := mapping.ToModelProfessional(professional)
	query := `
		INSERT INTO professionals (professional_id, organization_id, name, role, avatar,
		                           created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.ProfessionalID,
		m.OrganizationID,
		m.Name,
		m.Role,
		m.Avatar,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save professional: %w", err)
	}
	return nil
}
