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

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{db: db}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepository
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func scanClientRow(rows pgx.Rows) (models.Client, error) {
	var m models.Client
	err := rows.Scan(
		&m.ClientID,
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.DateOfBirth,
		&m.Status,
		&m.Related,
		&m.Avatar,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxClientRepository) ListClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	query := `
		SELECT client_id, organization_id, name, email, phone, dob, status, related, avatar,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE organization_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients := []models.Client{}
	for rows.Next() {
		m, err := scanClientRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		modelClients = append(modelClients, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}

	return mapping.ToDomainClientSlice(modelClients)
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	query := `
		SELECT client_id, organization_id, name, email, phone, dob, status, related, avatar,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM clients
		WHERE organization_id = $1 AND client_id = $2;
	`
	var m models.Client
	err := r.db.QueryRow(ctx, query, organizationID, clientID).Scan(
		&m.ClientID,
		&m.OrganizationID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.DateOfBirth,
		&m.Status,
		&m.Related,
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
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}

	client, err := mapping.ToDomainClient(m)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (client_id, organization_id, name, email, phone, dob, status, related, avatar,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.ClientID,
		m.OrganizationID,
		m.Name,
		m.Email,
		m.Phone,
		m.DateOfBirth,
		m.Status,
		m.Related,
		m.Avatar,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}
