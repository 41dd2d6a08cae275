package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	"github.com/noeia/noeia-backend/internal/models"
	"github.com/noeia/noeia-backend/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{db: db}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

const sessionColumns = `session_id, organization_id, title, client_id, professional_id,
	start_time, end_time, status, fee, invoice_id, notes, color, session_type,
	created_at, created_by, last_updated_at, last_updated_by`

func scanSessionRow(row pgx.Row) (models.Session, error) {
	var m models.Session
	err := row.Scan(
		&m.SessionID,
		&m.OrganizationID,
		&m.Title,
		&m.ClientID,
		&m.ProfessionalID,
		&m.StartTime,
		&m.EndTime,
		&m.Status,
		&m.Fee,
		&m.InvoiceID,
		&m.Notes,
		&m.Color,
		&m.SessionType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxSessionRepository) ListSessions(ctx context.Context, organizationID string) ([]domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE organization_id = $1
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	modelSessions := []models.Session{}
	for rows.Next() {
		m, err := scanSessionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		modelSessions = append(modelSessions, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", rows.Err())
	}

	return mapping.ToDomainSessionSlice(modelSessions)
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, organizationID, sessionID string) (*domain.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM sessions
		WHERE organization_id = $1 AND session_id = $2;
	`
	m, err := scanSessionRow(r.db.QueryRow(ctx, query, organizationID, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session %s: %w", sessionID, err)
	}

	session, err := mapping.ToDomainSession(m)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	m := mapping.ToModelSession(session)
	query := `
		INSERT INTO sessions (session_id, organization_id, title, client_id, professional_id,
		                      start_time, end_time, status, fee, invoice_id, notes, color, session_type,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db.Exec(ctx, query,
		m.SessionID,
		m.OrganizationID,
		m.Title,
		m.ClientID,
		m.ProfessionalID,
		m.StartTime,
		m.EndTime,
		m.Status,
		m.Fee,
		m.InvoiceID,
		m.Notes,
		m.Color,
		m.SessionType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *PgxSessionRepository) CompleteSession(ctx context.Context, organizationID, sessionID string, fee decimal.Decimal, notes, invoiceID, userID string, now time.Time) error {
	query := `
		UPDATE sessions
		SET status = $1, fee = $2, notes = $3, invoice_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE organization_id = $7 AND session_id = $8;
	`
	tag, err := r.db.Exec(ctx, query,
		string(domain.SessionCompleted),
		fee,
		mapping.NullableString(notes),
		invoiceID,
		now,
		userID,
		organizationID,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) UpdateSessionNotes(ctx context.Context, organizationID, sessionID, notes, userID string, now time.Time) error {
	query := `
		UPDATE sessions
		SET notes = $1, last_updated_at = $2, last_updated_by = $3
		WHERE organization_id = $4 AND session_id = $5;
	`
	tag, err := r.db.Exec(ctx, query, mapping.NullableString(notes), now, userID, organizationID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update notes for session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) UpdateSessionColor(ctx context.Context, organizationID, sessionID, color, userID string, now time.Time) error {
	query := `
		UPDATE sessions
		SET color = $1, last_updated_at = $2, last_updated_by = $3
		WHERE organization_id = $4 AND session_id = $5;
	`
	tag, err := r.db.Exec(ctx, query, mapping.NullableString(color), now, userID, organizationID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update color for session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, organizationID, sessionID string) error {
	query := `DELETE FROM sessions WHERE organization_id = $1 AND session_id = $2;`
	tag, err := r.db.Exec(ctx, query, organizationID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
