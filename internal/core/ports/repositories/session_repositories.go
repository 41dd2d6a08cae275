package repositories

import (
	"context"
	"time"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SessionReader defines read operations for session data.
type SessionReader interface {
	// ListSessions retrieves every session of the organization.
	ListSessions(ctx context.Context, organizationID string) ([]domain.Session, error)

	// FindSessionByID retrieves a specific session.
	FindSessionByID(ctx context.Context, organizationID, sessionID string) (*domain.Session, error)
}

// SessionWriter defines write operations for session data.
type SessionWriter interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.Session) error

	// CompleteSession marks a session Completed, records the final fee and
	// notes, and links it to the invoice produced by the completion workflow.
	CompleteSession(ctx context.Context, organizationID, sessionID string, fee decimal.Decimal, notes, invoiceID, userID string, now time.Time) error

	// UpdateSessionNotes replaces the session notes.
	UpdateSessionNotes(ctx context.Context, organizationID, sessionID, notes, userID string, now time.Time) error

	// UpdateSessionColor replaces the session display color.
	UpdateSessionColor(ctx context.Context, organizationID, sessionID, color, userID string, now time.Time) error

	// DeleteSession removes a session.
	DeleteSession(ctx context.Context, organizationID, sessionID string) error
}

// SessionRepositoryFacade combines all session repository interfaces.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
