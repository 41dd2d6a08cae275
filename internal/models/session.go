package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Session mirrors the sessions table row shape. Client, professional and
// invoice references are nullable foreign keys.
type Session struct {
	SessionID      string          `db:"session_id"`
	OrganizationID string          `db:"organization_id"`
	Title          string          `db:"title"`
	ClientID       sql.NullString  `db:"client_id"`
	ProfessionalID sql.NullString  `db:"professional_id"`
	StartTime      time.Time       `db:"start_time"`
	EndTime        time.Time       `db:"end_time"`
	Status         string          `db:"status"`
	Fee            decimal.Decimal `db:"fee"`
	InvoiceID      sql.NullString  `db:"invoice_id"`
	Notes          sql.NullString  `db:"notes"`
	Color          sql.NullString  `db:"color"`
	SessionType    sql.NullString  `db:"session_type"`
	AuditFields
}
