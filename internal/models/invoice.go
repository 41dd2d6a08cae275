package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice mirrors the invoices table row shape. Client and professional
// references are nullable foreign keys.
type Invoice struct {
	InvoiceID      string          `db:"invoice_id"`
	OrganizationID string          `db:"organization_id"`
	ClientID       sql.NullString  `db:"client_id"`
	ProfessionalID sql.NullString  `db:"professional_id"`
	Date           time.Time       `db:"date"`
	DueDate        time.Time       `db:"due_date"`
	Status         string          `db:"status"`
	Total          decimal.Decimal `db:"total"`
	AuditFields
}

// InvoiceItem mirrors the invoice_items table row shape. Position preserves
// the order the items were supplied in.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Position    int             `db:"position"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
}
