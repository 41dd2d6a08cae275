package domain

import (
	"fmt"
	"time"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the billing state of an invoice.
type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
	InvoiceDraft   InvoiceStatus = "Draft"
)

// ParseInvoiceStatus validates a raw status string read from the data source.
func ParseInvoiceStatus(raw string) (InvoiceStatus, error) {
	switch InvoiceStatus(raw) {
	case InvoicePaid, InvoicePending, InvoiceOverdue, InvoiceDraft:
		return InvoiceStatus(raw), nil
	default:
		return "", fmt.Errorf("unrecognized invoice status %q: %w", raw, apperrors.ErrDecoding)
	}
}

// InvoiceItem is a single line on an invoice. Items are owned exclusively by
// their invoice and are loaded eagerly with it.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"` // Primary Key (UUID)
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice represents a bill issued to a client. Invariant: Total equals the
// sum of all item amounts.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	ClientID       string          `json:"clientID"`
	ProfessionalID string          `json:"professionalID"`
	Date           time.Time       `json:"date"`    // Issue date (day precision)
	DueDate        time.Time       `json:"dueDate"` // Payment deadline (day precision)
	Items          []InvoiceItem   `json:"items"`
	Status         InvoiceStatus   `json:"status"`
	Total          decimal.Decimal `json:"total"`
	AuditFields
}

// InvoiceUpdate carries the fields an invoice update is allowed to change.
// Nil fields are left untouched. Items are deliberately not updatable through
// this path.
type InvoiceUpdate struct {
	Status  *InvoiceStatus
	Date    *time.Time
	DueDate *time.Time
	Total   *decimal.Decimal
}

// IsEmpty reports whether the update would change nothing.
func (u InvoiceUpdate) IsEmpty() bool {
	return u.Status == nil && u.Date == nil && u.DueDate == nil && u.Total == nil
}
