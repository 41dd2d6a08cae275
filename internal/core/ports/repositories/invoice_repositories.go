package repositories

import (
	"context"
	"time"

	"github.com/noeia/noeia-backend/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data.
type InvoiceReader interface {
	// ListInvoices retrieves every invoice of the organization with its line
	// items eagerly loaded.
	ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error)

	// FindInvoiceByID retrieves a specific invoice with its line items.
	FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data.
type InvoiceWriter interface {
	// SaveInvoice persists an invoice and its line items atomically: either
	// the invoice row and every item row are written, or nothing is.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice applies a partial update restricted to the whitelisted
	// fields carried by domain.InvoiceUpdate.
	UpdateInvoice(ctx context.Context, organizationID, invoiceID string, updates domain.InvoiceUpdate, userID string, now time.Time) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
