package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	"github.com/noeia/noeia-backend/internal/models"
	"github.com/noeia/noeia-backend/internal/utils/mapping"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxInvoiceRepository implements portsrepo.InvoiceRepositoryFacade
var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveInvoice saves an invoice and its line items within a DB transaction.
// Either every row is written or none is; a failed item insert never leaves an
// orphaned invoice row behind.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	modelInvoice := mapping.ToModelInvoice(invoice)
	invoiceQuery := `
		INSERT INTO invoices (invoice_id, organization_id, client_id, professional_id,
		                      date, due_date, status, total,
		                      created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, invoiceQuery,
		modelInvoice.InvoiceID,
		modelInvoice.OrganizationID,
		modelInvoice.ClientID,
		modelInvoice.ProfessionalID,
		modelInvoice.Date,
		modelInvoice.DueDate,
		modelInvoice.Status,
		modelInvoice.Total,
		modelInvoice.CreatedAt,
		modelInvoice.CreatedBy,
		modelInvoice.LastUpdatedAt,
		modelInvoice.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert invoice "+modelInvoice.InvoiceID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO invoice_items (item_id, invoice_id, position, description, amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	for i, item := range invoice.Items {
		modelItem := mapping.ToModelInvoiceItem(item)
		batch.Queue(itemQuery,
			modelItem.ItemID,
			modelItem.InvoiceID,
			i,
			modelItem.Description,
			modelItem.Amount,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute item batch for invoice "+modelInvoice.InvoiceID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction for invoice "+modelInvoice.InvoiceID, err)
	}

	return nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	query := `
		SELECT invoice_id, organization_id, client_id, professional_id, date, due_date, status, total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE organization_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	modelInvoices := []models.Invoice{}
	invoiceIDs := []string{}
	for rows.Next() {
		var m models.Invoice
		err := rows.Scan(
			&m.InvoiceID,
			&m.OrganizationID,
			&m.ClientID,
			&m.ProfessionalID,
			&m.Date,
			&m.DueDate,
			&m.Status,
			&m.Total,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invoice row: %w", err)
		}
		modelInvoices = append(modelInvoices, m)
		invoiceIDs = append(invoiceIDs, m.InvoiceID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice rows: %w", rows.Err())
	}

	itemsByInvoice, err := r.findItemsByInvoiceIDs(ctx, invoiceIDs)
	if err != nil {
		return nil, err
	}

	invoices := make([]domain.Invoice, len(modelInvoices))
	for i, m := range modelInvoices {
		invoice, err := mapping.ToDomainInvoice(m, itemsByInvoice[m.InvoiceID])
		if err != nil {
			return nil, err
		}
		invoices[i] = invoice
	}
	return invoices, nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	query := `
		SELECT invoice_id, organization_id, client_id, professional_id, date, due_date, status, total,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM invoices
		WHERE organization_id = $1 AND invoice_id = $2;
	`
	var m models.Invoice
	err := r.Pool.QueryRow(ctx, query, organizationID, invoiceID).Scan(
		&m.InvoiceID,
		&m.OrganizationID,
		&m.ClientID,
		&m.ProfessionalID,
		&m.Date,
		&m.DueDate,
		&m.Status,
		&m.Total,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	itemsByInvoice, err := r.findItemsByInvoiceIDs(ctx, []string{m.InvoiceID})
	if err != nil {
		return nil, err
	}

	invoice, err := mapping.ToDomainInvoice(m, itemsByInvoice[m.InvoiceID])
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// UpdateInvoice applies a whitelisted partial update. The SET clause is built
// only from the fields present on the update.
func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, organizationID, invoiceID string, updates domain.InvoiceUpdate, userID string, now time.Time) error {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, column+" = $"+strconv.Itoa(argIdx))
		args = append(args, value)
		argIdx++
	}

	if updates.Status != nil {
		appendSet("status", string(*updates.Status))
	}
	if updates.Date != nil {
		appendSet("date", *updates.Date)
	}
	if updates.DueDate != nil {
		appendSet("due_date", *updates.DueDate)
	}
	if updates.Total != nil {
		appendSet("total", *updates.Total)
	}
	if len(setClauses) == 0 {
		return fmt.Errorf("no updatable fields provided: %w", apperrors.ErrValidation)
	}
	appendSet("last_updated_at", now)
	appendSet("last_updated_by", userID)

	query := "UPDATE invoices SET " + strings.Join(setClauses, ", ") +
		" WHERE organization_id = $" + strconv.Itoa(argIdx) +
		" AND invoice_id = $" + strconv.Itoa(argIdx+1) + ";"
	args = append(args, organizationID, invoiceID)

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// findItemsByInvoiceIDs loads line items for the given invoices, keyed by
// invoice id. Item ordering follows insertion order within each invoice.
func (r *PgxInvoiceRepository) findItemsByInvoiceIDs(ctx context.Context, invoiceIDs []string) (map[string][]models.InvoiceItem, error) {
	itemsByInvoice := make(map[string][]models.InvoiceItem, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return itemsByInvoice, nil
	}

	query := `
		SELECT item_id, invoice_id, position, description, amount
		FROM invoice_items
		WHERE invoice_id = ANY($1)
		ORDER BY invoice_id, position;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoice items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(&item.ItemID, &item.InvoiceID, &item.Position, &item.Description, &item.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan invoice item row: %w", err)
		}
		itemsByInvoice[item.InvoiceID] = append(itemsByInvoice[item.InvoiceID], item)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating invoice item rows: %w", rows.Err())
	}

	return itemsByInvoice, nil
}
