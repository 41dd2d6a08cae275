package mapping

import (
	"fmt"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its row shape. Items are mapped
// separately since they live in their own table.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:      d.InvoiceID,
		OrganizationID: d.OrganizationID,
		ClientID:       NullableString(d.ClientID),
		ProfessionalID: NullableString(d.ProfessionalID),
		Date:           d.Date,
		DueDate:        d.DueDate,
		Status:         string(d.Status),
		Total:          d.Total,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToModelInvoiceItem converts a domain.InvoiceItem to its row shape.
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Amount:      d.Amount,
	}
}

// ToDomainInvoice converts an invoices row plus its item rows to the domain
// shape, decoding the raw status string.
func ToDomainInvoice(m models.Invoice, items []models.InvoiceItem) (domain.Invoice, error) {
	status, err := domain.ParseInvoiceStatus(m.Status)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("invoice %s: %w", m.InvoiceID, err)
	}
	domainItems := make([]domain.InvoiceItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.InvoiceItem{
			ItemID:      item.ItemID,
			InvoiceID:   item.InvoiceID,
			Description: item.Description,
			Amount:      item.Amount,
		}
	}
	return domain.Invoice{
		InvoiceID:      m.InvoiceID,
		OrganizationID: m.OrganizationID,
		ClientID:       StringOrEmpty(m.ClientID),
		ProfessionalID: StringOrEmpty(m.ProfessionalID),
		Date:           m.Date,
		DueDate:        m.DueDate,
		Items:          domainItems,
		Status:         status,
		Total:          m.Total,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}, nil
}
