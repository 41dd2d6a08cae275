package dto

import (
	"fmt"
	"time"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemPayload is a single line item on an invoice request or response.
type InvoiceItemPayload struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CreateInvoiceRequest defines the data needed to create an invoice with its
// line items. Total must equal the sum of item amounts.
type CreateInvoiceRequest struct {
	ClientID       string               `json:"clientID" binding:"required"`
	ProfessionalID string               `json:"professionalID" binding:"required"`
	Date           string               `json:"date" binding:"required,datetime=2006-01-02"`
	DueDate        string               `json:"dueDate" binding:"required,datetime=2006-01-02"`
	Items          []InvoiceItemPayload `json:"items" binding:"required,min=1,dive"`
	Status         domain.InvoiceStatus `json:"status" binding:"required,oneof=Paid Pending Overdue Draft"`
	Total          decimal.Decimal      `json:"total" binding:"required"`
}

// UpdateInvoiceRequest defines the partial update surface for an invoice.
// Only status, date, dueDate and total are updatable; items are not.
type UpdateInvoiceRequest struct {
	Status  *domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=Paid Pending Overdue Draft"`
	Date    *string               `json:"date" binding:"omitempty,datetime=2006-01-02"`
	DueDate *string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Total   *decimal.Decimal      `json:"total"`
}

// ToInvoiceUpdate converts the request to the domain-level whitelisted update.
func (r UpdateInvoiceRequest) ToInvoiceUpdate() (domain.InvoiceUpdate, error) {
	updates := domain.InvoiceUpdate{
		Status: r.Status,
		Total:  r.Total,
	}
	if r.Date != nil {
		date, err := time.Parse(DateLayout, *r.Date)
		if err != nil {
			return domain.InvoiceUpdate{}, fmt.Errorf("invalid date %q: %w", *r.Date, apperrors.ErrValidation)
		}
		updates.Date = &date
	}
	if r.DueDate != nil {
		dueDate, err := time.Parse(DateLayout, *r.DueDate)
		if err != nil {
			return domain.InvoiceUpdate{}, fmt.Errorf("invalid dueDate %q: %w", *r.DueDate, apperrors.ErrValidation)
		}
		updates.DueDate = &dueDate
	}
	return updates, nil
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID      string               `json:"invoiceID"`
	ClientID       string               `json:"clientID"`
	ProfessionalID string               `json:"professionalID"`
	Date           string               `json:"date"`
	DueDate        string               `json:"dueDate"`
	Items          []InvoiceItemPayload `json:"items"`
	Status         domain.InvoiceStatus `json:"status"`
	Total          decimal.Decimal      `json:"total"`
}

// ToInvoiceResponse converts a domain.Invoice to its response DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]InvoiceItemPayload, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemPayload{Description: item.Description, Amount: item.Amount}
	}
	return InvoiceResponse{
		InvoiceID:      inv.InvoiceID,
		ClientID:       inv.ClientID,
		ProfessionalID: inv.ProfessionalID,
		Date:           inv.Date.Format(DateLayout),
		DueDate:        inv.DueDate.Format(DateLayout),
		Items:          items,
		Status:         inv.Status,
		Total:          inv.Total,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}

// EnrichedInvoiceResponse is an invoice joined with display names and the
// synthesized display identifier.
type EnrichedInvoiceResponse struct {
	InvoiceResponse
	ClientName       string `json:"clientName"`
	ProfessionalName string `json:"professionalName"`
	DisplayID        string `json:"displayID"`
}

// ToListEnrichedInvoiceResponse converts enriched invoices to response DTOs.
func ToListEnrichedInvoiceResponse(invoices []domain.EnrichedInvoice) []EnrichedInvoiceResponse {
	res := make([]EnrichedInvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = EnrichedInvoiceResponse{
			InvoiceResponse:  ToInvoiceResponse(&invoices[i].Invoice),
			ClientName:       invoices[i].ClientName,
			ProfessionalName: invoices[i].ProfessionalName,
			DisplayID:        invoices[i].DisplayID,
		}
	}
	return res
}
