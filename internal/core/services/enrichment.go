package services

import (
	"strings"

	"github.com/noeia/noeia-backend/internal/core/domain"
)

// unknownPartyName is substituted when a session or invoice references a
// client or professional that is absent from the loaded collections.
const unknownPartyName = "Unknown"

// InvoiceDisplayID synthesizes the human-readable invoice identifier from the
// client name and the invoice issue date: INV_<name without whitespace>_<date>.
// The same client and date always yield the same identifier.
func InvoiceDisplayID(clientName string, invoice domain.Invoice) string {
	slug := strings.Join(strings.Fields(clientName), "")
	return "INV_" + slug + "_" + invoice.Date.Format("2006-01-02")
}

// EnrichSessions joins each session with the names of its client and
// professional. Sessions keep their collection order. Missing references
// resolve to the Unknown placeholder rather than dropping the session.
func EnrichSessions(sessions []domain.Session, clients []domain.Client, professionals []domain.Professional) []domain.EnrichedSession {
	clientsByID := make(map[string]domain.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ClientID] = c
	}
	professionalsByID := make(map[string]domain.Professional, len(professionals))
	for _, p := range professionals {
		professionalsByID[p.ProfessionalID] = p
	}

	enriched := make([]domain.EnrichedSession, 0, len(sessions))
	for _, sess := range sessions {
		es := domain.EnrichedSession{
			Session:          sess,
			ClientName:       unknownPartyName,
			ProfessionalName: unknownPartyName,
		}
		if c, ok := clientsByID[sess.ClientID]; ok {
			es.ClientName = c.Name
			es.ClientAvatar = c.Avatar
		}
		if p, ok := professionalsByID[sess.ProfessionalID]; ok {
			es.ProfessionalName = p.Name
		}
		enriched = append(enriched, es)
	}
	return enriched
}

// EnrichInvoices joins each invoice with client and professional names and
// attaches the synthesized display identifier. When the client is unknown the
// display identifier is built from the Unknown placeholder.
func EnrichInvoices(invoices []domain.Invoice, clients []domain.Client, professionals []domain.Professional) []domain.EnrichedInvoice {
	clientsByID := make(map[string]domain.Client, len(clients))
	for _, c := range clients {
		clientsByID[c.ClientID] = c
	}
	professionalsByID := make(map[string]domain.Professional, len(professionals))
	for _, p := range professionals {
		professionalsByID[p.ProfessionalID] = p
	}

	enriched := make([]domain.EnrichedInvoice, 0, len(invoices))
	for _, inv := range invoices {
		ei := domain.EnrichedInvoice{
			Invoice:          inv,
			ClientName:       unknownPartyName,
			ProfessionalName: unknownPartyName,
		}
		if c, ok := clientsByID[inv.ClientID]; ok {
			ei.ClientName = c.Name
		}
		if p, ok := professionalsByID[inv.ProfessionalID]; ok {
			ei.ProfessionalName = p.Name
		}
		ei.DisplayID = InvoiceDisplayID(ei.ClientName, inv)
		enriched = append(enriched, ei)
	}
	return enriched
}
