package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/core/services"
)

func TestInvoiceDisplayID(t *testing.T) {
	invoice := domain.Invoice{Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}

	assert.Equal(t, "INV_AnaGomez_2024-01-10", services.InvoiceDisplayID("Ana Gomez", invoice))
	assert.Equal(t, "INV_Unknown_2024-01-10", services.InvoiceDisplayID("Unknown", invoice))
	assert.Equal(t, "INV_JoseMariadelaCruz_2024-01-10", services.InvoiceDisplayID("Jose  Maria de la Cruz", invoice))
}

func TestInvoiceDisplayID_SameClientSameDateCollide(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	first := domain.Invoice{InvoiceID: "a", Date: date}
	second := domain.Invoice{InvoiceID: "b", Date: date}

	assert.Equal(t,
		services.InvoiceDisplayID("Ana Gomez", first),
		services.InvoiceDisplayID("Ana Gomez", second))
}

func TestEnrichSessions(t *testing.T) {
	clients := []domain.Client{
		{ClientID: "c1", Name: "Ana Gomez", Avatar: "https://avatars.example/ana"},
	}
	professionals := []domain.Professional{
		{ProfessionalID: "p1", Name: "Dr. Silva"},
	}
	sessions := []domain.Session{
		{SessionID: "s1", Title: "Intake", ClientID: "c1", ProfessionalID: "p1"},
		{SessionID: "s2", Title: "Follow-up", ClientID: "missing", ProfessionalID: ""},
	}

	enriched := services.EnrichSessions(sessions, clients, professionals)

	assert.Len(t, enriched, 2)
	assert.Equal(t, "s1", enriched[0].SessionID)
	assert.Equal(t, "Ana Gomez", enriched[0].ClientName)
	assert.Equal(t, "https://avatars.example/ana", enriched[0].ClientAvatar)
	assert.Equal(t, "Dr. Silva", enriched[0].ProfessionalName)

	assert.Equal(t, "Unknown", enriched[1].ClientName)
	assert.Empty(t, enriched[1].ClientAvatar)
	assert.Equal(t, "Unknown", enriched[1].ProfessionalName)
}

func TestEnrichInvoices(t *testing.T) {
	clients := []domain.Client{
		{ClientID: "c1", Name: "Ana Gomez"},
	}
	professionals := []domain.Professional{
		{ProfessionalID: "p1", Name: "Dr. Silva"},
	}
	invoices := []domain.Invoice{
		{InvoiceID: "i1", ClientID: "c1", ProfessionalID: "p1", Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{InvoiceID: "i2", ClientID: "missing", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	enriched := services.EnrichInvoices(invoices, clients, professionals)

	assert.Len(t, enriched, 2)
	assert.Equal(t, "Ana Gomez", enriched[0].ClientName)
	assert.Equal(t, "Dr. Silva", enriched[0].ProfessionalName)
	assert.Equal(t, "INV_AnaGomez_2024-01-10", enriched[0].DisplayID)

	assert.Equal(t, "Unknown", enriched[1].ClientName)
	assert.Equal(t, "INV_Unknown_2024-02-01", enriched[1].DisplayID)
}

func TestEnrichSessions_EmptyCollections(t *testing.T) {
	enriched := services.EnrichSessions(nil, nil, nil)
	assert.Empty(t, enriched)
}
