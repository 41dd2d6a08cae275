package mapping_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/models"
	"github.com/noeia/noeia-backend/internal/utils/mapping"
)

func TestToDomainSession(t *testing.T) {
	m := models.Session{
		SessionID:      "s1",
		OrganizationID: "org-1",
		Title:          "Intake",
		ClientID:       mapping.NullableString("c1"),
		StartTime:      time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		EndTime:        time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
		Status:         "Confirmed",
		Fee:            decimal.NewFromInt(100),
	}

	d, err := mapping.ToDomainSession(m)

	require.NoError(t, err)
	assert.Equal(t, "c1", d.ClientID)
	assert.Empty(t, d.ProfessionalID)
	assert.Equal(t, domain.SessionConfirmed, d.Status)
	// Sessions stored without a type get the default.
	assert.Equal(t, domain.DefaultSessionType, d.Type)
}

func TestToDomainSession_RejectsUnknownStatus(t *testing.T) {
	m := models.Session{SessionID: "s1", Status: "Archived"}

	_, err := mapping.ToDomainSession(m)

	assert.ErrorIs(t, err, apperrors.ErrDecoding)
}

func TestSessionRoundTripKeepsOptionalFields(t *testing.T) {
	d := domain.Session{
		SessionID: "s1",
		Title:     "Intake",
		Start:     time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		End:       time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
		Status:    domain.SessionCompleted,
		Fee:       decimal.NewFromInt(120),
		InvoiceID: "i1",
		Notes:     "went well",
		Color:     "#ff8800",
		Type:      "Consultation",
	}

	back, err := mapping.ToDomainSession(mapping.ToModelSession(d))

	require.NoError(t, err)
	assert.Equal(t, d.InvoiceID, back.InvoiceID)
	assert.Equal(t, d.Notes, back.Notes)
	assert.Equal(t, d.Color, back.Color)
	assert.Equal(t, d.Type, back.Type)
	assert.True(t, back.Fee.Equal(d.Fee))
}
