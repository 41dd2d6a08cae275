package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
)

func TestParseClientStatus(t *testing.T) {
	status, err := domain.ParseClientStatus("Active")
	assert.NoError(t, err)
	assert.Equal(t, domain.ClientActive, status)

	_, err = domain.ParseClientStatus("DISCHARGED")
	assert.ErrorIs(t, err, apperrors.ErrDecoding)

	_, err = domain.ParseClientStatus("")
	assert.ErrorIs(t, err, apperrors.ErrDecoding)
}

func TestParseSessionStatus(t *testing.T) {
	for _, valid := range []string{"Confirmed", "Pending", "Cancelled", "Completed"} {
		status, err := domain.ParseSessionStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, domain.SessionStatus(valid), status)
	}

	_, err := domain.ParseSessionStatus("confirmed")
	assert.ErrorIs(t, err, apperrors.ErrDecoding)
}

func TestParseInvoiceStatus(t *testing.T) {
	for _, valid := range []string{"Paid", "Pending", "Overdue", "Draft"} {
		status, err := domain.ParseInvoiceStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, domain.InvoiceStatus(valid), status)
	}

	_, err := domain.ParseInvoiceStatus("Void")
	assert.ErrorIs(t, err, apperrors.ErrDecoding)
}

func TestParseUserRole(t *testing.T) {
	role, err := domain.ParseUserRole("DOCTOR")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleDoctor, role)

	_, err = domain.ParseUserRole("ADMIN")
	assert.ErrorIs(t, err, apperrors.ErrDecoding)
}

func TestInvoiceUpdateIsEmpty(t *testing.T) {
	assert.True(t, domain.InvoiceUpdate{}.IsEmpty())

	paid := domain.InvoicePaid
	assert.False(t, domain.InvoiceUpdate{Status: &paid}.IsEmpty())
}
