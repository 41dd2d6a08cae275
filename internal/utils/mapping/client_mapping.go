package mapping

import (
	"fmt"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/models"
)

// ToModelClient converts a domain.Client to its row shape.
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:       d.ClientID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          NullableString(d.Phone),
		DateOfBirth:    d.DateOfBirth,
		Status:         string(d.Status),
		Related:        NullableString(d.Related),
		Avatar:         NullableString(d.Avatar),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a clients row to its domain shape, decoding the raw
// status string. An unrecognized status fails the conversion.
func ToDomainClient(m models.Client) (domain.Client, error) {
	status, err := domain.ParseClientStatus(m.Status)
	if err != nil {
		return domain.Client{}, fmt.Errorf("client %s: %w", m.ClientID, err)
	}
	return domain.Client{
		ClientID:       m.ClientID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          StringOrEmpty(m.Phone),
		DateOfBirth:    m.DateOfBirth,
		Status:         status,
		Related:        StringOrEmpty(m.Related),
		Avatar:         StringOrEmpty(m.Avatar),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainClientSlice converts a slice of rows to domain shapes.
func ToDomainClientSlice(ms []models.Client) ([]domain.Client, error) {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		d, err := ToDomainClient(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
