package mapping

import (
	"fmt"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/models"
)

// ToModelSession converts a domain.Session to its row shape.
func ToModelSession(d domain.Session) models.Session {
	return models.Session{
		SessionID:      d.SessionID,
		OrganizationID: d.OrganizationID,
		Title:          d.Title,
		ClientID:       NullableString(d.ClientID),
		ProfessionalID: NullableString(d.ProfessionalID),
		StartTime:      d.Start,
		EndTime:        d.End,
		Status:         string(d.Status),
		Fee:            d.Fee,
		InvoiceID:      NullableString(d.InvoiceID),
		Notes:          NullableString(d.Notes),
		Color:          NullableString(d.Color),
		SessionType:    NullableString(d.Type),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSession converts a sessions row to its domain shape, decoding the
// raw status string. Sessions without a stored type fall back to the default.
func ToDomainSession(m models.Session) (domain.Session, error) {
	status, err := domain.ParseSessionStatus(m.Status)
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %s: %w", m.SessionID, err)
	}
	sessionType := StringOrEmpty(m.SessionType)
	if sessionType == "" {
		sessionType = domain.DefaultSessionType
	}
	return domain.Session{
		SessionID:      m.SessionID,
		OrganizationID: m.OrganizationID,
		Title:          m.Title,
		ClientID:       StringOrEmpty(m.ClientID),
		ProfessionalID: StringOrEmpty(m.ProfessionalID),
		Start:          m.StartTime,
		End:            m.EndTime,
		Status:         status,
		Fee:            m.Fee,
		InvoiceID:      StringOrEmpty(m.InvoiceID),
		Notes:          StringOrEmpty(m.Notes),
		Color:          StringOrEmpty(m.Color),
		Type:           sessionType,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainSessionSlice converts a slice of rows to domain shapes.
func ToDomainSessionSlice(ms []models.Session) ([]domain.Session, error) {
	ds := make([]domain.Session, len(ms))
	for i, m := range ms {
		d, err := ToDomainSession(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
