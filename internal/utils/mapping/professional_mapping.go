package mapping

import (
	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/models"
)

// ToModelProfessional converts a domain.Professional to its row shape.
func ToModelProfessional(d domain.Professional) models.Professional {
	return models.Professional{
		ProfessionalID: d.ProfessionalID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Role:           d.Role,
		Avatar:         NullableString(d.Avatar),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProfessional converts a professionals row to its domain shape.
func ToDomainProfessional(m models.Professional) domain.Professional {
	return domain.Professional{
		ProfessionalID: m.ProfessionalID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Role:           m.Role,
		Avatar:         StringOrEmpty(m.Avatar),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProfessionalSlice converts a slice of rows to domain shapes.
func ToDomainProfessionalSlice(ms []models.Professional) []domain.Professional {
	ds := make([]domain.Professional, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProfessional(m)
	}
	return ds
}
