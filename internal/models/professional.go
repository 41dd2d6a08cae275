package models

import "database/sql"

// Professional mirrors the professionals table row shape.
type Professional struct {
	ProfessionalID string         `db:"professional_id"`
	OrganizationID string         `db:"organization_id"`
	Name           string         `db:"name"`
	Role           string         `db:"role"`
	Avatar         sql.NullString `db:"avatar"`
	AuditFields
}
