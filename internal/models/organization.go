package models

// Organization mirrors the organizations table row shape.
type Organization struct {
	OrganizationID string `db:"organization_id"`
	Name           string `db:"name"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}
