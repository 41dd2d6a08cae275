package domain

// Organization represents an isolated tenant containing professionals,
// clients, sessions and invoices. Every data access is scoped to one
// organization.
type Organization struct {
	OrganizationID string `json:"organizationID"` // Primary Key (UUID)
	Name           string `json:"name"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}
