package domain

// Professional represents a practitioner (doctor, therapist, etc.) working
// within an organization. Referenced by sessions and invoices.
type Professional struct {
	ProfessionalID string `json:"professionalID"` // Primary Key (UUID)
	OrganizationID string `json:"organizationID"` // Owning organization
	Name           string `json:"name"`
	Role           string `json:"role"`   // e.g. "Psychologist", "Nutritionist"
	Avatar         string `json:"avatar"` // Avatar URL; generated fallback when empty at the source
	AuditFields
}
