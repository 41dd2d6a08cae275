package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	ProfessionalRepo ProfessionalRepository
	ClientRepo       ClientRepository
	SessionRepo      SessionRepositoryFacade
	InvoiceRepo      InvoiceRepositoryFacade
	UserRepo         UserRepository
	OrganizationRepo OrganizationRepository
}
