package services

import (
	"context"

	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/shopspring/decimal"
)

// FetchReport carries the per-collection outcome of a bulk fetch. A failed
// collection keeps its previous local contents; partial data is the normal
// outcome of a partial failure.
type FetchReport struct {
	Professionals error
	Clients       error
	Sessions      error
	Invoices      error
}

// Failed reports whether any collection fetch failed.
func (r *FetchReport) Failed() bool {
	return r.Professionals != nil || r.Clients != nil || r.Sessions != nil || r.Invoices != nil
}

// Errors returns the non-nil collection errors keyed by collection name.
func (r *FetchReport) Errors() map[string]error {
	errs := make(map[string]error)
	if r.Professionals != nil {
		errs["professionals"] = r.Professionals
	}
	if r.Clients != nil {
		errs["clients"] = r.Clients
	}
	if r.Sessions != nil {
		errs["sessions"] = r.Sessions
	}
	if r.Invoices != nil {
		errs["invoices"] = r.Invoices
	}
	return errs
}

// AppStoreSvcFacade is the single source of truth for the four normalized
// collections of an organization. Mutations write to the data source first and
// reflect locally only on success; reads serve from the local collections.
type AppStoreSvcFacade interface {
	// FetchAll concurrently reloads all four collections. Each collection
	// fails independently; failed collections keep their previous contents.
	FetchAll(ctx context.Context, organizationID string) *FetchReport

	// Snapshot reads of the normalized collections.
	Clients(organizationID string) []domain.Client
	Professionals(organizationID string) []domain.Professional
	Sessions(organizationID string) []domain.Session
	Invoices(organizationID string) []domain.Invoice
	GetClientByID(organizationID, clientID string) (*domain.Client, bool)
	GetProfessionalByID(organizationID, professionalID string) (*domain.Professional, bool)
	GetInvoiceByID(organizationID, invoiceID string) (*domain.Invoice, bool)

	// Derived projections, recomputed from the current collections.
	EnrichedSessions(organizationID string) []domain.EnrichedSession
	EnrichedInvoices(organizationID string) []domain.EnrichedInvoice

	// Mutations.
	AddClient(ctx context.Context, organizationID string, req dto.CreateClientRequest, userID string) (*domain.Client, error)
	AddProfessional(ctx context.Context, organizationID string, req dto.CreateProfessionalRequest, userID string) (*domain.Professional, error)
	AddSession(ctx context.Context, organizationID string, req dto.CreateSessionRequest, userID string) (*domain.Session, error)
	CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, organizationID, invoiceID string, updates domain.InvoiceUpdate, userID string) (*domain.Invoice, error)
	CompleteSession(ctx context.Context, organizationID, sessionID, notes string, finalFee decimal.Decimal, userID string) (string, error)
	UpdateSessionNotes(ctx context.Context, organizationID, sessionID, notes, userID string) error
	DeleteSession(ctx context.Context, organizationID, sessionID string) error
	UpdateSessionColor(ctx context.Context, organizationID, sessionID, color, userID string) error
}

// UserSvcFacade manages application users.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// OrganizationSvcFacade manages organizations (tenants).
type OrganizationSvcFacade interface {
	CreateOrganization(ctx context.Context, name, creatorUserID string) (*domain.Organization, error)
	GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)
}

// ServiceContainer bundles all services for injection into the handlers.
type ServiceContainer struct {
	AppStore     AppStoreSvcFacade
	User         UserSvcFacade
	Organization OrganizationSvcFacade
}
