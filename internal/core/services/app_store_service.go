package services

import (
	"context"
	"sync"

	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/utils"
)

// appStoreService owns one Store per organization and mediates every read and
// write against the remote data source. Writes go remote first; the local
// collections change only after the remote write succeeded.
type appStoreService struct {
	BaseService
	professionalRepo portsrepo.ProfessionalRepository
	clientRepo       portsrepo.ClientRepository
	sessionRepo      portsrepo.SessionRepositoryFacade
	invoiceRepo      portsrepo.InvoiceRepositoryFacade

	avatarBaseURL string

	mu     sync.Mutex
	stores map[string]*Store
}

var _ portssvc.AppStoreSvcFacade = (*appStoreService)(nil)

// NewAppStoreService creates the store service. avatarBaseURL configures the
// generated-avatar endpoint; empty selects the built-in default.
func NewAppStoreService(repos portsrepo.RepositoryProvider, avatarBaseURL string) portssvc.AppStoreSvcFacade {
	return &appStoreService{
		professionalRepo: repos.ProfessionalRepo,
		clientRepo:       repos.ClientRepo,
		sessionRepo:      repos.SessionRepo,
		invoiceRepo:      repos.InvoiceRepo,
		avatarBaseURL:    avatarBaseURL,
		stores:           make(map[string]*Store),
	}
}

// storeFor returns the organization's store, creating it on first use.
func (s *appStoreService) storeFor(organizationID string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.stores[organizationID]
	if !ok {
		store = NewStore()
		s.stores[organizationID] = store
	}
	return store
}

// FetchAll reloads the four collections concurrently. Each collection fails
// independently: a failed fetch is reported and the previous local contents
// of that collection are kept.
func (s *appStoreService) FetchAll(ctx context.Context, organizationID string) *portssvc.FetchReport {
	store := s.storeFor(organizationID)
	report := &portssvc.FetchReport{}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		professionals, err := s.professionalRepo.ListProfessionals(ctx, organizationID)
		if err != nil {
			report.Professionals = err
			return
		}
		for i := range professionals {
			if professionals[i].Avatar == "" {
				professionals[i].Avatar = utils.FallbackAvatarURL(s.avatarBaseURL, professionals[i].Name)
			}
		}
		store.ReplaceProfessionals(professionals)
	}()

	go func() {
		defer wg.Done()
		clients, err := s.clientRepo.ListClients(ctx, organizationID)
		if err != nil {
			report.Clients = err
			return
		}
		for i := range clients {
			if clients[i].Avatar == "" {
				clients[i].Avatar = utils.FallbackAvatarURL(s.avatarBaseURL, clients[i].Name)
			}
		}
		store.ReplaceClients(clients)
	}()

	go func() {
		defer wg.Done()
		sessions, err := s.sessionRepo.ListSessions(ctx, organizationID)
		if err != nil {
			report.Sessions = err
			return
		}
		store.ReplaceSessions(sessions)
	}()

	go func() {
		defer wg.Done()
		invoices, err := s.invoiceRepo.ListInvoices(ctx, organizationID)
		if err != nil {
			report.Invoices = err
			return
		}
		store.ReplaceInvoices(invoices)
	}()

	wg.Wait()

	if report.Failed() {
		for collection, err := range report.Errors() {
			s.LogError(ctx, err, "collection fetch failed", "organizationID", organizationID, "collection", collection)
		}
	} else {
		s.LogDebug(ctx, "all collections fetched", "organizationID", organizationID)
	}
	return report
}

func (s *appStoreService) Clients(organizationID string) []domain.Client {
	return s.storeFor(organizationID).Clients()
}

func (s *appStoreService) Professionals(organizationID string) []domain.Professional {
	return s.storeFor(organizationID).Professionals()
}

func (s *appStoreService) Sessions(organizationID string) []domain.Session {
	return s.storeFor(organizationID).Sessions()
}

func (s *appStoreService) Invoices(organizationID string) []domain.Invoice {
	return s.storeFor(organizationID).Invoices()
}

func (s *appStoreService) GetClientByID(organizationID, clientID string) (*domain.Client, bool) {
	client, ok := s.storeFor(organizationID).FindClient(clientID)
	if !ok {
		return nil, false
	}
	return &client, true
}

func (s *appStoreService) GetProfessionalByID(organizationID, professionalID string) (*domain.Professional, bool) {
	professional, ok := s.storeFor(organizationID).FindProfessional(professionalID)
	if !ok {
		return nil, false
	}
	return &professional, true
}

func (s *appStoreService) GetInvoiceByID(organizationID, invoiceID string) (*domain.Invoice, bool) {
	invoice, ok := s.storeFor(organizationID).FindInvoice(invoiceID)
	if !ok {
		return nil, false
	}
	return &invoice, true
}

// EnrichedSessions recomputes the session projection from one consistent
// snapshot of the collections.
func (s *appStoreService) EnrichedSessions(organizationID string) []domain.EnrichedSession {
	professionals, clients, sessions, _ := s.storeFor(organizationID).Snapshot()
	return EnrichSessions(sessions, clients, professionals)
}

// EnrichedInvoices recomputes the invoice projection from one consistent
// snapshot of the collections.
func (s *appStoreService) EnrichedInvoices(organizationID string) []domain.EnrichedInvoice {
	professionals, clients, _, invoices := s.storeFor(organizationID).Snapshot()
	return EnrichInvoices(invoices, clients, professionals)
}
