package services

import (
	"sync"

	"github.com/noeia/noeia-backend/internal/core/domain"
)

// Store holds the four normalized collections of one organization. It is the
// single in-memory source of truth between reloads: mutations reflect here
// only after the corresponding remote write succeeded, and readers always get
// copies (the slices handed out are never shared with the store's own state).
//
// Concurrent mutations of the same entity are last-writer-wins; the store only
// guarantees that individual operations are internally consistent.
type Store struct {
	mu            sync.RWMutex
	professionals []domain.Professional
	clients       []domain.Client
	sessions      []domain.Session
	invoices      []domain.Invoice
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns copies of all four collections under a single read lock,
// so derived projections join a consistent view.
func (s *Store) Snapshot() (professionals []domain.Professional, clients []domain.Client, sessions []domain.Session, invoices []domain.Invoice) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	professionals = append([]domain.Professional(nil), s.professionals...)
	clients = append([]domain.Client(nil), s.clients...)
	sessions = append([]domain.Session(nil), s.sessions...)
	invoices = append([]domain.Invoice(nil), s.invoices...)
	return
}

// Professionals returns a copy of the professional collection.
func (s *Store) Professionals() []domain.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Professional(nil), s.professionals...)
}

// Clients returns a copy of the client collection.
func (s *Store) Clients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Client(nil), s.clients...)
}

// Sessions returns a copy of the session collection.
func (s *Store) Sessions() []domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Session(nil), s.sessions...)
}

// Invoices returns a copy of the invoice collection.
func (s *Store) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Invoice(nil), s.invoices...)
}

// ReplaceProfessionals swaps the professional collection wholesale.
func (s *Store) ReplaceProfessionals(professionals []domain.Professional) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.professionals = professionals
}

// ReplaceClients swaps the client collection wholesale.
func (s *Store) ReplaceClients(clients []domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = clients
}

// ReplaceSessions swaps the session collection wholesale.
func (s *Store) ReplaceSessions(sessions []domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = sessions
}

// ReplaceInvoices swaps the invoice collection wholesale.
func (s *Store) ReplaceInvoices(invoices []domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = invoices
}

// AppendProfessional appends to the professional collection.
func (s *Store) AppendProfessional(professional domain.Professional) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.professionals = append(s.professionals, professional)
}

// AppendClient appends to the client collection.
func (s *Store) AppendClient(client domain.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = append(s.clients, client)
}

// AppendSession appends to the session collection.
func (s *Store) AppendSession(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
}

// AppendInvoice appends to the invoice collection.
func (s *Store) AppendInvoice(invoice domain.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, invoice)
}

// FindClient returns a copy of the client with the given id.
func (s *Store) FindClient(clientID string) (domain.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		if c.ClientID == clientID {
			return c, true
		}
	}
	return domain.Client{}, false
}

// FindProfessional returns a copy of the professional with the given id.
func (s *Store) FindProfessional(professionalID string) (domain.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.professionals {
		if p.ProfessionalID == professionalID {
			return p, true
		}
	}
	return domain.Professional{}, false
}

// FindSession returns a copy of the session with the given id.
func (s *Store) FindSession(sessionID string) (domain.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.SessionID == sessionID {
			return sess, true
		}
	}
	return domain.Session{}, false
}

// FindInvoice returns a copy of the invoice with the given id.
func (s *Store) FindInvoice(invoiceID string) (domain.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.InvoiceID == invoiceID {
			return inv, true
		}
	}
	return domain.Invoice{}, false
}

// UpdateSession applies fn to the session with the given id, in place.
// It reports whether the session was found.
func (s *Store) UpdateSession(sessionID string, fn func(*domain.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].SessionID == sessionID {
			fn(&s.sessions[i])
			return true
		}
	}
	return false
}

// RemoveSession filters the session with the given id out of the collection.
// It reports whether the session was found.
func (s *Store) RemoveSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sessions {
		if s.sessions[i].SessionID == sessionID {
			s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
			return true
		}
	}
	return false
}

// MergeInvoice applies the partial update to the invoice with the given id and
// returns a copy of the result. It reports whether the invoice was found.
func (s *Store) MergeInvoice(invoiceID string, updates domain.InvoiceUpdate) (domain.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].InvoiceID != invoiceID {
			continue
		}
		if updates.Status != nil {
			s.invoices[i].Status = *updates.Status
		}
		if updates.Date != nil {
			s.invoices[i].Date = *updates.Date
		}
		if updates.DueDate != nil {
			s.invoices[i].DueDate = *updates.DueDate
		}
		if updates.Total != nil {
			s.invoices[i].Total = *updates.Total
		}
		return s.invoices[i], true
	}
	return domain.Invoice{}, false
}
