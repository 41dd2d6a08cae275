package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/noeia/noeia-backend/internal/utils"
)

// invoiceDueDays is how far after the issue date a completion-generated
// invoice falls due.
const invoiceDueDays = 14

func newAuditFields(userID string, now time.Time) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// dateOnly truncates a timestamp to day precision in UTC.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddClient persists a new client and appends it to the organization's
// collection. An omitted avatar falls back to a generated one seeded by name.
func (s *appStoreService) AddClient(ctx context.Context, organizationID string, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	dob, err := time.Parse(dto.DateLayout, req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("invalid dob %q: %w", req.DateOfBirth, apperrors.ErrValidation)
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = utils.FallbackAvatarURL(s.avatarBaseURL, req.Name)
	}

	client := domain.Client{
		ClientID:       uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		DateOfBirth:    dob,
		Status:         req.Status,
		Related:        req.Related,
		Avatar:         avatar,
		AuditFields:    newAuditFields(userID, time.Now().UTC()),
	}

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "failed to save client", "organizationID", organizationID)
		return nil, err
	}
	s.storeFor(organizationID).AppendClient(client)
	s.LogInfo(ctx, "client created", "organizationID", organizationID, "clientID", client.ClientID)
	return &client, nil
}

// AddProfessional persists a new professional and appends it to the
// organization's collection.
func (s *appStoreService) AddProfessional(ctx context.Context, organizationID string, req dto.CreateProfessionalRequest, userID string) (*domain.Professional, error) {
	avatar := req.Avatar
	if avatar == "" {
		avatar = utils.FallbackAvatarURL(s.avatarBaseURL, req.Name)
	}

	professional := domain.Professional{
		ProfessionalID: uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Role:           req.Role,
		Avatar:         avatar,
		AuditFields:    newAuditFields(userID, time.Now().UTC()),
	}

	if err := s.professionalRepo.SaveProfessional(ctx, professional); err != nil {
		s.LogError(ctx, err, "failed to save professional", "organizationID", organizationID)
		return nil, err
	}
	s.storeFor(organizationID).AppendProfessional(professional)
	s.LogInfo(ctx, "professional created", "organizationID", organizationID, "professionalID", professional.ProfessionalID)
	return &professional, nil
}

// AddSession persists a new session and appends it to the organization's
// collection. The session type defaults when omitted.
func (s *appStoreService) AddSession(ctx context.Context, organizationID string, req dto.CreateSessionRequest, userID string) (*domain.Session, error) {
	if req.End.Before(req.Start) {
		return nil, fmt.Errorf("session end precedes start: %w", apperrors.ErrValidation)
	}

	sessionType := req.Type
	if sessionType == "" {
		sessionType = domain.DefaultSessionType
	}

	session := domain.Session{
		SessionID:      uuid.NewString(),
		OrganizationID: organizationID,
		Title:          req.Title,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		Start:          req.Start,
		End:            req.End,
		Status:         req.Status,
		Fee:            req.Fee,
		Notes:          req.Notes,
		Color:          req.Color,
		Type:           sessionType,
		AuditFields:    newAuditFields(userID, time.Now().UTC()),
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		s.LogError(ctx, err, "failed to save session", "organizationID", organizationID)
		return nil, err
	}
	s.storeFor(organizationID).AppendSession(session)
	s.LogInfo(ctx, "session created", "organizationID", organizationID, "sessionID", session.SessionID)
	return &session, nil
}

// CreateInvoice persists a new invoice with its line items and appends it to
// the organization's collection. Total must match the sum of item amounts.
func (s *appStoreService) CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, apperrors.ErrValidation)
	}
	dueDate, err := time.Parse(dto.DateLayout, req.DueDate)
	if err != nil {
		return nil, fmt.Errorf("invalid dueDate %q: %w", req.DueDate, apperrors.ErrValidation)
	}

	invoiceID := uuid.NewString()
	items := make([]domain.InvoiceItem, len(req.Items))
	itemsTotal := decimal.Zero
	for i, item := range req.Items {
		items[i] = domain.InvoiceItem{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: item.Description,
			Amount:      item.Amount,
		}
		itemsTotal = itemsTotal.Add(item.Amount)
	}
	if !itemsTotal.Equal(req.Total) {
		return nil, fmt.Errorf("total %s does not match item sum %s: %w", req.Total, itemsTotal, apperrors.ErrValidation)
	}

	invoice := domain.Invoice{
		InvoiceID:      invoiceID,
		OrganizationID: organizationID,
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		Date:           date,
		DueDate:        dueDate,
		Items:          items,
		Status:         req.Status,
		Total:          req.Total,
		AuditFields:    newAuditFields(userID, time.Now().UTC()),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save invoice", "organizationID", organizationID)
		return nil, err
	}
	s.storeFor(organizationID).AppendInvoice(invoice)
	s.LogInfo(ctx, "invoice created", "organizationID", organizationID, "invoiceID", invoice.InvoiceID)
	return &invoice, nil
}

// UpdateInvoice applies a whitelisted partial update remotely, then merges it
// into the local collection and returns the updated invoice.
func (s *appStoreService) UpdateInvoice(ctx context.Context, organizationID, invoiceID string, updates domain.InvoiceUpdate, userID string) (*domain.Invoice, error) {
	if updates.IsEmpty() {
		return nil, fmt.Errorf("no updatable invoice fields provided: %w", apperrors.ErrValidation)
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, organizationID, invoiceID, updates, userID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "failed to update invoice", "organizationID", organizationID, "invoiceID", invoiceID)
		return nil, err
	}

	if merged, ok := s.storeFor(organizationID).MergeInvoice(invoiceID, updates); ok {
		return &merged, nil
	}
	// Updated remotely but absent locally; read back the full row.
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, organizationID, invoiceID)
	if err != nil {
		return nil, err
	}
	s.storeFor(organizationID).AppendInvoice(*invoice)
	return invoice, nil
}

// CompleteSession marks a session Completed with its final fee and notes, and
// generates a Draft invoice for it: issued today, due in fourteen days, one
// line item carrying the session title and the final fee. Returns the new
// invoice's id.
func (s *appStoreService) CompleteSession(ctx context.Context, organizationID, sessionID, notes string, finalFee decimal.Decimal, userID string) (string, error) {
	store := s.storeFor(organizationID)
	session, ok := store.FindSession(sessionID)
	if !ok {
		return "", fmt.Errorf("session %s: %w", sessionID, apperrors.ErrNotFound)
	}

	now := time.Now().UTC()
	issueDate := dateOnly(now)
	invoiceID := uuid.NewString()
	invoice := domain.Invoice{
		InvoiceID:      invoiceID,
		OrganizationID: organizationID,
		ClientID:       session.ClientID,
		ProfessionalID: session.ProfessionalID,
		Date:           issueDate,
		DueDate:        issueDate.AddDate(0, 0, invoiceDueDays),
		Items: []domain.InvoiceItem{{
			ItemID:      uuid.NewString(),
			InvoiceID:   invoiceID,
			Description: session.Title,
			Amount:      finalFee,
		}},
		Status:      domain.InvoiceDraft,
		Total:       finalFee,
		AuditFields: newAuditFields(userID, now),
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "failed to save completion invoice", "organizationID", organizationID, "sessionID", sessionID)
		return "", err
	}
	if err := s.sessionRepo.CompleteSession(ctx, organizationID, sessionID, finalFee, notes, invoiceID, userID, now); err != nil {
		s.LogError(ctx, err, "failed to complete session", "organizationID", organizationID, "sessionID", sessionID)
		return "", err
	}

	store.AppendInvoice(invoice)
	store.UpdateSession(sessionID, func(sess *domain.Session) {
		sess.Status = domain.SessionCompleted
		sess.Fee = finalFee
		sess.Notes = notes
		sess.InvoiceID = invoiceID
		sess.LastUpdatedAt = now
		sess.LastUpdatedBy = userID
	})

	s.LogInfo(ctx, "session completed", "organizationID", organizationID, "sessionID", sessionID, "invoiceID", invoiceID)
	return invoiceID, nil
}

// UpdateSessionNotes replaces the session notes remotely and locally.
func (s *appStoreService) UpdateSessionNotes(ctx context.Context, organizationID, sessionID, notes, userID string) error {
	now := time.Now().UTC()
	if err := s.sessionRepo.UpdateSessionNotes(ctx, organizationID, sessionID, notes, userID, now); err != nil {
		s.LogError(ctx, err, "failed to update session notes", "organizationID", organizationID, "sessionID", sessionID)
		return err
	}
	s.storeFor(organizationID).UpdateSession(sessionID, func(sess *domain.Session) {
		sess.Notes = notes
		sess.LastUpdatedAt = now
		sess.LastUpdatedBy = userID
	})
	return nil
}

// UpdateSessionColor replaces the session display color remotely and locally,
// so the color survives a reload.
func (s *appStoreService) UpdateSessionColor(ctx context.Context, organizationID, sessionID, color, userID string) error {
	now := time.Now().UTC()
	if err := s.sessionRepo.UpdateSessionColor(ctx, organizationID, sessionID, color, userID, now); err != nil {
		s.LogError(ctx, err, "failed to update session color", "organizationID", organizationID, "sessionID", sessionID)
		return err
	}
	s.storeFor(organizationID).UpdateSession(sessionID, func(sess *domain.Session) {
		sess.Color = color
		sess.LastUpdatedAt = now
		sess.LastUpdatedBy = userID
	})
	return nil
}

// DeleteSession removes a session remotely and locally.
func (s *appStoreService) DeleteSession(ctx context.Context, organizationID, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, organizationID, sessionID); err != nil {
		s.LogError(ctx, err, "failed to delete session", "organizationID", organizationID, "sessionID", sessionID)
		return err
	}
	s.storeFor(organizationID).RemoveSession(sessionID)
	s.LogInfo(ctx, "session deleted", "organizationID", organizationID, "sessionID", sessionID)
	return nil
}
