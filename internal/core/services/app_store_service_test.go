package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/core/services"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/noeia/noeia-backend/internal/utils"
)

// --- Mock ProfessionalRepository ---

type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) ListProfessionals(ctx context.Context, organizationID string) ([]domain.Professional, error) {
	args := m.Called(ctx, organizationID)
	var professionals []domain.Professional
	if args.Get(0) != nil {
		professionals = args.Get(0).([]domain.Professional)
	}
	return professionals, args.Error(1)
}

func (m *MockProfessionalRepository) FindProfessionalByID(ctx context.Context, organizationID, professionalID string) (*domain.Professional, error) {
	args := m.Called(ctx, organizationID, professionalID)
	var professional *domain.Professional
	if args.Get(0) != nil {
		professional = args.Get(0).(*domain.Professional)
	}
	return professional, args.Error(1)
}

func (m *MockProfessionalRepository) SaveProfessional(ctx context.Context, professional domain.Professional) error {
	args := m.Called(ctx, professional)
	return args.Error(0)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) ListClients(ctx context.Context, organizationID string) ([]domain.Client, error) {
	args := m.Called(ctx, organizationID)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, organizationID, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, organizationID, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock SessionRepository ---

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) ListSessions(ctx context.Context, organizationID string) ([]domain.Session, error) {
	args := m.Called(ctx, organizationID)
	var sessions []domain.Session
	if args.Get(0) != nil {
		sessions = args.Get(0).([]domain.Session)
	}
	return sessions, args.Error(1)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, organizationID, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, organizationID, sessionID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) CompleteSession(ctx context.Context, organizationID, sessionID string, fee decimal.Decimal, notes, invoiceID, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, sessionID, fee, notes, invoiceID, userID, now)
	return args.Error(0)
}

func (m *MockSessionRepository) UpdateSessionNotes(ctx context.Context, organizationID, sessionID, notes, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, sessionID, notes, userID, now)
	return args.Error(0)
}

func (m *MockSessionRepository) UpdateSessionColor(ctx context.Context, organizationID, sessionID, color, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, sessionID, color, userID, now)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteSession(ctx context.Context, organizationID, sessionID string) error {
	args := m.Called(ctx, organizationID, sessionID)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, organizationID)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, organizationID, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, organizationID, invoiceID string, updates domain.InvoiceUpdate, userID string, now time.Time) error {
	args := m.Called(ctx, organizationID, invoiceID, updates, userID, now)
	return args.Error(0)
}

// --- Test Suite ---

type AppStoreServiceTestSuite struct {
	suite.Suite
	mockProfessionalRepo *MockProfessionalRepository
	mockClientRepo       *MockClientRepository
	mockSessionRepo      *MockSessionRepository
	mockInvoiceRepo      *MockInvoiceRepository
	service              portssvc.AppStoreSvcFacade
	ctx                  context.Context
	orgID                string
	userID               string
}

func (suite *AppStoreServiceTestSuite) SetupTest() {
	suite.mockProfessionalRepo = new(MockProfessionalRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewAppStoreService(portsrepo.RepositoryProvider{
		ProfessionalRepo: suite.mockProfessionalRepo,
		ClientRepo:       suite.mockClientRepo,
		SessionRepo:      suite.mockSessionRepo,
		InvoiceRepo:      suite.mockInvoiceRepo,
	}, "")
	suite.ctx = context.Background()
	suite.orgID = "org-1"
	suite.userID = "user-1"
}

func (suite *AppStoreServiceTestSuite) expectFetch(professionals []domain.Professional, clients []domain.Client, sessions []domain.Session, invoices []domain.Invoice) {
	suite.mockProfessionalRepo.On("ListProfessionals", mock.Anything, suite.orgID).Return(professionals, nil).Once()
	suite.mockClientRepo.On("ListClients", mock.Anything, suite.orgID).Return(clients, nil).Once()
	suite.mockSessionRepo.On("ListSessions", mock.Anything, suite.orgID).Return(sessions, nil).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything, suite.orgID).Return(invoices, nil).Once()
}

func (suite *AppStoreServiceTestSuite) TestFetchAll_ReplacesAllCollections() {
	professionals := []domain.Professional{
		{ProfessionalID: "p1", Name: "Dr. Silva", Avatar: "https://avatars.example/silva"},
		{ProfessionalID: "p2", Name: "Dr. Costa"},
	}
	clients := []domain.Client{
		{ClientID: "c1", Name: "Ana Gomez", Avatar: "https://avatars.example/ana"},
		{ClientID: "c2", Name: "Luis Reyes"},
	}
	sessions := []domain.Session{
		{SessionID: "s1", Title: "Intake", ClientID: "c1"},
		{SessionID: "s2", Title: "Follow-up", ClientID: "c2"},
	}
	invoices := []domain.Invoice{
		{InvoiceID: "i1", ClientID: "c1", Items: []domain.InvoiceItem{
			{ItemID: "it1", InvoiceID: "i1", Description: "Intake", Amount: decimal.NewFromInt(100)},
			{ItemID: "it2", InvoiceID: "i1", Description: "Report", Amount: decimal.NewFromInt(50)},
		}, Total: decimal.NewFromInt(150)},
	}
	suite.expectFetch(professionals, clients, sessions, invoices)

	report := suite.service.FetchAll(suite.ctx, suite.orgID)

	suite.Require().False(report.Failed())
	suite.Len(suite.service.Professionals(suite.orgID), 2)
	suite.Len(suite.service.Clients(suite.orgID), 2)
	suite.Len(suite.service.Sessions(suite.orgID), 2)
	suite.Len(suite.service.Invoices(suite.orgID), 1)

	gotInvoice, found := suite.service.GetInvoiceByID(suite.orgID, "i1")
	suite.Require().True(found)
	suite.Len(gotInvoice.Items, 2)

	// Entities without an avatar get the deterministic generated one.
	gotClients := suite.service.Clients(suite.orgID)
	suite.Equal("https://avatars.example/ana", gotClients[0].Avatar)
	suite.Equal(utils.FallbackAvatarURL("", "Luis Reyes"), gotClients[1].Avatar)
	gotProfessionals := suite.service.Professionals(suite.orgID)
	suite.Equal(utils.FallbackAvatarURL("", "Dr. Costa"), gotProfessionals[1].Avatar)

	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *AppStoreServiceTestSuite) TestFetchAll_PartialFailureKeepsPreviousContents() {
	suite.expectFetch(
		[]domain.Professional{{ProfessionalID: "p1", Name: "Dr. Silva", Avatar: "x"}},
		[]domain.Client{{ClientID: "c1", Name: "Ana Gomez", Avatar: "x"}},
		[]domain.Session{{SessionID: "s1", Title: "Intake"}},
		[]domain.Invoice{{InvoiceID: "i1"}},
	)
	report := suite.service.FetchAll(suite.ctx, suite.orgID)
	suite.Require().False(report.Failed())

	fetchErr := errors.New("connection reset")
	suite.mockProfessionalRepo.On("ListProfessionals", mock.Anything, suite.orgID).Return([]domain.Professional{}, nil).Once()
	suite.mockClientRepo.On("ListClients", mock.Anything, suite.orgID).Return([]domain.Client{
		{ClientID: "c2", Name: "Luis Reyes", Avatar: "x"},
	}, nil).Once()
	suite.mockSessionRepo.On("ListSessions", mock.Anything, suite.orgID).Return(nil, fetchErr).Once()
	suite.mockInvoiceRepo.On("ListInvoices", mock.Anything, suite.orgID).Return([]domain.Invoice{}, nil).Once()

	report = suite.service.FetchAll(suite.ctx, suite.orgID)

	suite.Require().True(report.Failed())
	suite.ErrorIs(report.Errors()["sessions"], fetchErr)

	// Failed collection keeps its previous contents, the rest are replaced.
	sessions := suite.service.Sessions(suite.orgID)
	suite.Require().Len(sessions, 1)
	suite.Equal("s1", sessions[0].SessionID)
	clients := suite.service.Clients(suite.orgID)
	suite.Require().Len(clients, 1)
	suite.Equal("c2", clients[0].ClientID)
	suite.Empty(suite.service.Invoices(suite.orgID))
}

func (suite *AppStoreServiceTestSuite) TestAddClient_GeneratesFallbackAvatar() {
	suite.mockClientRepo.On("SaveClient", mock.Anything, mock.MatchedBy(func(c domain.Client) bool {
		return c.Name == "Ana Gomez" && c.OrganizationID == suite.orgID
	})).Return(nil).Once()

	client, err := suite.service.AddClient(suite.ctx, suite.orgID, dto.CreateClientRequest{
		Name:        "Ana Gomez",
		Email:       "ana@example.com",
		DateOfBirth: "1990-04-02",
		Status:      domain.ClientActive,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.NotEmpty(client.ClientID)
	suite.Equal(utils.FallbackAvatarURL("", "Ana Gomez"), client.Avatar)
	suite.Equal(1990, client.DateOfBirth.Year())
	suite.Equal(suite.userID, client.CreatedBy)

	clients := suite.service.Clients(suite.orgID)
	suite.Require().Len(clients, 1)
	suite.Equal(client.ClientID, clients[0].ClientID)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *AppStoreServiceTestSuite) TestAddSession_RejectsEndBeforeStart() {
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err := suite.service.AddSession(suite.ctx, suite.orgID, dto.CreateSessionRequest{
		Title:  "Intake",
		Start:  start,
		End:    start.Add(-time.Hour),
		Status: domain.SessionConfirmed,
	}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockSessionRepo.AssertNotCalled(suite.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (suite *AppStoreServiceTestSuite) TestAddSession_DefaultsType() {
	suite.mockSessionRepo.On("SaveSession", mock.Anything, mock.Anything).Return(nil).Once()

	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	session, err := suite.service.AddSession(suite.ctx, suite.orgID, dto.CreateSessionRequest{
		Title:  "Intake",
		Start:  start,
		End:    start.Add(time.Hour),
		Status: domain.SessionConfirmed,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.DefaultSessionType, session.Type)
}

func (suite *AppStoreServiceTestSuite) addSession(title, clientID string, fee decimal.Decimal) *domain.Session {
	suite.mockSessionRepo.On("SaveSession", mock.Anything, mock.Anything).Return(nil).Once()
	start := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	session, err := suite.service.AddSession(suite.ctx, suite.orgID, dto.CreateSessionRequest{
		Title:    title,
		ClientID: clientID,
		Start:    start,
		End:      start.Add(time.Hour),
		Status:   domain.SessionConfirmed,
		Fee:      fee,
	}, suite.userID)
	suite.Require().NoError(err)
	return session
}

func (suite *AppStoreServiceTestSuite) TestCompleteSession_GeneratesDraftInvoice() {
	session := suite.addSession("Intake", "c1", decimal.NewFromInt(100))

	var savedInvoice domain.Invoice
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedInvoice = args.Get(1).(domain.Invoice)
	}).Return(nil).Once()
	suite.mockSessionRepo.On("CompleteSession", mock.Anything, suite.orgID, session.SessionID,
		mock.Anything, "went well", mock.Anything, suite.userID, mock.Anything).Return(nil).Once()

	finalFee := decimal.NewFromInt(120)
	invoiceID, err := suite.service.CompleteSession(suite.ctx, suite.orgID, session.SessionID, "went well", finalFee, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(invoiceID)

	suite.Equal(invoiceID, savedInvoice.InvoiceID)
	suite.Equal(domain.InvoiceDraft, savedInvoice.Status)
	suite.Equal("c1", savedInvoice.ClientID)
	suite.True(savedInvoice.Total.Equal(finalFee))
	suite.Require().Len(savedInvoice.Items, 1)
	suite.Equal("Intake", savedInvoice.Items[0].Description)
	suite.True(savedInvoice.Items[0].Amount.Equal(finalFee))
	// Issue date is day-precise and the invoice falls due two weeks later.
	suite.Equal(savedInvoice.Date, savedInvoice.Date.Truncate(24*time.Hour))
	suite.Equal(savedInvoice.Date.AddDate(0, 0, 14), savedInvoice.DueDate)

	sessions := suite.service.Sessions(suite.orgID)
	suite.Require().Len(sessions, 1)
	suite.Equal(domain.SessionCompleted, sessions[0].Status)
	suite.True(sessions[0].Fee.Equal(finalFee))
	suite.Equal("went well", sessions[0].Notes)
	suite.Equal(invoiceID, sessions[0].InvoiceID)

	invoices := suite.service.Invoices(suite.orgID)
	suite.Require().Len(invoices, 1)
	suite.Equal(invoiceID, invoices[0].InvoiceID)

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockSessionRepo.AssertExpectations(suite.T())
}

func (suite *AppStoreServiceTestSuite) TestCompleteSession_UnknownSession() {
	_, err := suite.service.CompleteSession(suite.ctx, suite.orgID, "nope", "", decimal.NewFromInt(50), suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
	suite.Empty(suite.service.Invoices(suite.orgID))
}

func (suite *AppStoreServiceTestSuite) TestUpdateSessionColor_WritesThrough() {
	session := suite.addSession("Intake", "c1", decimal.NewFromInt(100))

	suite.mockSessionRepo.On("UpdateSessionColor", mock.Anything, suite.orgID, session.SessionID,
		"#ff8800", suite.userID, mock.Anything).Return(nil).Once()

	err := suite.service.UpdateSessionColor(suite.ctx, suite.orgID, session.SessionID, "#ff8800", suite.userID)
	suite.Require().NoError(err)

	sessions := suite.service.Sessions(suite.orgID)
	suite.Require().Len(sessions, 1)
	suite.Equal("#ff8800", sessions[0].Color)
	suite.mockSessionRepo.AssertExpectations(suite.T())

	// The color was persisted, so a reload serves it back.
	persisted := sessions[0]
	suite.expectFetch(nil, nil, []domain.Session{persisted}, nil)
	report := suite.service.FetchAll(suite.ctx, suite.orgID)
	suite.Require().False(report.Failed())
	reloaded := suite.service.Sessions(suite.orgID)
	suite.Require().Len(reloaded, 1)
	suite.Equal("#ff8800", reloaded[0].Color)
}

func (suite *AppStoreServiceTestSuite) TestDeleteSession_RemovesLocally() {
	session := suite.addSession("Intake", "c1", decimal.NewFromInt(100))
	suite.mockSessionRepo.On("DeleteSession", mock.Anything, suite.orgID, session.SessionID).Return(nil).Once()

	err := suite.service.DeleteSession(suite.ctx, suite.orgID, session.SessionID)

	suite.Require().NoError(err)
	suite.Empty(suite.service.Sessions(suite.orgID))
}

func (suite *AppStoreServiceTestSuite) TestCreateInvoice_RejectsTotalMismatch() {
	_, err := suite.service.CreateInvoice(suite.ctx, suite.orgID, dto.CreateInvoiceRequest{
		ClientID:       "c1",
		ProfessionalID: "p1",
		Date:           "2024-01-10",
		DueDate:        "2024-01-24",
		Items: []dto.InvoiceItemPayload{
			{Description: "Intake", Amount: decimal.NewFromInt(100)},
		},
		Status: domain.InvoicePending,
		Total:  decimal.NewFromInt(120),
	}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *AppStoreServiceTestSuite) TestCreateInvoice_SavesItemsInOrder() {
	var savedInvoice domain.Invoice
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedInvoice = args.Get(1).(domain.Invoice)
	}).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(suite.ctx, suite.orgID, dto.CreateInvoiceRequest{
		ClientID:       "c1",
		ProfessionalID: "p1",
		Date:           "2024-01-10",
		DueDate:        "2024-01-24",
		Items: []dto.InvoiceItemPayload{
			{Description: "Intake", Amount: decimal.NewFromInt(100)},
			{Description: "Report", Amount: decimal.NewFromInt(50)},
		},
		Status: domain.InvoicePending,
		Total:  decimal.NewFromInt(150),
	}, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(savedInvoice.Items, 2)
	suite.Equal("Intake", savedInvoice.Items[0].Description)
	suite.Equal("Report", savedInvoice.Items[1].Description)
	suite.Equal(invoice.InvoiceID, savedInvoice.Items[0].InvoiceID)
	suite.Len(suite.service.Invoices(suite.orgID), 1)
}

func (suite *AppStoreServiceTestSuite) TestUpdateInvoice_MergesWhitelistedFields() {
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.Anything).Return(nil).Once()
	invoice, err := suite.service.CreateInvoice(suite.ctx, suite.orgID, dto.CreateInvoiceRequest{
		ClientID:       "c1",
		ProfessionalID: "p1",
		Date:           "2024-01-10",
		DueDate:        "2024-01-24",
		Items: []dto.InvoiceItemPayload{
			{Description: "Intake", Amount: decimal.NewFromInt(100)},
		},
		Status: domain.InvoicePending,
		Total:  decimal.NewFromInt(100),
	}, suite.userID)
	suite.Require().NoError(err)

	paid := domain.InvoicePaid
	updates := domain.InvoiceUpdate{Status: &paid}
	suite.mockInvoiceRepo.On("UpdateInvoice", mock.Anything, suite.orgID, invoice.InvoiceID,
		updates, suite.userID, mock.Anything).Return(nil).Once()

	updated, err := suite.service.UpdateInvoice(suite.ctx, suite.orgID, invoice.InvoiceID, updates, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, updated.Status)
	// Untouched fields survive the merge.
	suite.True(updated.Total.Equal(decimal.NewFromInt(100)))
	suite.Equal(invoice.Date, updated.Date)
	suite.Require().Len(updated.Items, 1)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *AppStoreServiceTestSuite) TestUpdateInvoice_RejectsEmptyUpdate() {
	_, err := suite.service.UpdateInvoice(suite.ctx, suite.orgID, "i1", domain.InvoiceUpdate{}, suite.userID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoice",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AppStoreServiceTestSuite) TestEnrichedInvoices_UsesCurrentCollections() {
	suite.expectFetch(
		[]domain.Professional{{ProfessionalID: "p1", Name: "Dr. Silva", Avatar: "x"}},
		[]domain.Client{{ClientID: "c1", Name: "Ana Gomez", Avatar: "x"}},
		nil,
		[]domain.Invoice{{InvoiceID: "i1", ClientID: "c1", ProfessionalID: "p1",
			Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}},
	)
	report := suite.service.FetchAll(suite.ctx, suite.orgID)
	suite.Require().False(report.Failed())

	enriched := suite.service.EnrichedInvoices(suite.orgID)
	suite.Require().Len(enriched, 1)
	suite.Equal("INV_AnaGomez_2024-01-10", enriched[0].DisplayID)
	suite.Equal("Ana Gomez", enriched[0].ClientName)
	suite.Equal("Dr. Silva", enriched[0].ProfessionalName)
}

func TestAppStoreServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AppStoreServiceTestSuite))
}
