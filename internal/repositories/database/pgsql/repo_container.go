package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfessionalRepo: newPgxProfessionalRepository(dbPool),
		ClientRepo:       newPgxClientRepository(dbPool),
		SessionRepo:      newPgxSessionRepository(dbPool),
		InvoiceRepo:      newPgxInvoiceRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
	}
}
