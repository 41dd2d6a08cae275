package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
)

type organizationService struct {
	BaseService
	organizationRepo portsrepo.OrganizationRepository
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// NewOrganizationService creates the organization service.
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepository) portssvc.OrganizationSvcFacade {
	return &organizationService{organizationRepo: organizationRepo}
}

// CreateOrganization persists a new active organization.
func (s *organizationService) CreateOrganization(ctx context.Context, name, creatorUserID string) (*domain.Organization, error) {
	organization := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           name,
		IsActive:       true,
		AuditFields:    newAuditFields(creatorUserID, time.Now().UTC()),
	}
	if err := s.organizationRepo.SaveOrganization(ctx, organization); err != nil {
		s.LogError(ctx, err, "failed to save organization", "name", name)
		return nil, err
	}
	s.LogInfo(ctx, "organization created", "organizationID", organization.OrganizationID)
	return &organization, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	return s.organizationRepo.FindOrganizationByID(ctx, organizationID)
}
