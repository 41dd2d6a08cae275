package services

import (
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/pkg/config"
)

// NewServiceContainer wires all services against the repository provider.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	orgSvc := NewOrganizationService(repos.OrganizationRepo)
	return &portssvc.ServiceContainer{
		AppStore:     NewAppStoreService(repos, cfg.AvatarBaseURL),
		User:         NewUserService(repos.UserRepo, orgSvc),
		Organization: orgSvc,
	}
}
