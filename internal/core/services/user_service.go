package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/noeia/noeia-backend/internal/apperrors"
	"github.com/noeia/noeia-backend/internal/core/domain"
	portsrepo "github.com/noeia/noeia-backend/internal/core/ports/repositories"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/noeia/noeia-backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	orgSvc   portssvc.OrganizationSvcFacade
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepository, orgSvc portssvc.OrganizationSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, orgSvc: orgSvc}
}

// RegisterUser creates a user, hashing the password and resolving the
// organization: joining an existing one by id, or creating a fresh one by
// name. Exactly one of the two must be supplied.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if (req.OrganizationID == "") == (req.OrganizationName == "") {
		return nil, fmt.Errorf("exactly one of organizationID or organizationName is required: %w", apperrors.ErrValidation)
	}

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to look up username", "username", req.Username)
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username %s: %w", req.Username, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "failed to hash password")
		return nil, err
	}

	userID := uuid.NewString()
	organizationID := req.OrganizationID
	if organizationID != "" {
		if _, err := s.orgSvc.GetOrganizationByID(ctx, organizationID); err != nil {
			return nil, err
		}
	} else {
		org, err := s.orgSvc.CreateOrganization(ctx, req.OrganizationName, userID)
		if err != nil {
			return nil, err
		}
		organizationID = org.OrganizationID
	}

	user := domain.User{
		UserID:         userID,
		Username:       req.Username,
		PasswordHash:   hash,
		Name:           req.Name,
		Role:           req.Role,
		OrganizationID: organizationID,
		AuditFields:    newAuditFields(userID, time.Now().UTC()),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "failed to save user", "username", req.Username)
		return nil, err
	}
	s.LogInfo(ctx, "user registered", "userID", user.UserID, "organizationID", organizationID)
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}
