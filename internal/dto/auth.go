package dto

import "github.com/noeia/noeia-backend/internal/core/domain"

// RegisterRequest creates a new user. Either OrganizationID joins an existing
// organization, or OrganizationName creates a fresh one (exactly one must be
// supplied).
type RegisterRequest struct {
	Username         string          `json:"username" binding:"required,min=3"`
	Password         string          `json:"password" binding:"required,min=8"`
	Name             string          `json:"name" binding:"required"`
	Role             domain.UserRole `json:"role" binding:"required,oneof=DOCTOR CLIENT ORGANIZATION"`
	OrganizationID   string          `json:"organizationID"`
	OrganizationName string          `json:"organizationName"`
}

// LoginRequest authenticates a user by username and password.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed JWT for an authenticated user.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID         string          `json:"userID"`
	Username       string          `json:"username"`
	Name           string          `json:"name"`
	Role           domain.UserRole `json:"role"`
	OrganizationID string          `json:"organizationID"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:         u.UserID,
		Username:       u.Username,
		Name:           u.Name,
		Role:           u.Role,
		OrganizationID: u.OrganizationID,
	}
}
