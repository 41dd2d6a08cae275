package dto

import "github.com/noeia/noeia-backend/internal/core/domain"

// CreateProfessionalRequest defines the data needed to create a professional.
type CreateProfessionalRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Avatar string `json:"avatar"`
}

// ProfessionalResponse defines the data returned for a professional.
type ProfessionalResponse struct {
	ProfessionalID string `json:"professionalID"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Avatar         string `json:"avatar"`
}

// ToProfessionalResponse converts a domain.Professional to its response DTO.
func ToProfessionalResponse(p *domain.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ProfessionalID: p.ProfessionalID,
		Name:           p.Name,
		Role:           p.Role,
		Avatar:         p.Avatar,
	}
}

// ToListProfessionalResponse converts a slice of domain.Professional to DTOs.
func ToListProfessionalResponse(professionals []domain.Professional) []ProfessionalResponse {
	res := make([]ProfessionalResponse, len(professionals))
	for i := range professionals {
		res[i] = ToProfessionalResponse(&professionals[i])
	}
	return res
}
