package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noeia/noeia-backend/internal/apperrors"
	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/noeia/noeia-backend/internal/middleware"
)

// professionalHandler handles HTTP requests for the professional collection.
type professionalHandler struct {
	appStore portssvc.AppStoreSvcFacade
}

func newProfessionalHandler(appStore portssvc.AppStoreSvcFacade) *professionalHandler {
	return &professionalHandler{appStore: appStore}
}

// registerProfessionalRoutes registers all professional-related routes.
func registerProfessionalRoutes(rg *gin.RouterGroup, appStore portssvc.AppStoreSvcFacade) {
	h := newProfessionalHandler(appStore)

	professionals := rg.Group("/professionals")
	{
		professionals.GET("", h.listProfessionals)
		professionals.GET("/:id", h.getProfessional)
		professionals.POST("", h.createProfessional)
	}
}

func (h *professionalHandler) listProfessionals(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListProfessionalResponse(h.appStore.Professionals(organizationID)))
}

func (h *professionalHandler) getProfessional(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	professional, found := h.appStore.GetProfessionalByID(organizationID, c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Professional not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfessionalResponse(professional))
}

func (h *professionalHandler) createProfessional(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	professional, err := h.appStore.AddProfessional(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create professional", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create professional"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToProfessionalResponse(professional))
}
