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

// sessionHandler handles HTTP requests for the session collection, including
// the completion workflow that generates an invoice.
type sessionHandler struct {
	appStore portssvc.AppStoreSvcFacade
}

func newSessionHandler(appStore portssvc.AppStoreSvcFacade) *sessionHandler {
	return &sessionHandler{appStore: appStore}
}

// registerSessionRoutes registers all session-related routes.
func registerSessionRoutes(rg *gin.RouterGroup, appStore portssvc.AppStoreSvcFacade) {
	h := newSessionHandler(appStore)

	sessions := rg.Group("/sessions")
	{
		sessions.GET("", h.listSessions)
		sessions.GET("/enriched", h.listEnrichedSessions)
		sessions.POST("", h.createSession)
		sessions.POST("/:id/complete", h.completeSession)
		sessions.PATCH("/:id/notes", h.updateNotes)
		sessions.PATCH("/:id/color", h.updateColor)
		sessions.DELETE("/:id", h.deleteSession)
	}
}

func (h *sessionHandler) listSessions(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSessionResponse(h.appStore.Sessions(organizationID)))
}

func (h *sessionHandler) listEnrichedSessions(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListEnrichedSessionResponse(h.appStore.EnrichedSessions(organizationID)))
}

func (h *sessionHandler) createSession(c *gin.Context) {
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

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	session, err := h.appStore.AddSession(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *sessionHandler) completeSession(c *gin.Context) {
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

	var req dto.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoiceID, err := h.appStore.CompleteSession(c.Request.Context(), organizationID, c.Param("id"), req.Notes, req.FinalFee, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			return
		}
		logger.Error("Failed to complete session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to complete session"})
		return
	}
	c.JSON(http.StatusOK, dto.CompleteSessionResponse{InvoiceID: invoiceID})
}

func (h *sessionHandler) updateNotes(c *gin.Context) {
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

	var req dto.UpdateSessionNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.appStore.UpdateSessionNotes(c.Request.Context(), organizationID, c.Param("id"), req.Notes, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			return
		}
		logger.Error("Failed to update session notes", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update session notes"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *sessionHandler) updateColor(c *gin.Context) {
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

	var req dto.UpdateSessionColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.appStore.UpdateSessionColor(c.Request.Context(), organizationID, c.Param("id"), req.Color, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			return
		}
		logger.Error("Failed to update session color", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update session color"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *sessionHandler) deleteSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.appStore.DeleteSession(c.Request.Context(), organizationID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Session not found"})
			return
		}
		logger.Error("Failed to delete session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete session"})
		return
	}
	c.Status(http.StatusNoContent)
}
