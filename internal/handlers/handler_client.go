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

// clientHandler handles HTTP requests for the client collection.
type clientHandler struct {
	appStore portssvc.AppStoreSvcFacade
}

func newClientHandler(appStore portssvc.AppStoreSvcFacade) *clientHandler {
	return &clientHandler{appStore: appStore}
}

// registerClientRoutes registers all client-related routes.
func registerClientRoutes(rg *gin.RouterGroup, appStore portssvc.AppStoreSvcFacade) {
	h := newClientHandler(appStore)

	clients := rg.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.GET("/:id", h.getClient)
		clients.POST("", h.createClient)
	}
}

func (h *clientHandler) listClients(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(h.appStore.Clients(organizationID)))
}

func (h *clientHandler) getClient(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	client, found := h.appStore.GetClientByID(organizationID, c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Client not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

func (h *clientHandler) createClient(c *gin.Context) {
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

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	client, err := h.appStore.AddClient(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create client", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create client"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}
