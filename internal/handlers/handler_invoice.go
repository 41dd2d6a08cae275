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

// invoiceHandler handles HTTP requests for the invoice collection.
type invoiceHandler struct {
	appStore portssvc.AppStoreSvcFacade
}

func newInvoiceHandler(appStore portssvc.AppStoreSvcFacade) *invoiceHandler {
	return &invoiceHandler{appStore: appStore}
}

// registerInvoiceRoutes registers all invoice-related routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, appStore portssvc.AppStoreSvcFacade) {
	h := newInvoiceHandler(appStore)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/enriched", h.listEnrichedInvoices)
		invoices.GET("/:id", h.getInvoice)
		invoices.POST("", h.createInvoice)
		invoices.PATCH("/:id", h.updateInvoice)
	}
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceResponse(h.appStore.Invoices(organizationID)))
}

func (h *invoiceHandler) listEnrichedInvoices(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListEnrichedInvoiceResponse(h.appStore.EnrichedInvoices(organizationID)))
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	invoice, found := h.appStore.GetInvoiceByID(organizationID, c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *invoiceHandler) createInvoice(c *gin.Context) {
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

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	invoice, err := h.appStore.CreateInvoice(c.Request.Context(), organizationID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create invoice", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
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

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	updates, err := req.ToInvoiceUpdate()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invoice, err := h.appStore.UpdateInvoice(c.Request.Context(), organizationID, c.Param("id"), updates, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update invoice"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}
