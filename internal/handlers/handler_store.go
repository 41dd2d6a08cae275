package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/dto"
	"github.com/noeia/noeia-backend/internal/middleware"
)

// storeHandler exposes the bulk refresh of the organization's collections.
type storeHandler struct {
	appStore portssvc.AppStoreSvcFacade
}

func newStoreHandler(appStore portssvc.AppStoreSvcFacade) *storeHandler {
	return &storeHandler{appStore: appStore}
}

// registerStoreRoutes registers the store lifecycle routes.
func registerStoreRoutes(rg *gin.RouterGroup, appStore portssvc.AppStoreSvcFacade) {
	h := newStoreHandler(appStore)
	rg.POST("/store/refresh", h.refresh)
}

// refresh reloads all four collections. A partial failure still returns 200:
// the response reports which collections failed and those keep their previous
// contents.
func (h *storeHandler) refresh(c *gin.Context) {
	organizationID, ok := middleware.GetOrganizationIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report := h.appStore.FetchAll(c.Request.Context(), organizationID)
	resp := dto.RefreshResponse{Complete: !report.Failed()}
	if report.Failed() {
		resp.Errors = make(map[string]string)
		for collection, err := range report.Errors() {
			resp.Errors[collection] = err.Error()
		}
	}
	c.JSON(http.StatusOK, resp)
}
