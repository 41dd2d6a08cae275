package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/noeia/noeia-backend/internal/core/ports/services"
	"github.com/noeia/noeia-backend/internal/middleware"
	"github.com/noeia/noeia-backend/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// the service facades.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to
// the entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerStoreRoutes(v1, services.AppStore)
	registerProfessionalRoutes(v1, services.AppStore)
	registerClientRoutes(v1, services.AppStore)
	registerSessionRoutes(v1, services.AppStore)
	registerInvoiceRoutes(v1, services.AppStore)
}
