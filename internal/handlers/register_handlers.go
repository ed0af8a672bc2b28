package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/jyoo0515/docuflow/internal/core/ports/services"
	"github.com/jyoo0515/docuflow/internal/middleware"
	"github.com/jyoo0515/docuflow/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Public workflow entry point. It predates the JSON API and keeps its
	// plain-text contract; rate limiting stands in for authentication.
	registerWorkflowRoutes(r, cfg, services.Workflow)

	// JSON API behind JWT auth
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerDocumentRoutes(v1, services.Document)
}

// workflowRateLimiter builds the IP limiter guarding the workflow entry
// point.
func workflowRateLimiter(format string) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(format)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("30-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
