package routes

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/dmp-tools/tokenpanel/internal/api/middleware"
	"github.com/dmp-tools/tokenpanel/internal/config"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	basemw "github.com/dmp-tools/tokenpanel/internal/middleware"
	"github.com/dmp-tools/tokenpanel/internal/telemetry"
)

// APIVersion prefixes every API route
const APIVersion = "v3"

// Setup configures all route groups
func Setup(router *gin.Engine, h *Handlers, m *Middleware) {
	logger := logging.GetGlobalLogger()

	v3 := router.Group("/" + APIVersion)

	SetupHealthRoutes(router, v3, h.Health)
	SetupAuthRoutes(v3, h.Auth, m)
	SetupTokenRoutes(v3, h.Token, m)

	logger.Info("All routes have been set up successfully")
}

// SetupGlobalMiddleware configures middleware that applies to all routes
func SetupGlobalMiddleware(router *gin.Engine, cfg *config.Config, logger *logging.Logger) {
	router.Use(basemw.RequestID())
	router.Use(basemw.Recovery(logger))
	if telemetry.Enabled(cfg.OTLPEndpoint) {
		router.Use(otelgin.Middleware(cfg.ServiceName))
	}
	router.Use(func(c *gin.Context) {
		logger.Debug("Incoming request: %s %s from %s token=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			maskToken(middleware.PresentedToken(c)),
		)
		c.Next()
	})
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins, !cfg.IsProduction()))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   cfg.RateLimitRPS,
		Burst: cfg.RateLimitBurst,
	}))
}

// maskToken keeps only a short prefix of a presented token
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 6 {
		return "[MASKED]"
	}
	return token[:4] + strings.Repeat("*", 6)
}
