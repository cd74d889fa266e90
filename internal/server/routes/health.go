package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/handlers"
)

// SetupHealthRoutes configures health check and build info endpoints
func SetupHealthRoutes(router *gin.Engine, v3 *gin.RouterGroup, health *handlers.HealthHandler) {
	router.GET("/health", health.Check)
	v3.GET("/version", health.Version)
}
