package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/handlers"
)

// SetupTokenRoutes configures token-related routes. All of them need an
// admin session or an admin's access token.
func SetupTokenRoutes(router *gin.RouterGroup, h *handlers.TokenHandler, m *Middleware) {
	tokens := router.Group("/tools/token")
	tokens.Use(m.Auth.RequireToken(), m.Admin.RequireAdmin())
	{
		tokens.POST("", m.Validation.ValidateCreateTokenRequest(), h.CreateToken)
		tokens.GET("", h.ListTokens)
		tokens.DELETE("/:id", h.RevokeToken)
	}
}
