package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/handlers"
)

// SetupAuthRoutes configures authentication related routes
func SetupAuthRoutes(router *gin.RouterGroup, auth *handlers.AuthHandler, m *Middleware) {
	user := router.Group("/user")
	{
		user.POST("/login", m.Validation.ValidateLoginRequest(), auth.Login)
		user.POST("/logout", auth.Logout)
	}
}
