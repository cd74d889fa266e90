package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/service"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

// AuthMiddleware checks the token header on protected routes
type AuthMiddleware struct {
	authService *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// PresentedToken returns the token from X-DMP-TOKEN, or from Authorization
// for older clients. A "Bearer " prefix is accepted on the latter.
func PresentedToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetHeader(expiry.HeaderDMP)); token != "" {
		return token
	}
	token := strings.TrimSpace(c.GetHeader(expiry.HeaderAuthorization))
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}

// RequireToken rejects requests without a valid session or access token
// with code 420 and stores the caller's identity in the context.
func (m *AuthMiddleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := m.authService.Authenticate(c.Request.Context(), PresentedToken(c))
		if err != nil {
			utils.HandleAPIError(c, err, common.CodeTokenFail, "token fail")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUsername, principal.Username)
		c.Set(constants.ContextKeyRole, principal.Role)
		c.Next()
	}
}
