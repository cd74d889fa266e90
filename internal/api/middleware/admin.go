package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/api/sanitization"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

// AdminMiddleware handles admin-only authorization
type AdminMiddleware struct{}

// NewAdminMiddleware creates a new admin middleware
func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

// RequireAdmin ensures the caller has the admin role.
// This should be used AFTER RequireToken
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := logging.GetGlobalLogger()

		username := c.GetString(constants.ContextKeyUsername)
		if username == "" {
			logger.Warn("Admin access attempted without authenticated user")
			utils.HandleAPIError(c, errors.New("no authenticated user"), common.CodeTokenFail, "token fail")
			c.Abort()
			return
		}

		if role := c.GetString(constants.ContextKeyRole); role != constants.RoleAdmin {
			logger.Warn("Non-admin user attempted to access admin resource: user=%s role=%s", sanitization.SanitizeLogValue(username), role)
			utils.HandleAPIError(c, errors.New("admin role required"), common.CodeSoftFail, "permission needed")
			c.Abort()
			return
		}

		logger.Debug("Admin access granted for user: %s", username)
		c.Next()
	}
}
