package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/auth"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/token"
	"github.com/dmp-tools/tokenpanel/internal/api/sanitization"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

// ValidationMiddleware binds and validates request bodies, storing the
// result in the context for the handler
type ValidationMiddleware struct{}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{}
}

// ValidateLoginRequest validates login request
func (m *ValidationMiddleware) ValidateLoginRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req auth.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleAPIError(c, err, common.CodeBadRequest, "bad request")
			c.Abort()
			return
		}
		req.Username = sanitization.SanitizeUsername(req.Username)

		c.Set(constants.ContextKeyLogin, req)
		c.Next()
	}
}

// ValidateCreateTokenRequest rejects negative lifetimes with code 400
func (m *ValidationMiddleware) ValidateCreateTokenRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req token.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.HandleAPIError(c, err, common.CodeBadRequest, "bad request")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyCreateToken, req)
		c.Next()
	}
}
