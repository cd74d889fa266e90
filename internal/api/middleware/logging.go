package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/logging"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

// RequestLogger logs one line per request, including the envelope code.
// The logger decides whether request logging is enabled.
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.LogHTTPRequest(
			c.Request.Method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			c.GetInt(constants.ContextKeyAppCode),
			c.Writer.Size(),
			time.Since(start).String(),
		)
	}
}
