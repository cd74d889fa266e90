package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
	"github.com/dmp-tools/tokenpanel/internal/logging"
)

// Recovery turns a panic into a code 500 envelope and logs the stack
func Recovery(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("[PANIC] %s %s | %s | %s | %v\n%s",
					c.Request.Method,
					c.Request.URL.Path,
					c.ClientIP(),
					c.GetString(constants.ContextKeyRequestID),
					err,
					debug.Stack(),
				)

				lang := i18n.ParseLang(c.GetHeader(i18n.Header))
				c.Set(constants.ContextKeyAppCode, common.CodeServerError)
				c.AbortWithStatusJSON(http.StatusOK, common.NewErrorResponse(
					common.CodeServerError,
					i18n.Base.Get(lang, "server error"),
					nil,
				))
			}
		}()

		c.Next()
	}
}
