package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/logging"
)

// LogError logs an error with a message using the singleton logger
func LogError(err error, message string) {
	logging.GetGlobalLogger().Error("%s: %v", message, err)
}

// HandleAPIError logs err and answers with a localized failure envelope.
// messageKey is a base message key such as "bad request".
func HandleAPIError(c *gin.Context, err error, code int, messageKey string) {
	logging.GetGlobalLogger().LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		http.StatusOK,
		messageKey,
		err,
	)

	HandleFailure(c, code, T(c, messageKey))
}
