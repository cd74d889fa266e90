package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
)

// HandleSuccess sends a success envelope with data
func HandleSuccess(c *gin.Context, message string, data interface{}) {
	c.Set(constants.ContextKeyAppCode, common.CodeOK)
	c.JSON(http.StatusOK, common.NewSuccessResponse(message, data))
}

// HandleFailure sends a failure envelope. The transport status stays 200.
func HandleFailure(c *gin.Context, code int, message string) {
	c.Set(constants.ContextKeyAppCode, code)
	c.JSON(http.StatusOK, common.NewErrorResponse(code, message, nil))
}

// Lang returns the language requested by the caller
func Lang(c *gin.Context) i18n.Lang {
	return i18n.ParseLang(c.GetHeader(i18n.Header))
}

// T translates a base message key into the caller's language
func T(c *gin.Context, key string) string {
	return i18n.Base.Get(Lang(c), key)
}
