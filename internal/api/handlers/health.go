package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/utils"
	"github.com/dmp-tools/tokenpanel/internal/version"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, "Health check OK", nil)
}

// Version reports the server build
func (h *HealthHandler) Version(c *gin.Context) {
	utils.HandleSuccess(c, "", version.GetBuildInfo())
}
