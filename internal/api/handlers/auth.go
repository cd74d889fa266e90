package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/auth"
	"github.com/dmp-tools/tokenpanel/internal/api/middleware"
	"github.com/dmp-tools/tokenpanel/internal/service"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login answers with the session token in data
func (h *AuthHandler) Login(c *gin.Context) {
	req := c.MustGet(constants.ContextKeyLogin).(auth.LoginRequest)

	session, err := h.authService.Login(
		c.Request.Context(),
		req.Username,
		req.Password,
		utils.GetRealIP(c),
		c.Request.UserAgent(),
	)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		utils.HandleAPIError(c, err, common.CodeSoftFail, "user not exist")
		return
	case errors.Is(err, service.ErrWrongPassword):
		utils.HandleAPIError(c, err, common.CodeSoftFail, "wrong password")
		return
	case err != nil:
		utils.HandleAPIError(c, err, common.CodeServerError, "server error")
		return
	}

	utils.HandleSuccess(c, utils.T(c, "login success"), session)
}

// Logout ends the presented session
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context(), middleware.PresentedToken(c)); err != nil {
		utils.HandleAPIError(c, err, common.CodeTokenFail, "token fail")
		return
	}
	utils.HandleSuccess(c, utils.T(c, "delete success"), nil)
}
