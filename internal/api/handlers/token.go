package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmp-tools/tokenpanel/internal/api/constants"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/common"
	"github.com/dmp-tools/tokenpanel/internal/api/dto/v1/token"
	"github.com/dmp-tools/tokenpanel/internal/api/mapper"
	"github.com/dmp-tools/tokenpanel/internal/repository"
	"github.com/dmp-tools/tokenpanel/internal/service"
	"github.com/dmp-tools/tokenpanel/internal/utils"
)

type TokenHandler struct {
	tokenService *service.TokenService
}

func NewTokenHandler(tokenService *service.TokenService) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
	}
}

func principal(c *gin.Context) mapper.Principal {
	return mapper.Principal{
		Username: c.GetString(constants.ContextKeyUsername),
		Role:     c.GetString(constants.ContextKeyRole),
	}
}

// CreateToken issues a token and answers with the bare token string in data
func (h *TokenHandler) CreateToken(c *gin.Context) {
	req := c.MustGet(constants.ContextKeyCreateToken).(token.CreateRequest)

	response, err := h.tokenService.CreateToken(c.Request.Context(), principal(c), req.Hours())
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			utils.HandleAPIError(c, err, common.CodeBadRequest, "bad request")
			return
		}
		utils.HandleAPIError(c, err, common.CodeSoftFail, "create fail")
		return
	}

	utils.HandleSuccess(c, utils.T(c, "create success"), response.Token)
}

func (h *TokenHandler) ListTokens(c *gin.Context) {
	tokens, err := h.tokenService.ListTokens(c.Request.Context(), principal(c).Username)
	if err != nil {
		utils.HandleAPIError(c, err, common.CodeServerError, "query fail")
		return
	}

	utils.HandleSuccess(c, utils.T(c, "query success"), tokens)
}

func (h *TokenHandler) RevokeToken(c *gin.Context) {
	tokenID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.HandleAPIError(c, err, common.CodeBadRequest, "bad request")
		return
	}

	if err := h.tokenService.RevokeToken(c.Request.Context(), tokenID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.HandleAPIError(c, err, common.CodeSoftFail, "delete fail")
			return
		}
		utils.HandleAPIError(c, err, common.CodeServerError, "delete fail")
		return
	}

	utils.HandleSuccess(c, utils.T(c, "delete success"), nil)
}
