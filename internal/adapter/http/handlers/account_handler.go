package handlers

import (
	"errors"
	"net/http"

	request "foampro/internal/adapter/http/dto/request"
	"foampro/internal/usecase"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// NotifyAccountCreated godoc
// @Summary Send the account creation email
// @Tags accounts
// @Accept json
// @Param body body request.AccountNotifyRequest true "New account"
// @Success 204
// @Router /accounts/notify [post]
func (h *AccountHandler) NotifyAccountCreated(c *gin.Context) {
	var payload request.AccountNotifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	if err := h.usecase.NotifyAccountCreated(c.Request.Context(), payload.Message()); err != nil {
		writeError(c, mapAccountError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAccountError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidAccountEmail) {
		return errInvalidRequest
	}
	return mapCommonError(err)
}
