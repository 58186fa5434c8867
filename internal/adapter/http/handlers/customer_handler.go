package handlers

import (
	"errors"
	"net/http"

	request "foampro/internal/adapter/http/dto/request"
	response "foampro/internal/adapter/http/dto/response"
	"foampro/internal/usecase"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param body body request.CustomerRequest true "Customer"
// @Success 201 {object} usecase.CustomerResult
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.Create(c.Request.Context(), payload.Profile(""))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListCustomers godoc
// @Summary List customers by name
// @Tags customers
// @Produce json
// @Param include_archived query bool false "Include archived customers"
// @Success 200 {array} entities.CustomerProfile
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("include_archived") == "true")
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	cust, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	cust, err := h.usecase.Update(c.Request.Context(), payload.Profile(c.Param("id")))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) ArchiveCustomer(c *gin.Context) {
	cust, err := h.usecase.Archive(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (h *CustomerHandler) ListLogs(c *gin.Context) {
	logs, err := h.usecase.Logs(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, logs)
}

func (h *CustomerHandler) AddLogEntry(c *gin.Context) {
	var payload request.LogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	entry, err := h.usecase.AddLogEntry(c.Request.Context(), c.Param("id"), payload.Entry())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *CustomerHandler) ListEstimates(c *gin.Context) {
	recs, err := h.usecase.Estimates(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(recs))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerName), errors.Is(err, usecase.ErrInvalidLogEntry), errors.Is(err, usecase.ErrInvalidLogType):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return mapCommonError(err)
	}
}
