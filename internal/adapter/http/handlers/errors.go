package handlers

import (
	"errors"
	"net/http"

	"foampro/internal/domain/lifecycle"
	"foampro/internal/domain/warehouse"
	"foampro/internal/usecase"
	"foampro/internal/usecase/interfaces"
	"foampro/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError classifies errors shared by every resource: validation,
// state preconditions, stale versions and collaborator failures. Messages of
// the first three classes name the unmet condition and are safe to show.
func mapCommonError(err error) *pkg.AppError {
	var ext *usecase.ExternalError
	switch {
	case errors.As(err, &ext):
		return pkg.NewDomainError("EXTERNAL_SERVICE_ERROR", ext.Service+" unavailable", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainError("VERSION_CONFLICT", "Record was modified by another user; reload and retry", err, http.StatusConflict)
	case errors.Is(err, lifecycle.ErrFinancialsLocked):
		return pkg.NewDomainError("FINANCIALS_LOCKED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, lifecycle.ErrPrecondition):
		return pkg.NewDomainError("PRECONDITION_FAILED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, lifecycle.ErrValidation),
		errors.Is(err, warehouse.ErrInvalidItem),
		errors.Is(err, warehouse.ErrInvalidQuantity),
		errors.Is(err, warehouse.ErrInvalidEquipmentStatus),
		errors.Is(err, warehouse.ErrEmptyOrder):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
