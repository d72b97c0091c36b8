package http

import (
	"errors"
	"log"
	"net/http"

	appDomain "creditnow-backend/internal/domain/application"
	docDomain "creditnow-backend/internal/domain/document"
	productDomain "creditnow-backend/internal/domain/product"
	repayDomain "creditnow-backend/internal/domain/repayment"
	"creditnow-backend/pkg/emi"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// respondError owns the error-to-status mapping for every handler.
// Usecases surface typed failures; nothing else leaks to callers.
func respondError(c echo.Context, err error) error {
	var be *appDomain.BoundsError
	switch {
	case errors.As(err, &be):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: be.Error()})
	case errors.Is(err, appDomain.ErrInvalidInput),
		errors.Is(err, productDomain.ErrUnknownLoanType),
		errors.Is(err, productDomain.ErrInvalidDefinition),
		errors.Is(err, repayDomain.ErrInvalidAmount),
		errors.Is(err, docDomain.ErrInvalidStatus),
		errors.Is(err, emi.ErrInvalidPrincipal),
		errors.Is(err, emi.ErrInvalidTenure),
		errors.Is(err, emi.ErrInvalidRate):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, productDomain.ErrNotFound),
		errors.Is(err, appDomain.ErrNotFound),
		errors.Is(err, repayDomain.ErrNotFound),
		errors.Is(err, docDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, repayDomain.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access denied"})
	case errors.Is(err, appDomain.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	log.Printf("internal error: %v", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Server error"})
}
