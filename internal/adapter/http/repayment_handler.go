package http

import (
	"net/http"

	"creditnow-backend/internal/adapter/middleware"
	ucRepayment "creditnow-backend/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
)

type RepaymentHandler struct{ uc *ucRepayment.Usecase }

func NewRepaymentHandler(uc *ucRepayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type payReq struct {
	RepaymentID uint64  `json:"repaymentId" validate:"required"`
	Amount      float64 `json:"amount"      validate:"required,gt=0,dec2"`
	Method      string  `json:"method"      validate:"required"`
}

func (h *RepaymentHandler) Pay(c echo.Context) error {
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Pay(c.Request().Context(), ucRepayment.PayInput{
		RepaymentID: req.RepaymentID,
		Amount:      req.Amount,
		Method:      req.Method,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RepaymentHandler) Schedule(c echo.Context) error {
	loanID := c.Param("loanId")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan id"})
	}
	rows, err := h.uc.Schedule(c.Request().Context(), loanID, middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}
