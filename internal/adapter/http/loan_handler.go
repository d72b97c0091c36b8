package http

import (
	"net/http"

	"creditnow-backend/internal/adapter/middleware"
	appDomain "creditnow-backend/internal/domain/application"
	ucApplication "creditnow-backend/internal/usecase/application"
	ucApproval "creditnow-backend/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct {
	apps      *ucApplication.Usecase
	approvals *ucApproval.Usecase
}

func NewLoanHandler(apps *ucApplication.Usecase, approvals *ucApproval.Usecase) *LoanHandler {
	return &LoanHandler{apps: apps, approvals: approvals}
}

type applyReq struct {
	ProductID uint64  `json:"productId"`
	LoanType  string  `json:"loanType"`
	Amount    float64 `json:"amount"   validate:"required,gt=0,dec2"`
	Tenure    int     `json:"tenure"   validate:"gte=0"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.apps.Apply(c.Request().Context(), ucApplication.ApplyInput{
		UserID:    middleware.UserID(c),
		ProductID: req.ProductID,
		LoanType:  req.LoanType,
		Amount:    req.Amount,
		Tenure:    req.Tenure,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) MyLoans(c echo.Context) error {
	loans, err := h.apps.MyLoans(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) ListApplications(c echo.Context) error {
	loans, err := h.apps.ListAll(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

type statusReq struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

// UpdateStatus drives the approval state machine; on APPROVED the full
// repayment schedule is generated in the same transaction.
func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	appID := c.Param("id")
	if appID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing application id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.approvals.Transition(c.Request().Context(), ucApproval.TransitionInput{
		ApplicationID: appID,
		Target:        appDomain.Status(req.Status),
		AdminID:       middleware.UserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
