package http

import (
	"net/http"

	ucProduct "creditnow-backend/internal/usecase/product"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct{ uc *ucProduct.Usecase }

func NewProductHandler(uc *ucProduct.Usecase) *ProductHandler { return &ProductHandler{uc: uc} }

type createProductReq struct {
	Title        string  `json:"title"        validate:"required"`
	Description  string  `json:"description"`
	InterestRate float64 `json:"interestRate" validate:"gte=0"`
	MinAmount    float64 `json:"minAmount"    validate:"required,gt=0,dec2"`
	MaxAmount    float64 `json:"maxAmount"    validate:"required,gt=0,dec2"`
	TenureMonths int     `json:"tenureMonths" validate:"required,gte=1"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), ucProduct.CreateProductInput(req))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}
