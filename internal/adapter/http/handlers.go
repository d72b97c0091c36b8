package http

import (
	"net/http"
	"strconv"
	"time"

	auditDomain "creditnow-backend/internal/domain/audit"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// AuditHandler serves the external reporting view over admin actions.
type AuditHandler struct{ repo auditDomain.Repository }

func NewAuditHandler(repo auditDomain.Repository) *AuditHandler {
	return &AuditHandler{repo: repo}
}

func (h *AuditHandler) ListActions(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	actions, err := h.repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, actions)
}
