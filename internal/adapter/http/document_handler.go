package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"creditnow-backend/internal/adapter/middleware"
	docDomain "creditnow-backend/internal/domain/document"
	ucDocument "creditnow-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

const maxDocumentSize = 5 << 20 // 5 MB

type DocumentHandler struct {
	uc        *ucDocument.Usecase
	uploadDir string
}

func NewDocumentHandler(uc *ucDocument.Usecase, uploadDir string) *DocumentHandler {
	return &DocumentHandler{uc: uc, uploadDir: uploadDir}
}

// Upload accepts a multipart form with a "document" file part and a
// "documentType" field. Only jpg/jpeg/png up to 5 MB are stored.
func (h *DocumentHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("document")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "no file uploaded"})
	}
	if fh.Size > maxDocumentSize {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file exceeds the 5 MB limit"})
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png":
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "only .jpg, .jpeg and .png files are allowed"})
	}

	docType := c.FormValue("documentType")
	if docType == "" {
		docType = c.FormValue("type")
	}
	if docType == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing documentType"})
	}

	src, err := fh.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return respondError(c, err)
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(fh.Filename))
	path := filepath.Join(h.uploadDir, name)
	dst, err := os.Create(path)
	if err != nil {
		return respondError(c, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return respondError(c, err)
	}

	dto, err := h.uc.Upload(c.Request().Context(), ucDocument.UploadInput{
		UserID:       middleware.UserID(c),
		DocumentType: docType,
		DocumentURL:  path,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DocumentHandler) MyDocuments(c echo.Context) error {
	docs, err := h.uc.MyDocuments(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) Pending(c echo.Context) error {
	docs, err := h.uc.Pending(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

type verifyReq struct {
	Status string `json:"status" validate:"required,oneof=VERIFIED REJECTED"`
}

func (h *DocumentHandler) Verify(c echo.Context) error {
	docID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid document id"})
	}
	var req verifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Verify(c.Request().Context(), docID, docDomain.Status(req.Status), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
