package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	stdhttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	docDomain "creditnow-backend/internal/domain/document"
	"creditnow-backend/internal/domain/uow"
	"creditnow-backend/internal/testutil/auditmock"
	"creditnow-backend/internal/testutil/documentmock"
	"creditnow-backend/internal/testutil/uowmock"
	ucDocument "creditnow-backend/internal/usecase/document"

	"github.com/labstack/echo/v4"
)

func multipartBody(t *testing.T, filename, docType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("document", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if docType != "" {
		_ = w.WriteField("documentType", docType)
	}
	_ = w.Close()
	return buf, w.FormDataContentType()
}

func documentHandler(t *testing.T, docs *documentmock.Repo) *DocumentHandler {
	t.Helper()
	tx := &uowmock.UoW{Repos: uow.Repos{Documents: docs, Audit: &auditmock.Repo{}}}
	return NewDocumentHandler(ucDocument.NewUsecase(docs, tx), t.TempDir())
}

func TestUploadDocument_Success(t *testing.T) {
	e := newEchoWithValidator()
	var created *docDomain.UserDocument
	docs := &documentmock.Repo{
		CreateFn: func(ctx context.Context, d *docDomain.UserDocument) error {
			d.ID = 3
			created = d
			return nil
		},
	}
	h := documentHandler(t, docs)

	body, ctype := multipartBody(t, "ktp.png", "ID_CARD", []byte("binary-ish"))
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/documents/upload", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser)

	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body.String())
	}
	if created == nil || created.UserID != testUser || created.Status != docDomain.StatusPending {
		t.Fatalf("stored document wrong: %+v", created)
	}
	// the file must really be on disk
	if _, err := os.Stat(created.DocumentURL); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
	if !strings.HasSuffix(filepath.Base(created.DocumentURL), "ktp.png") {
		t.Fatalf("stored name should keep the original base: %s", created.DocumentURL)
	}
}

func TestUploadDocument_RejectsExtension(t *testing.T) {
	e := newEchoWithValidator()
	h := documentHandler(t, &documentmock.Repo{})

	body, ctype := multipartBody(t, "malware.exe", "ID_CARD", []byte("nope"))
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/documents/upload", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser)

	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestUploadDocument_MissingType(t *testing.T) {
	e := newEchoWithValidator()
	h := documentHandler(t, &documentmock.Repo{})

	body, ctype := multipartBody(t, "ktp.jpg", "", []byte("img"))
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/documents/upload", body)
	req.Header.Set(echo.HeaderContentType, ctype)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testUser)

	if err := h.Upload(c); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body: %s", rec.Code, rec.Body.String())
	}
}

func TestVerifyDocument_Success(t *testing.T) {
	e := newEchoWithValidator()
	doc := &docDomain.UserDocument{ID: 3, UserID: testUser, Status: docDomain.StatusPending}
	docs := &documentmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*docDomain.UserDocument, error) {
			if id != doc.ID {
				return nil, docDomain.ErrNotFound
			}
			return doc, nil
		},
	}
	h := documentHandler(t, docs)

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/documents/3/verify", mustJSON(map[string]string{"status": "VERIFIED"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Verify(c); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	var got docDomain.UserDocument
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.Status != docDomain.StatusVerified {
		t.Fatalf("status not updated: %+v", got)
	}
}

func TestVerifyDocument_BadStatus(t *testing.T) {
	e := newEchoWithValidator()
	h := documentHandler(t, &documentmock.Repo{})

	req := httptest.NewRequest(stdhttp.MethodPut, "/api/documents/3/verify", mustJSON(map[string]string{"status": "MAYBE"}))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, testAdmin)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Verify(c); err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if rec.Code != stdhttp.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422, body: %s", rec.Code, rec.Body.String())
	}
}
