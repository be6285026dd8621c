package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/empoderata/academy/internal/app/system/respond"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestJSON_SetsStatusAndContentType(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.JSON(rec, req, http.StatusCreated, map[string]bool{"ok": true})

	if rec.Code != http.StatusCreated {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusCreated)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type: got %q", ct)
	}
	if body := decode(t, rec); body["ok"] != true {
		t.Errorf("body: got %v", body)
	}
}

func TestError_OmitsEmptyDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	respond.Error(rec, req, http.StatusBadRequest, "Invalid request body")

	body := decode(t, rec)
	if body["error"] != "Invalid request body" {
		t.Errorf("error: got %v", body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Error("details should be omitted when empty")
	}
}

func TestErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	respond.ErrorDetails(rec, req, http.StatusInternalServerError, "Failed to process request", "deadline exceeded")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d", rec.Code)
	}
	if body := decode(t, rec); body["details"] != "deadline exceeded" {
		t.Errorf("details: got %v", body["details"])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	respond.MethodNotAllowed(rec, httptest.NewRequest(http.MethodPut, "/api/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status: got %d, want 405", rec.Code)
	}
	if body := decode(t, rec); body["error"] != "Method not allowed" {
		t.Errorf("error: got %v", body["error"])
	}
}
