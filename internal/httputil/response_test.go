package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/banshee-data/sceneplot/internal/monitoring"
)

func quietLogs(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	prev := monitoring.Logf
	monitoring.Logf = func(format string, args ...interface{}) {
		lines = append(lines, format)
	}
	t.Cleanup(func() { monitoring.Logf = prev })
	return &lines
}

func TestWriteJSONError(t *testing.T) {
	logged := quietLogs(t)

	rec := httptest.NewRecorder()
	WriteJSONError(rec, http.StatusBadRequest, "test error")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %s, want application/json", ct)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "test error" {
		t.Errorf("error = %s, want 'test error'", resp["error"])
	}
	if len(*logged) != 1 {
		t.Errorf("logged %d lines, want 1", len(*logged))
	}
}

func TestErrorShortcuts(t *testing.T) {
	quietLogs(t)

	tests := []struct {
		name   string
		write  func(http.ResponseWriter, string)
		status int
	}{
		{"BadRequest", BadRequest, http.StatusBadRequest},
		{"NotFound", NotFound, http.StatusNotFound},
		{"InternalServerError", InternalServerError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec, "msg")
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestWriteRendered(t *testing.T) {
	quietLogs(t)

	rec := httptest.NewRecorder()
	WriteRendered(rec, "text/html; charset=utf-8", func(w io.Writer) error {
		_, err := io.WriteString(w, "<p>ok</p>")
		return err
	})
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content-type = %s", ct)
	}
	if cl := rec.Header().Get("Content-Length"); cl != "9" {
		t.Errorf("content-length = %s, want 9", cl)
	}
	if rec.Body.String() != "<p>ok</p>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestWriteRendered_Failure(t *testing.T) {
	quietLogs(t)

	rec := httptest.NewRecorder()
	WriteRendered(rec, "image/png", func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return errors.New("boom")
	})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content-type = %s, want application/json", ct)
	}
	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] != "render error: boom" {
		t.Errorf("error = %q", resp["error"])
	}
}
