package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-scheduler/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestSessionContext_SetsIDFromHeader(t *testing.T) {
	var got string
	var ok bool
	h := SessionContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetSessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeader, "  tab-1 ")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ok)
	assert.Equal(t, "tab-1", got)
}

func TestSessionContext_MissingHeaderPassesThrough(t *testing.T) {
	called := false
	h := SessionContext(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := GetSessionID(r.Context())
		assert.False(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, called)
}

func TestRequestLogger_LogsStatusAndSession(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Writer: &buf})

	h := chimw.RequestID(SessionContext(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))))

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	req.Header.Set(SessionHeader, "tab-9")
	h.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, `"status":418`)
	assert.Contains(t, out, `"session_id":"tab-9"`)
	assert.Contains(t, out, `"path":"/reservations"`)
	assert.Contains(t, out, `"request_id"`)
}
