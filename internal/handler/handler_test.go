package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unionlaw/lawfirm/internal/service"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", &service.ValidationError{Field: "title", Message: "title is required"}, http.StatusBadRequest, "title is required"},
		{"too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, "request body too large"},
		{"duplicate email", service.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"expired", fmt.Errorf("authenticate: %w", service.ErrExpiredToken), http.StatusUnauthorized, "Invalid authentication credentials"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "Admin access required"},
		{"case", fmt.Errorf("get case: %w", service.ErrCaseNotFound), http.StatusNotFound, "Case not found"},
		{"video", service.ErrVideoNotFound, http.StatusNotFound, "Video not found"},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/api/cases", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.detail, body["detail"])
		})
	}
}

func TestWriteErrorChallengesOnTokenErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrMalformedToken)
	assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	rec = httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrCaseNotFound)
	assert.Empty(t, rec.Header().Get("WWW-Authenticate"))
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Status string `json:"status"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"completed"}`))
	require.NoError(t, decodeJSON(rec, req, &dst))
	assert.Equal(t, "completed", dst.Status)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":`))
	err := decodeJSON(rec, req, &dst)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "invalid JSON body", verr.Message)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"`+strings.Repeat("x", maxJSONBody)+`"}`))
	err = decodeJSON(rec, req, &dst)
	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, err, &maxErr)
}

type pingerFunc func() error

func (f pingerFunc) Ping(_ context.Context) error { return f() }

func TestHealth(t *testing.T) {
	h := NewHealthHandler(pingerFunc(func() error { return nil }), "Union Law Firm")

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/api/", nil))
	assert.JSONEq(t, `{"message":"Union Law Firm API is running"}`, rec.Body.String())

	down := NewHealthHandler(pingerFunc(func() error { return errors.New("dial tcp: refused") }), "x")
	rec = httptest.NewRecorder()
	down.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"detail":"database unavailable"}`, rec.Body.String())
}
