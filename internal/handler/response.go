package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/unionlaw/lawfirm/internal/service"
)

// Maximum accepted JSON body.
const maxJSONBody = 1 << 20

type message struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

// writeError maps service errors onto status codes. Anything unrecognised is a 500
// whose cause is logged but never sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &verr):
		writeDetail(w, http.StatusBadRequest, verr.Error())
	case errors.As(err, &maxErr):
		writeDetail(w, http.StatusRequestEntityTooLarge, "request body too large")
	case errors.Is(err, service.ErrEmailAlreadyExists):
		writeDetail(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeDetail(w, http.StatusUnauthorized, "Invalid email or password")
	case service.IsAuthError(err):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, "Invalid authentication credentials")
	case errors.Is(err, service.ErrForbidden):
		writeDetail(w, http.StatusForbidden, "Admin access required")
	case errors.Is(err, service.ErrCaseNotFound):
		writeDetail(w, http.StatusNotFound, "Case not found")
	case errors.Is(err, service.ErrVideoNotFound):
		writeDetail(w, http.StatusNotFound, "Video not found")
	default:
		slog.Error("request failed", "error", err, "method", r.Method, "path", r.URL.Path)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return &service.ValidationError{Message: "invalid JSON body"}
	}
	return nil
}
