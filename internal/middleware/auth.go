package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/unionlaw/lawfirm/internal/ctxkeys"
	"github.com/unionlaw/lawfirm/internal/model"
	"github.com/unionlaw/lawfirm/internal/service"
)

// Authenticator resolves a bearer token to a user. *service.AuthService implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// BearerToken extracts the token from "Authorization: Bearer <token>".
// The scheme is matched case-insensitively.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// RequireAuth rejects the request before the handler runs unless the bearer token
// resolves to an existing user, which is then stored in the request context.
func RequireAuth(auth Authenticator) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), BearerToken(r))
			if err != nil {
				if service.IsAuthError(err) {
					w.Header().Set("WWW-Authenticate", "Bearer")
					writeDetail(w, http.StatusUnauthorized, authMessage(err))
					return
				}
				slog.Error("failed to authenticate request", "error", err, "path", r.URL.Path)
				writeDetail(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			ctx := ctxkeys.WithUser(r.Context(), user)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := ctxkeys.User(r.Context())
		if user == nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeDetail(w, http.StatusUnauthorized, authMessage(service.ErrMissingCredentials))
			return
		}
		if !user.IsAdmin() {
			slog.Warn("admin access denied", "user_id", user.ID, "path", r.URL.Path)
			writeDetail(w, http.StatusForbidden, "Admin access required")
			return
		}
		next(w, r)
	}
}

func authMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return "Not authenticated"
	case errors.Is(err, service.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, service.ErrAuthUserNotFound):
		return "User not found"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	default:
		return "Invalid authentication credentials"
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}
