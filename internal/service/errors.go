package service

import (
	"errors"

	"github.com/unionlaw/lawfirm/internal/repository"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("admin access required")

	ErrCaseNotFound  = repository.ErrCaseNotFound
	ErrVideoNotFound = repository.ErrVideoNotFound
)

// Authentication failures. All of them surface as 401.
var (
	ErrMissingCredentials = errors.New("not authenticated")
	ErrMalformedToken     = errors.New("invalid authentication credentials")
	ErrExpiredToken       = errors.New("token has expired")
	ErrMissingSubject     = errors.New("token has no subject")
	ErrAuthUserNotFound   = errors.New("user not found")
)

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Message: err.Error()}
}

// IsAuthError reports whether err means the caller is not authenticated.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMalformedToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMissingSubject) ||
		errors.Is(err, ErrAuthUserNotFound) ||
		errors.Is(err, ErrInvalidCredentials)
}
