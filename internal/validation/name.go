package validation

import (
	"errors"
	"strings"
)

func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)

	if trimmed == "" {
		return errors.New("name is required")
	}

	if len(trimmed) > 100 {
		return errors.New("name is too long (max 100 characters)")
	}

	return nil
}

// ValidateText checks a required free-text field against a maximum length.
func ValidateText(field, value string, max int) error {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return errors.New(field + " is required")
	}

	if len(trimmed) > max {
		return errors.New(field + " is too long")
	}

	return nil
}
