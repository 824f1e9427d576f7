package validation

import (
	"errors"
	"net/mail"
)

// Longest address SMTP will carry (RFC 5321).
const maxEmailLength = 254

// ValidateEmail accepts a bare addr-spec only. Display-name forms such as
// "Jane <jane@example.com>" parse under RFC 5322 but are rejected here.
func ValidateEmail(email string) error {
	switch {
	case email == "":
		return errors.New("email address is required")
	case len(email) > maxEmailLength:
		return errors.New("email address is too long")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("invalid email address format")
	}

	return nil
}
