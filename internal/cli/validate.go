package cli

import (
	"errors"
	"strings"
)

// minPasswordLen matches the signup form's requirement.
const minPasswordLen = 6

var (
	errBadEmail         = errors.New("please enter a valid email address")
	errShortPassword    = errors.New("password must be at least 6 characters")
	errPasswordMismatch = errors.New("passwords do not match")
)

// validateEmail checks the shape of an email address: exactly one '@'
// with a non-empty local part and a domain containing a dot. Form-level
// only; the directory is the authority on whether the account exists.
func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return errBadEmail
	}
	domain := email[at+1:]
	if domain == "" || !strings.Contains(domain, ".") ||
		strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return errBadEmail
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errShortPassword
	}
	return nil
}
