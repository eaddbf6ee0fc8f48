// Package common defines sentinel errors shared across RescueMap
// components. Callers should match them with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential-check failure. Deliberately the same value for an unknown
	// email and a wrong password so the caller cannot tell which emails are
	// registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Registration with an email that already has an account.
	ErrEmailTaken = errors.New("email already registered")
)
