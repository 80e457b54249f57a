package domain

import "errors"

// Sentinel errors shared across services and repositories. Handlers map
// these to HTTP statuses; everything else surfaces as an internal error.
var (
	// ErrNotFound covers both "no such record" and "not owned by the
	// caller" -- the two are deliberately indistinguishable.
	ErrNotFound = errors.New("record not found")

	ErrEmailTaken = errors.New("email already taken")

	ErrInvalidCredentials = errors.New("invalid email or password")
)
