package entity

import "errors"

var (
	// ErrNotFound marks the expected absence of an entity. Callers map it to
	// a 404; it is never an exceptional condition.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a caller cannot tell the two apart.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)
