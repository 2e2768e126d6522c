package domain

import "errors"

// Failure kinds surfaced to the HTTP layer. Services translate raw storage
// and processor errors into these; handlers decide status code vs envelope.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrInvalidID          = errors.New("invalid identifier")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUpstreamPayment    = errors.New("payment processor error")
)
