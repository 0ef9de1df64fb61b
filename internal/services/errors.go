package services

import "errors"

// Domain errors surfaced to the handlers. Handlers map these onto validation
// messages or HTTP status codes; anything else is a server error.
var (
	ErrBookNotFound    = errors.New("book not found")
	ErrBookUnavailable = errors.New("book already borrowed")
	ErrMissingFields   = errors.New("title and author are required")
	ErrMissingUsername = errors.New("username is required")
)
