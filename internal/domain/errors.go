package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrEmptyCatalog is returned when a matcher is built with no schemes
	ErrEmptyCatalog = errors.New("scheme catalog is empty")
)
