package auth

import "errors"

var (
	// ErrInvalidToken is returned when the provided token fails validation
	ErrInvalidToken = errors.New("invalid token")

	// ErrMissingAuth is returned when no credentials accompany the request
	ErrMissingAuth = errors.New("no authentication provided")
)
