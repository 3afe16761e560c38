package service

import "errors"

var (
	ErrInvalid       = errors.New("invalid")
	ErrNotConfigured = errors.New("not configured")
	ErrUpstream      = errors.New("upstream failure")
)

// ValidationError carries the client-facing reason a request was rejected.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
