package mojang

import (
	"errors"
	"fmt"
)

// Error types for Mojang API operations.
var (
	ErrNotFound          = errors.New("no Minecraft account with that name")
	ErrRateLimitExceeded = errors.New("mojang rate limit exceeded")
	ErrInvalidName       = errors.New("invalid player name")
	ErrAPIUnavailable    = errors.New("mojang API unavailable")
)

// APIError represents an API error with status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("mojang API error (status %d): %s", e.StatusCode, e.Message)
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
