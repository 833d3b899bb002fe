package serverseeker

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for ServerSeeker API operations.
var (
	// ErrInvalidArgument is returned before any request is sent when the
	// caller passes a malformed or contradictory argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransport is returned when the request could not be sent or no
	// response was received.
	ErrTransport = errors.New("serverseeker API unavailable")

	// ErrRemote is matched by every *APIError.
	ErrRemote = errors.New("serverseeker API error")

	// ErrRateLimitExceeded is matched by an *APIError with status 429.
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	// ErrParse is returned when the response body is not the expected JSON.
	ErrParse = errors.New("invalid API response")
)

// APIError represents a response with a non-success HTTP status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("serverseeker API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("serverseeker API error (status %d): %s", e.StatusCode, e.Message)
}

// Is reports whether target is ErrRemote, or ErrRateLimitExceeded for a 429.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrRateLimitExceeded:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// NewAPIError creates a new APIError.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}

func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
