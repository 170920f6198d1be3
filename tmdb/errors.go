package tmdb

import (
	"errors"
	"fmt"
)

// Common errors returned by the TMDb client.
var (
	// ErrMissingAPIKey is returned when a request is built without an API key.
	ErrMissingAPIKey = errors.New("tmdb API key is required")

	// ErrNoToken indicates the token endpoint answered without a token.
	ErrNoToken = errors.New("no token in response")

	// ErrInvalidIDCount is returned when a version lookup is given fewer than 1 or more than 50 ids.
	ErrInvalidIDCount = errors.New("version lookups accept between 1 and 50 ids")

	// ErrUnsupportedParams is returned when an operation carries a Params implementation
	// the request builder does not know.
	ErrUnsupportedParams = errors.New("unsupported parameter type")
)

// APIError represents a non-2xx answer from the TMDb API
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("tmdb API error: %s", e.Status)
	}
	return fmt.Sprintf("tmdb API error: status %d", e.StatusCode)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// DecodeError indicates a response body could not be decoded in the expected format
type DecodeError struct {
	Format Format
	Err    error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Format, e.Err)
}

// Unwrap returns the codec error
func (e *DecodeError) Unwrap() error {
	return e.Err
}
