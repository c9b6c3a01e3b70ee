package telegraph

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is returned when a page path or URL does not look like a
// telegra.ph path.
var ErrInvalidPath = errors.New("telegraph: invalid page path or URL")

// ErrNoToken is returned when an authenticated call is attempted and no
// access token could be resolved or created.
var ErrNoToken = errors.New("telegraph: no access token available")

// ErrEmptyTitle is returned when a page create call is missing its title.
var ErrEmptyTitle = errors.New("telegraph: page title must not be empty")

// APIError is an error response from the Telegraph API: the HTTP call
// succeeded but the envelope carried ok=false.
type APIError struct {
	// Endpoint is the API method that failed, e.g. "createPage".
	Endpoint string

	// Message is the error string from the response envelope.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("telegraph: %s: %s", e.Endpoint, e.Message)
}
