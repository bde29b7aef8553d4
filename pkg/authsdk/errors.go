package authsdk

import "fmt"

// APIError represents a non-2xx response from the auth service. Message is
// the human-readable `message` field from the JSON body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("authsdk: %d: %s", e.StatusCode, e.Message)
}
