package meet

import (
	"encoding/json"
	"errors"
	"fmt"
)

const defaultAPIErrorMessage = "Failed to perform request to OpenVidu Meet API"

// APIError is a non-2xx answer from the Meet API. The status is forwarded to
// our own callers.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meet api responded %d: %s", e.StatusCode, e.Message)
}

// NetworkError is a failure to reach the Meet API or to read its answer.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("meet api %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from err.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// newAPIError builds an APIError from a raw error body.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if len(body) > 0 && json.Unmarshal(body, &payload) == nil {
		msg = payload.Message
		if msg == "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = defaultAPIErrorMessage
	}
	return &APIError{StatusCode: status, Message: msg}
}
