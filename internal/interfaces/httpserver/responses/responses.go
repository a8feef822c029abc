// Package responses contains HTTP response DTOs shared by all endpoints.
// Resource-specific types live in the room and recording subpackages.
package responses

// ErrorResponse is the body of every error answer.
type ErrorResponse struct {
	Message   string `json:"message"`
	Type      string `json:"type"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// MessageResponse is a confirmation with no payload.
type MessageResponse struct {
	Message string `json:"message"`
}
