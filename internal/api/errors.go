package api

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Fallback messages for failures that carry no server-supplied message.
const (
	genericHTTPMessage      = "An error occurred"
	genericTransportMessage = "An unexpected error occurred"
)

// Error is the single normalized shape every API failure collapses to.
// Message is safe to show the user verbatim. Status is the HTTP status
// code, or zero for transport-level failures.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized reports whether the failure was an authentication
// rejection. Callers treat it as a session-reset signal rather than an
// ordinary error.
func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsUnauthorized reports whether err is an API error caused by an
// absent or invalid session.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Unauthorized()
}

// errorBody is the error payload the server returns alongside non-2xx
// statuses.
type errorBody struct {
	Message string `json:"message"`
}

// newStatusError builds the normalized error for a non-2xx response,
// preferring the server-supplied message when one is present.
func newStatusError(status int, body []byte) *Error {
	msg := genericHTTPMessage
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		msg = parsed.Message
	}
	return &Error{Message: msg, Status: status}
}

// newTransportError builds the normalized error for failures below the
// HTTP layer.
func newTransportError() *Error {
	return &Error{Message: genericTransportMessage}
}
