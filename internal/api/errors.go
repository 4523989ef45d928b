package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultErrorMessage is used when a failed response carries no usable detail.
const DefaultErrorMessage = "Request failed"

var (
	// ErrTransport wraps network failures: the request never produced a response.
	ErrTransport = errors.New("network error")
	// ErrDecode wraps a 2xx response whose body does not match the expected shape.
	ErrDecode = errors.New("unexpected response")
)

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return DefaultErrorMessage
}

// newError extracts the string "detail" field of an error body if present.
// Structured details (validation lists) and non-JSON bodies fall back to the
// default message.
func newError(status int, body []byte) *Error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	e := &Error{StatusCode: status}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return e
	}
	var detail string
	if err := json.Unmarshal(payload.Detail, &detail); err == nil {
		e.Detail = detail
	}
	return e
}

// ValidationError is a client-side check that failed before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return nil
}
