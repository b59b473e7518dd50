package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorMessageDefault is shown to the user when the backend did not supply a
// usable message, e.g. on transport failures or unstructured 500 responses.
const ErrorMessageDefault = "We ran into an error while processing your request. Please try again later."

// FieldErrors maps a field name to its ordered validation messages. Keys are
// the backend's field names and pass through verbatim.
type FieldErrors map[string][]string

// Get returns the messages for a field, nil when the field has none.
func (e FieldErrors) Get(field string) []string {
	return e[field]
}

// First returns the first message for a field, "" when the field has none.
func (e FieldErrors) First(field string) string {
	if messages := e[field]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// All returns the underlying mapping.
func (e FieldErrors) All() map[string][]string {
	return e
}

// IsEmpty reports whether no field has any message.
func (e FieldErrors) IsEmpty() bool {
	return len(e) == 0
}

// ResponseError is a non-2xx answer from the backend, normalized into the
// shape the UI layer renders: a user-visible message plus optional per-field
// validation messages.
type ResponseError struct {
	StatusCode int
	Status     string
	Message    string
	Errors     FieldErrors
}

func (e *ResponseError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("backend responded with status code %d", e.StatusCode)
	}
	return e.Message
}

// envelope matches every response body the backend emits. Data stays raw so
// the same type decodes entity payloads, validation maps and bare strings.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// newResponseError normalizes a failed response body. Bodies that do not
// match the error envelope (HTML error pages, empty bodies, plain strings)
// yield an empty field mapping and the default message.
func newResponseError(statusCode int, body []byte) *ResponseError {
	responseError := &ResponseError{
		StatusCode: statusCode,
		Errors:     FieldErrors{},
	}

	var payload envelope
	if err := json.Unmarshal(body, &payload); err != nil {
		return responseError
	}

	responseError.Status = payload.Status
	responseError.Message = strings.TrimSpace(payload.Message)

	// 422 responses carry {field: [message, ...]}; 400/401 carry a string.
	var fields map[string][]string
	if err := json.Unmarshal(payload.Data, &fields); err == nil {
		for field, messages := range fields {
			responseError.Errors[field] = messages
		}
	}

	return responseError
}

// MessageFromError extracts the user-visible message for any error returned
// by this package, falling back to ErrorMessageDefault.
func MessageFromError(err error) string {
	var responseError *ResponseError
	if errors.As(err, &responseError) && responseError.Message != "" {
		return responseError.Message
	}
	return ErrorMessageDefault
}

// FieldErrorsFromError extracts the normalized field mapping for any error
// returned by this package. Errors without one yield an empty mapping.
func FieldErrorsFromError(err error) FieldErrors {
	var responseError *ResponseError
	if errors.As(err, &responseError) && responseError.Errors != nil {
		return responseError.Errors
	}
	return FieldErrors{}
}
