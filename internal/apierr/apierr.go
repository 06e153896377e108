// Package apierr defines the error contract of the API: the sentinel errors
// services and guards return, and the DataError body every failed request is
// rendered as.
package apierr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrNotImplemented is returned by every placeholder business operation.
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrInvalidToken indicates a submitted token failed verification.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrForbidden indicates a verified token is not allowed to perform the request.
	ErrForbidden = errors.New("token not allowed for this request")
)

const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeForbidden        = "FORBIDDEN"
	CodeNotImplemented   = "NOT_IMPLEMENTED"
	CodeInternal         = "INTERNAL_ERROR"
)

// FieldError is a single schema violation, e.g. {"field":"userID","error":"is required"}.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// DataError is the JSON body of every non-2xx response.
type DataError struct {
	Status    string       `json:"status"`
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Errors    []FieldError `json:"errors,omitempty"`
	RequestID string       `json:"requestId,omitempty"`
	Timestamp string       `json:"timestamp"`
}

// HTTPError carries the status and body details for a failed request.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Errors  []FieldError
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error { return e.Err }

// BadRequest reports a body that could not be decoded.
func BadRequest(message string, err error) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: message, Err: err}
}

// Validation reports a decoded body that violates its schema.
func Validation(fields []FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusUnprocessableEntity,
		Code:    CodeValidationFailed,
		Message: "request validation failed",
		Errors:  fields,
	}
}

// Resolve maps any error returned by a handler to the HTTPError it is rendered as.
// Unknown errors become a 500 whose message does not leak the cause.
func Resolve(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, ErrNotImplemented):
		return &HTTPError{Status: http.StatusNotImplemented, Code: CodeNotImplemented, Message: ErrNotImplemented.Error(), Err: err}
	case errors.Is(err, ErrInvalidToken):
		return &HTTPError{Status: http.StatusUnauthorized, Code: CodeInvalidToken, Message: ErrInvalidToken.Error(), Err: err}
	case errors.Is(err, ErrForbidden):
		return &HTTPError{Status: http.StatusForbidden, Code: CodeForbidden, Message: ErrForbidden.Error(), Err: err}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code >= http.StatusInternalServerError {
			return internal(err)
		}
		return &HTTPError{Status: fiberErr.Code, Code: CodeFromStatus(fiberErr.Code), Message: fiberErr.Message}
	}

	return internal(err)
}

func internal(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternal,
		Message: http.StatusText(http.StatusInternalServerError),
		Err:     err,
	}
}

// CodeFromStatus turns a status text into a machine code ("Not Found" -> "NOT_FOUND").
func CodeFromStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return CodeInternal
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
