package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is an error that knows the status code it should be served with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// NewHTTPErrorf is NewHTTPError with a format string.
func NewHTTPErrorf(statusCode int, format string, args ...any) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: fmt.Sprintf(format, args...)}
}

var ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")

// AsHTTPError unwraps err into an HTTPError. ok is false for plain errors.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he, true
	}
	return nil, false
}
