// errors/status_error.go
package errors

import "net/http"

// StatusError is raised by the audit facade. It carries the HTTP status the
// caller should see and wraps one of ErrUnauthorized, ErrForbidden or
// ErrSystem together with an optional cause.
type StatusError struct {
	StatusCode int
	Message    string
	Kind       error
	Cause      error
}

func (e *StatusError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *StatusError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

func NewUnauthorizedError(message string) *StatusError {
	return &StatusError{StatusCode: http.StatusUnauthorized, Message: message, Kind: ErrUnauthorized}
}

func NewForbiddenError(message string) *StatusError {
	return &StatusError{StatusCode: http.StatusForbidden, Message: message, Kind: ErrForbidden}
}

func NewSystemError(message string, cause error) *StatusError {
	return &StatusError{StatusCode: http.StatusInternalServerError, Message: message, Kind: ErrSystem, Cause: cause}
}
