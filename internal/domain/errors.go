package domain

import "errors"

// Error kinds. Every error returned by the service layer either unwraps to one
// of these or is an unexpected failure.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidState         = errors.New("invalid state")
	ErrConflict             = errors.New("conflict")
	ErrInvalidReference     = errors.New("invalid reference")
	ErrValidation           = errors.New("validation error")
	ErrAuthenticationFailed = errors.New("authentication failed")
)

// Error is a user-facing error of a given kind.
type Error struct {
	Kind    error
	Message string
}

func NewError(kind error, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}
