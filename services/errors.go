package services

import (
	"errors"
	"fmt"
)

// Error kinds carried by every service failure. The HTTP boundary maps a
// kind to a status code; services never pick status codes themselves.
const (
	KindValidation   = "validation"
	KindNotFound     = "not_found"
	KindConflict     = "conflict"
	KindCapacity     = "capacity"
	KindInvalidState = "invalid_state"
	KindUnauthorized = "unauthorized"
	KindInternal     = "internal"
)

// Error is a service failure with a stable machine-readable kind and a
// human-readable message safe to show in a client toast.
type Error struct {
	Kind    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewError builds a kinded service error.
func NewError(kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ErrKind extracts the kind from err. Anything unkinded is internal.
func ErrKind(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
