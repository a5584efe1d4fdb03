package scheduling

import "nailbook/internal/store"

type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationError(msg string) error {
	return &ValidationError{msg: msg}
}

// NotFoundError reports an identifier that did not resolve. Malformed
// identifiers are reported identically to absent ones.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return store.ErrNotFound
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}
