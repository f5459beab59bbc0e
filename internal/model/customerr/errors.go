package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

type ValidationError struct {
	Field string
	Err   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err
	}
	return e.Field + ": " + e.Err
}

func NewValidation(field, msg string) error {
	return &ValidationError{Field: field, Err: msg}
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// Message returns the user facing text of a validation error, or "" for other errors.
func Message(err error) string {
	var target *ValidationError
	if errors.As(err, &target) {
		return target.Error()
	}
	return ""
}
