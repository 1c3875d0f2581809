package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyQuery     = errors.New("query is required")
	ErrQueryTooLong   = errors.New("query is too long")
	ErrInvalidEmail   = errors.New("invalid email")
	ErrInvalidLimit   = errors.New("invalid limit")
	ErrInvalidID      = errors.New("invalid work item id")
	ErrInvalidPayload = errors.New("invalid webhook payload")
)

// FieldError reports the input field a validation rule failed on.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
