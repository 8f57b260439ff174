package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer. Resource specific errors wrap one of
// these so handlers can map them with errors.Is.
var (
	ErrInvalidDate = errors.New("invalid date")
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation failed")
	ErrTransport   = errors.New("store unavailable")

	// ErrDuplicate is the validation flavour for "a record with this id already exists".
	ErrDuplicate = fmt.Errorf("%w: already exists", ErrValidation)
)

// InvalidDateError describes a malformed or impossible calendar date.
type InvalidDateError struct {
	Input  string
	Reason string
}

func (e *InvalidDateError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid date: %s", e.Reason)
	}
	return fmt.Sprintf("invalid date %q: %s", e.Input, e.Reason)
}

func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
