package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across services and repositories.
var (
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Names of the three write steps in the registration pipeline, in
// execution order.
const (
	StepRecord  = "record"
	StepCounter = "counter"
	StepHistory = "history"
)

// PartialFailureError reports that a registration write step failed after
// zero or more earlier steps had already committed. Earlier writes are not
// rolled back; Step names the step that failed.
type PartialFailureError struct {
	Step string
	Err  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("registration step %q failed: %v", e.Step, e.Err)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}
