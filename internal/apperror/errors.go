package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record already exists")
)

// ValidationError marks a malformed or incomplete request payload, caught
// before any external call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, v ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, v...)}
}

// SchemaValidationError marks model output that failed to parse as JSON or
// failed schema validation. No repair or re-prompt is attempted.
type SchemaValidationError struct {
	Stage string // "parse" or "validate"
	Err   error
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("model output failed %s step: %v", e.Stage, e.Err)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Err
}

// PersistenceError marks a store write failure that happened after a
// successful generation step.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
