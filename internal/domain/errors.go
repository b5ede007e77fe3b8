package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input data")
	ErrDuplicate    = errors.New("duplicate record")
	ErrForeignKey   = errors.New("foreign key violation")
)

// ValidationError rejects malformed input before any persistence attempt.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConstraintError surfaces a uniqueness or referential-integrity violation
// from the storage layer. It matches either ErrDuplicate or ErrForeignKey
// through errors.Is, depending on Kind.
type ConstraintError struct {
	Table string
	Kind  error
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("storage constraint on %s: %v: %v", e.Table, e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func (e *ConstraintError) Is(target error) bool { return target == e.Kind }
