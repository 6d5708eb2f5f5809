package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")
)

// ValidationError carries the ordered, human-readable messages produced by a
// failed validation pass. Use errors.Is(err, ErrValidation) for simple checks,
// or errors.As(err, &verr) to read verr.Messages for display.
type ValidationError struct {
	Messages []string
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(msgs ...string) *ValidationError {
	return &ValidationError{Messages: msgs}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(e.Messages, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StorageError describes a failed read or write against the persisted store.
// It matches ErrStorage via errors.Is and exposes the underlying cause through
// errors.Unwrap chains.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s: %v", ErrStorage.Error(), e.Op, e.Err)
	}
	return fmt.Sprintf("%s: %s %s: %v", ErrStorage.Error(), e.Op, e.Path, e.Err)
}

// Is reports whether target is ErrStorage.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
