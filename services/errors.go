package services

import (
	"errors"
	"fmt"
)

var (
	// ErrResolution matches every ResolutionError.
	ErrResolution   = errors.New("dataref resolution failed")
	ErrNotFound     = errors.New("dataref not found")
	ErrTypeMismatch = errors.New("dataref type mismatch")
	ErrReadOnly     = errors.New("dataref is read-only")
	ErrInvalidValue = errors.New("invalid dataref value")
)

// ResolutionError is returned when a key cannot be resolved to a host ref of the
// requested type.
type ResolutionError struct {
	Dataref string
	Reason  error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrResolution, e.Dataref, e.Reason)
}

func (e *ResolutionError) Unwrap() error {
	return e.Reason
}

func (e *ResolutionError) Is(target error) bool {
	return target == ErrResolution
}
