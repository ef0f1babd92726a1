package dynarr

import (
	"errors"
	"fmt"
)

// Domain errors for container operations.
var (
	// ErrInvalidCapacity indicates a requested capacity below 1.
	ErrInvalidCapacity = errors.New("dynarr: capacity must be at least 1")

	// ErrOutOfRange indicates an index at or beyond the current length.
	ErrOutOfRange = errors.New("dynarr: index out of range")

	// ErrEmpty indicates removal or front/back access on an empty array.
	ErrEmpty = errors.New("dynarr: array is empty")
)

// IndexError wraps ErrOutOfRange with the offending index and the
// length it was checked against.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dynarr: index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
