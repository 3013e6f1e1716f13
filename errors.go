package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when popping or removing from an empty vector.
	ErrEmpty = errors.New("bitvec: vector is empty")

	// ErrOutOfRange is returned when an index or an iterator step falls outside
	// of the valid bounds of the vector.
	ErrOutOfRange = errors.New("bitvec: index out of range")
)

// errIndex wraps ErrOutOfRange with the offending index and the valid bound.
func errIndex(index, size int) error {
	return fmt.Errorf("%w: index %d with size %d", ErrOutOfRange, index, size)
}
