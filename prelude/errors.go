package prelude

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by sequence operations.
var (
	// ErrInvalidArgument is returned when a call argument is structurally
	// unusable: a nil function where a callback is required, or an empty
	// type name.
	ErrInvalidArgument = errors.New("prelude: invalid argument")

	// ErrEmptySequence is returned by operations that need at least one
	// element, such as [Minimum] and [Maximum].
	ErrEmptySequence = errors.New("prelude: operation on empty sequence")
)

func errNilFunc(op string) error {
	return fmt.Errorf("%w: %s requires a non-nil function", ErrInvalidArgument, op)
}
