package value

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned when a Value is read as the wrong host type.
var ErrTypeMismatch = errors.New("value type mismatch")

// MismatchError describes a failed extraction.
type MismatchError struct {
	Want Kind
	Got  Kind
	// Null is set when the kind matched but the value was NULL.
	Null bool
}

func (e *MismatchError) Error() string {
	if e.Null && e.Want == e.Got {
		return fmt.Sprintf("value type mismatch: %s is NULL", e.Got)
	}
	return fmt.Sprintf("value type mismatch: want %s, got %s", e.Want, e.Got)
}

// Unwrap lets errors.Is match ErrTypeMismatch.
func (e *MismatchError) Unwrap() error { return ErrTypeMismatch }
