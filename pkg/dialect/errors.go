package dialect

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDialectRequired is returned when a dialect is required but not provided.
	ErrDialectRequired = errors.New("dialect is required")
	// ErrUnsupported is returned when a statement uses a feature the
	// dialect cannot express.
	ErrUnsupported = errors.New("unsupported by dialect")
)

// UnsupportedError names the dialect and the feature it lacks.
type UnsupportedError struct {
	Dialect string
	Feature string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }

// UnknownDialectError is returned when a dialect name is not registered.
type UnknownDialectError struct {
	Name      string
	Available []string
}

func (e *UnknownDialectError) Error() string {
	return fmt.Sprintf("unknown dialect %q (available: %s)", e.Name, strings.Join(e.Available, ", "))
}
