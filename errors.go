package guard

import (
	"errors"
	"fmt"
)

// Failure kinds. Every raised *Error unwraps to exactly one of these, so a
// recovering caller can classify failures with errors.Is.
var (
	// ErrInvalidArgument covers empty, blank, zero, nil and failed-condition checks.
	ErrInvalidArgument = errors.New("guard: invalid argument")

	// ErrOutOfRange covers range and membership checks.
	ErrOutOfRange = errors.New("guard: argument out of range")
)

// Error is the failure signal raised when a check is violated. It carries the
// failure kind, the name of the offending argument and a human-readable
// message naming the violation.
type Error struct {
	Kind    error // ErrInvalidArgument or ErrOutOfRange
	Arg     string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Arg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Arg, e.Message)
}

// Unwrap exposes the failure kind to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Kind }

func invalidArg(name []string, msg string) *Error {
	return &Error{Kind: ErrInvalidArgument, Arg: argName(name), Message: msg}
}

func outOfRange(name []string, msg string) *Error {
	return &Error{Kind: ErrOutOfRange, Arg: argName(name), Message: msg}
}
