// Package guard provides fluent precondition checks for function arguments
// and other values that must satisfy a condition before use.
//
// Every check inspects a single value and either returns it unchanged or
// raises a structured failure by panicking with a *Error. Because the success
// path is the identity function, checks compose by nesting or by reusing the
// returned value, and the first violated check aborts the whole chain before
// any later check runs.
//
// # Architecture
//
// Each source file groups a family of checks for one kind of violation
// (string_guards.go, zero_guards.go, range_guards.go, ...). Every check comes
// in two shapes: the plain form takes an optional argument name and raises a
// *Error with a descriptive default message, and the ...With form takes a
// caller-supplied error and raises it verbatim. The plain form only builds
// the message and delegates, so the raise-or-return decision lives in exactly
// one place per check. The package holds no state and is safe for concurrent
// use.
//
// # Usage
//
//	func NewAccount(name string, plan Plan, seats int) *Account {
//		return &Account{
//			name:  guard.NotBlank(name, "name"),
//			plan:  guard.ValidEnum(plan, "plan"),
//			seats: guard.InRange(seats, 1, 500, "seats"),
//		}
//	}
//
// # Error Handling
//
// A raised *Error unwraps to one of two sentinel kinds, ErrInvalidArgument or
// ErrOutOfRange, so a boundary handler can classify failures with errors.Is.
// The package never recovers on its own; hosts that prefer an ordinary error
// over an unwound stack defer Recover at the boundary of their choice:
//
//	func Open(path string) (f *File, err error) {
//		defer guard.Recover(&err)
//		path = guard.NotBlank(path, "path")
//		...
//	}
package guard
