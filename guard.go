package guard

import "runtime"

// unspecifiedArg labels failures for checks invoked without an argument name.
const unspecifiedArg = "unspecified"

// Ordered is the constraint for checks that compare values against bounds.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 | ~string
}

// Numeric is the constraint for checks that compare values against zero.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Enum is satisfied by enumeration-like types that can report whether a value
// is one of their declared members.
type Enum interface {
	IsValid() bool
}

func argName(name []string) string {
	if len(name) > 0 && name[0] != "" {
		return name[0]
	}
	return unspecifiedArg
}

// raise aborts the current call chain with err. A nil err is replaced with a
// generic invalid-argument failure so a violation can never pass silently.
func raise(err error) {
	if err == nil {
		err = &Error{Kind: ErrInvalidArgument, Arg: unspecifiedArg, Message: "precondition failed"}
	}
	panic(err)
}

// Recover converts a raised check failure into an ordinary error when
// deferred at a boundary of the caller's choosing:
//
//	func Open(path string) (f *File, err error) {
//		defer guard.Recover(&err)
//		path = guard.NotBlank(path, "path")
//		...
//	}
//
// Only panicking errors are converted; runtime panics (nil dereference,
// nil-map write, index out of range) and non-error panic values are
// re-raised, since those are bugs in the guarded code rather than raised
// failures. The checks themselves never recover — a violated precondition
// always unwinds at least to the nearest Recover.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	// A runtime.Error satisfies error but no check ever raises one.
	if _, ok := r.(runtime.Error); ok {
		panic(r)
	}
	rerr, ok := r.(error)
	if !ok {
		panic(r)
	}
	*err = rerr
}
