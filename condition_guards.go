package guard

// If checks that value does not satisfy cond, raising when it does. The
// predicate is entirely caller-defined; the package has no opinion on what
// it tests.
func If[T any](value T, cond func(T) bool, name ...string) T {
	return IfWith(value, cond, invalidArg(name, "satisfies a forbidden condition"))
}

// IfWith is If raising the supplied error instead of the default.
func IfWith[T any](value T, cond func(T) bool, err error) T {
	if cond(value) {
		raise(err)
	}
	return value
}

// Unless checks that value satisfies cond, raising when it does not.
func Unless[T any](value T, cond func(T) bool, name ...string) T {
	return UnlessWith(value, cond, invalidArg(name, "does not satisfy a required condition"))
}

// UnlessWith is Unless raising the supplied error instead of the default.
func UnlessWith[T any](value T, cond func(T) bool, err error) T {
	if !cond(value) {
		raise(err)
	}
	return value
}
