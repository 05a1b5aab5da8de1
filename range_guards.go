package guard

import "fmt"

// InRange checks that value lies within [min, max]. Both bounds are inclusive.
func InRange[T Ordered](value, min, max T, name ...string) T {
	return InRangeWith(value, min, max, outOfRange(name, fmt.Sprintf("must be between %v and %v", min, max)))
}

// InRangeWith is InRange raising the supplied error instead of the default.
func InRangeWith[T Ordered](value, min, max T, err error) T {
	if value < min || value > max {
		raise(err)
	}
	return value
}

// Positive checks that a numeric value is greater than zero.
func Positive[T Numeric](value T, name ...string) T {
	return PositiveWith(value, outOfRange(name, "must be positive"))
}

// PositiveWith is Positive raising the supplied error instead of the default.
func PositiveWith[T Numeric](value T, err error) T {
	if value <= 0 {
		raise(err)
	}
	return value
}

// NonNegative checks that a numeric value is zero or greater.
func NonNegative[T Numeric](value T, name ...string) T {
	return NonNegativeWith(value, outOfRange(name, "must not be negative"))
}

// NonNegativeWith is NonNegative raising the supplied error instead of the default.
func NonNegativeWith[T Numeric](value T, err error) T {
	if value < 0 {
		raise(err)
	}
	return value
}
