package guard

import "fmt"

// OneOf checks that value equals one of the allowed members. Membership is
// exact equality; there is no partial or case-insensitive matching.
func OneOf[T comparable](value T, allowed []T, name ...string) T {
	return OneOfWith(value, allowed, outOfRange(name, fmt.Sprintf("must be one of: %v", allowed)))
}

// OneOfWith is OneOf raising the supplied error instead of the default.
func OneOfWith[T comparable](value T, allowed []T, err error) T {
	for _, member := range allowed {
		if value == member {
			return value
		}
	}
	raise(err)
	return value
}

// ValidEnum checks that an enumeration value is one of its declared members,
// as reported by the type's own IsValid method.
func ValidEnum[T Enum](value T, name ...string) T {
	return ValidEnumWith(value, outOfRange(name, fmt.Sprintf("%v is not a valid %T", value, value)))
}

// ValidEnumWith is ValidEnum raising the supplied error instead of the default.
func ValidEnumWith[T Enum](value T, err error) T {
	if !value.IsValid() {
		raise(err)
	}
	return value
}
