package guard

import (
	"fmt"
	"reflect"
)

// NotZero checks that a comparable value is not its type's zero value. The
// default message distinguishes nil-able kinds ("must not be nil") from plain
// value kinds, so the diagnostic names the actual violation.
func NotZero[T comparable](value T, name ...string) T {
	msg := fmt.Sprintf("must not be the zero value of %T", value)
	switch reflect.ValueOf(&value).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.UnsafePointer:
		msg = "must not be nil"
	}
	return NotZeroWith(value, invalidArg(name, msg))
}

// NotZeroWith is NotZero raising the supplied error instead of the default.
func NotZeroWith[T comparable](value T, err error) T {
	var zero T
	if value == zero {
		raise(err)
	}
	return value
}

// NotNil checks that a value is not nil. It covers types NotZero cannot:
// maps, slices and functions, plus interfaces wrapping a typed nil pointer.
func NotNil[T any](value T, name ...string) T {
	return NotNilWith(value, invalidArg(name, "must not be nil"))
}

// NotNilWith is NotNil raising the supplied error instead of the default.
func NotNilWith[T any](value T, err error) T {
	if isNil(value) {
		raise(err)
	}
	return value
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
