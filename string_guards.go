package guard

import "strings"

// NotEmpty checks that a string has at least one character.
func NotEmpty(value string, name ...string) string {
	return NotEmptyWith(value, invalidArg(name, "must not be empty"))
}

// NotEmptyWith is NotEmpty raising the supplied error instead of the default.
func NotEmptyWith(value string, err error) string {
	if len(value) == 0 {
		raise(err)
	}
	return value
}

// NotBlank checks that a string contains at least one non-whitespace
// character. Unlike NotEmpty, a string of only spaces or tabs is a violation.
func NotBlank(value string, name ...string) string {
	return NotBlankWith(value, invalidArg(name, "must not be empty or whitespace"))
}

// NotBlankWith is NotBlank raising the supplied error instead of the default.
func NotBlankWith(value string, err error) string {
	if strings.TrimSpace(value) == "" {
		raise(err)
	}
	return value
}
