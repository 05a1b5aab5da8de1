package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
)

type environment string

const (
	envDevelopment environment = "development"
	envStaging     environment = "staging"
	envProduction  environment = "production"
)

func (e environment) IsValid() bool {
	switch e {
	case envDevelopment, envStaging, envProduction:
		return true
	}
	return false
}

func TestOneOf(t *testing.T) {
	t.Run("returns a member value unchanged", func(t *testing.T) {
		assert.Equal(t, "b", guard.OneOf("b", []string{"a", "b", "c"}, "variant"))
		assert.Equal(t, 3, guard.OneOf(3, []int{1, 3, 5}, "level"))
	})

	t.Run("raises for a non-member value", func(t *testing.T) {
		err := catch(func() { guard.OneOf("d", []string{"a", "b", "c"}, "variant") })
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrOutOfRange)
		assert.Contains(t, err.Error(), "must be one of")
	})

	t.Run("raises when the member set is empty", func(t *testing.T) {
		err := catch(func() { guard.OneOf("a", nil, "variant") })
		assert.ErrorIs(t, err, guard.ErrOutOfRange)
	})

	t.Run("membership is exact equality", func(t *testing.T) {
		err := catch(func() { guard.OneOf("A", []string{"a"}, "variant") })
		assert.ErrorIs(t, err, guard.ErrOutOfRange)
	})
}

func TestValidEnum(t *testing.T) {
	t.Run("returns a declared member unchanged", func(t *testing.T) {
		assert.Equal(t, envStaging, guard.ValidEnum(envStaging, "env"))
	})

	t.Run("raises for an undeclared value", func(t *testing.T) {
		err := catch(func() { guard.ValidEnum(environment("qa"), "env") })
		require.Error(t, err)
		assert.ErrorIs(t, err, guard.ErrOutOfRange)
		assert.Contains(t, err.Error(), "is not a valid")
	})

	t.Run("raises for the zero value when it is not a member", func(t *testing.T) {
		err := catch(func() { guard.ValidEnum(environment(""), "env") })
		assert.ErrorIs(t, err, guard.ErrOutOfRange)
	})

	t.Run("raises a custom error verbatim", func(t *testing.T) {
		custom := &guard.Error{Kind: guard.ErrOutOfRange, Arg: "env", Message: "unknown deployment target"}
		err := catch(func() { guard.ValidEnumWith(environment("qa"), custom) })
		assert.Same(t, custom, err)
	})
}
