package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultMap(t *testing.T) {
	t.Run("should start empty", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 42 })

		assert.Zero(t, dm.Len())
		assert.Empty(t, dm.ToMap())
	})

	t.Run("should return and store the default for a missing key", func(t *testing.T) {
		calls := 0
		dm := NewDefaultMap[string](func() int {
			calls++
			return 42
		})

		assert.Equal(t, 42, dm.Get("missing"))
		assert.Equal(t, 42, dm.Get("missing"))
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, dm.Len())
	})

	t.Run("should return a stored value", func(t *testing.T) {
		dm := NewDefaultMap[string](func() int { return 0 })
		dm.Set("existing", 100)

		assert.Equal(t, 100, dm.Get("existing"))
	})

	t.Run("should group values with Update", func(t *testing.T) {
		errA, errB := errors.New("a"), errors.New("b")
		dm := NewDefaultMap[string](func() []error { return nil })

		dm.Update("alice", func(errs []error) []error { return append(errs, errA) })
		dm.Update("alice", func(errs []error) []error { return append(errs, errB) })
		dm.Update("bob", func(errs []error) []error { return append(errs, errB) })

		assert.Equal(t, map[string][]error{
			"alice": {errA, errB},
			"bob":   {errB},
		}, dm.ToMap())
	})

	t.Run("should expose the underlying map", func(t *testing.T) {
		dm := NewDefaultMap[int](func() string { return "" })
		dm.ToMap()[7] = "seven"

		assert.Equal(t, "seven", dm.Get(7))
	})
}
