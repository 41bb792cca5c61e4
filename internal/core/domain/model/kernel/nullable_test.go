package kernel_test

import (
	"testing"

	"tms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestNullable(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		n := kernel.Absent[string]()

		assert.False(t, n.IsPresent())
		assert.False(t, n.IsNull())
		assert.Nil(t, n.Value())
	})

	t.Run("zero value is absent", func(t *testing.T) {
		var n kernel.Nullable[float64]

		assert.False(t, n.IsPresent())
	})

	t.Run("null", func(t *testing.T) {
		n := kernel.Null[string]()

		assert.True(t, n.IsPresent())
		assert.True(t, n.IsNull())
		assert.Nil(t, n.Value())
	})

	t.Run("some", func(t *testing.T) {
		n := kernel.Some(350.5)

		assert.True(t, n.IsPresent())
		assert.False(t, n.IsNull())
		assert.InDelta(t, 350.5, *n.Value(), 0.0001)
	})

	t.Run("value returns a copy", func(t *testing.T) {
		n := kernel.Some("fragile")

		*n.Value() = "changed"

		assert.Equal(t, "fragile", *n.Value())
	})
}
