package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSet(t *testing.T) {
	t.Run("InsertionOrderAndDedup", func(t *testing.T) {
		set := NewStringSet("b", "a", "b", "c", "a")
		assert.Equal(t, 3, set.Len())
		assert.Equal(t, []string{"b", "a", "c"}, set.Items())
	})

	t.Run("Add", func(t *testing.T) {
		var set StringSet
		assert.True(t, set.Add("x"))
		assert.False(t, set.Add("x"))
		assert.True(t, set.Contains("x"))
		assert.False(t, set.Contains("y"))
	})

	t.Run("EqualIgnoresOrder", func(t *testing.T) {
		a := NewStringSet("one", "two", "three")
		b := NewStringSet("three", "one", "two")
		assert.True(t, a.Equal(b))
		assert.True(t, b.Equal(a))

		c := NewStringSet("one", "two")
		assert.False(t, a.Equal(c))
		assert.False(t, c.Equal(a))

		d := NewStringSet("one", "two", "four")
		assert.False(t, a.Equal(d))
	})
}
