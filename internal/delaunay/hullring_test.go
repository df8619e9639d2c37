package delaunay

import (
	"testing"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestHullRing(t *testing.T) {
	r := newHullRing(8, 0, 1, 2)
	assert.Equal(t, []int{0, 1, 2}, r.ids())
	assert.Equal(t, 1, r.next())
	assert.Equal(t, 2, r.prev())
	assert.False(t, r.contains(4))

	r.insertAfter(4)
	assert.Equal(t, 0, r.current(), "insert leaves the cursor in place")
	assert.Equal(t, []int{0, 4, 1, 2}, r.ids())

	r.seek(1)
	r.removeCurrent()
	assert.Equal(t, 4, r.current(), "remove moves the cursor back")
	assert.Equal(t, []int{4, 2, 0}, r.ids())
	assert.False(t, r.contains(1))

	r.retreat()
	assert.Equal(t, 0, r.current())
	r.advance()
	r.advance()
	assert.Equal(t, 2, r.current())
}

func TestHullRing_Misuse(t *testing.T) {
	assertThrows := func(t *testing.T, fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			_, ok := r.(*geom.Error)
			assert.True(t, ok, "expected a *geom.Error panic, got %v", r)
		}()
		fn()
	}

	t.Run("seek off the ring", func(t *testing.T) {
		assertThrows(t, func() { newHullRing(5, 0, 1, 2).seek(3) })
	})
	t.Run("insert twice", func(t *testing.T) {
		assertThrows(t, func() { newHullRing(5, 0, 1, 2).insertAfter(1) })
	})
	t.Run("remove below a triangle", func(t *testing.T) {
		assertThrows(t, func() { newHullRing(5, 0, 1, 2).removeCurrent() })
	})
}
