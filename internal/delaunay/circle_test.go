package delaunay

import (
	"testing"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/stretchr/testify/assert"
)

func TestCircumcircle(t *testing.T) {
	c, degenerate := circumcircle(geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 0}, geom.Point{X: 0, Y: 2})
	assert.False(t, degenerate)
	assert.InDelta(t, 1, c.center.X, 1e-12)
	assert.InDelta(t, 1, c.center.Y, 1e-12)
	assert.InDelta(t, 2, c.r2, 1e-12)

	assert.True(t, c.contains(geom.Point{X: 1, Y: 1}))
	assert.True(t, c.contains(geom.Point{X: 1.5, Y: 1.9}))
	assert.False(t, c.contains(geom.Point{X: 2, Y: 2}), "on the circle")
	assert.False(t, c.contains(geom.Point{X: 3, Y: 3}))
}

func TestCircumcircle_OrderDoesNotMatter(t *testing.T) {
	a, b, c := geom.Point{X: 0.3, Y: -1}, geom.Point{X: 4, Y: 0.5}, geom.Point{X: 1, Y: 3}
	c1, _ := circumcircle(a, b, c)
	c2, _ := circumcircle(c, b, a)
	assert.InDelta(t, c1.center.X, c2.center.X, 1e-9)
	assert.InDelta(t, c1.center.Y, c2.center.Y, 1e-9)
	assert.InDelta(t, c1.r2, c2.r2, 1e-9)
}

func TestCircumcircle_Degenerate(t *testing.T) {
	_, degenerate := circumcircle(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 1e-9})
	assert.True(t, degenerate)

	c, degenerate := circumcircle(geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 2, Y: 0})
	assert.True(t, degenerate)
	assert.False(t, c.contains(geom.Point{X: 1, Y: 0}), "a collinear circle contains nothing")
}
