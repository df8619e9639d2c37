package contour

import (
	"math"

	"github.com/osuushi/plotgeom/internal/geom"
)

// Fractions at or under this are treated as lying exactly on a grid line.
const mapEpsilon = 1e-6

// coordinateMapper warps index space output into world space using X and Y
// coordinate grids. Iso crossings are computed in index space first, so the
// same case analysis serves uniform and curvilinear grids.
//
// X is interpolated along the row and Y along the column of the containing
// cell, which is exact for rectilinear grids.
type coordinateMapper struct {
	x, y [][]float64
}

func (m *coordinateMapper) check(height, width int) error {
	if err := checkShape("x grid", m.x, height, width); err != nil {
		return err
	}
	return checkShape("y grid", m.y, height, width)
}

func (m *coordinateMapper) mapPoint(p geom.Point) geom.Point {
	height, width := len(m.x), len(m.x[0])
	i, mi := split(p.X, width)
	j, mj := split(p.Y, height)

	world := geom.Point{X: m.x[j][i], Y: m.y[j][i]}
	if mi > mapEpsilon {
		world.X += mi * (m.x[j][i+1] - m.x[j][i])
	}
	if mj > mapEpsilon {
		world.Y += mj * (m.y[j+1][i] - m.y[j][i])
	}
	return world
}

// Split an index space coordinate into a grid index and the fraction past it.
// Coordinates on the last grid line get a zero fraction so the index never
// runs off the grid.
func split(v float64, n int) (int, float64) {
	index := int(math.Floor(v))
	switch {
	case index < 0:
		return 0, 0
	case index >= n-1:
		return n - 1, 0
	}
	return index, v - float64(index)
}

func (m *coordinateMapper) mapSegments(segments []Segment) {
	for k := range segments {
		segments[k].P1 = m.mapPoint(segments[k].P1)
		segments[k].P2 = m.mapPoint(segments[k].P2)
	}
}

func (m *coordinateMapper) mapTriangles(triangles []Triangle) {
	for k := range triangles {
		t := &triangles[k]
		t.A.Point = m.mapPoint(t.A.Point)
		t.B.Point = m.mapPoint(t.B.Point)
		t.C.Point = m.mapPoint(t.C.Point)
	}
}
