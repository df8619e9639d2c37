package delaunay

import (
	"math"

	"github.com/osuushi/plotgeom/internal/geom"
)

// Below this the two chords are treated as parallel and the circle as
// numerically meaningless.
const degenerateCircle = 1e-6

// Relative slack on the squared radius for the in-circle test. Points within it
// count as on the circle, which also keeps cocircular sets from flipping
// forever.
const inCircleTolerance = 1e-9

type circle struct {
	center geom.Point
	r2     float64 // squared radius
}

// circumcircle solves for the intersection of the perpendicular bisectors of
// the chords p1p2 and p1p3. degenerate is set when the chords are (nearly)
// parallel; the circle is still returned.
func circumcircle(p1, p2, p3 geom.Point) (c circle, degenerate bool) {
	a := p2.X - p1.X
	b := p2.Y - p1.Y
	cc := p3.X - p1.X
	d := p3.Y - p1.Y
	e := a*(p1.X+p2.X) + b*(p1.Y+p2.Y)
	f := cc*(p1.X+p3.X) + d*(p1.Y+p3.Y)
	g := 2 * (a*(p3.Y-p2.Y) - b*(p3.X-p2.X))

	center := geom.Point{X: (d*e - b*f) / g, Y: (a*f - cc*e) / g}
	dx, dy := p1.X-center.X, p1.Y-center.Y
	return circle{center: center, r2: dx*dx + dy*dy}, math.Abs(g) < degenerateCircle
}

// Strictly inside, beyond the tolerance. NaN circles contain nothing.
func (c circle) contains(p geom.Point) bool {
	dx, dy := p.X-c.center.X, p.Y-c.center.Y
	return dx*dx+dy*dy < c.r2-inCircleTolerance*c.r2
}
