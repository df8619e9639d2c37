package geom

import "fmt"

// Point is a location in the plane. Depending on the producer it is either in
// grid index space or in world space.
type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Lerp returns the point at parameter t on the segment from p to q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)}
}

// Less is the lexicographic (x, y) order used by the sweep.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}
