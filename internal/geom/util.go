package geom

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Orientation is twice the signed area of the triangle abc. It is positive when
// the triangle winds counterclockwise, negative when clockwise and zero when the
// points are collinear.
func Orientation(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// SignedArea of the triangle abc. Counterclockwise triangles have positive area.
func SignedArea(a, b, c Point) float64 {
	return Orientation(a, b, c) / 2
}

func IsCCW(a, b, c Point) bool {
	return Orientation(a, b, c) > 0
}
