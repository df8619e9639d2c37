package contour

import (
	"math"
	"math/rand"

	"github.com/osuushi/plotgeom/internal/geom"
)

// Test helpers. The clipping oracle below computes band areas independently of
// the case catalog, by clipping each triangle against the linear field.

type fieldPoint struct {
	p geom.Point
	v float64
}

// Clip a convex polygon to the half where keep(v) holds, interpolating the
// crossing at iso.
func clipPolygon(poly []fieldPoint, iso float64, keep func(float64) bool) []fieldPoint {
	var out []fieldPoint
	for k, a := range poly {
		b := poly[(k+1)%len(poly)]
		if keep(a.v) {
			out = append(out, a)
		}
		if keep(a.v) != keep(b.v) {
			t := (iso - a.v) / (b.v - a.v)
			out = append(out, fieldPoint{a.p.Lerp(b.p, t), iso})
		}
	}
	return out
}

func polygonArea(poly []fieldPoint) float64 {
	var area float64
	for k, a := range poly {
		b := poly[(k+1)%len(poly)]
		area += a.p.X*b.p.Y - b.p.X*a.p.Y
	}
	return area / 2
}

// Area of the part of tri where iso1 < v <= iso2.
func oracleBandArea(tri *subTriangle, iso1, iso2 float64) float64 {
	poly := make([]fieldPoint, 0, 3)
	for _, c := range tri {
		poly = append(poly, fieldPoint{c.p, c.v})
	}
	poly = clipPolygon(poly, iso1, func(v float64) bool { return v > iso1 })
	poly = clipPolygon(poly, iso2, func(v float64) bool { return v <= iso2 })
	if len(poly) < 3 {
		return 0
	}
	return polygonArea(poly)
}

// Linear interpolation of the field inside tri at p.
func fieldAt(tri *subTriangle, p geom.Point) float64 {
	a, b, c := tri[0], tri[1], tri[2]
	total := geom.Orientation(a.p, b.p, c.p)
	wa := geom.Orientation(p, b.p, c.p) / total
	wb := geom.Orientation(a.p, p, c.p) / total
	wc := geom.Orientation(a.p, b.p, p) / total
	return wa*a.v + wb*b.v + wc*c.v
}

func totalArea(triangles []Triangle) float64 {
	var area float64
	for _, t := range triangles {
		area += t.SignedArea()
	}
	return area
}

func randomGrid(rng *rand.Rand, height, width int, scale float64) [][]float64 {
	grid := make([][]float64, height)
	for j := range grid {
		grid[j] = make([]float64, width)
		for i := range grid[j] {
			grid[j][i] = rng.Float64() * scale
		}
	}
	return grid
}

func flatGrid(height, width int, value float64) [][]float64 {
	grid := make([][]float64, height)
	for j := range grid {
		grid[j] = make([]float64, width)
		for i := range grid[j] {
			grid[j][i] = value
		}
	}
	return grid
}

// A sub-triangle over the unit right triangle with the given corner values.
func unitTriangle(v0, v1, v2 float64) *subTriangle {
	return &subTriangle{
		{p: geom.Point{X: 0, Y: 0}, v: v0},
		{p: geom.Point{X: 1, Y: 0}, v: v1},
		{p: geom.Point{X: 0, Y: 1}, v: v2},
	}
}

func onSegment(p, a, b geom.Point) bool {
	if math.Abs(geom.Orientation(a, b, p)) > 1e-9 {
		return false
	}
	return math.Min(a.X, b.X)-1e-9 <= p.X && p.X <= math.Max(a.X, b.X)+1e-9 &&
		math.Min(a.Y, b.Y)-1e-9 <= p.Y && p.Y <= math.Max(a.Y, b.Y)+1e-9
}
