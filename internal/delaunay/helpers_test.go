package delaunay

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/stretchr/testify/assert"
)

func pointX(p geom.Point) float64 { return p.X }
func pointY(p geom.Point) float64 { return p.Y }

func triangulate(points []geom.Point, opts ...Option) (*Result, error) {
	return Triangulate(points, pointX, pointY, opts...)
}

func randomPoints(seed int64, n int) []geom.Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, n)
	for k := range points {
		points[k] = geom.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return points
}

// A size by size grid of unit spaced points, already in sweep order.
func lattice(size int) []geom.Point {
	var points []geom.Point
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			points = append(points, geom.Point{X: float64(i), Y: float64(j)})
		}
	}
	return points
}

// Strict convex hull, counterclockwise, by monotone chain. Collinear boundary
// points are left out.
func convexHull(points []geom.Point) []geom.Point {
	sorted := append([]geom.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	var hull []geom.Point
	push := func(p geom.Point, floor int) {
		for len(hull) >= floor && geom.Orientation(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	for _, p := range sorted {
		push(p, 2)
	}
	lower := len(hull) + 1
	for k := len(sorted) - 2; k >= 0; k-- {
		push(sorted[k], lower)
	}
	return hull[:len(hull)-1]
}

func polygonArea(poly []geom.Point) float64 {
	var area float64
	for k, a := range poly {
		b := poly[geom.CircularIndex(k+1, len(poly))]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// The triangles must be counterclockwise and non-degenerate, must not overlap,
// must cover the convex hull exactly and must use every point that was not
// skipped.
func assertValidTriangulation(t *testing.T, points []geom.Point, result *Result) {
	t.Helper()
	skipped := make(map[int]bool)
	for _, k := range result.Skipped {
		skipped[k] = true
	}

	used := make([]bool, len(points))
	directed := make(map[[2]int]bool)
	var area float64
	for _, tr := range result.Triangles {
		o := geom.Orientation(points[tr[0]], points[tr[1]], points[tr[2]])
		if !assert.Greater(t, o, 0.0, "triangle %v is clockwise or flat", tr) {
			return
		}
		area += o / 2
		for n := 0; n < 3; n++ {
			used[tr[n]] = true
			edge := [2]int{tr[n], tr[geom.CircularIndex(n+1, 3)]}
			if !assert.False(t, directed[edge], "edge %v used twice in the same direction", edge) {
				return
			}
			directed[edge] = true
		}
	}

	for k := range points {
		if !skipped[k] {
			assert.True(t, used[k], "point %d is in no triangle", k)
		}
	}
	hullArea := polygonArea(convexHull(points))
	assert.InDelta(t, hullArea, area, 1e-9*hullArea)
}

// No point lies strictly inside any circumcircle, within a relative tolerance
// looser than the one legalization works to.
func assertDelaunay(t *testing.T, points []geom.Point, triangles [][3]int) {
	t.Helper()
	for _, tr := range triangles {
		c, degenerate := circumcircle(points[tr[0]], points[tr[1]], points[tr[2]])
		if degenerate {
			continue
		}
		for k, p := range points {
			if k == tr[0] || k == tr[1] || k == tr[2] {
				continue
			}
			dx, dy := p.X-c.center.X, p.Y-c.center.Y
			if d2 := dx*dx + dy*dy; d2 < c.r2*(1-1e-6) {
				t.Errorf("point %d %v is inside the circumcircle of %v (%v < %v)", k, p, tr, math.Sqrt(d2), math.Sqrt(c.r2))
				return
			}
		}
	}
}

func hasDiagnostic(result *Result, kind DiagnosticKind) bool {
	for _, d := range result.Diagnostics {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
