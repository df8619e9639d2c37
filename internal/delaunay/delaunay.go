// Package delaunay triangulates planar point sets: an advancing hull sweep
// builds a triangulation of the convex hull, and Lawson edge flips make it
// Delaunay.
package delaunay

import (
	"fmt"
	"math"
	"sort"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
)

// Triangulate computes the Delaunay triangulation of points, reading
// coordinates through the x and y accessors.
//
// Points are sorted once by (x, y). Exact duplicates are left out and listed in
// Result.Skipped. Fewer than three distinct points, or a set with all points on
// one line, is an error.
func Triangulate[P any](points []P, x, y func(P) float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	if len(points) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "got %d", len(points))
	}

	coords := make([]geom.Point, len(points))
	for k, p := range points {
		coords[k] = geom.Point{X: x(p), Y: y(p)}
		if !finite(coords[k]) {
			return nil, errors.Wrapf(ErrNonFinite, "point %d is %v", k, coords[k])
		}
	}

	order := make([]int, len(points))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return coords[order[a]].Less(coords[order[b]])
	})

	result := &Result{}

	// Drop duplicates. sorted[k] is the position of input index unique[k].
	sorted := make([]geom.Point, 0, len(points))
	unique := make([]int, 0, len(points))
	for _, k := range order {
		if n := len(sorted); n > 0 && sorted[n-1] == coords[k] {
			result.Skipped = append(result.Skipped, k)
			result.Diagnostics = append(result.Diagnostics, Diagnostic{
				Kind:    DuplicatePoint,
				Message: fmt.Sprintf("point %d duplicates point %d at %v", k, unique[n-1], coords[k]),
			})
			geom.Logger().Warn("duplicate point skipped", "index", k)
			continue
		}
		sorted = append(sorted, coords[k])
		unique = append(unique, k)
	}
	if len(sorted) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "got %d distinct", len(sorted))
	}

	s, err := sweep(sorted)
	if err != nil {
		return nil, err
	}
	for _, id := range s.unreachable {
		result.Skipped = append(result.Skipped, unique[id])
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Kind:    UnreachablePoint,
			Message: fmt.Sprintf("point %d at %v", unique[id], sorted[id]),
		})
	}

	result.Outcome = Unlegalized
	if cfg.legalize {
		l := newLegalizer(s.arena, cfg.flipCap(len(sorted)))
		result.Outcome = l.run()
		result.Flips = l.flips
		result.Diagnostics = append(result.Diagnostics, l.diagnostics...)
	}

	result.Triangles = make([][3]int, len(s.arena.tris))
	for k, t := range s.arena.tris {
		result.Triangles[k] = [3]int{unique[t[0]], unique[t[1]], unique[t[2]]}
	}
	sort.Ints(result.Skipped)
	return result, nil
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
