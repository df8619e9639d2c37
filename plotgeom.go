// The geometry core of a 2D plotting library.
//
// This package extracts contour lines and contour bands from a grid of samples
// using meandering triangles, and computes Delaunay triangulations of point
// sets. Everything here is a pure function of its input: primitives come out
// as freshly allocated slices, ready for a renderer to consume.
package plotgeom

import (
	"log/slog"

	"github.com/osuushi/plotgeom/internal/contour"
	"github.com/osuushi/plotgeom/internal/delaunay"
	"github.com/osuushi/plotgeom/internal/geom"
)

type Point = geom.Point
type Color = geom.Color
type Segment = contour.Segment
type Vertex = contour.Vertex
type Triangle = contour.Triangle
type ContourOption = contour.Option
type TriangulateOption = delaunay.Option
type Triangulation = delaunay.Result
type Outcome = delaunay.Outcome
type Diagnostic = delaunay.Diagnostic
type DiagnosticKind = delaunay.DiagnosticKind

const (
	Legal       = delaunay.Legal
	Partial     = delaunay.Partial
	Unlegalized = delaunay.Unlegalized
)

var (
	ErrGridTooSmall    = contour.ErrGridTooSmall
	ErrNonRectangular  = contour.ErrNonRectangular
	ErrCoordinateShape = contour.ErrCoordinateShape
	ErrTooFewPoints    = delaunay.ErrTooFewPoints
	ErrCollinear       = delaunay.ErrCollinear
	ErrNonFinite       = delaunay.ErrNonFinite
)

// Extract the iso-line at iso as an unordered set of segments.
//
// The grid is indexed grid[row][column] and must be rectangular and at least
// 2x2. Output is in grid index space (x = column, y = row) unless
// WithCoordinates is given.
func ContourLines(grid [][]float64, iso float64, color Color, opts ...ContourOption) (result []Segment, err error) {
	defer func() {
		recoveredErr := geom.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return contour.Lines(grid, iso, color, opts...)
}

// Extract the band between iso1 and iso2 as triangles. Band boundaries are
// colored c1 and c2, and in-band samples are blended between them.
func ContourBands(grid [][]float64, iso1, iso2 float64, c1, c2 Color, opts ...ContourOption) (result []Triangle, err error) {
	defer func() {
		recoveredErr := geom.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return contour.Bands(grid, iso1, iso2, c1, c2, opts...)
}

// Map output from grid index space into world space using X and Y coordinate
// grids of the same shape as the samples.
func WithCoordinates(x, y [][]float64) ContourOption {
	return contour.WithCoordinates(x, y)
}

// Stamp every emitted primitive with an opaque pick tag.
func WithPick(pick int) ContourOption {
	return contour.WithPick(pick)
}

// Compute the Delaunay triangulation of any point type, given coordinate
// accessors. Triangles refer to points by their index in the input slice.
//
// Legalization never fails the call. Check Triangulation.Complete, or the
// Outcome and Diagnostics, to tell a full legalization from a partial one.
func Triangulate[P any](points []P, x, y func(P) float64, opts ...TriangulateOption) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := geom.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return delaunay.Triangulate(points, x, y, opts...)
}

func TriangulatePoints(points []Point, opts ...TriangulateOption) (*Triangulation, error) {
	return Triangulate(points,
		func(p Point) float64 { return p.X },
		func(p Point) float64 { return p.Y },
		opts...)
}

// Cap the number of edge flips during legalization. Zero selects a cap
// quadratic in the number of points.
func WithMaxFlips(n int) TriangulateOption {
	return delaunay.WithMaxFlips(n)
}

// Skip legalization and return the sweep triangulation as built.
func WithoutLegalization() TriangulateOption {
	return delaunay.WithoutLegalization()
}

// SetLogger enables logging for the whole module. It is silent by default;
// pass nil to silence it again.
func SetLogger(l *slog.Logger) {
	geom.SetLogger(l)
}
