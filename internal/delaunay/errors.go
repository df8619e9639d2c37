package delaunay

import "github.com/pkg/errors"

var (
	// ErrTooFewPoints indicates fewer than three distinct points.
	ErrTooFewPoints = errors.New("delaunay: at least 3 distinct points are required")
	// ErrCollinear indicates a point set with no area to triangulate.
	ErrCollinear = errors.New("delaunay: all points are collinear")
	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("delaunay: coordinates must be finite")
)
