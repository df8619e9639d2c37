package contour

import "github.com/pkg/errors"

// Sentinel errors for grid validation. Returned errors wrap these with context,
// so test them with errors.Is.
var (
	// ErrGridTooSmall indicates a grid with fewer than two rows or columns.
	ErrGridTooSmall = errors.New("contour: grid must have at least 2 rows and 2 columns")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("contour: all grid rows must have the same length")
	// ErrCoordinateShape indicates X/Y coordinate grids that do not match the samples.
	ErrCoordinateShape = errors.New("contour: coordinate grids must match the sample grid shape")
)
