package contour

import (
	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
)

// checkGrid validates the shape of a sample grid and returns its dimensions.
func checkGrid(grid [][]float64) (height, width int, err error) {
	height = len(grid)
	if height < 2 {
		return 0, 0, errors.Wrapf(ErrGridTooSmall, "got %d rows", height)
	}
	width = len(grid[0])
	if width < 2 {
		return 0, 0, errors.Wrapf(ErrGridTooSmall, "got %d columns", width)
	}
	for j, row := range grid {
		if len(row) != width {
			return 0, 0, errors.Wrapf(ErrNonRectangular, "row %d has %d values, want %d", j, len(row), width)
		}
	}
	return height, width, nil
}

func checkShape(name string, coords [][]float64, height, width int) error {
	if len(coords) != height {
		return errors.Wrapf(ErrCoordinateShape, "%s has %d rows, want %d", name, len(coords), height)
	}
	for j, row := range coords {
		if len(row) != width {
			return errors.Wrapf(ErrCoordinateShape, "%s row %d has %d values, want %d", name, j, len(row), width)
		}
	}
	return nil
}

// A corner of a sub-triangle: its position in index space and its sample.
type corner struct {
	p geom.Point
	v float64
}

// Each cell is split into two triangles along a fixed diagonal. Both wind
// counterclockwise. Changing the diagonal changes contour topology at cell
// boundaries, so it never varies.
type subTriangle [3]corner

func cellTriangles(grid [][]float64, i, j int) [2]subTriangle {
	at := func(i, j int) corner {
		return corner{p: geom.Point{X: float64(i), Y: float64(j)}, v: grid[j][i]}
	}
	return [2]subTriangle{
		{at(i, j), at(i+1, j), at(i, j+1)},
		{at(i+1, j+1), at(i, j+1), at(i+1, j)},
	}
}

// Point where the iso value crosses the edge from a to b. The caller guarantees
// the edge does cross, so a.v != b.v.
func crossing(a, b corner, iso float64) geom.Point {
	t := (iso - a.v) / (b.v - a.v)
	return a.p.Lerp(b.p, t)
}
