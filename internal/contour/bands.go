package contour

import "github.com/osuushi/plotgeom/internal/geom"

// Bands extracts the region of grid between iso1 and iso2 as triangles. Vertices
// on the iso1 boundary get c1, vertices on the iso2 boundary get c2, and grid
// corners inside the band are blended between the two by value.
//
// If iso1 > iso2 the thresholds are swapped together with their colors. When
// they are equal the band is empty.
func Bands(grid [][]float64, iso1, iso2 float64, c1, c2 geom.Color, opts ...Option) ([]Triangle, error) {
	cfg := newConfig(opts)
	height, width, err := checkGrid(grid)
	if err != nil {
		return nil, err
	}
	if cfg.mapper != nil {
		if err := cfg.mapper.check(height, width); err != nil {
			return nil, err
		}
	}

	if iso1 > iso2 {
		iso1, iso2 = iso2, iso1
		c1, c2 = c2, c1
	}
	if iso1 == iso2 {
		return nil, nil
	}

	e := &bandEmitter{iso1: iso1, iso2: iso2, c1: c1, c2: c2, pick: cfg.pick}
	for j := 0; j < height-1; j++ {
		for i := 0; i < width-1; i++ {
			for _, tri := range cellTriangles(grid, i, j) {
				e.emitTriangle(&tri)
			}
		}
	}

	if cfg.mapper != nil {
		cfg.mapper.mapTriangles(e.out)
	}
	return e.out, nil
}

// Accumulates band triangles for one call.
type bandEmitter struct {
	iso1, iso2 float64
	c1, c2     geom.Color
	pick       int
	out        []Triangle
}

func (e *bandEmitter) emitTriangle(tri *subTriangle) {
	levels := bandLevels(tri, e.iso1, e.iso2)
	bc, ok := classifyBand(levels)
	if !ok {
		return
	}
	bc.emit(e, tri, levels)
}

// The threshold between the band and a corner at the given level, with its color.
func (e *bandEmitter) threshold(level int8) (float64, geom.Color) {
	switch level {
	case below:
		return e.iso1, e.c1
	case above:
		return e.iso2, e.c2
	}
	geom.Fatalf("no threshold for level %d", level)
	return 0, 0
}

// An in-band corner, colored by where its value sits between the thresholds.
func (e *bandEmitter) corner(c corner) Vertex {
	t := (c.v - e.iso1) / (e.iso2 - e.iso1)
	return Vertex{Point: c.p, Color: geom.Lerp(e.c1, e.c2, t)}
}

// The point on the edge from a to b where the threshold bounding level is
// crossed.
func (e *bandEmitter) cut(a, b corner, level int8) Vertex {
	iso, color := e.threshold(level)
	return Vertex{Point: crossing(a, b, iso), Color: color}
}

func (e *bandEmitter) add(a, b, c Vertex) {
	e.out = append(e.out, Triangle{A: a, B: b, C: c, Pick: e.pick})
}
