package contour

import "github.com/osuushi/plotgeom/internal/geom"

// Lines extracts the iso-line of grid at iso as a bag of segments, each colored
// with color at both ends.
//
// Every cell is split into two triangles, and every triangle whose corners are
// not all on one side of iso contributes exactly one segment.
func Lines(grid [][]float64, iso float64, color geom.Color, opts ...Option) ([]Segment, error) {
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

	var segments []Segment
	for j := 0; j < height-1; j++ {
		for i := 0; i < width-1; i++ {
			for _, tri := range cellTriangles(grid, i, j) {
				segment, ok := lineSegment(&tri, iso)
				if !ok {
					continue
				}
				segment.C1 = color
				segment.C2 = color
				segment.Pick = cfg.pick
				segments = append(segments, segment)
			}
		}
	}

	if cfg.mapper != nil {
		cfg.mapper.mapSegments(segments)
	}
	return segments, nil
}

// Find the segment crossing a triangle, if any.
//
// Each of the six mixed codes has one minority corner, on its own side of the
// iso value. The segment runs between the two edges leaving that corner. The
// endpoints are ordered by the other two corners, so a code and its complement
// give the same segment.
func lineSegment(tri *subTriangle, iso float64) (Segment, bool) {
	var minority int
	switch code := lineCode(tri, iso); code {
	case 0b000, 0b111:
		return Segment{}, false
	case 0b100, 0b011:
		minority = 0
	case 0b010, 0b101:
		minority = 1
	case 0b001, 0b110:
		minority = 2
	default:
		geom.Fatalf("invalid line code %03b", code)
	}

	a, b := others(minority)
	m := tri[minority]
	return Segment{
		P1: crossing(m, tri[a], iso),
		P2: crossing(m, tri[b], iso),
	}, true
}
