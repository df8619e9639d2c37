package contour

import (
	"fmt"

	"github.com/osuushi/plotgeom/internal/geom"
)

// Segment is one piece of an iso-line. Segments are emitted as an unordered
// bag: joining them into polylines is left to the consumer.
type Segment struct {
	P1, P2 geom.Point
	C1, C2 geom.Color
	// Pick is an opaque identity tag passed through for the renderer.
	Pick int
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.P1, s.P2)
}

type Vertex struct {
	geom.Point
	Color geom.Color
}

// Triangle is one piece of an iso-band. Band triangles wind counterclockwise
// in grid index space.
type Triangle struct {
	A, B, C Vertex
	Pick    int
}

func (t Triangle) String() string {
	return fmt.Sprintf("{%v %v %v}", t.A.Point, t.B.Point, t.C.Point)
}

func (t Triangle) SignedArea() float64 {
	return geom.SignedArea(t.A.Point, t.B.Point, t.C.Point)
}
