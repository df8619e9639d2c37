package contour

import (
	"fmt"

	"github.com/osuushi/plotgeom/internal/geom"
)

// A sub-triangle that is not uniformly below or above the band falls into one
// of five geometric families. Each family is its own type and carries its own
// recipe, so a family without a recipe does not compile.
//
// Recipes rotate the triangle so that the family's special corner comes first.
// Rotation keeps the winding, so every recipe emits counterclockwise triangles.
type bandCase interface {
	emit(e *bandEmitter, tri *subTriangle, levels [3]int8)

	// Marker restricting the union to the types below.
	bandCaseHint()
}

func (midCase) bandCaseHint()          {}
func (singleCornerCase) bandCaseHint() {}
func (twoCornerCase) bandCaseHint()    {}
func (spanCase) bandCaseHint()         {}
func (pentagonCase) bandCaseHint()     {}

// Every corner is inside the band: the whole triangle is emitted.
type midCase struct{}

// One corner is inside the band and the other two are on the same side of it.
type singleCornerCase struct {
	corner int
}

// One corner is outside the band and the other two are inside.
type twoCornerCase struct {
	corner int
}

// One corner is on the opposite side of the band from the other two, so the
// band crosses the triangle as a strip.
type spanCase struct {
	corner int
}

// The corners are below, inside and above, in either winding. corner is the
// one inside.
type pentagonCase struct {
	corner int
}

func (c midCase) String() string          { return "mid" }
func (c singleCornerCase) String() string { return fmt.Sprintf("single(%d)", c.corner) }
func (c twoCornerCase) String() string    { return fmt.Sprintf("two(%d)", c.corner) }
func (c spanCase) String() string         { return fmt.Sprintf("span(%d)", c.corner) }
func (c pentagonCase) String() string     { return fmt.Sprintf("pentagon(%d)", c.corner) }

// classifyBand finds the family of a triangle from its corner levels. ok is
// false for triangles entirely below or entirely above the band, which emit
// nothing.
func classifyBand(levels [3]int8) (bc bandCase, ok bool) {
	l0, l1, l2 := levels[0], levels[1], levels[2]
	if l0 == l1 && l1 == l2 {
		if l0 == inside {
			return midCase{}, true
		}
		return nil, false
	}
	if l0 != l1 && l1 != l2 && l0 != l2 {
		for k, l := range levels {
			if l == inside {
				return pentagonCase{corner: k}, true
			}
		}
	} else {
		// Exactly two corners agree. Find the odd one out.
		lone := 0
		switch {
		case l0 == l1:
			lone = 2
		case l0 == l2:
			lone = 1
		}
		a, _ := others(lone)
		loneLevel, pairLevel := levels[lone], levels[a]
		switch {
		case loneLevel == inside:
			return singleCornerCase{corner: lone}, true
		case pairLevel == inside:
			return twoCornerCase{corner: lone}, true
		case loneLevel-pairLevel == 2 || pairLevel-loneLevel == 2:
			return spanCase{corner: lone}, true
		}
	}
	geom.Fatalf("unhandled band code %d (levels %v)", bandCode(levels), levels)
	return nil, false
}

// Rotate so that corner k comes first.
func rotate(tri *subTriangle, levels [3]int8, k int) (s, n1, n2 corner, ls, l1, l2 int8) {
	i1 := geom.CircularIndex(k+1, 3)
	i2 := geom.CircularIndex(k+2, 3)
	return tri[k], tri[i1], tri[i2], levels[k], levels[i1], levels[i2]
}

func (midCase) emit(e *bandEmitter, tri *subTriangle, levels [3]int8) {
	e.add(e.corner(tri[0]), e.corner(tri[1]), e.corner(tri[2]))
}

func (c singleCornerCase) emit(e *bandEmitter, tri *subTriangle, levels [3]int8) {
	s, n1, n2, _, outer, _ := rotate(tri, levels, c.corner)
	e.add(e.corner(s), e.cut(s, n1, outer), e.cut(s, n2, outer))
}

func (c twoCornerCase) emit(e *bandEmitter, tri *subTriangle, levels [3]int8) {
	s, n1, n2, outer, _, _ := rotate(tri, levels, c.corner)
	p1 := e.cut(s, n1, outer)
	p2 := e.cut(s, n2, outer)
	e.add(p1, e.corner(n1), e.corner(n2))
	e.add(p1, e.corner(n2), p2)
}

func (c spanCase) emit(e *bandEmitter, tri *subTriangle, levels [3]int8) {
	s, n1, n2, near, far, _ := rotate(tri, levels, c.corner)
	// Walking away from s, the band starts at s's threshold and ends at the
	// threshold on the far side.
	q1Near, q1Far := e.cut(s, n1, near), e.cut(s, n1, far)
	q2Near, q2Far := e.cut(s, n2, near), e.cut(s, n2, far)
	e.add(q1Near, q1Far, q2Far)
	e.add(q1Near, q2Far, q2Near)
}

func (c pentagonCase) emit(e *bandEmitter, tri *subTriangle, levels [3]int8) {
	s, n1, n2, _, l1, l2 := rotate(tri, levels, c.corner)
	// Boundary walk s -> n1 -> n2 -> s. The edge n1-n2 crosses both thresholds,
	// n1's first.
	a := e.cut(s, n1, l1)
	b := e.cut(n1, n2, l1)
	d := e.cut(n2, n1, l2)
	f := e.cut(n2, s, l2)
	center := e.corner(s)
	e.add(center, a, b)
	e.add(center, b, d)
	e.add(center, d, f)
}
