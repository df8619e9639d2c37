package delaunay

import (
	"sort"

	"github.com/osuushi/plotgeom/internal/geom"
)

// A triangle handle is its stable index in the arena. Flips rewrite triangles
// in place, so handles never go stale.
type handle int

// Three point ids, counterclockwise.
type tri [3]int

func (t tri) has(id int) bool {
	return t[0] == id || t[1] == id || t[2] == id
}

// The vertex of t that is neither a nor b.
func (t tri) apex(a, b int) int {
	for _, id := range t {
		if id != a && id != b {
			return id
		}
	}
	return -1
}

// arena owns the triangles of one triangulation call, as point ids into the
// sorted point slice. The adjacency maps are derived data: they are only valid
// after rebuild, and every mutation must be followed by one.
type arena struct {
	points []geom.Point
	tris   []tri

	// Point id to the sorted ids of its neighbours
	edges [][]int
	// Point id to the handles of the triangles it belongs to
	cells [][]handle
}

func newArena(points []geom.Point) *arena {
	return &arena{
		points: points,
		tris:   make([]tri, 0, 2*len(points)),
	}
}

// Orient the three ids counterclockwise.
func (a *arena) ccw(i, j, k int) tri {
	if geom.Orientation(a.points[i], a.points[j], a.points[k]) < 0 {
		return tri{i, k, j}
	}
	return tri{i, j, k}
}

func (a *arena) add(i, j, k int) handle {
	a.tris = append(a.tris, a.ccw(i, j, k))
	return handle(len(a.tris) - 1)
}

func (a *arena) vertices(h handle) (geom.Point, geom.Point, geom.Point) {
	t := a.tris[h]
	return a.points[t[0]], a.points[t[1]], a.points[t[2]]
}

// Rebuild both adjacency maps from the triangle list.
func (a *arena) rebuild() {
	a.edges = make([][]int, len(a.points))
	a.cells = make([][]handle, len(a.points))
	for k, t := range a.tris {
		h := handle(k)
		for n, id := range t {
			a.cells[id] = append(a.cells[id], h)
			a.edges[id] = append(a.edges[id], t[geom.CircularIndex(n+1, 3)], t[geom.CircularIndex(n+2, 3)])
		}
	}
	for id, neighbours := range a.edges {
		a.edges[id] = uniqueSorted(neighbours)
	}
}

func uniqueSorted(ids []int) []int {
	sort.Ints(ids)
	out := ids[:0]
	for k, id := range ids {
		if k == 0 || id != ids[k-1] {
			out = append(out, id)
		}
	}
	return out
}

// The triangle other than h that contains both p and q.
func (a *arena) across(h handle, p, q int) (handle, bool) {
	for _, g := range a.cells[p] {
		if g != h && a.tris[g].has(q) {
			return g, true
		}
	}
	return 0, false
}

// Swap the diagonal shared by h = (s1, c1, c2) and g = (s2, c1, c2), leaving
// (s1, s2, c1) in h and (s1, s2, c2) in g. Reports false, changing nothing,
// when the quad is not strictly convex and the new diagonal would fold a
// triangle over.
func (a *arena) flip(h, g handle, c1, c2 int) bool {
	s1 := a.tris[h].apex(c1, c2)
	s2 := a.tris[g].apex(c1, c2)
	if !a.tris[h].has(c1) || !a.tris[h].has(c2) || !a.tris[g].has(c1) || !a.tris[g].has(c2) || s1 == s2 {
		geom.Fatalf("malformed flip between %v and %v on edge %d-%d", a.tris[h], a.tris[g], c1, c2)
	}

	p1, p2 := a.points[s1], a.points[s2]
	side1 := geom.Orientation(p1, p2, a.points[c1])
	side2 := geom.Orientation(p1, p2, a.points[c2])
	if side1 == 0 || side2 == 0 || (side1 > 0) == (side2 > 0) {
		return false
	}

	a.tris[h] = a.ccw(s1, s2, c1)
	a.tris[g] = a.ccw(s1, s2, c2)
	return true
}
