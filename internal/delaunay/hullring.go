package delaunay

import "github.com/osuushi/plotgeom/internal/geom"

// hullRing is the advancing front of the sweep: a circular list of point ids in
// counterclockwise order, with a cursor. Links are stored in arrays indexed by
// point id, so every operation is O(1) and nothing is allocated after
// construction.
type hullRing struct {
	fwd, back []int // -1 for points not on the ring
	cursor    int
	size      int
}

// Create a ring over n possible ids, holding ids in the given order. The cursor
// starts on the first.
func newHullRing(n int, ids ...int) *hullRing {
	r := &hullRing{fwd: make([]int, n), back: make([]int, n)}
	for i := range r.fwd {
		r.fwd[i] = -1
		r.back[i] = -1
	}
	for k, id := range ids {
		r.fwd[id] = ids[geom.CircularIndex(k+1, len(ids))]
		r.back[id] = ids[geom.CircularIndex(k-1, len(ids))]
	}
	r.cursor = ids[0]
	r.size = len(ids)
	return r
}

func (r *hullRing) contains(id int) bool {
	return r.fwd[id] != -1
}

// Move the cursor to id, which must be on the ring.
func (r *hullRing) seek(id int) {
	if !r.contains(id) {
		geom.Fatalf("point %d is not on the hull", id)
	}
	r.cursor = id
}

func (r *hullRing) current() int { return r.cursor }
func (r *hullRing) next() int    { return r.fwd[r.cursor] }
func (r *hullRing) prev() int    { return r.back[r.cursor] }
func (r *hullRing) advance()     { r.cursor = r.fwd[r.cursor] }
func (r *hullRing) retreat()     { r.cursor = r.back[r.cursor] }

// Insert id after the cursor. The cursor does not move.
func (r *hullRing) insertAfter(id int) {
	if r.contains(id) {
		geom.Fatalf("point %d is already on the hull", id)
	}
	after := r.fwd[r.cursor]
	r.fwd[r.cursor] = id
	r.back[id] = r.cursor
	r.fwd[id] = after
	r.back[after] = id
	r.size++
}

// Remove the point under the cursor. The cursor moves back to its predecessor.
func (r *hullRing) removeCurrent() {
	if r.size <= 3 {
		geom.Fatalf("cannot shrink the hull below a triangle")
	}
	id := r.cursor
	before, after := r.back[id], r.fwd[id]
	r.fwd[before] = after
	r.back[after] = before
	r.fwd[id] = -1
	r.back[id] = -1
	r.cursor = before
	r.size--
}

// The ids on the ring, forward from the cursor.
func (r *hullRing) ids() []int {
	ids := make([]int, 0, r.size)
	id := r.cursor
	for k := 0; k < r.size; k++ {
		ids = append(ids, id)
		id = r.fwd[id]
	}
	return ids
}
