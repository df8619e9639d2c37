package delaunay

import (
	"fmt"
	"math"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
)

// Advancing hull sweep. Points are visited in (x, y) order, so each new point
// lies outside the hull of the points before it, or on its boundary. The hull
// edges facing the new point are fanned to it and the vertices between them
// drop off the hull. The result covers the convex hull but is not yet
// Delaunay.

type sweeper struct {
	arena *arena
	ring  *hullRing
	// Sorted ids no hull edge faced
	unreachable []int
}

// sweep triangulates points, which must be sorted and free of duplicates.
func sweep(points []geom.Point) (*sweeper, error) {
	s := &sweeper{arena: newArena(points)}
	first, err := s.seed()
	if err != nil {
		return nil, err
	}
	for id := first; id < len(points); id++ {
		s.insert(id)
	}
	return s, nil
}

// Seed the hull with the first three points. If the first points are collinear
// they are fanned to the first point off their line instead. Returns the id of
// the first point left to insert.
func (s *sweeper) seed() (int, error) {
	points := s.arena.points
	k := 2
	for k < len(points) && geom.Orientation(points[0], points[1], points[k]) == 0 {
		k++
	}
	if k == len(points) {
		return 0, errors.Wrapf(ErrCollinear, "%d points on one line", len(points))
	}

	for i := 0; i+1 < k; i++ {
		s.arena.add(i, i+1, k)
	}

	// Counterclockwise ring: along the line then to the apex, or the reverse
	ids := make([]int, 0, k+1)
	if geom.Orientation(points[0], points[1], points[k]) > 0 {
		for i := 0; i <= k; i++ {
			ids = append(ids, i)
		}
	} else {
		ids = append(ids, 0, k)
		for i := k - 1; i > 0; i-- {
			ids = append(ids, i)
		}
	}
	s.ring = newHullRing(len(points), ids...)
	return k + 1, nil
}

// The hull vertex closest to x in x alone. This is a heuristic rather than a
// nearest point search: since every hull point has x no greater than the new
// point's, it picks the rightmost hull vertex, which always sees the new point.
// Ties go to the later point in sweep order, which is the higher one.
func (s *sweeper) nearestX(id int) int {
	x := s.arena.points[id].X
	best, bestDistance := -1, math.Inf(1)
	for _, h := range s.ring.ids() {
		distance := math.Abs(s.arena.points[h].X - x)
		if distance < bestDistance || (distance == bestDistance && h > best) {
			best, bestDistance = h, distance
		}
	}
	return best
}

// A hull edge from a to b faces p when p is strictly on its outer (right) side.
func (s *sweeper) faces(a, b, p int) bool {
	points := s.arena.points
	return geom.Orientation(points[a], points[b], points[p]) < 0
}

func (s *sweeper) insert(p int) {
	start := s.nearestX(p)
	inserted := false

	// Walk forward. The first facing edge gets p inserted after its start; after
	// that, each facing edge's start is enclosed and leaves the hull.
	s.ring.seek(start)
	for {
		cur, next := s.ring.current(), s.ring.next()
		if next == p || !s.faces(cur, next, p) {
			break
		}
		s.arena.add(cur, p, next)
		if !inserted {
			s.ring.insertAfter(p)
			s.ring.advance()
			inserted = true
		} else {
			s.ring.removeCurrent()
		}
		s.ring.advance()
	}

	// Walk backward, symmetrically
	s.ring.seek(start)
	for {
		cur, prev := s.ring.current(), s.ring.prev()
		if prev == p || !s.faces(prev, cur, p) {
			break
		}
		s.arena.add(prev, p, cur)
		if !inserted {
			s.ring.retreat()
			s.ring.insertAfter(p)
			inserted = true
		} else {
			s.ring.removeCurrent()
		}
	}

	if !inserted {
		s.unreachable = append(s.unreachable, p)
		geom.Logger().Warn("point skipped: no hull edge faces it",
			"point", fmt.Sprint(s.arena.points[p]))
	}
}
