package delaunay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osuushi/plotgeom/dbg"
	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
)

// legalizer runs Lawson's flip loop over an arena: find a triangle whose
// circumcircle strictly contains the apex of a neighbouring triangle, swap the
// shared diagonal, rebuild the adjacency maps and start over from the first
// triangle. It stops when a full pass finds nothing to flip.
//
// Nothing bounds the number of restarts by construction, so the loop also
// stops at a flip cap.
type legalizer struct {
	arena    *arena
	maxFlips int
	flips    int

	diagnostics []Diagnostic
	// Triangles already reported as degenerate, so each is reported once
	reported map[tri]bool
}

func newLegalizer(a *arena, maxFlips int) *legalizer {
	return &legalizer{arena: a, maxFlips: maxFlips, reported: make(map[tri]bool)}
}

// run legalizes the arena in place. Any panic raised while flipping ends the
// run with a Partial outcome and a diagnostic instead of reaching the caller;
// the triangles are left as they were after the last complete flip.
func (l *legalizer) run() (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = errors.Errorf("%v", r)
			}
			l.report(FlipFailure, err.Error())
			geom.Logger().Warn("legalization stopped", "error", err, "flips", l.flips)
			outcome = Partial
		}
	}()

	l.arena.rebuild()
	for {
		if !l.pass() {
			return Legal
		}
		l.flips++
		l.arena.rebuild()
		if l.flips >= l.maxFlips {
			l.report(FlipLimit, fmt.Sprintf("stopped after %d flips", l.flips))
			geom.Logger().Warn("legalization stopped at flip cap", "flips", l.flips)
			return Partial
		}
	}
}

// One scan over all triangles. Returns true as soon as something was flipped.
func (l *legalizer) pass() bool {
	for k := range l.arena.tris {
		if l.legalizeTriangle(handle(k)) {
			return true
		}
	}
	return false
}

func (l *legalizer) legalizeTriangle(h handle) bool {
	a := l.arena
	t := a.tris[h]
	c, degenerate := circumcircle(a.vertices(h))
	if degenerate && !l.reported[t] {
		l.reported[t] = true
		l.report(DegenerateCircle, fmt.Sprintf("triangle %v is nearly collinear", t))
		geom.Logger().Warn("degenerate circumcircle", "triangle", fmt.Sprint(t))
	}

	for _, q := range l.neighbours(t) {
		if !c.contains(a.points[q]) {
			continue
		}
		// q must be the apex of the triangle across one of t's edges
		for n := 0; n < 3; n++ {
			c1, c2 := t[n], t[geom.CircularIndex(n+1, 3)]
			g, ok := a.across(h, c1, c2)
			if !ok || a.tris[g].apex(c1, c2) != q {
				continue
			}
			before := [2]tri{a.tris[h], a.tris[g]}
			if a.flip(h, g, c1, c2) {
				l.trace(h, g, before)
				return true
			}
		}
	}
	return false
}

// The points adjacent to any vertex of t, excluding t's own vertices.
func (l *legalizer) neighbours(t tri) []int {
	var ids []int
	for _, id := range t {
		for _, q := range l.arena.edges[id] {
			if !t.has(q) {
				ids = append(ids, q)
			}
		}
	}
	return uniqueSorted(ids)
}

func (l *legalizer) report(kind DiagnosticKind, message string) {
	l.diagnostics = append(l.diagnostics, Diagnostic{Kind: kind, Message: message})
}

func (l *legalizer) trace(h, g handle, before [2]tri) {
	logger := geom.Logger()
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("flip",
		"first", dbg.Name(h), "second", dbg.Name(g),
		"before", fmt.Sprint(before),
		"after", fmt.Sprint([2]tri{l.arena.tris[h], l.arena.tris[g]}),
		"flips", l.flips+1)
}
