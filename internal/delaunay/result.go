package delaunay

import "fmt"

// Outcome says how far legalization got.
type Outcome int

const (
	// Legal means a full pass found no point inside any circumcircle.
	Legal Outcome = iota
	// Partial means legalization stopped early. The triangles still cover the
	// hull, but some edges may not be Delaunay.
	Partial
	// Unlegalized is the raw sweep output; legalization was not requested.
	Unlegalized
)

func (o Outcome) String() string {
	switch o {
	case Legal:
		return "legal"
	case Partial:
		return "partial"
	case Unlegalized:
		return "unlegalized"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type DiagnosticKind int

const (
	// A triangle whose circumcircle is numerically unstable
	DegenerateCircle DiagnosticKind = iota
	// An exact duplicate of an earlier point, left out of the triangulation
	DuplicatePoint
	// A point no hull edge faced during the sweep, left out of the triangulation
	UnreachablePoint
	// The flip cap was reached
	FlipLimit
	// Legalization failed on an inconsistent triangulation
	FlipFailure
)

func (k DiagnosticKind) String() string {
	switch k {
	case DegenerateCircle:
		return "degenerate circle"
	case DuplicatePoint:
		return "duplicate point"
	case UnreachablePoint:
		return "unreachable point"
	case FlipLimit:
		return "flip limit"
	case FlipFailure:
		return "flip failure"
	}
	return fmt.Sprintf("DiagnosticKind(%d)", int(k))
}

type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

func (d Diagnostic) String() string {
	return d.Kind.String() + ": " + d.Message
}

// Result of a triangulation. Triangle indices refer to the caller's point
// slice and wind counterclockwise.
type Result struct {
	Triangles   [][3]int
	Outcome     Outcome
	Flips       int
	Diagnostics []Diagnostic
	// Input indices of points that are not part of any triangle
	Skipped []int
}

// Complete reports whether the triangulation is fully legalized.
func (r *Result) Complete() bool {
	return r.Outcome == Legal
}
