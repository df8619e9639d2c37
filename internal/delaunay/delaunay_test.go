package delaunay

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulate_Square(t *testing.T) {
	points := []geom.Point{{X: 1, Y: -1}, {X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}}
	result, err := triangulate(points)
	require.NoError(t, err)

	assert.Len(t, result.Triangles, 2)
	assert.Equal(t, Legal, result.Outcome)
	assert.True(t, result.Complete())
	assert.Empty(t, result.Skipped)
	assertValidTriangulation(t, points, result)
}

func TestTriangulate_Random(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			points := randomPoints(seed, 200)
			result, err := triangulate(points)
			require.NoError(t, err)

			assert.Equal(t, Legal, result.Outcome)
			assert.Empty(t, result.Skipped)
			assert.Len(t, result.Triangles, 2*len(points)-len(convexHull(points))-2)
			assertValidTriangulation(t, points, result)
			assertDelaunay(t, points, result.Triangles)
		})
	}
}

func TestTriangulate_Lattice(t *testing.T) {
	points := lattice(6)
	rand.New(rand.NewSource(7)).Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	result, err := triangulate(points)
	require.NoError(t, err)

	assert.Equal(t, Legal, result.Outcome)
	assert.Len(t, result.Triangles, 50)
	assertValidTriangulation(t, points, result)
	assertDelaunay(t, points, result.Triangles)
}

func TestTriangulate_NearlyCollinear(t *testing.T) {
	var points []geom.Point
	for i := 0; i < 31; i++ {
		points = append(points, geom.Point{X: float64(i), Y: 1e-3 * float64(i*i)})
	}
	result, err := triangulate(points)
	require.NoError(t, err)

	assert.Len(t, result.Triangles, len(points)-2)
	assertValidTriangulation(t, points, result)
	assertDelaunay(t, points, result.Triangles)
}

func TestTriangulate_WithoutLegalization(t *testing.T) {
	points := randomPoints(11, 100)
	result, err := triangulate(points, WithoutLegalization())
	require.NoError(t, err)

	assert.Equal(t, Unlegalized, result.Outcome)
	assert.False(t, result.Complete())
	assert.Zero(t, result.Flips)
	assert.Len(t, result.Triangles, 2*len(points)-len(convexHull(points))-2)
	assertValidTriangulation(t, points, result)
}

func TestTriangulate_MaxFlips(t *testing.T) {
	points := lattice(6)
	result, err := triangulate(points, WithMaxFlips(1))
	require.NoError(t, err)

	assert.Equal(t, Partial, result.Outcome)
	assert.Equal(t, 1, result.Flips)
	assert.True(t, hasDiagnostic(result, FlipLimit))
	assertValidTriangulation(t, points, result)

	assert.Panics(t, func() { WithMaxFlips(-1) })
}

func TestTriangulate_Duplicates(t *testing.T) {
	points := []geom.Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 1, Y: 1},
		{X: 0, Y: 0.1},
	}
	result, err := triangulate(points)
	require.NoError(t, err)

	assert.Equal(t, []int{4}, result.Skipped)
	assert.True(t, hasDiagnostic(result, DuplicatePoint))
	assert.Len(t, result.Triangles, 4)
	for _, tr := range result.Triangles {
		assert.NotContains(t, tr, 4)
	}
	assertValidTriangulation(t, points, result)
}

func TestTriangulate_Degenerate(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1e-8}}
	result, err := triangulate(points)
	require.NoError(t, err)

	assert.Equal(t, Legal, result.Outcome)
	assert.Len(t, result.Triangles, 1)
	assert.True(t, hasDiagnostic(result, DegenerateCircle))
}

func TestTriangulate_Errors(t *testing.T) {
	for _, test := range []struct {
		name     string
		points   []geom.Point
		expected error
	}{
		{"empty", nil, ErrTooFewPoints},
		{"two points", []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, ErrTooFewPoints},
		{"two distinct", []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 1, Y: 1}}, ErrTooFewPoints},
		{"collinear", []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 4, Y: 2}, {X: -2, Y: -1}}, ErrCollinear},
		{"nan", []geom.Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}, {X: 1, Y: 0}}, ErrNonFinite},
		{"infinite", []geom.Point{{X: 0, Y: 0}, {X: 1, Y: math.Inf(-1)}, {X: 1, Y: 0}}, ErrNonFinite},
	} {
		t.Run(test.name, func(t *testing.T) {
			result, err := triangulate(test.points)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, test.expected), "got %v", err)
		})
	}
}

func TestTriangulate_Idempotent(t *testing.T) {
	points := randomPoints(3, 80)
	first, err := triangulate(points)
	require.NoError(t, err)
	second, err := triangulate(points)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// Points in general position have a unique Delaunay triangulation, so input
// order must not matter.
func TestTriangulate_OrderIndependent(t *testing.T) {
	points := randomPoints(5, 60)
	shuffled := append([]geom.Point(nil), points...)
	rand.New(rand.NewSource(9)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	first, err := triangulate(points)
	require.NoError(t, err)
	second, err := triangulate(shuffled)
	require.NoError(t, err)
	assert.Equal(t, canonicalTriangles(points, first.Triangles), canonicalTriangles(shuffled, second.Triangles))
}

func canonicalTriangles(points []geom.Point, triangles [][3]int) []string {
	var keys []string
	for _, tr := range triangles {
		corners := []geom.Point{points[tr[0]], points[tr[1]], points[tr[2]]}
		sort.Slice(corners, func(i, j int) bool { return corners[i].Less(corners[j]) })
		keys = append(keys, fmt.Sprint(corners))
	}
	sort.Strings(keys)
	return keys
}

func TestTriangulate_LogsSkippedPoints(t *testing.T) {
	var buf bytes.Buffer
	geom.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer geom.SetLogger(nil)

	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}
	_, err := triangulate(points)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "duplicate point skipped")
}
