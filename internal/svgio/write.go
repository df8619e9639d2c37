package svgio

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/osuushi/plotgeom/internal/contour"
	"github.com/osuushi/plotgeom/internal/geom"
)

// Padding around the drawing, in pixels
const padding = 10

// Writer draws geometry into an SVG document. SVG coordinates are integers
// with y pointing down, so world coordinates are scaled, rounded and flipped.
type Writer struct {
	canvas     *svg.SVG
	minX, maxY float64
	scale      float64
	gradients  int
}

// NewWriter starts a document showing the box (minX, minY)-(maxX, maxY) at scale
// pixels per unit. Call End when done.
func NewWriter(w io.Writer, minX, minY, maxX, maxY, scale float64) *Writer {
	width := int(math.Ceil(scale*(maxX-minX))) + 2*padding
	height := int(math.Ceil(scale*(maxY-minY))) + 2*padding
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:black")
	return &Writer{canvas: canvas, minX: minX, maxY: maxY, scale: scale}
}

// FitWriter starts a document around points, with the larger side about size
// pixels.
func FitWriter(w io.Writer, points []geom.Point, size float64) *Writer {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	extent := math.Max(maxX-minX, maxY-minY)
	if extent <= 0 {
		extent = 1
	}
	return NewWriter(w, minX, minY, maxX, maxY, size/extent)
}

func (w *Writer) End() {
	w.canvas.End()
}

func (w *Writer) pixel(p geom.Point) (int, int) {
	x := int(math.Round((p.X-w.minX)*w.scale)) + padding
	y := int(math.Round((w.maxY-p.Y)*w.scale)) + padding
	return x, y
}

// Segments are stroked with a gradient when their end colors differ.
func (w *Writer) Segments(segments []contour.Segment) {
	for _, s := range segments {
		x1, y1 := w.pixel(s.P1)
		x2, y2 := w.pixel(s.P2)
		style := fmt.Sprintf("stroke:%s;stroke-opacity:%.3g;stroke-width:2", s.C1.RGBHex(), opacity(s.C1))
		if s.C1 != s.C2 && (x1 != x2 && y1 != y2) {
			id := w.gradient(s.C1, s.C2, x2 < x1, y2 < y1)
			style = fmt.Sprintf("stroke:url(#%s);stroke-width:2", id)
		}
		w.canvas.Line(x1, y1, x2, y2, style)
	}
}

// Gradient vectors are in bounding box percentages, so only the direction of
// the segment along each axis matters.
func (w *Writer) gradient(c1, c2 geom.Color, flipX, flipY bool) string {
	w.gradients++
	id := fmt.Sprintf("g%d", w.gradients)
	var x1, y1, x2, y2 uint8 = 0, 0, 100, 100
	if flipX {
		x1, x2 = x2, x1
	}
	if flipY {
		y1, y2 = y2, y1
	}
	w.canvas.Def()
	w.canvas.LinearGradient(id, x1, y1, x2, y2, []svg.Offcolor{
		{Offset: 0, Color: c1.RGBHex(), Opacity: opacity(c1)},
		{Offset: 100, Color: c2.RGBHex(), Opacity: opacity(c2)},
	})
	w.canvas.DefEnd()
	return id
}

// Band triangles are filled with the mean of their vertex colors.
func (w *Writer) Triangles(triangles []contour.Triangle) {
	for _, t := range triangles {
		xs, ys := w.polygon(t.A.Point, t.B.Point, t.C.Point)
		fill := geom.Mean(t.A.Color, t.B.Color, t.C.Color)
		w.canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:%.3g", fill.RGBHex(), opacity(fill)))
	}
}

// Mesh strokes triangles given as index triples into points and marks the
// points.
func (w *Writer) Mesh(points []geom.Point, triangles [][3]int, stroke geom.Color) {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:1", stroke.RGBHex())
	for _, t := range triangles {
		xs, ys := w.polygon(points[t[0]], points[t[1]], points[t[2]])
		w.canvas.Polygon(xs, ys, style)
	}
	for _, p := range points {
		x, y := w.pixel(p)
		w.canvas.Circle(x, y, 2, "fill:white")
	}
}

func (w *Writer) polygon(points ...geom.Point) ([]int, []int) {
	xs := make([]int, len(points))
	ys := make([]int, len(points))
	for k, p := range points {
		xs[k], ys[k] = w.pixel(p)
	}
	return xs, ys
}

func opacity(c geom.Color) float64 {
	return float64(c.A()) / 255
}
