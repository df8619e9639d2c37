package dbg

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/plotgeom/internal/contour"
	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
)

// Padding around the drawing, in pixels
const drawPadding = 20

// Canvas renders contour output and triangulations to a raster for eyeballing.
// It is debugging tooling, not a plotting layer: it has no axes, no labels and
// no idea of what the colors mean.
type Canvas struct {
	c      *gg.Context
	scale  float64
	minX   float64
	minY   float64
	width  int
	height int
}

// NewCanvas sets up a canvas showing the box (minX, minY)-(maxX, maxY) at scale
// pixels per unit, with the y axis pointing up.
func NewCanvas(minX, minY, maxX, maxY, scale float64) *Canvas {
	width := int(math.Ceil(scale*(maxX-minX))) + drawPadding*2
	height := int(math.Ceil(scale*(maxY-minY))) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	return &Canvas{c: c, scale: scale, minX: minX, minY: minY, width: width, height: height}
}

// FitCanvas makes a canvas around points, with the larger side about size
// pixels.
func FitCanvas(points []geom.Point, size float64) *Canvas {
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
	return NewCanvas(minX, minY, maxX, maxY, size/extent)
}

func (cv *Canvas) Width() int  { return cv.width }
func (cv *Canvas) Height() int { return cv.height }

// DrawSegments strokes each segment with a gradient between its end colors.
func (cv *Canvas) DrawSegments(segments []contour.Segment) {
	c := cv.c
	c.SetLineWidth(2 / cv.scale)
	for _, s := range segments {
		if s.C1 == s.C2 || s.P1 == s.P2 {
			c.SetColor(toRGBA(s.C1))
		} else {
			// Gradients are specified in device space
			x1, y1 := c.TransformPoint(s.P1.X, s.P1.Y)
			x2, y2 := c.TransformPoint(s.P2.X, s.P2.Y)
			gradient := gg.NewLinearGradient(x1, y1, x2, y2)
			gradient.AddColorStop(0, toRGBA(s.C1))
			gradient.AddColorStop(1, toRGBA(s.C2))
			c.SetStrokeStyle(gradient)
		}
		c.MoveTo(s.P1.X, s.P1.Y)
		c.LineTo(s.P2.X, s.P2.Y)
		c.Stroke()
	}
}

// DrawTriangles fills each band triangle with the mean of its vertex colors.
func (cv *Canvas) DrawTriangles(triangles []contour.Triangle) {
	c := cv.c
	for _, t := range triangles {
		c.MoveTo(t.A.X, t.A.Y)
		c.LineTo(t.B.X, t.B.Y)
		c.LineTo(t.C.X, t.C.Y)
		c.ClosePath()
		c.SetColor(toRGBA(geom.Mean(t.A.Color, t.B.Color, t.C.Color)))
		c.Fill()
	}
}

// DrawMesh strokes triangles given as index triples into points.
func (cv *Canvas) DrawMesh(points []geom.Point, triangles [][3]int, stroke geom.Color) {
	c := cv.c
	c.SetLineWidth(1 / cv.scale)
	c.SetColor(toRGBA(stroke))
	for _, t := range triangles {
		c.MoveTo(points[t[0]].X, points[t[0]].Y)
		c.LineTo(points[t[1]].X, points[t[1]].Y)
		c.LineTo(points[t[2]].X, points[t[2]].Y)
		c.ClosePath()
		c.Stroke()
	}
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 2/cv.scale)
		c.Fill()
	}
}

func (cv *Canvas) SavePNG(path string) error {
	return errors.Wrapf(cv.c.SavePNG(path), "saving %s", path)
}

func (cv *Canvas) EncodePNG(w io.Writer) error {
	return cv.c.EncodePNG(w)
}

// Show prints the canvas in the terminal (iTerm only), by way of a temp file.
func (cv *Canvas) Show(w io.Writer) error {
	f, err := os.CreateTemp("", "plotgeom-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	if err := cv.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

func toRGBA(c geom.Color) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
