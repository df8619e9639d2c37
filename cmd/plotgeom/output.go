package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/plotgeom"
	"github.com/osuushi/plotgeom/dbg"
	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/osuushi/plotgeom/internal/svgio"
)

var meshColor = geom.ARGB(0xff, 0x90, 0x90, 0x90)

// Everything one command produced, ready for any output format.
type drawing struct {
	// Points the view must include
	frame     []geom.Point
	segments  []plotgeom.Segment
	triangles []plotgeom.Triangle
	points    []geom.Point
	mesh      [][3]int
}

func emit(d *drawing, value interface{}) error {
	out, err := openOutput()
	if err != nil {
		return err
	}
	if err := render(out, *format, *size, d, value); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// render writes d in the given format. The pretty format dumps value, the
// command's raw result, instead.
func render(w io.Writer, format string, size float64, d *drawing, value interface{}) error {
	switch format {
	case "pretty":
		_, err := pretty.Fprintf(w, "%# v\n", value)
		return err
	case "svg":
		sw := svgio.FitWriter(w, d.frame, size)
		sw.Triangles(d.triangles)
		sw.Segments(d.segments)
		if d.mesh != nil {
			sw.Mesh(d.points, d.mesh, meshColor)
		}
		sw.End()
		return nil
	case "png", "imgcat":
		cv := dbg.FitCanvas(d.frame, size)
		cv.DrawTriangles(d.triangles)
		cv.DrawSegments(d.segments)
		if d.mesh != nil {
			cv.DrawMesh(d.points, d.mesh, meshColor)
		}
		if format == "imgcat" {
			return cv.Show(w)
		}
		return cv.EncodePNG(w)
	}
	return d.writeText(w)
}

// One primitive per line: "x1 y1 x2 y2 c1 c2" for segments, "x y c" for each
// corner of a band triangle, and three point indices for mesh triangles.
func (d *drawing) writeText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, s := range d.segments {
		fmt.Fprintf(bw, "%g %g %g %g %s %s\n", s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.C1.Hex(), s.C2.Hex())
	}
	for _, t := range d.triangles {
		corners := make([]string, 0, 3)
		for _, v := range []plotgeom.Vertex{t.A, t.B, t.C} {
			corners = append(corners, fmt.Sprintf("%g %g %s", v.X, v.Y, v.Color.Hex()))
		}
		fmt.Fprintln(bw, strings.Join(corners, " "))
	}
	for _, t := range d.mesh {
		fmt.Fprintf(bw, "%d %d %d\n", t[0], t[1], t[2])
	}
	return bw.Flush()
}

// statusLine reports what a command did on stderr, so it never mixes with the
// output.
type statusLine struct {
	w  io.Writer
	au aurora.Aurora
}

func (s *statusLine) counted(n int, noun string) {
	fmt.Fprintln(s.w, s.au.Green(plural(n, noun)))
}

func (s *statusLine) triangulation(points int, t *plotgeom.Triangulation) {
	var outcome aurora.Value
	switch t.Outcome {
	case plotgeom.Legal:
		outcome = s.au.Green(t.Outcome)
	case plotgeom.Partial:
		outcome = s.au.Yellow(t.Outcome)
	default:
		outcome = s.au.Cyan(t.Outcome)
	}
	fmt.Fprintf(s.w, "%s from %s: %s after %s\n",
		plural(len(t.Triangles), "triangle"), plural(points, "point"), outcome, plural(t.Flips, "flip"))
	for _, d := range t.Diagnostics {
		fmt.Fprintln(s.w, s.au.Yellow(d))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
