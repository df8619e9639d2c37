// Command plotgeom runs the contouring and triangulation code on files, for
// eyeballing results and producing fixtures.
//
// Grids are read as whitespace separated rows of numbers, one row per line.
// Point sets are read as "x y" lines, or from the shapes of an SVG drawing.
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/plotgeom"
	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("plotgeom", "Contour lines, contour bands and Delaunay triangulations.")

	verbose = app.Flag("verbose", "Log warnings and flip traces to stderr.").Short('v').Bool()
	noColor = app.Flag("no-color", "Plain status output.").Bool()
	format  = app.Flag("format", "Output format.").Short('f').Default("text").Enum("text", "pretty", "svg", "png", "imgcat")
	output  = app.Flag("output", "Write to this file instead of stdout.").Short('o').String()
	size    = app.Flag("size", "Larger side of svg and png output, in pixels.").Default("600").Float64()

	linesCmd   = app.Command("lines", "Extract an iso-line.")
	linesIso   = linesCmd.Flag("iso", "Iso value.").Required().Float64()
	linesColor = colorFlag(linesCmd.Flag("color", "Line color, #rrggbb or #aarrggbb.").Default("#ffffff"))
	linesGrid  = gridArgs(linesCmd)

	bandsCmd    = app.Command("bands", "Extract the band between two iso values.")
	bandsIso1   = bandsCmd.Flag("iso1", "Lower iso value.").Required().Float64()
	bandsIso2   = bandsCmd.Flag("iso2", "Upper iso value.").Required().Float64()
	bandsColor1 = colorFlag(bandsCmd.Flag("color1", "Color at the lower boundary.").Default("#2040ff"))
	bandsColor2 = colorFlag(bandsCmd.Flag("color2", "Color at the upper boundary.").Default("#ff4020"))
	bandsGrid   = gridArgs(bandsCmd)

	triangulateCmd      = app.Command("triangulate", "Triangulate a point set.")
	triangulateSVG      = triangulateCmd.Flag("svg", "Read the points from an SVG drawing.").Bool()
	triangulateRaw      = triangulateCmd.Flag("no-legalize", "Output the sweep triangulation without flips.").Bool()
	triangulateMaxFlips = triangulateCmd.Flag("max-flips", "Flip cap. Zero picks one from the point count.").Default("0").Int()
	triangulatePoints   = triangulateCmd.Arg("points", "Point file. Defaults to stdin.").File()
)

// The arguments shared by the contouring commands.
type gridInput struct {
	grid   **os.File
	xs, ys *string
	pick   *int

	// Coordinate grids, once read
	coordX, coordY [][]float64
}

func gridArgs(cmd *kingpin.CmdClause) *gridInput {
	return &gridInput{
		xs:   cmd.Flag("x", "Grid of x coordinates, same shape as the samples.").ExistingFile(),
		ys:   cmd.Flag("y", "Grid of y coordinates, same shape as the samples.").ExistingFile(),
		pick: cmd.Flag("pick", "Pick tag stamped on the output.").Default("0").Int(),
		grid: cmd.Arg("grid", "Grid file. Defaults to stdin.").File(),
	}
}

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	if *verbose {
		plotgeom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	status := &statusLine{w: os.Stderr, au: aurora.NewAurora(!*noColor)}

	var err error
	switch command {
	case linesCmd.FullCommand():
		err = runLines(status)
	case bandsCmd.FullCommand():
		err = runBands(status)
	case triangulateCmd.FullCommand():
		err = runTriangulate(status)
	}
	app.FatalIfError(err, "%s", command)
}

// Where the output goes. imgcat output only makes sense on a terminal, so it
// ignores --output.
func openOutput() (io.WriteCloser, error) {
	if *output == "" || *format == "imgcat" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(*output)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func runLines(status *statusLine) error {
	grid, opts, err := linesGrid.read()
	if err != nil {
		return err
	}
	segments, err := plotgeom.ContourLines(grid, *linesIso, *linesColor, opts...)
	if err != nil {
		return err
	}
	status.counted(len(segments), "segment")
	return emit(&drawing{frame: linesGrid.frame(grid), segments: segments}, segments)
}

func runBands(status *statusLine) error {
	grid, opts, err := bandsGrid.read()
	if err != nil {
		return err
	}
	triangles, err := plotgeom.ContourBands(grid, *bandsIso1, *bandsIso2, *bandsColor1, *bandsColor2, opts...)
	if err != nil {
		return err
	}
	status.counted(len(triangles), "triangle")
	return emit(&drawing{frame: bandsGrid.frame(grid), triangles: triangles}, triangles)
}

func runTriangulate(status *statusLine) error {
	in := os.Stdin
	if *triangulatePoints != nil {
		in = *triangulatePoints
		defer in.Close()
	}
	points, err := readPointInput(in, *triangulateSVG)
	if err != nil {
		return err
	}

	opts := []plotgeom.TriangulateOption{plotgeom.WithMaxFlips(*triangulateMaxFlips)}
	if *triangulateRaw {
		opts = append(opts, plotgeom.WithoutLegalization())
	}
	triangulation, err := plotgeom.TriangulatePoints(points, opts...)
	if err != nil {
		return err
	}
	status.triangulation(len(points), triangulation)
	return emit(&drawing{frame: points, points: points, mesh: triangulation.Triangles}, triangulation)
}

func (g *gridInput) read() ([][]float64, []plotgeom.ContourOption, error) {
	in := os.Stdin
	if *g.grid != nil {
		in = *g.grid
		defer in.Close()
	}
	grid, err := readGrid(in)
	if err != nil {
		return nil, nil, err
	}

	opts := []plotgeom.ContourOption{plotgeom.WithPick(*g.pick)}
	if (*g.xs == "") != (*g.ys == "") {
		return nil, nil, errors.New("--x and --y must be given together")
	}
	if *g.xs != "" {
		if g.coordX, err = readGridFile(*g.xs); err != nil {
			return nil, nil, err
		}
		if g.coordY, err = readGridFile(*g.ys); err != nil {
			return nil, nil, err
		}
		opts = append(opts, plotgeom.WithCoordinates(g.coordX, g.coordY))
	}
	return grid, opts, nil
}

// The points framing a drawing of the grid: its corners in index space, or
// every coordinate when coordinate grids are in use.
func (g *gridInput) frame(grid [][]float64) []geom.Point {
	if g.coordX == nil {
		return []geom.Point{
			{X: 0, Y: 0},
			{X: float64(len(grid[0]) - 1), Y: float64(len(grid) - 1)},
		}
	}
	var frame []geom.Point
	for j := range g.coordX {
		for i := range g.coordX[j] {
			frame = append(frame, geom.Point{X: g.coordX[j][i], Y: g.coordY[j][i]})
		}
	}
	return frame
}
