package main

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/osuushi/plotgeom/internal/svgio"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// readGrid reads whitespace separated rows of numbers, one row per line. Blank
// lines and lines starting with # are skipped. Rows are not checked for equal
// length here; the contouring calls do that.
func readGrid(r io.Reader) ([][]float64, error) {
	var grid [][]float64
	err := scanLines(r, func(line int, fields []string) error {
		row := make([]float64, len(fields))
		for k, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return errors.Errorf("line %d: invalid number %q", line, field)
			}
			row[k] = v
		}
		grid = append(grid, row)
		return nil
	})
	return grid, err
}

func readGridFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	grid, err := readGrid(f)
	return grid, errors.Wrap(err, path)
}

// readPoints reads one "x y" point per line.
func readPoints(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	err := scanLines(r, func(line int, fields []string) error {
		if len(fields) != 2 {
			return errors.Errorf("line %d: expected \"x y\", got %d fields", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return errors.Errorf("line %d: invalid x %q", line, fields[0])
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return errors.Errorf("line %d: invalid y %q", line, fields[1])
		}
		points = append(points, geom.Point{X: x, Y: y})
		return nil
	})
	return points, err
}

func readPointInput(r io.Reader, svg bool) ([]geom.Point, error) {
	if svg {
		return svgio.ReadPoints(r)
	}
	return readPoints(r)
}

// Call fn with the fields of each line that is not blank or a comment. Lines
// are numbered from 1.
func scanLines(r io.Reader, fn func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := fn(line, strings.Fields(text)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// colorValue lets kingpin parse color flags.
type colorValue geom.Color

func (c *colorValue) Set(s string) error {
	parsed, err := geom.ParseColor(s)
	if err != nil {
		return err
	}
	*c = colorValue(parsed)
	return nil
}

func (c *colorValue) String() string {
	return geom.Color(*c).Hex()
}

func colorFlag(flag *kingpin.FlagClause) *geom.Color {
	target := new(geom.Color)
	flag.SetValue((*colorValue)(target))
	return target
}
