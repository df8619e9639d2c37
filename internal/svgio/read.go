// Package svgio moves geometry in and out of SVG documents: point sets are read
// from the shapes of an existing drawing, and contour output and meshes are
// written as plain SVG.
package svgio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/plotgeom/internal/geom"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It walks the document and
// collects the centers of <circle> elements and the vertices of <polygon> and
// <polyline> elements, in document order. Transforms are ignored.

// ReadPoints collects the points of every supported shape in the document.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}
	var points []geom.Point
	if err := collect(root, &points); err != nil {
		return nil, err
	}
	return points, nil
}

func collect(el *svgparser.Element, points *[]geom.Point) error {
	switch el.Name {
	case "circle":
		x, err := parseNumber(el.Attributes["cx"])
		if err != nil {
			return errors.Wrap(err, "circle cx")
		}
		y, err := parseNumber(el.Attributes["cy"])
		if err != nil {
			return errors.Wrap(err, "circle cy")
		}
		*points = append(*points, geom.Point{X: x, Y: y})
	case "polygon", "polyline":
		parsed, err := ParsePointList(el.Attributes["points"])
		if err != nil {
			return errors.Wrapf(err, "%s points", el.Name)
		}
		*points = append(*points, parsed...)
	}
	for _, child := range el.Children {
		if err := collect(child, points); err != nil {
			return err
		}
	}
	return nil
}

// ParsePointList parses an SVG points attribute. Coordinates may be separated
// by commas, whitespace or both.
func ParsePointList(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}
	points := make([]geom.Point, 0, len(fields)/2)
	for k := 0; k < len(fields); k += 2 {
		x, err := parseNumber(fields[k])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(fields[k+1])
		if err != nil {
			return nil, err
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}

// An absent attribute reads as zero, as in SVG.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid number %q", s)
	}
	return v, nil
}
