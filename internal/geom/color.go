package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Color is a packed 0xAARRGGBB value. The geometry code never looks inside a
// color except to blend two of them along a gradient.
type Color uint32

func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// Lerp blends a and b channel by channel. t is clamped to [0, 1], and the
// endpoints are returned unchanged so that colors at the thresholds are exact.
func Lerp(a, b Color, t float64) Color {
	if !(t > 0) { // also catches NaN
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return ARGB(mix(a.A(), b.A()), mix(a.R(), b.R()), mix(a.G(), b.G()), mix(a.B(), b.B()))
}

// Hex renders the color as #aarrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// RGBHex renders the color as #rrggbb, dropping alpha. SVG wants this form.
func (c Color) RGBHex() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseColor accepts #rrggbb (opaque) and #aarrggbb. The leading # is optional.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid color %q", s)
	}
	switch len(hex) {
	case 6:
		return Color(0xff000000 | uint32(value)), nil
	case 8:
		return Color(value), nil
	}
	return 0, errors.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
}

// Mean averages colors channel by channel, rounding down.
func Mean(colors ...Color) Color {
	if len(colors) == 0 {
		return 0
	}
	var a, r, g, b int
	for _, c := range colors {
		a += int(c.A())
		r += int(c.R())
		g += int(c.G())
		b += int(c.B())
	}
	n := len(colors)
	return ARGB(uint8(a/n), uint8(r/n), uint8(g/n), uint8(b/n))
}
