package contour

// Grid classification. Samples equal to a threshold count as "not greater":
// a sample sitting exactly on the iso value therefore belongs to the lower
// side, which is deterministic but not symmetric between neighbouring cells.

// lineCode packs (value > iso) for each corner, first corner in the most
// significant bit.
func lineCode(tri *subTriangle, iso float64) uint8 {
	var code uint8
	for _, c := range tri {
		code <<= 1
		if c.v > iso {
			code |= 1
		}
	}
	return code
}

// Band levels. below is at or under iso1, inside is in (iso1, iso2], above is
// over iso2.
const (
	below int8 = iota
	inside
	above
)

func bandLevel(v, iso1, iso2 float64) int8 {
	switch {
	case v > iso2:
		return above
	case v > iso1:
		return inside
	}
	return below
}

func bandLevels(tri *subTriangle, iso1, iso2 float64) [3]int8 {
	var levels [3]int8
	for k, c := range tri {
		levels[k] = bandLevel(c.v, iso1, iso2)
	}
	return levels
}

// bandCode packs the three levels as base 3 digits, first corner most
// significant. Used for diagnostics and tests; the emitter works from the
// classified bandCase instead.
func bandCode(levels [3]int8) int {
	return int(levels[0])*9 + int(levels[1])*3 + int(levels[2])
}

// The two corners other than k, in corner order.
func others(k int) (int, int) {
	switch k {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	}
	return 0, 1
}
