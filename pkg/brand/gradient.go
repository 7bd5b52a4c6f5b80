package brand

import (
	"fmt"
	"math"
	"strconv"
)

// Interpolate maps t in [0, 1] onto a piecewise-linear gradient through the
// palette's colors and returns the resulting hex value. t outside [0, 1] is
// clamped. Non-parseable stops are treated as black.
func (p Palette) Interpolate(t float64) string {
	stops := p.colors
	if len(stops) == 0 {
		return "#000000"
	}

	if len(stops) == 1 {
		return stops[0]
	}

	t = math.Max(0, math.Min(1, t))

	pos := t * float64(len(stops)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))

	if lo == hi {
		return stops[lo]
	}

	frac := pos - float64(lo)

	r1, g1, b1 := parseHex(stops[lo])
	r2, g2, b2 := parseHex(stops[hi])

	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + frac*(float64(b)-float64(a))))
	}

	return fmt.Sprintf("#%02X%02X%02X", lerp(r1, r2), lerp(g1, g2), lerp(b1, b2))
}

func parseHex(hex string) (r, g, b uint8) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}

	rv, err := strconv.ParseUint(hex[1:3], 16, 8)
	if err != nil {
		return 0, 0, 0
	}

	gv, err := strconv.ParseUint(hex[3:5], 16, 8)
	if err != nil {
		return 0, 0, 0
	}

	bv, err := strconv.ParseUint(hex[5:7], 16, 8)
	if err != nil {
		return 0, 0, 0
	}

	return uint8(rv), uint8(gv), uint8(bv)
}
