// Package sigchart - the fixed 16-color context palette.
//
// The palette is process-wide constant data, computed once at init and
// never derived from input. Renderers receive concrete hex colors, so
// no color machinery leaks into the rendering layer.
package sigchart

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mutsig/sigtype"
)

// Palette policy: the 16 (5′,3′) flanking pairs form 4 blocks of 4,
// keyed by 5′ base. Each block gets its own hue; within a block the 3′
// base selects a step on a rising saturation ramp. Brightness is fixed,
// so bars differ by hue family (5′) and intensity (3′) only.
const (
	// paletteValue is the constant HSV brightness of every palette entry.
	paletteValue = 0.85

	// paletteSatFloor and paletteSatStep define the in-block ramp:
	// saturation 0.25, 0.50, 0.75, 1.00 for 3′ bases A, C, G, T.
	paletteSatFloor = 0.25
	paletteSatStep  = 0.25
)

// blockHues assigns one hue (degrees) per 5′ base, in sigtype.Bases
// order: A=red, C=green, G=azure, T=violet.
var blockHues = [4]float64{0, 120, 210, 280}

// palette maps each of the 16 contexts to its hex color. Built once at
// init; read-only afterwards.
var palette map[sigtype.Context]string

func init() {
	contexts := sigtype.Contexts()
	palette = make(map[sigtype.Context]string, len(contexts))
	for i, ctx := range contexts {
		block, step := i/4, i%4 // Contexts() is ordered 5′-major
		sat := paletteSatFloor + paletteSatStep*float64(step)
		palette[ctx] = hsvToHex(blockHues[block], sat, paletteValue)
	}
}

// ColorFor returns the fixed palette color for a flanking context, and
// whether the context is one of the 16 valid pairs.
func ColorFor(ctx sigtype.Context) (string, bool) {
	c, ok := palette[ctx]
	return c, ok
}

// PaletteOrder returns the 16 contexts in palette order: 4 hue blocks
// by 5′ base, each ramping saturation over the 3′ base. This is the
// bar order BuildLegend uses.
func PaletteOrder() []sigtype.Context {
	return sigtype.Contexts()
}

// hsvToHex converts an HSV triple (h in degrees [0,360), s and v in
// [0,1]) to an uppercase #RRGGBB string.
func hsvToHex(h, s, v float64) string {
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = c, x, 0
	case hp < 2:
		r, g, b = x, c, 0
	case hp < 3:
		r, g, b = 0, c, x
	case hp < 4:
		r, g, b = 0, x, c
	case hp < 5:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	m := v - c
	return fmt.Sprintf("#%02X%02X%02X", channel(r+m), channel(g+m), channel(b+m))
}

// channel scales a [0,1] color component to a rounded byte.
func channel(f float64) uint8 {
	return uint8(math.Round(f * 255))
}
