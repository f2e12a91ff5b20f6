package ember

import (
	"fmt"
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// Fire gradient stops, youngest to oldest.
var (
	stopWhite  = mustHex("ffffff")
	stopYellow = mustHex("ffd800")
	stopOrange = mustHex("ff740e")
	stopRed    = mustHex("d90e0e")
	stopSmoke  = mustHex("333333")
)

func mustHex(hex string) color.NRGBA {
	r, g, b, err := colorconv.HexToRGB(hex)
	if err != nil {
		panic(fmt.Sprintf("ember: bad gradient stop %q: %v", hex, err))
	}
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// FireRamp maps a particle's remaining life (maxLife at birth, 0 at
// death) onto the fire gradient. Young particles burn white-hot and
// cool through yellow, orange, and red before trailing off as smoke.
// Alpha is the remaining life itself, so every stop fades out the same
// way.
func FireRamp(life float64) color.NRGBA {
	age := 1 - life/maxLife

	// Nested thresholds, checked widest first so each narrower stop
	// overrides the last.
	clr := stopSmoke
	if age < 0.5 {
		clr = stopRed
	}
	if age < 0.3 {
		clr = stopOrange
	}
	if age < 0.2 {
		clr = stopYellow
	}
	if age < 0.1 {
		clr = stopWhite
	}

	clr.A = lifeAlpha(life)
	return clr
}
