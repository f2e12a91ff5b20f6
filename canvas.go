package ember

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is the drawing surface the simulation renders onto. Particles
// are plain filled circles with no outline, so any target that can
// approximate one can host the demo.
type Canvas interface {
	// FillCircle draws a filled circle of the given radius centered at
	// (x, y). Colors use straight (non-premultiplied) alpha.
	FillCircle(x, y, radius float64, clr color.NRGBA)
}

// ImageCanvas renders circles onto an ebiten.Image.
type ImageCanvas struct {
	Dst *ebiten.Image
}

// FillCircle implements Canvas.
func (c ImageCanvas) FillCircle(x, y, radius float64, clr color.NRGBA) {
	vector.DrawFilledCircle(c.Dst, float32(x), float32(y), float32(radius), clr, true)
}
