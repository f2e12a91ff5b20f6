package ember

import "image/color"

// Compile-time check that the ebiten canvas satisfies the interface.
var _ Canvas = ImageCanvas{}

type circleCall struct {
	x, y, r float64
	clr     color.NRGBA
}

// recordCanvas captures FillCircle calls for assertions.
type recordCanvas struct {
	circles []circleCall
}

func (c *recordCanvas) FillCircle(x, y, r float64, clr color.NRGBA) {
	c.circles = append(c.circles, circleCall{x, y, r, clr})
}
