package ember

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the window and game loop created by Run.
type RunConfig struct {
	// Title is the window title. Defaults to "Ember".
	Title string
	// Width and Height are the window dimensions in pixels.
	// Defaults: 640x480.
	Width, Height int
	// ShowFPS enables the frame-rate overlay in the top-left corner.
	ShowFPS bool
	// ShowHints displays the pointer controls for a few seconds after
	// startup, then fades them out.
	ShowHints bool
	// OnExplode, when non-nil, is called after the secondary pointer
	// action spawns a burst. Useful for hooking in sound effects.
	OnExplode func(x, y float64)
}

const (
	hintText      = "left click: move fire\nmiddle click: explosion"
	hintHoldTime  = 5.0 // seconds hints stay fully visible
	hintFadeTime  = 2.0 // seconds the fade-out takes
	fpsRefreshGap = 0.5 // seconds between FPS overlay refreshes
)

// game adapts a Sim to the ebiten.Game interface and layers the
// diagnostics and hint overlays on top.
type game struct {
	sim   *Sim
	cfg   RunConfig
	meter *FrameMeter

	fpsImg   *ebiten.Image
	fpsAccum float64
	lastFPS  float64

	hintImg   *ebiten.Image
	hintDelay float64
	hintTween *gween.Tween
	hintAlpha float32
}

// Run opens a window and drives sim at the display refresh rate until
// the window is closed. Left click relocates the flame; middle click
// detonates a burst at the cursor.
func Run(sim *Sim, cfg RunConfig) error {
	if cfg.Title == "" {
		cfg.Title = "Ember"
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}

	g := &game{
		sim:       sim,
		cfg:       cfg,
		meter:     NewFrameMeter(),
		hintDelay: hintHoldTime,
		hintAlpha: 1,
	}
	if cfg.ShowFPS {
		// 120x32 is enough for "FPS: 60.0\nTPS: 60.0".
		g.fpsImg = ebiten.NewImage(120, 32)
		g.fpsAccum = fpsRefreshGap // draw on the first frame
	}
	if cfg.ShowHints {
		g.hintImg = ebiten.NewImage(220, 32)
		g.hintImg.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(g.hintImg, hintText)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}

func (g *game) Update() error {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.MoveFlame(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.sim.Explode(float64(x), float64(y))
		if g.cfg.OnExplode != nil {
			g.cfg.OnExplode(float64(x), float64(y))
		}
	}

	g.sim.Advance()

	dt := 1.0 / float64(ebiten.TPS())
	g.updateFPSOverlay(dt)
	g.updateHintOverlay(dt)
	return nil
}

func (g *game) updateFPSOverlay(dt float64) {
	fps := g.meter.Tick()
	if fps > 0 {
		g.lastFPS = fps
	}
	if g.fpsImg == nil {
		return
	}
	g.fpsAccum += dt
	if g.fpsAccum < fpsRefreshGap {
		return
	}
	g.fpsAccum = 0
	g.fpsImg.Clear()
	// Semi-transparent background for readability.
	g.fpsImg.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.fpsImg,
		fmt.Sprintf("FPS: %.1f\nTPS: %.1f", g.lastFPS, ebiten.ActualTPS()))
}

func (g *game) updateHintOverlay(dt float64) {
	if g.hintImg == nil {
		return
	}
	if g.hintDelay > 0 {
		g.hintDelay -= dt
		if g.hintDelay <= 0 {
			g.hintTween = gween.New(1, 0, hintFadeTime, ease.InOutSine)
		}
		return
	}
	v, done := g.hintTween.Update(float32(dt))
	g.hintAlpha = v
	if done {
		g.hintTween = nil
		g.hintImg = nil
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 18, A: 255})
	g.sim.Render(ImageCanvas{Dst: screen})

	if g.fpsImg != nil {
		screen.DrawImage(g.fpsImg, nil)
	}
	if g.hintImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(8, float64(g.cfg.Height-40))
		op.ColorScale.ScaleAlpha(g.hintAlpha)
		screen.DrawImage(g.hintImg, op)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
