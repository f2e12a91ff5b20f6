// Package tty renders an ember simulation in the terminal using tcell.
// Each character cell stands in for a block of virtual pixels; particle
// alpha picks the shade rune and particle color the foreground color.
package tty

import (
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/emberlight/ember"
)

// Virtual pixels per character cell. Terminal cells are roughly twice
// as tall as they are wide.
const (
	cellW = 8.0
	cellH = 16.0
)

// tickRate is the simulation cadence in ticks per second.
const tickRate = 30

// shades orders block runes from faint to solid.
var shades = [...]rune{'░', '▒', '▓', '█'}

// shade picks the block rune for an 8-bit alpha value.
func shade(a uint8) rune {
	return shades[int(a)*len(shades)/256]
}

// cellCanvas implements ember.Canvas on a tcell screen. Circles
// collapse to a single cell; at terminal resolution that is all the
// particle sizes in this demo amount to.
type cellCanvas struct {
	screen tcell.Screen
}

func (c *cellCanvas) FillCircle(x, y, radius float64, clr color.NRGBA) {
	if clr.A < 16 {
		// Too faint to show at one rune per particle.
		return
	}
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
	c.screen.SetContent(int(x/cellW), int(y/cellH), shade(clr.A), nil, style)
}

// Run drives sim in the terminal until Esc, Ctrl-C, or q is pressed.
// Mouse button 1 relocates the flame; button 2 or 3 detonates a burst
// at the pointer.
func Run(sim *ember.Sim) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Fini unblocks PollEvent, which then returns nil and ends the
	// goroutine.
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	canvas := &cellCanvas{screen: screen}
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
			case *tcell.EventMouse:
				cx, cy := ev.Position()
				x, y := float64(cx)*cellW, float64(cy)*cellH
				switch {
				case ev.Buttons()&tcell.Button1 != 0:
					sim.MoveFlame(x, y)
				case ev.Buttons()&(tcell.Button2|tcell.Button3) != 0:
					sim.Explode(x, y)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			screen.Clear()
			sim.Step(canvas)
			screen.Show()
		}
	}
}
