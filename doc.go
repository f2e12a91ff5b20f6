// Package ember is a small real-time fire and explosion particle demo
// for [Ebitengine].
//
// The simulation is a perpetual flame plus transient explosion bursts,
// advanced one tick per rendered frame. Particles carry a per-tick force
// accumulator, a magnitude-clamped motion vector, a fading lifetime, and
// a color function that maps remaining life onto a five-stop fire
// gradient (smoke, red, orange, yellow, white).
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and
// game loop for you:
//
//	sim := ember.NewSim(ember.Vec2{X: 320, Y: 400}, 120)
//	ember.Run(sim, ember.RunConfig{
//		Title: "Ember", Width: 640, Height: 480,
//	})
//
// Left click moves the flame; middle click detonates a burst at the
// cursor.
//
// For full control, implement [ebiten.Game] yourself and call
// [Sim.Advance] and [Sim.Render] directly:
//
//	type Game struct{ sim *ember.Sim }
//
//	func (g *Game) Update() error { g.sim.Advance(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) {
//		g.sim.Render(ember.ImageCanvas{Dst: s})
//	}
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Rendering targets
//
// Drawing goes through the [Canvas] interface, so the same simulation
// can render anywhere a filled circle can be approximated. The package
// ships [ImageCanvas] for Ebitengine and the ember/tty subpackage for
// terminal (tcell) output.
//
// [Ebitengine]: https://ebitengine.org
package ember
