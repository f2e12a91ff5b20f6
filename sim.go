package ember

// BurstCapacity is the particle count of bursts spawned by
// Sim.Explode.
const BurstCapacity = 50

// Sim is the frame-driver context for the demo: one perpetual flame
// plus the set of explosion bursts still burning. All animation state
// lives here; the host owns a Sim and ticks it once per frame.
//
// Sim is not safe for concurrent use. One tick completes synchronously
// before the next begins, and nothing here blocks.
type Sim struct {
	flame  *Emitter
	bursts []*Emitter
}

// NewSim creates a simulation with a flame of flameCapacity particles
// anchored at flameAt and no active bursts.
func NewSim(flameAt Vec2, flameCapacity int) *Sim {
	return &Sim{flame: NewFire(flameAt, flameCapacity)}
}

// Advance runs one simulation tick: the flame updates, then each
// burst updates and finished bursts are dropped. Bursts are walked
// from the highest index down so removal is safe mid-iteration.
func (s *Sim) Advance() {
	s.flame.Update()
	for i := len(s.bursts) - 1; i >= 0; i-- {
		b := s.bursts[i]
		b.Update()
		if b.Finished() {
			s.bursts = append(s.bursts[:i], s.bursts[i+1:]...)
		}
	}
}

// Render draws the flame and every still-burning burst.
func (s *Sim) Render(c Canvas) {
	s.flame.Draw(c)
	for _, b := range s.bursts {
		b.Draw(c)
	}
}

// Step advances one tick and renders it, for hosts with a single
// combined update/draw callback.
func (s *Sim) Step(c Canvas) {
	s.Advance()
	s.Render(c)
}

// MoveFlame relocates the flame emitter, the primary pointer action.
func (s *Sim) MoveFlame(x, y float64) {
	s.flame.MoveTo(Vec2{X: x, Y: y})
}

// Explode detonates a new burst at (x, y), the secondary pointer
// action.
func (s *Sim) Explode(x, y float64) {
	s.bursts = append(s.bursts, NewBurst(Vec2{X: x, Y: y}, BurstCapacity))
}

// Flame returns the perpetual flame emitter.
func (s *Sim) Flame() *Emitter {
	return s.flame
}

// BurstCount returns the number of bursts still burning.
func (s *Sim) BurstCount() int {
	return len(s.bursts)
}
