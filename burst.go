package ember

import "math"

// Burst spawn parameters. Rougher jitter and a faster fade than the
// flame, plus a hard radial kick at birth.
var (
	burstTurbulence = Range{0.6, 1.0}
	burstFade       = Range{4, 9}
	burstDiameter   = Range{10, 15}
	burstKick       = Range{10, 15}
)

// NewBurst returns a one-shot explosion emitter anchored at the given
// location. Dead particles are removed; the emitter reports Finished
// once all of them have burned out and is then dropped by its owner.
func NewBurst(at Vec2, capacity int) *Emitter {
	return newEmitter(at, capacity, spawnSpark, deathRemove)
}

func spawnSpark(at Vec2) particle {
	// Radial scatter: a kick of random magnitude rotated by a random
	// angle, preloaded into the impulse buffer so the first update
	// folds it into motion. The motion clamp caps the speed but keeps
	// the direction.
	kick := Vec2{X: burstKick.Random()}.Rotate(Range{0, 2 * math.Pi}.Random())
	return particle{
		pos:        at,
		impulse:    kick,
		turbulence: burstTurbulence.Random(),
		fade:       burstFade.Random(),
		diameter:   burstDiameter.Random(),
		life:       maxLife,
		color:      FireRamp,
	}
}
