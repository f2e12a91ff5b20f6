package ember

// Flame spawn parameters. Gentle jitter, slow fade, and a constant
// upward bias produce a steady licking flame.
var (
	flameTurbulence = Range{0.2, 0.5}
	flameFade       = Range{3, 6}
	flameDiameter   = Range{10, 15}
)

const flameRise = 1.0

// NewFire returns a perpetual flame emitter anchored at the given
// location. Dead particles are replaced in place, so the emitter holds
// exactly capacity particles forever and never reports Finished.
func NewFire(at Vec2, capacity int) *Emitter {
	return newEmitter(at, capacity, spawnFlame, deathReplace)
}

func spawnFlame(at Vec2) particle {
	return particle{
		pos:        at,
		turbulence: flameTurbulence.Random(),
		fade:       flameFade.Random(),
		diameter:   flameDiameter.Random(),
		rise:       flameRise,
		life:       maxLife,
		color:      FireRamp,
	}
}
