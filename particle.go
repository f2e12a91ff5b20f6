package ember

import "image/color"

const (
	// maxLife is the lifetime a particle is born with. Lifetime only
	// ever decreases, by the particle's fade rate each tick.
	maxLife = 255.0

	// maxMotion caps the magnitude of a particle's motion vector,
	// preventing runaway velocity from large accumulated forces.
	maxMotion = 3.0
)

// particle holds per-particle simulation state. Unexported; managed by
// Emitter.
type particle struct {
	pos Vec2

	// impulse accumulates forces applied during the current tick and
	// is cleared by update after folding into vel.
	impulse Vec2

	// vel carries motion across ticks, clamped to maxMotion.
	vel Vec2

	turbulence float64 // random jitter amplitude per tick
	fade       float64 // lifetime decrement per tick
	diameter   float64 // render size in pixels
	rise       float64 // upward bias added to vertical jitter

	life float64 // remaining lifetime, maxLife at birth
	dead bool    // latched once life reaches zero

	// color overrides the default translucent-white fill. May be nil.
	color func(life float64) color.NRGBA
}

// applyForce accumulates a force into the particle's impulse buffer.
// Forces take effect on the next update.
func (p *particle) applyForce(fx, fy float64) {
	p.impulse.X += fx
	p.impulse.Y += fy
}

// update advances the particle by one tick: jitter, force integration,
// motion clamp, movement, and lifetime decay. Dead particles must not
// be updated again; the owning emitter replaces or removes them.
func (p *particle) update() {
	// Vertical jitter reaches further up than down when rise > 0,
	// which is what makes flame particles drift upward.
	jx := Range{-p.turbulence, p.turbulence}.Random()
	jy := Range{-(p.turbulence + p.rise), p.turbulence}.Random()
	p.applyForce(jx, jy)

	p.vel = p.vel.Add(p.impulse).Limit(maxMotion)
	p.impulse = Vec2{}
	p.pos = p.pos.Add(p.vel)

	p.life -= p.fade
	if p.life <= 0 {
		p.dead = true
	}
}

// draw fills a circle of the particle's diameter at its position. With
// no color function the fill is white with remaining life as alpha.
func (p *particle) draw(c Canvas) {
	var clr color.NRGBA
	if p.color != nil {
		clr = p.color(p.life)
	} else {
		clr = color.NRGBA{R: 255, G: 255, B: 255, A: lifeAlpha(p.life)}
	}
	c.FillCircle(p.pos.X, p.pos.Y, p.diameter/2, clr)
}

// lifeAlpha converts a remaining lifetime to an 8-bit alpha value.
func lifeAlpha(life float64) uint8 {
	switch {
	case life <= 0:
		return 0
	case life >= maxLife:
		return 255
	default:
		return uint8(life)
	}
}
