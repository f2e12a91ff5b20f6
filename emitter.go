package ember

// spawnFunc produces one freshly born particle anchored at the given
// location. Each emitter variant supplies its own.
type spawnFunc func(at Vec2) particle

// deathMode selects what an emitter does with a particle that died
// during the current tick.
type deathMode uint8

const (
	// deathReplace swaps in a fresh particle at the same index. The
	// emitter's particle count never changes and it never finishes.
	deathReplace deathMode = iota
	// deathRemove deletes the particle. The emitter finishes once its
	// collection drains.
	deathRemove
)

// Emitter owns a bounded collection of particles anchored at a
// location. Behavior is fixed at construction by a spawn policy: a
// spawnFunc that decides the parameters of new particles and a
// deathMode that decides whether dead ones are replaced (perpetual
// flame) or removed (one-shot burst). See NewFire and NewBurst.
type Emitter struct {
	loc       Vec2
	particles []particle
	spawn     spawnFunc
	death     deathMode
	finished  bool
}

// newEmitter constructs an emitter and eagerly fills it to capacity.
// A remove-mode emitter built with zero capacity has nothing to show
// and is finished immediately.
func newEmitter(at Vec2, capacity int, spawn spawnFunc, death deathMode) *Emitter {
	if capacity < 0 {
		capacity = 0
	}
	e := &Emitter{
		loc:       at,
		particles: make([]particle, 0, capacity),
		spawn:     spawn,
		death:     death,
	}
	for i := 0; i < capacity; i++ {
		e.particles = append(e.particles, spawn(at))
	}
	if death == deathRemove && len(e.particles) == 0 {
		e.finished = true
	}
	return e
}

// Update advances every particle by one tick and applies the death
// policy. Iteration runs from the highest index down so that in-place
// removal never shifts an element the loop has yet to visit; forward
// iteration here would skip particles after each removal.
func (e *Emitter) Update() {
	for i := len(e.particles) - 1; i >= 0; i-- {
		p := &e.particles[i]
		p.update()
		if !p.dead {
			continue
		}
		switch e.death {
		case deathReplace:
			e.particles[i] = e.spawn(e.loc)
		case deathRemove:
			e.particles = append(e.particles[:i], e.particles[i+1:]...)
		}
	}
	if e.death == deathRemove && len(e.particles) == 0 {
		e.finished = true
	}
}

// Draw renders every live particle onto the canvas.
func (e *Emitter) Draw(c Canvas) {
	for i := range e.particles {
		e.particles[i].draw(c)
	}
}

// MoveTo re-anchors the emitter. Particles spawned from now on appear
// at the new location; already-spawned particles are unaffected.
func (e *Emitter) MoveTo(at Vec2) {
	e.loc = at
}

// Location returns the emitter's current spawn anchor.
func (e *Emitter) Location() Vec2 {
	return e.loc
}

// Len returns the current particle count.
func (e *Emitter) Len() int {
	return len(e.particles)
}

// Finished reports whether the emitter has nothing left to show.
// Replace-mode emitters never finish.
func (e *Emitter) Finished() bool {
	return e.finished
}
