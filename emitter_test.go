package ember

import "testing"

// burstBound is the worst-case tick count for a burst to drain: the
// slowest spark fades at 4 per tick from 255.
const burstBound = 64 // ceil(255 / 4)

func TestFireKeepsCapacity(t *testing.T) {
	e := NewFire(Vec2{100, 100}, 30)
	if e.Len() != 30 {
		t.Fatalf("initial Len = %d, want 30", e.Len())
	}
	for i := 0; i < 200; i++ {
		e.Update()
		if e.Len() != 30 {
			t.Fatalf("Len = %d after tick %d, want 30", e.Len(), i)
		}
		if e.Finished() {
			t.Fatalf("flame reported Finished on tick %d", i)
		}
	}
}

func TestFireZeroCapacity(t *testing.T) {
	e := NewFire(Vec2{}, 0)
	for i := 0; i < 10; i++ {
		e.Update()
	}
	if e.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.Len())
	}
	// A permanently empty flame still never finishes.
	if e.Finished() {
		t.Error("empty flame reported Finished")
	}
}

func TestBurstTerminates(t *testing.T) {
	e := NewBurst(Vec2{100, 100}, 50)
	prev := e.Len()
	if prev != 50 {
		t.Fatalf("initial Len = %d, want 50", prev)
	}

	ticks := 0
	for !e.Finished() {
		if ticks++; ticks > burstBound {
			t.Fatalf("burst not finished after %d ticks", burstBound)
		}
		e.Update()
		if e.Len() > prev {
			t.Fatalf("Len grew from %d to %d on tick %d", prev, e.Len(), ticks)
		}
		prev = e.Len()
		if e.Finished() != (e.Len() == 0) {
			t.Fatalf("Finished = %v with %d particles left", e.Finished(), e.Len())
		}
	}
	if e.Len() != 0 {
		t.Errorf("finished burst still holds %d particles", e.Len())
	}
}

func TestBurstZeroCapacityFinishedImmediately(t *testing.T) {
	e := NewBurst(Vec2{1, 2}, 0)
	if !e.Finished() {
		t.Error("zero-capacity burst should be Finished at construction")
	}
}

func TestRelocationIsolation(t *testing.T) {
	e := NewFire(Vec2{1, 1}, 1)
	p := Vec2{5, 5}
	e.MoveTo(p)
	p.X = 999
	if loc := e.Location(); loc != (Vec2{5, 5}) {
		t.Errorf("Location = %+v after mutating caller's vector, want {5 5}", loc)
	}
}

func TestReverseIterationRemovesAllDeadInOneTick(t *testing.T) {
	// Every particle dies on its first update. Forward iteration with
	// in-place removal would skip half of them.
	dieFast := func(at Vec2) particle {
		return particle{pos: at, fade: maxLife + 1, life: maxLife}
	}
	e := newEmitter(Vec2{}, 10, dieFast, deathRemove)
	e.Update()
	if e.Len() != 0 {
		t.Errorf("Len = %d after one tick, want 0", e.Len())
	}
	if !e.Finished() {
		t.Error("drained burst should be Finished")
	}
}

func TestReplacementSpawnsAtCurrentLocation(t *testing.T) {
	dieFast := func(at Vec2) particle {
		return particle{pos: at, fade: maxLife + 1, life: maxLife}
	}
	e := newEmitter(Vec2{0, 0}, 3, dieFast, deathReplace)
	e.MoveTo(Vec2{50, 60})
	e.Update()
	if e.Len() != 3 {
		t.Fatalf("Len = %d, want 3", e.Len())
	}
	for i, p := range e.particles {
		if p.pos != (Vec2{50, 60}) {
			t.Errorf("particle %d spawned at %+v, want {50 60}", i, p.pos)
		}
	}
}

func TestBurstSparkKickMagnitude(t *testing.T) {
	// Spark impulses are preloaded with the radial kick and nothing
	// else, so their magnitude must sit in the configured range.
	for i := 0; i < 100; i++ {
		p := spawnSpark(Vec2{})
		l := p.impulse.Len()
		if l < burstKick.Min-1e-9 || l > burstKick.Max+1e-9 {
			t.Fatalf("kick magnitude = %f, outside [%f, %f]", l, burstKick.Min, burstKick.Max)
		}
	}
}

func TestFlameSpawnParameters(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := spawnFlame(Vec2{7, 8})
		if p.pos != (Vec2{7, 8}) {
			t.Fatalf("spawned at %+v, want {7 8}", p.pos)
		}
		if p.turbulence < flameTurbulence.Min || p.turbulence > flameTurbulence.Max {
			t.Fatalf("turbulence = %f out of range", p.turbulence)
		}
		if p.fade < flameFade.Min || p.fade > flameFade.Max {
			t.Fatalf("fade = %f out of range", p.fade)
		}
		if p.diameter < flameDiameter.Min || p.diameter > flameDiameter.Max {
			t.Fatalf("diameter = %f out of range", p.diameter)
		}
		if p.rise != flameRise {
			t.Fatalf("rise = %f, want %f", p.rise, flameRise)
		}
		if p.life != maxLife {
			t.Fatalf("life = %f, want %f", p.life, float64(maxLife))
		}
	}
}

func TestZeroAllocsDuringFlameUpdate(t *testing.T) {
	e := NewFire(Vec2{100, 100}, 500)
	// Warmup: let replacement kick in.
	for i := 0; i < 100; i++ {
		e.Update()
	}

	allocs := testing.AllocsPerRun(100, func() {
		e.Update()
	})
	if allocs > 0 {
		t.Errorf("update allocs = %f, want 0", allocs)
	}
}

// --- Benchmarks ---

func BenchmarkFlameUpdate_500(b *testing.B) {
	e := NewFire(Vec2{100, 100}, 500)
	for i := 0; i < 100; i++ {
		e.Update()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		e.Update()
	}
}

func BenchmarkBurstLifecycle_50(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		e := NewBurst(Vec2{100, 100}, 50)
		for !e.Finished() {
			e.Update()
		}
	}
}
