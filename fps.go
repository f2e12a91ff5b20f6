package ember

import "time"

// FrameMeter measures the instantaneous frame rate from the wall-clock
// gap between consecutive Tick calls.
type FrameMeter struct {
	last time.Time
	now  func() time.Time
}

// NewFrameMeter returns a meter ready for its first Tick.
func NewFrameMeter() *FrameMeter {
	return &FrameMeter{now: time.Now}
}

// Tick records a frame boundary and returns 1000 / elapsed-ms since
// the previous Tick. The first call, and any call within the clock's
// resolution of the last, returns 0.
func (m *FrameMeter) Tick() float64 {
	now := m.now()
	if m.last.IsZero() {
		m.last = now
		return 0
	}
	elapsed := now.Sub(m.last)
	m.last = now

	ms := float64(elapsed.Microseconds()) / 1000.0
	if ms <= 0 {
		return 0
	}
	return 1000.0 / ms
}
