// Package sfx plays procedurally generated sound effects for the demo.
// Everything is synthesized, so no audio assets ship with the module.
package sfx

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var ready bool

// Init opens the speaker. Callers should treat failure as non-fatal:
// the demo runs fine without sound, and Boom becomes a no-op.
func Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	ready = err == nil
	return err
}

// Boom plays a short low thump for an explosion. Silent when the
// speaker was never opened.
func Boom() {
	if !ready {
		return
	}
	tone, err := generators.SineTone(sampleRate, 70)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(180*time.Millisecond), tone))
}
