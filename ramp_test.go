package ember

import (
	"image/color"
	"testing"
)

func TestGradientStopsDecoded(t *testing.T) {
	cases := []struct {
		name string
		got  color.NRGBA
		want color.NRGBA
	}{
		{"white", stopWhite, color.NRGBA{255, 255, 255, 255}},
		{"yellow", stopYellow, color.NRGBA{255, 216, 0, 255}},
		{"orange", stopOrange, color.NRGBA{255, 116, 14, 255}},
		{"red", stopRed, color.NRGBA{217, 14, 14, 255}},
		{"smoke", stopSmoke, color.NRGBA{51, 51, 51, 255}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s stop = %+v, want %+v", c.name, c.got, c.want)
		}
	}
}

func TestFireRampStops(t *testing.T) {
	cases := []struct {
		name string
		life float64 // age = 1 - life/255
		want color.NRGBA
	}{
		{"newborn is white", 255, stopWhite}, // age 0
		{"young is yellow", 217, stopYellow}, // age ≈ 0.15
		{"warming is orange", 192, stopOrange}, // age ≈ 0.25
		{"mature is red", 153, stopRed},     // age 0.4
		{"old is smoke", 102, stopSmoke},    // age 0.6
	}
	for _, c := range cases {
		got := FireRamp(c.life)
		want := c.want
		want.A = lifeAlpha(c.life)
		if got != want {
			t.Errorf("%s: FireRamp(%f) = %+v, want %+v", c.name, c.life, got, want)
		}
		// Alpha always tracks the raw lifetime, whatever the stop.
		if got.A != uint8(c.life) {
			t.Errorf("%s: alpha = %d, want %d", c.name, got.A, uint8(c.life))
		}
	}
}

func TestFireRampBoundaries(t *testing.T) {
	// Threshold checks are strict, so an age exactly on a boundary
	// belongs to the older stop.
	boundaries := []struct {
		age  float64
		want color.NRGBA
	}{
		{0.1, stopYellow},
		{0.2, stopOrange},
		{0.3, stopRed},
		{0.5, stopSmoke},
	}
	for _, b := range boundaries {
		life := (1 - b.age) * maxLife
		got := FireRamp(life)
		if got.R != b.want.R || got.G != b.want.G || got.B != b.want.B {
			t.Errorf("age %.1f: got %+v, want stop %+v", b.age, got, b.want)
		}
	}
}

func TestFireRampFadesOut(t *testing.T) {
	if a := FireRamp(0).A; a != 0 {
		t.Errorf("alpha at life 0 = %d, want 0", a)
	}
	if a := FireRamp(-3).A; a != 0 {
		t.Errorf("alpha at negative life = %d, want 0", a)
	}
}
