package field

import (
	"math"
	"math/rand"
)

// Params configures a field of notes.
type Params struct {
	Count  int
	Depth  float64 // maximum distance behind the camera plane
	Speed  float64 // vertical speed shared by all notes
	Easing Easing
}

// ViewportFunc returns the viewport size at a depth plane.
type ViewportFunc func(depth float64) Viewport

// Spawn creates Count notes with depth round(ease(i/count)*Depth). Note 0 is
// the hero and always sits at depth 0.
//
// Count <= 0 yields nil. A negative or non-finite Depth collapses every note
// onto the camera plane, and a non-finite Speed becomes 0; the field is
// decorative so bad input degrades instead of failing.
func Spawn(p Params, viewport ViewportFunc, rng *rand.Rand) []Instance {
	if p.Count <= 0 {
		return nil
	}
	if p.Depth < 0 || !finite(p.Depth) {
		p.Depth = 0
	}
	if !finite(p.Speed) {
		p.Speed = 0
	}
	if p.Easing == nil {
		p.Easing = QuarterCircle
	}

	out := make([]Instance, p.Count)
	for i := range out {
		depth := Depth(i, p.Count, p.Depth, p.Easing)
		if i == 0 || !finite(depth) {
			depth = 0
		}
		var vp Viewport
		if viewport != nil {
			vp = viewport(depth)
		}
		out[i] = Instance{
			Index: i,
			Depth: depth,
			Speed: p.Speed,
		}
		out[i].Reset(vp, rng)
	}
	return out
}

// Reset draws a fresh random state for the note at the given viewport.
// The hero's horizontal slot is always 0.
func (in *Instance) Reset(vp Viewport, rng *rand.Rand) {
	in.State = State{
		Y:        spread(rng, vp.Height*2),
		X:        spread(rng, 2),
		SpinRate: 8 + rng.Float64()*4,
		RotX:     rng.Float64() * math.Pi,
		RotZ:     rng.Float64() * math.Pi,
	}
	if in.Hero() {
		in.State.X = 0
	}
}

// spread returns a value in (-r/2, r/2].
func spread(rng *rand.Rand, r float64) float64 {
	return r * (0.5 - rng.Float64())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
