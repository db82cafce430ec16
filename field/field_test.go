package field

import (
	"math"
	"math/rand"
	"testing"
)

func fixedViewport(w, h float64) ViewportFunc {
	return func(float64) Viewport { return Viewport{Width: w, Height: h} }
}

func TestQuarterCircle(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{0.5, math.Sqrt(0.75)},
		{1, 1},
	}
	for _, tt := range tests {
		if got := QuarterCircle(tt.x); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("QuarterCircle(%f) = %f, want %f", tt.x, got, tt.want)
		}
	}
}

func TestDepthScenario(t *testing.T) {
	// easing(0.5) = 0.866..., * 80 = 69.28 -> 69
	if got := Depth(50, 100, 80, QuarterCircle); got != 69 {
		t.Errorf("Depth(50, 100, 80) = %f, want 69", got)
	}
}

func TestDepthDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := Depth(i, 100, 80, QuarterCircle)
		b := Depth(i, 100, 80, QuarterCircle)
		if a != b {
			t.Fatalf("Depth(%d) not deterministic: %f vs %f", i, a, b)
		}
		if a != math.Round(a) {
			t.Fatalf("Depth(%d) = %f is not rounded", i, a)
		}
	}
}

func TestDepthMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i < 100; i++ {
		d := Depth(i, 100, 80, QuarterCircle)
		if d < prev {
			t.Fatalf("depth decreased at %d: %f < %f", i, d, prev)
		}
		prev = d
	}
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"quarter_circle", "linear", "cubic"} {
		if _, ok := EasingByName(name); !ok {
			t.Errorf("easing %q not found", name)
		}
	}
	e, ok := EasingByName("bogus")
	if ok {
		t.Error("unknown easing reported as found")
	}
	if e(0.5) != QuarterCircle(0.5) {
		t.Error("unknown easing should fall back to quarter circle")
	}
	if Cubic(0.5) != 0.875 {
		t.Errorf("Cubic(0.5) = %f, want 0.875", Cubic(0.5))
	}
}

func TestSpawnCountAndDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	notes := Spawn(Params{Count: 100, Depth: 80, Speed: 1}, fixedViewport(10, 6), rng)

	if len(notes) != 100 {
		t.Fatalf("len = %d, want 100", len(notes))
	}
	for i, n := range notes {
		if n.Index != i {
			t.Fatalf("note %d has index %d", i, n.Index)
		}
		if want := Depth(i, 100, 80, QuarterCircle); i > 0 && n.Depth != want {
			t.Errorf("note %d depth %f, want %f", i, n.Depth, want)
		}
	}
	if notes[50].Depth != 69 {
		t.Errorf("note 50 depth = %f, want 69", notes[50].Depth)
	}
}

func TestSpawnStateRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	notes := Spawn(Params{Count: 500, Depth: 80, Speed: 1}, fixedViewport(10, 6), rng)

	for _, n := range notes {
		s := n.State
		if s.SpinRate < 8 || s.SpinRate >= 12 {
			t.Fatalf("note %d spin %f outside [8,12)", n.Index, s.SpinRate)
		}
		if s.RotX < 0 || s.RotX >= math.Pi || s.RotZ < 0 || s.RotZ >= math.Pi {
			t.Fatalf("note %d phases (%f, %f) outside [0, pi)", n.Index, s.RotX, s.RotZ)
		}
		if s.X <= -1 || s.X > 1 {
			t.Fatalf("note %d x %f outside (-1, 1]", n.Index, s.X)
		}
		if s.Y <= -6 || s.Y > 6 {
			t.Fatalf("note %d y %f outside (-6, 6]", n.Index, s.Y)
		}
	}
}

func TestSpawnHero(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		notes := Spawn(Params{Count: 10, Depth: 80, Speed: 1}, fixedViewport(10, 6), rng)
		hero := &notes[0]

		if !hero.Hero() {
			t.Fatal("note 0 is not the hero")
		}
		if hero.Depth != 0 {
			t.Errorf("seed %d: hero depth %f, want 0", seed, hero.Depth)
		}
		if hero.PositionX(10) != 0 {
			t.Errorf("seed %d: hero x %f, want 0", seed, hero.PositionX(10))
		}
		if hero.BoundHeight(6) != 24 {
			t.Errorf("seed %d: hero bound %f, want 24", seed, hero.BoundHeight(6))
		}
		if notes[1].BoundHeight(6) != 6 {
			t.Errorf("seed %d: regular bound %f, want 6", seed, notes[1].BoundHeight(6))
		}
	}
}

func TestSpawnDegenerateInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, count := range []int{0, -5} {
		if got := Spawn(Params{Count: count, Depth: 80}, fixedViewport(1, 1), rng); len(got) != 0 {
			t.Errorf("count %d produced %d notes", count, len(got))
		}
	}

	for _, depth := range []float64{-10, math.NaN(), math.Inf(1)} {
		notes := Spawn(Params{Count: 5, Depth: depth, Speed: math.NaN()}, fixedViewport(1, 1), rng)
		if len(notes) != 5 {
			t.Fatalf("depth %f: got %d notes", depth, len(notes))
		}
		for _, n := range notes {
			if n.Depth != 0 {
				t.Errorf("depth %f: note %d at %f, want 0", depth, n.Index, n.Depth)
			}
			if n.Speed != 0 {
				t.Errorf("non-finite speed kept: %f", n.Speed)
			}
		}
	}
}

func TestSpawnNilViewport(t *testing.T) {
	notes := Spawn(Params{Count: 3, Depth: 10, Speed: 1}, nil, rand.New(rand.NewSource(1)))
	for _, n := range notes {
		if n.State.Y != 0 {
			t.Errorf("note %d y = %f with zero viewport", n.Index, n.State.Y)
		}
	}
}
