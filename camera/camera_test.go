package camera

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewKeepsPosition(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 16.0/9.0)

	p := cam.Position()
	if !near(p.X, 0) || !near(p.Y, 0) || !near(p.Z, 5) {
		t.Errorf("position = %+v, want (0, 0, 5)", p)
	}
	if cam.Radius != 5 {
		t.Errorf("radius = %f, want 5", cam.Radius)
	}
}

func TestViewportAt(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 2)

	tests := []float64{0, 10, 69, 80}
	for _, depth := range tests {
		vp := cam.ViewportAt(depth)
		wantH := 2 * math.Tan(20*math.Pi/180) * (5 + depth)
		if !near(vp.Height, wantH) {
			t.Errorf("depth %f: height = %f, want %f", depth, vp.Height, wantH)
		}
		if !near(vp.Width, wantH*2) {
			t.Errorf("depth %f: width = %f, want %f", depth, vp.Width, wantH*2)
		}
	}
}

func TestViewportGrowsWithDepth(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 1)
	prev := 0.0
	for depth := 0.0; depth <= 80; depth += 5 {
		h := cam.ViewportAt(depth).Height
		if h <= prev {
			t.Fatalf("viewport height did not grow at depth %f", depth)
		}
		prev = h
	}
}

func TestDistance(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 1)
	if d := cam.Distance(Vec3{Z: -60}); !near(d, 65) {
		t.Errorf("distance = %f, want 65", d)
	}
}

func TestRotateClampsPitch(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 1)
	cam.Rotate(0, 10)
	if cam.Pitch >= math.Pi/2 {
		t.Errorf("pitch %f not clamped", cam.Pitch)
	}
	cam.Rotate(0, -20)
	if cam.Pitch <= -math.Pi/2 {
		t.Errorf("pitch %f not clamped", cam.Pitch)
	}
	// Radius is unchanged by rotation.
	if d := cam.Distance(cam.Target); !near(d, 5) {
		t.Errorf("distance to target = %f after rotate", d)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 1)

	cam.ZoomBy(0.0001)
	if cam.Radius != cam.MinRadius {
		t.Errorf("radius = %f, want min %f", cam.Radius, cam.MinRadius)
	}
	cam.ZoomBy(1e6)
	if cam.Radius != cam.MaxRadius {
		t.Errorf("radius = %f, want max %f", cam.Radius, cam.MaxRadius)
	}
	cam.ZoomBy(-1)
	if cam.Radius != cam.MaxRadius {
		t.Error("negative zoom factor should be ignored")
	}
}

func TestReset(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 1)
	cam.Rotate(1, 0.3)
	cam.ZoomBy(2)
	cam.Reset()

	p := cam.Position()
	if !near(p.Z, 5) || !near(p.X, 0) || !near(p.Y, 0) {
		t.Errorf("position after reset = %+v", p)
	}
}

func TestResize(t *testing.T) {
	cam := New(Vec3{Z: 5}, Vec3{}, 40, 1)
	cam.Resize(1280, 720)
	if !near(cam.Aspect, 1280.0/720.0) {
		t.Errorf("aspect = %f", cam.Aspect)
	}
	cam.Resize(100, 0)
	if !near(cam.Aspect, 1280.0/720.0) {
		t.Error("zero height should be ignored")
	}
}
