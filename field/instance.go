package field

import "math"

// StallThreshold is the frame delta (seconds) at or above which position
// integration is skipped, so a note does not jump after a long stall.
const StallThreshold = 0.1

// HeroBoundFactor widens the hero's vertical wrap bound relative to the viewport.
const HeroBoundFactor = 4

// Viewport is the visible width and height at a depth plane, in world units.
type Viewport struct {
	Width, Height float64
}

// Vec3 is a position or Euler rotation (radians, XYZ order).
type Vec3 struct {
	X, Y, Z float64
}

// State is the mutable motion state of one note.
type State struct {
	X        float64 // horizontal slot in [-1, 1], scaled by viewport width
	Y        float64 // vertical position in world units
	SpinRate float64 // seconds per radian, in [8, 12)
	RotX     float64
	RotZ     float64
}

// Instance is one falling note. Only its own Update mutates State.
type Instance struct {
	Index int
	Depth float64
	Speed float64
	State State
}

// Pose is the transform produced by one Update.
type Pose struct {
	Position Vec3
	Rotation Vec3
	// Moved is false on stall frames; Position then repeats the state's last
	// position and the caller should keep what it drew before.
	Moved bool
	// Wrapped is set when the note passed its bound and restarted at -bound.
	Wrapped bool
}

// Hero reports whether this is the designated front note.
func (in *Instance) Hero() bool {
	return in.Index == 0
}

// BoundHeight returns the wrap bound for a viewport height.
func (in *Instance) BoundHeight(viewportHeight float64) float64 {
	if in.Hero() {
		return viewportHeight * HeroBoundFactor
	}
	return viewportHeight
}

// PositionX returns the horizontal position; the hero is pinned to 0.
func (in *Instance) PositionX(viewportWidth float64) float64 {
	if in.Hero() {
		return 0
	}
	return in.State.X * viewportWidth
}

// Valid reports whether the state is finite.
func (in *Instance) Valid() bool {
	s := &in.State
	for _, v := range [...]float64{s.X, s.Y, s.SpinRate, s.RotX, s.RotZ, in.Depth, in.Speed} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Update advances the note by one frame.
//
// Position integrates only when dt < StallThreshold. Rotation always advances;
// the Y rotation is a function of elapsed time and index, never integrated.
// A note above its bound wraps to exactly -bound. Negative or non-finite dt
// leaves the state untouched.
func (in *Instance) Update(elapsed, dt float64, vp Viewport) Pose {
	s := &in.State
	pose := Pose{
		Position: Vec3{X: in.PositionX(vp.Width), Y: s.Y, Z: -in.Depth},
	}

	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		pose.Rotation = Vec3{X: s.RotX, Y: in.RotationY(elapsed), Z: s.RotZ}
		return pose
	}

	if dt < StallThreshold {
		s.Y += dt * in.Speed
		pose.Position.Y = s.Y
		pose.Moved = true
	}

	if s.SpinRate > 0 {
		s.RotX += dt / s.SpinRate
		s.RotZ += dt / s.SpinRate
	}
	pose.Rotation = Vec3{X: s.RotX, Y: in.RotationY(elapsed), Z: s.RotZ}

	if bound := in.BoundHeight(vp.Height); s.Y > bound {
		s.Y = -bound
		pose.Wrapped = true
	}

	return pose
}

// RotationY is the sway around the vertical axis at a given elapsed time.
func (in *Instance) RotationY(elapsed float64) float64 {
	return math.Sin(float64(in.Index)*1000+elapsed/10) * math.Pi
}
