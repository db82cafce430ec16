// Package camera provides a perspective camera with orbit controls and the
// viewport-at-depth math used to lay out the note field.
package camera

import (
	"math"

	"github.com/pthm-cable/cashfall/field"
)

// Vec3 is a point in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Len returns the vector length.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Camera is a perspective camera orbiting a target.
type Camera struct {
	// Target is the orbit centre.
	Target Vec3

	// FovY is the vertical field of view in degrees.
	FovY float64

	// Aspect is viewport width / height.
	Aspect float64

	// Orbit state: yaw around +Y, pitch above the XZ plane, radius from target.
	Yaw, Pitch, Radius float64

	// Radius constraints
	MinRadius, MaxRadius float64

	home Vec3
}

// maxPitch keeps the camera off the poles so the up vector stays valid.
const maxPitch = math.Pi/2 - 0.01

// New creates a camera at position looking at target.
func New(position, target Vec3, fovY, aspect float64) *Camera {
	c := &Camera{
		Target:    target,
		FovY:      fovY,
		Aspect:    aspect,
		MinRadius: 0.5,
		MaxRadius: 200,
		home:      position,
	}
	c.lookFrom(position)
	return c
}

func (c *Camera) lookFrom(position Vec3) {
	d := position.Sub(c.Target)
	c.Radius = d.Len()
	if c.Radius == 0 {
		c.Yaw, c.Pitch = 0, 0
		return
	}
	c.Yaw = math.Atan2(d.X, d.Z)
	c.Pitch = math.Asin(d.Y / c.Radius)
}

// Position returns the camera position from the orbit state.
func (c *Camera) Position() Vec3 {
	cp := math.Cos(c.Pitch)
	return Vec3{
		X: c.Target.X + c.Radius*cp*math.Sin(c.Yaw),
		Y: c.Target.Y + c.Radius*math.Sin(c.Pitch),
		Z: c.Target.Z + c.Radius*cp*math.Cos(c.Yaw),
	}
}

// Distance returns the distance from the camera to p.
func (c *Camera) Distance(p Vec3) float64 {
	return p.Sub(c.Position()).Len()
}

// ViewportAt returns the visible size at the plane through (0, 0, -depth),
// measured from the camera's current position.
func (c *Camera) ViewportAt(depth float64) field.Viewport {
	dist := c.Distance(Vec3{Z: -depth})
	h := 2 * math.Tan(c.FovY*math.Pi/360) * dist
	return field.Viewport{Width: h * c.Aspect, Height: h}
}

// Rotate orbits the camera by yaw and pitch deltas in radians.
// Pitch is clamped short of the poles.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// ZoomBy scales the orbit radius by factor, clamped to min/max.
func (c *Camera) ZoomBy(factor float64) {
	if factor <= 0 {
		return
	}
	c.Radius = clamp(c.Radius*factor, c.MinRadius, c.MaxRadius)
}

// Resize updates the aspect ratio.
func (c *Camera) Resize(width, height float64) {
	if height <= 0 {
		return
	}
	c.Aspect = width / height
}

// Reset returns the camera to its initial position.
func (c *Camera) Reset() {
	c.lookFrom(c.home)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
