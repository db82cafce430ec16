// Package components defines the ECS components of the note field.
package components

import (
	"github.com/pthm-cable/cashfall/field"
	"github.com/pthm-cable/cashfall/geometry"
	"github.com/pthm-cable/cashfall/lod"
)

// Billboard is one falling note and its static viewport at the note's depth.
type Billboard struct {
	Note     field.Instance
	Viewport field.Viewport
}

// Transform is the world transform written each frame.
type Transform struct {
	Position field.Vec3
	Rotation field.Vec3 // Euler XYZ, radians
}

// Detail tracks the mesh tier selected for a note.
type Detail struct {
	Selector lod.Selector
	Tier     geometry.Tier
}
