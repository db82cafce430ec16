// Package systems contains the ECS systems that drive the note field.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/components"
	"github.com/pthm-cable/cashfall/field"
	"github.com/pthm-cable/cashfall/lod"
)

// FieldSpawner creates and removes note entities.
type FieldSpawner struct {
	mapper *ecs.Map3[components.Billboard, components.Transform, components.Detail]
	filter *ecs.Filter1[components.Billboard]
	world  *ecs.World
}

// NewFieldSpawner creates a spawner bound to a world.
func NewFieldSpawner(w *ecs.World) *FieldSpawner {
	return &FieldSpawner{
		mapper: ecs.NewMap3[components.Billboard, components.Transform, components.Detail](w),
		filter: ecs.NewFilter1[components.Billboard](w),
		world:  w,
	}
}

// Spawn creates one entity per note. The viewport at each note's depth is
// computed once here and kept static for the note's lifetime.
func (s *FieldSpawner) Spawn(notes []field.Instance, viewport field.ViewportFunc, sel lod.Selector) []ecs.Entity {
	entities := make([]ecs.Entity, 0, len(notes))
	for i := range notes {
		n := notes[i]
		var vp field.Viewport
		if viewport != nil {
			vp = viewport(n.Depth)
		}
		bb := components.Billboard{Note: n, Viewport: vp}
		tr := components.Transform{
			Position: field.Vec3{X: n.PositionX(vp.Width), Y: n.State.Y, Z: -n.Depth},
			Rotation: field.Vec3{X: n.State.RotX, Z: n.State.RotZ},
		}
		det := components.Detail{Selector: sel}
		det.Selector.Reset()
		entities = append(entities, s.mapper.NewEntity(&bb, &tr, &det))
	}
	return entities
}

// Teardown removes every note entity. Systems see an empty field afterwards.
func (s *FieldSpawner) Teardown() int {
	var toRemove []ecs.Entity
	query := s.filter.Query()
	for query.Next() {
		toRemove = append(toRemove, query.Entity())
	}
	for _, e := range toRemove {
		s.world.RemoveEntity(e)
	}
	return len(toRemove)
}
