package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/camera"
	"github.com/pthm-cable/cashfall/components"
	"github.com/pthm-cable/cashfall/geometry"
)

// TierCounts holds how many notes use each tier this frame.
type TierCounts [geometry.NumTiers]int

// LODSystem selects a mesh tier per note from its distance to the viewer.
type LODSystem struct {
	filter *ecs.Filter2[components.Transform, components.Detail]
}

// NewLODSystem creates an LOD system.
func NewLODSystem(w *ecs.World) *LODSystem {
	return &LODSystem{
		filter: ecs.NewFilter2[components.Transform, components.Detail](w),
	}
}

// Update writes the tier for every note and returns the tier histogram.
func (s *LODSystem) Update(viewer camera.Vec3) TierCounts {
	var counts TierCounts

	query := s.filter.Query()
	for query.Next() {
		tr, det := query.Get()
		p := camera.Vec3{X: tr.Position.X, Y: tr.Position.Y, Z: tr.Position.Z}
		det.Tier = det.Selector.Select(p.Sub(viewer).Len())
		counts[det.Tier]++
	}

	return counts
}
