package systems

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/components"
	"github.com/pthm-cable/cashfall/field"
)

// KinematicsStats summarises one kinematics pass.
type KinematicsStats struct {
	Updated int
	Stalled int // notes whose position was held by the stall guard
	Wrapped int
	Reset   int // notes reseeded after their state went non-finite
}

// KinematicsSystem advances every note by one frame.
type KinematicsSystem struct {
	filter *ecs.Filter2[components.Billboard, components.Transform]
	rng    *rand.Rand
}

// NewKinematicsSystem creates a kinematics system. rng reseeds broken notes.
func NewKinematicsSystem(w *ecs.World, rng *rand.Rand) *KinematicsSystem {
	return &KinematicsSystem{
		filter: ecs.NewFilter2[components.Billboard, components.Transform](w),
		rng:    rng,
	}
}

// Update runs one frame. Each note reads and writes only its own components.
func (s *KinematicsSystem) Update(elapsed, dt float64) KinematicsStats {
	var stats KinematicsStats

	query := s.filter.Query()
	for query.Next() {
		bb, tr := query.Get()
		note := &bb.Note

		if !note.Valid() {
			// One broken note must not stall the rest; give it a fresh state.
			slog.Warn("note state not finite, reseeding", "index", note.Index)
			note.Reset(bb.Viewport, s.rng)
			stats.Reset++
		}

		pose := note.Update(elapsed, dt, bb.Viewport)

		ApplyPose(tr, pose)
		if !pose.Moved {
			stats.Stalled++
		}

		if pose.Wrapped {
			stats.Wrapped++
		}
		stats.Updated++
	}

	return stats
}

// ApplyPose writes a pose into a transform. Stall frames keep the last position.
func ApplyPose(tr *components.Transform, pose field.Pose) {
	if pose.Moved {
		tr.Position = pose.Position
	}
	tr.Rotation = pose.Rotation
}
