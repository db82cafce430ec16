package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/camera"
	"github.com/pthm-cable/cashfall/components"
	"github.com/pthm-cable/cashfall/field"
	"github.com/pthm-cable/cashfall/geometry"
	"github.com/pthm-cable/cashfall/lod"
)

func spawnTestField(t *testing.T, count int) (*ecs.World, *FieldSpawner, []ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	cam := camera.New(camera.Vec3{Z: 5}, camera.Vec3{}, 40, 16.0/9.0)
	rng := rand.New(rand.NewSource(11))

	notes := field.Spawn(field.Params{Count: count, Depth: 80, Speed: 1}, cam.ViewportAt, rng)
	sp := NewFieldSpawner(w)
	entities := sp.Spawn(notes, cam.ViewportAt, lod.NewSelector(lod.DefaultThresholds))
	return w, sp, entities
}

func TestSpawnCreatesEntities(t *testing.T) {
	w, _, entities := spawnTestField(t, 100)
	if len(entities) != 100 {
		t.Fatalf("spawned %d entities, want 100", len(entities))
	}

	bbMap := ecs.NewMap[components.Billboard](w)
	trMap := ecs.NewMap[components.Transform](w)

	hero := bbMap.Get(entities[0])
	if !hero.Note.Hero() || hero.Note.Depth != 0 {
		t.Errorf("entity 0 is not the hero at depth 0: %+v", hero.Note)
	}
	if tr := trMap.Get(entities[0]); tr.Position.X != 0 {
		t.Errorf("hero x = %f, want 0", tr.Position.X)
	}

	mid := bbMap.Get(entities[50])
	if mid.Note.Depth != 69 {
		t.Errorf("entity 50 depth = %f, want 69", mid.Note.Depth)
	}
	if mid.Viewport.Height <= hero.Viewport.Height {
		t.Error("deeper note should see a taller viewport")
	}
}

func TestKinematicsSystemIntegrates(t *testing.T) {
	w, _, entities := spawnTestField(t, 10)
	bbMap := ecs.NewMap[components.Billboard](w)
	trMap := ecs.NewMap[components.Transform](w)

	before := bbMap.Get(entities[3]).Note.State.Y
	sys := NewKinematicsSystem(w, rand.New(rand.NewSource(1)))

	stats := sys.Update(1, 0.02)
	if stats.Updated != 10 {
		t.Errorf("updated %d notes, want 10", stats.Updated)
	}
	if stats.Stalled != 0 {
		t.Errorf("stalled = %d on a normal frame", stats.Stalled)
	}

	after := bbMap.Get(entities[3]).Note.State.Y
	if after != before+0.02 && stats.Wrapped == 0 {
		t.Errorf("y = %f, want %f", after, before+0.02)
	}
	if tr := trMap.Get(entities[3]); tr.Position.Z != -bbMap.Get(entities[3]).Note.Depth {
		t.Errorf("z = %f, want -depth", tr.Position.Z)
	}
}

func TestKinematicsSystemStall(t *testing.T) {
	w, _, entities := spawnTestField(t, 10)
	trMap := ecs.NewMap[components.Transform](w)
	sys := NewKinematicsSystem(w, rand.New(rand.NewSource(1)))

	pos := trMap.Get(entities[4]).Position
	rot := trMap.Get(entities[4]).Rotation

	stats := sys.Update(1, 0.5)
	if stats.Stalled != 10 {
		t.Errorf("stalled = %d, want 10", stats.Stalled)
	}
	tr := trMap.Get(entities[4])
	if tr.Position != pos {
		t.Errorf("position moved on stall frame: %+v -> %+v", pos, tr.Position)
	}
	if tr.Rotation.X == rot.X {
		t.Error("rotation did not advance on stall frame")
	}
}

func TestKinematicsSystemReseedsBrokenNote(t *testing.T) {
	w, _, entities := spawnTestField(t, 5)
	bbMap := ecs.NewMap[components.Billboard](w)
	bbMap.Get(entities[2]).Note.State.Y = math.NaN()
	healthy := bbMap.Get(entities[3]).Note.State.Y

	sys := NewKinematicsSystem(w, rand.New(rand.NewSource(1)))
	stats := sys.Update(0, 0.01)

	if stats.Reset != 1 {
		t.Errorf("reset = %d, want 1", stats.Reset)
	}
	if !bbMap.Get(entities[2]).Note.Valid() {
		t.Error("broken note still invalid")
	}
	if got := bbMap.Get(entities[3]).Note.State.Y; got != healthy+0.01 && stats.Wrapped == 0 {
		t.Errorf("healthy note y = %f, want %f", got, healthy+0.01)
	}
}

func TestKinematicsSystemNegativeSpeedDoesNotWrap(t *testing.T) {
	w, _, entities := spawnTestField(t, 10)
	bbMap := ecs.NewMap[components.Billboard](w)
	for _, e := range entities {
		bbMap.Get(e).Note.Speed = -1
	}

	sys := NewKinematicsSystem(w, rand.New(rand.NewSource(1)))
	for i := 0; i < 5; i++ {
		if stats := sys.Update(float64(i)*0.02, 0.02); stats.Wrapped != 0 {
			t.Fatalf("frame %d: wrapped = %d with every note moving down", i, stats.Wrapped)
		}
	}
}

func TestLODSystem(t *testing.T) {
	w := ecs.NewWorld()
	sp := NewFieldSpawner(w)
	sel := lod.NewSelector(lod.DefaultThresholds)

	notes := []field.Instance{
		{Index: 0, Depth: 0},
		{Index: 1, Depth: 59},
		{Index: 2, Depth: 60},
		{Index: 3, Depth: 74},
		{Index: 4, Depth: 75},
	}
	for i := range notes {
		notes[i].State.SpinRate = 10
	}
	entities := sp.Spawn(notes, func(float64) field.Viewport { return field.Viewport{Width: 1, Height: 1} }, sel)

	sys := NewLODSystem(w)
	counts := sys.Update(camera.Vec3{Z: 5})

	// Distances are depth + 5.
	if counts != (TierCounts{2, 2, 1}) {
		t.Errorf("counts = %v, want [2 2 1]", counts)
	}

	detMap := ecs.NewMap[components.Detail](w)
	want := []geometry.Tier{geometry.High, geometry.High, geometry.Medium, geometry.Medium, geometry.Low}
	for i, e := range entities {
		if got := detMap.Get(e).Tier; got != want[i] {
			t.Errorf("note %d tier = %s, want %s", i, got, want[i])
		}
	}
}

func TestTeardown(t *testing.T) {
	w, sp, _ := spawnTestField(t, 20)

	if n := sp.Teardown(); n != 20 {
		t.Errorf("removed %d, want 20", n)
	}

	sys := NewKinematicsSystem(w, rand.New(rand.NewSource(1)))
	if stats := sys.Update(0, 0.016); stats.Updated != 0 {
		t.Errorf("updated %d notes after teardown", stats.Updated)
	}
}
