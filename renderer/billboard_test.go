package renderer

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/geometry"
)

func TestLoadMeshesDropsPlanes(t *testing.T) {
	variants, err := geometry.BuildVariants(2, 1.16, [geometry.NumTiers]int{8, 4, 2})
	if err != nil {
		t.Fatalf("BuildVariants: %v", err)
	}

	r := NewBillboardRenderer(ecs.NewWorld(), variants, nil, Light{})
	if !r.Resident() {
		t.Fatal("renderer should hold planes before upload")
	}

	var uploaded geometry.Variants
	r.upload = func(v geometry.Variants) *NoteMeshes {
		uploaded = v
		return &NoteMeshes{}
	}
	r.loadMeshes()

	for tier, plane := range uploaded {
		if plane == nil {
			t.Errorf("tier %s was not handed to upload", geometry.Tier(tier))
		}
	}
	if r.Resident() {
		t.Error("planes still referenced after upload")
	}
}
