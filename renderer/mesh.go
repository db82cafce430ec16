// Package renderer uploads note meshes and textures to the GPU and draws the
// note field with the wave shader.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cashfall/geometry"
)

// NoteMeshes holds one uploaded mesh per detail tier.
type NoteMeshes struct {
	meshes   [geometry.NumTiers]rl.Mesh
	vertices [geometry.NumTiers]int
	uploaded bool
}

// UploadVariants uploads the three plane variants as non-indexed triangle
// lists. Must be called after the raylib window is created.
// CPU copies are not kept once the GPU buffers exist.
func UploadVariants(v geometry.Variants) *NoteMeshes {
	nm := &NoteMeshes{}
	for tier, plane := range v {
		if plane == nil {
			continue
		}
		tris := plane.Triangles()
		nm.meshes[tier] = uploadMesh(tris)
		nm.vertices[tier] = tris.VertexCount()
	}
	nm.uploaded = true
	return nm
}

func uploadMesh(m geometry.Mesh) rl.Mesh {
	n := m.VertexCount()
	if n == 0 {
		return rl.Mesh{}
	}
	mesh := rl.Mesh{
		VertexCount:   int32(n),
		TriangleCount: int32(n / 3),
		Vertices:      &m.Positions[0],
		Normals:       &m.Normals[0],
		Texcoords:     &m.UVs[0],
	}
	rl.UploadMesh(&mesh, false)

	// Buffers belong to Go; UnloadMesh must not free them.
	mesh.Vertices = nil
	mesh.Normals = nil
	mesh.Texcoords = nil
	return mesh
}

// Mesh returns the mesh for a tier.
func (nm *NoteMeshes) Mesh(t geometry.Tier) rl.Mesh {
	if int(t) >= len(nm.meshes) {
		t = geometry.Low
	}
	return nm.meshes[t]
}

// VertexCount returns the uploaded vertex count for a tier.
func (nm *NoteMeshes) VertexCount(t geometry.Tier) int {
	if int(t) >= len(nm.vertices) {
		return 0
	}
	return nm.vertices[t]
}

// Unload frees the GPU buffers.
func (nm *NoteMeshes) Unload() {
	if nm == nil || !nm.uploaded {
		return
	}
	for i := range nm.meshes {
		if nm.meshes[i].VaoID != 0 {
			rl.UnloadMesh(&nm.meshes[i])
		}
	}
	nm.uploaded = false
}
