package renderer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/camera"
	"github.com/pthm-cable/cashfall/components"
	"github.com/pthm-cable/cashfall/geometry"
	"github.com/pthm-cable/cashfall/shader"
)

// Light is the single spot light shading the notes.
type Light struct {
	Position  [3]float32
	Color     [3]float32
	Intensity float32
}

// BillboardRenderer draws every note entity with the mesh of its current tier.
type BillboardRenderer struct {
	filter *ecs.Filter3[components.Billboard, components.Transform, components.Detail]

	variants     geometry.Variants
	texturePaths []string
	light        Light

	upload func(geometry.Variants) *NoteMeshes

	meshes   *NoteMeshes
	program  *WaveProgram
	textures []rl.Texture2D

	// One material; its diffuse map is swapped per note.
	material       rl.Material
	defaultShader  rl.Shader
	defaultTexture rl.Texture2D

	// Material is the bridge target. Its Program stays nil until Init
	// succeeds, so parameter pushes before then are deferred.
	Material shader.Material

	initialized bool
}

// NewBillboardRenderer creates a renderer. GPU resources are created lazily on
// the first Draw, once the raylib window exists.
func NewBillboardRenderer(w *ecs.World, variants geometry.Variants, texturePaths []string, light Light) *BillboardRenderer {
	return &BillboardRenderer{
		filter:       ecs.NewFilter3[components.Billboard, components.Transform, components.Detail](w),
		variants:     variants,
		texturePaths: texturePaths,
		light:        light,
		upload:       UploadVariants,
	}
}

// Init uploads meshes and textures and compiles the wave shader.
func (r *BillboardRenderer) Init() {
	if r.initialized {
		return
	}

	r.loadMeshes()
	r.textures = LoadTextures(r.texturePaths)

	r.material = rl.LoadMaterialDefault()
	r.defaultShader = r.material.Shader
	// Maps points at the diffuse map, the first entry.
	r.defaultTexture = r.material.Maps.Texture

	program, err := LoadWaveProgram()
	if err != nil {
		slog.Error("wave shader unavailable, drawing flat notes", "error", err)
	} else {
		r.attachProgram(program)
	}

	slog.Info("renderer initialized",
		"high_vertices", r.meshes.VertexCount(geometry.High),
		"medium_vertices", r.meshes.VertexCount(geometry.Medium),
		"low_vertices", r.meshes.VertexCount(geometry.Low),
		"textures", len(r.textures),
		"shader", r.program != nil,
	)

	r.initialized = true
}

// loadMeshes uploads the plane variants and drops the CPU copies.
func (r *BillboardRenderer) loadMeshes() {
	r.meshes = r.upload(r.variants)
	r.variants = geometry.Variants{}
}

// Resident reports whether CPU plane data is still held.
func (r *BillboardRenderer) Resident() bool {
	return r.variants != geometry.Variants{}
}

// attachProgram makes p the active wave program and applies the light.
func (r *BillboardRenderer) attachProgram(p *WaveProgram) {
	r.program = p
	r.Material.Program = p
	r.material.Shader = p.Shader()
	p.SetVec3(shader.UniformLightPos, r.light.Position[0], r.light.Position[1], r.light.Position[2])
	p.SetVec3(shader.UniformLightColor, r.light.Color[0], r.light.Color[1], r.light.Color[2])
	p.SetFloat(shader.UniformLightIntensity, r.light.Intensity)
}

// ReloadShader recompiles the wave program. On failure the current program
// stays active. Wave parameters are not reapplied; the caller's bridge must
// be invalidated so its next sync pushes them.
func (r *BillboardRenderer) ReloadShader() error {
	if !r.initialized {
		return nil
	}
	program, err := LoadWaveProgram()
	if err != nil {
		return err
	}
	old := r.program
	r.attachProgram(program)
	old.Unload()
	slog.Info("wave shader reloaded")
	return nil
}

// Draw renders all notes as seen from cam and returns how many were drawn.
// Call between BeginDrawing and EndDrawing.
func (r *BillboardRenderer) Draw(cam *camera.Camera, elapsed float64) int {
	if !r.initialized {
		r.Init()
	}

	if r.program != nil {
		pos := cam.Position()
		r.program.SetFloat(shader.UniformTime, float32(elapsed))
		r.program.SetVec3(shader.UniformViewPos, float32(pos.X), float32(pos.Y), float32(pos.Z))
	}

	rl.BeginMode3D(ToCamera3D(cam))
	// Notes are seen from both sides as they tumble.
	rl.DisableBackfaceCulling()
	if r.Material.Wireframe {
		rl.EnableWireMode()
	}

	drawn := 0
	query := r.filter.Query()
	for query.Next() {
		bb, tr, det := query.Get()
		rl.SetMaterialTexture(&r.material, rl.MapDiffuse, r.textures[bb.Note.Index%len(r.textures)])
		rl.DrawMesh(r.meshes.Mesh(det.Tier), r.material, NoteMatrix(tr))
		drawn++
	}

	if r.Material.Wireframe {
		rl.DisableWireMode()
	}
	rl.EnableBackfaceCulling()
	rl.EndMode3D()

	return drawn
}

// NoteMatrix builds the model matrix for a note: rotate, then translate.
func NoteMatrix(tr *components.Transform) rl.Matrix {
	rot := rl.MatrixRotateXYZ(rl.NewVector3(
		float32(tr.Rotation.X),
		float32(tr.Rotation.Y),
		float32(tr.Rotation.Z),
	))
	pos := rl.MatrixTranslate(
		float32(tr.Position.X),
		float32(tr.Position.Y),
		float32(tr.Position.Z),
	)
	return rl.MatrixMultiply(rot, pos)
}

// ToCamera3D converts an orbit camera into a raylib camera.
func ToCamera3D(c *camera.Camera) rl.Camera3D {
	p := c.Position()
	return rl.Camera3D{
		Position:   rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z)),
		Target:     rl.NewVector3(float32(c.Target.X), float32(c.Target.Y), float32(c.Target.Z)),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       float32(c.FovY),
		Projection: rl.CameraPerspective,
	}
}

// Unload frees GPU resources. The material's shader and diffuse map are reset
// to raylib's defaults first so UnloadMaterial frees only its map array.
func (r *BillboardRenderer) Unload() {
	if !r.initialized {
		return
	}
	r.material.Shader = r.defaultShader
	rl.SetMaterialTexture(&r.material, rl.MapDiffuse, r.defaultTexture)
	rl.UnloadMaterial(r.material)
	r.material = rl.Material{}

	r.Material.Program = nil
	r.program.Unload()
	r.program = nil
	for _, tex := range r.textures {
		rl.UnloadTexture(tex)
	}
	r.meshes.Unload()
	r.textures = nil
	r.initialized = false
}
