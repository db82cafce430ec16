// Shader debug tool - renders a single wave-shaded note to a PNG file for inspection.
//
// Usage: go run ./cmd/shaderdebug -out note.png -time 3.5 -elevation 0.3
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cashfall/camera"
	"github.com/pthm-cable/cashfall/config"
	"github.com/pthm-cable/cashfall/field"
	"github.com/pthm-cable/cashfall/geometry"
	"github.com/pthm-cable/cashfall/lod"
	"github.com/pthm-cable/cashfall/renderer"
	"github.com/pthm-cable/cashfall/shader"
	"github.com/pthm-cable/cashfall/systems"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	elapsed := flag.Float64("time", 0, "Shader time in seconds")
	distance := flag.Float64("distance", 3, "Camera distance from the note")
	elevation := flag.Float64("elevation", -1, "Override big wave elevation (negative = config)")
	wireframe := flag.Bool("wireframe", false, "Render in wireframe")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()

	variants, err := geometry.BuildVariants(cfg.LOD.NoteWidth, cfg.LOD.NoteHeight, cfg.LOD.Segments)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build meshes: %v\n", err)
		os.Exit(1)
	}

	// One note at the origin, facing the camera
	world := ecs.NewWorld()
	spawner := systems.NewFieldSpawner(world)
	spawner.Spawn([]field.Instance{{Index: 0}}, nil, lod.NewSelector(cfg.Derived.Thresholds))

	cam := camera.New(camera.Vec3{Z: *distance}, camera.Vec3{}, cfg.Camera.FovY, float64(*width)/float64(*height))
	tiers := systems.NewLODSystem(world).Update(cam.Position())

	br := renderer.NewBillboardRenderer(world, variants, cfg.Assets.Notes, renderer.Light{
		Position:  cfg.Light.Position,
		Color:     cfg.Light.Color,
		Intensity: cfg.Light.Intensity,
	})
	br.Init()
	defer br.Unload()
	if br.Resident() {
		fmt.Fprintf(os.Stderr, "Plane data still resident after upload\n")
	}

	params := cfg.Shader
	if *elevation >= 0 {
		params.BigElevation = float32(*elevation)
	}
	params.Wireframe = *wireframe
	store := shader.NewStore(params)
	bridge := shader.NewBridge()
	p, version := store.Get()
	if !bridge.Sync(&br.Material, p, version) {
		fmt.Fprintf(os.Stderr, "Wave shader not attached, rendering flat\n")
	}

	// Create render texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	bg := cfg.Screen.Background
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Color{R: bg[0], G: bg[1], B: bg[2], A: 255})
	br.Draw(cam, *elapsed)
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Note rendered to: %s (%dx%d, tiers %v)\n", *outPath, *width, *height, tiers)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
