// Package game wires the note field, camera, renderer and telemetry into a
// frame loop.
package game

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"

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
	"github.com/pthm-cable/cashfall/telemetry"
	"github.com/pthm-cable/cashfall/ui"
)

// HeadlessDT is the fixed frame time used without a window.
const HeadlessDT = 1.0 / 60.0

// Options configures game initialization.
type Options struct {
	Seed      int64  // RNG seed for note placement
	LogStats  bool   // log window stats via slog
	OutputDir string // CSV output directory, empty = disabled
	Headless  bool   // no window, fixed dt
}

// Game holds the complete state of the note field scene.
type Game struct {
	world *ecs.World
	rng   *rand.Rand
	seed  int64

	camera *camera.Camera

	// Systems
	spawner    *systems.FieldSpawner
	kinematics *systems.KinematicsSystem
	lod        *systems.LODSystem

	// Shader parameters flow store -> bridge -> material
	store    *shader.Store
	bridge   *shader.Bridge
	material *shader.Material

	// Rendering and UI (nil when headless)
	billboards  *renderer.BillboardRenderer
	hud         *ui.HUD
	statsPanel  *ui.StatsPanel
	shaderPanel *ui.ShaderPanel

	// Telemetry
	perfCollector *telemetry.PerfCollector
	frameWindow   *telemetry.FrameWindow
	outputManager *telemetry.OutputManager
	statsWindow   int
	logStats      bool

	// Last frame results
	lastKin   systems.KinematicsStats
	lastTiers systems.TierCounts
	lastDT    float64
	notes     int

	// State
	elapsed  float64
	frame    int64
	paused   bool
	headless bool
	dragging bool

	screenWidth, screenHeight float32
}

// NewGame creates a game from the global config. In graphical mode the raylib
// window must already be open.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	variants, err := geometry.BuildVariants(cfg.LOD.NoteWidth, cfg.LOD.NoteHeight, cfg.LOD.Segments)
	if err != nil {
		return nil, fmt.Errorf("building note meshes: %w", err)
	}

	world := ecs.NewWorld()
	rng := rand.New(rand.NewSource(opts.Seed))

	cam := camera.New(
		vec3(cfg.Camera.Position),
		vec3(cfg.Camera.Target),
		cfg.Camera.FovY,
		cfg.Derived.Aspect,
	)

	g := &Game{
		world:         world,
		rng:           rng,
		seed:          opts.Seed,
		camera:        cam,
		spawner:       systems.NewFieldSpawner(world),
		kinematics:    systems.NewKinematicsSystem(world, rng),
		lod:           systems.NewLODSystem(world),
		store:         shader.NewStore(cfg.Shader),
		bridge:        shader.NewBridge(),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		frameWindow:   telemetry.NewFrameWindow(cfg.Telemetry.StatsWindow),
		statsWindow:   cfg.Telemetry.StatsWindow,
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		screenWidth:   float32(cfg.Screen.Width),
		screenHeight:  float32(cfg.Screen.Height),
	}
	if g.statsWindow < 1 {
		g.statsWindow = 60
	}

	if opts.Headless {
		// No program is ever attached; bridge syncs stay no-ops.
		g.material = &shader.Material{}
	} else {
		g.billboards = renderer.NewBillboardRenderer(world, variants, cfg.Assets.Notes, renderer.Light{
			Position:  cfg.Light.Position,
			Color:     cfg.Light.Color,
			Intensity: cfg.Light.Intensity,
		})
		g.material = &g.billboards.Material
		g.hud = ui.NewHUD()
		g.statsPanel = ui.NewStatsPanel(20, 200, 240)
		g.shaderPanel = ui.NewShaderPanel(g.screenWidth-280, 20, 260, cfg.Shader)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g.spawnField()

	return g, nil
}

// spawnField lays out a fresh field using the camera's current position.
func (g *Game) spawnField() {
	cfg := config.Cfg()

	notes := field.Spawn(cfg.FieldParams(), g.camera.ViewportAt, g.rng)

	sel := lod.NewSelector(cfg.Derived.Thresholds)
	sel.Hysteresis = cfg.LOD.Hysteresis

	g.spawner.Spawn(notes, g.camera.ViewportAt, sel)
	g.notes = len(notes)

	slog.Info("field spawned",
		"notes", len(notes),
		"depth", cfg.Field.Depth,
		"easing", cfg.Field.Easing,
		"seed", g.seed,
	)
}

// respawn tears down the field and lays out a new one.
func (g *Game) respawn() {
	removed := g.spawner.Teardown()
	slog.Info("field torn down", "notes", removed)
	g.spawnField()
}

// Update processes input and advances the field by the last frame time.
func (g *Game) Update() {
	g.perfCollector.StartFrame()
	g.handleInput()
	g.step(float64(rl.GetFrameTime()))
}

// UpdateHeadless advances one fixed frame without touching raylib.
func (g *Game) UpdateHeadless() {
	g.perfCollector.StartFrame()
	g.step(HeadlessDT)
	g.syncShader()
	g.perfCollector.EndFrame()
	g.recordFrame()
}

// step runs the per-frame systems.
func (g *Game) step(dt float64) {
	g.lastDT = dt
	if g.paused {
		g.lastKin = systems.KinematicsStats{}
		return
	}

	g.perfCollector.StartPhase(telemetry.PhaseKinematics)
	if dt >= 0 && !math.IsInf(dt, 0) && !math.IsNaN(dt) {
		g.elapsed += dt
	}
	g.lastKin = g.kinematics.Update(g.elapsed, dt)

	g.perfCollector.StartPhase(telemetry.PhaseLOD)
	g.lastTiers = g.lod.Update(g.camera.Position())
}

// syncShader pushes shader parameters if they changed since the last push.
func (g *Game) syncShader() {
	g.perfCollector.StartPhase(telemetry.PhaseBridge)
	cfg, version := g.store.Get()
	if g.bridge.Sync(g.material, cfg, version) {
		slog.Debug("shader parameters pushed", "version", version, "pushes", g.bridge.Pushes())
	}
}

// reloadShader recompiles the wave program and schedules a full parameter push.
func (g *Game) reloadShader() {
	if err := g.billboards.ReloadShader(); err != nil {
		slog.Error("shader reload failed", "error", err)
		return
	}
	g.bridge.Invalidate()
}

// Unload tears down the field and releases all resources.
func (g *Game) Unload() {
	if g.frameWindow.Len() > 0 {
		g.flushTelemetry()
	}
	g.spawner.Teardown()
	if g.billboards != nil {
		g.billboards.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Frame returns the number of completed frames.
func (g *Game) Frame() int64 {
	return g.frame
}

// Elapsed returns accumulated scene time in seconds.
func (g *Game) Elapsed() float64 {
	return g.elapsed
}

// Notes returns the number of notes in the field.
func (g *Game) Notes() int {
	return g.notes
}

// Shader returns the shader parameter store.
func (g *Game) Shader() *shader.Store {
	return g.store
}

func vec3(v [3]float64) camera.Vec3 {
	return camera.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
