package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cashfall/config"
	"github.com/pthm-cable/cashfall/telemetry"
	"github.com/pthm-cable/cashfall/ui"
)

const controlsLegend = "[Drag] orbit  [Wheel] zoom  [Home] reset view  [Space] pause  [R] respawn  [F5] reload shader  [G] shader  [Tab] stats"

// Draw renders the frame and closes the perf frame opened by Update.
func (g *Game) Draw() {
	g.syncShader()

	bg := config.Cfg().Screen.Background

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: bg[0], G: bg[1], B: bg[2], A: 255})

	g.perfCollector.StartPhase(telemetry.PhaseDraw)
	g.billboards.Draw(g.camera, g.elapsed)

	g.perfCollector.StartPhase(telemetry.PhaseOverlay)
	g.drawUI()

	rl.EndDrawing()

	g.perfCollector.EndFrame()
	g.recordFrame()
}

// drawUI renders the HUD and panels. Shader panel edits land in the store and
// reach the material on the next frame's sync.
func (g *Game) drawUI() {
	w, h := int32(g.screenWidth), int32(g.screenHeight)

	g.hud.Draw(w, h)

	g.statsPanel.Draw(ui.StatsData{
		FPS:     rl.GetFPS(),
		FrameMS: g.lastDT * 1000,
		Elapsed: g.elapsed,
		Notes:   g.notes,
		Tiers:   g.lastTiers,
		Stalled: g.lastKin.Stalled,
		Wrapped: g.lastKin.Wrapped,
		Pushes:  g.bridge.Pushes(),
		Paused:  g.paused,
	})

	cfg, _ := g.store.Get()
	if next, changed := g.shaderPanel.Draw(cfg); changed {
		g.store.Set(next)
	}

	g.hud.DrawControls(w, h, controlsLegend)
}
