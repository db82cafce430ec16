package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyR) {
		g.respawn()
	}

	if rl.IsKeyPressed(rl.KeyF5) {
		g.reloadShader()
	}

	// Panel toggles
	if rl.IsKeyPressed(rl.KeyG) {
		g.shaderPanel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.statsPanel.Toggle()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(float64(w), float64(h))
	g.shaderPanel.SetPosition(w-280, 20)
}

// handleCameraInput processes orbit and zoom controls.
func (g *Game) handleCameraInput() {
	cfg := g.cameraConfig()

	// Drags that start on the shader panel belong to its sliders.
	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !g.shaderPanel.Contains(mouse.X, mouse.Y) {
		g.dragging = true
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		d := rl.GetMouseDelta()
		g.camera.Rotate(-float64(d.X)*cfg.OrbitSpeed, float64(d.Y)*cfg.OrbitSpeed)
	}

	// Wheel up moves closer
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if wheel > 0 {
			g.camera.ZoomBy(1 / cfg.ZoomStep)
		} else {
			g.camera.ZoomBy(cfg.ZoomStep)
		}
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
