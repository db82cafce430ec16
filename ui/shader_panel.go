package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cashfall/shader"
)

// shaderSlider binds one wave parameter to a slider.
type shaderSlider struct {
	label    string
	min, max float32
	field    func(c *shader.Config) *float32
}

var shaderSliders = []shaderSlider{
	{"Big elevation", 0, 1, func(c *shader.Config) *float32 { return &c.BigElevation }},
	{"Big frequency", 0, 10, func(c *shader.Config) *float32 { return &c.BigFrequency }},
	{"Big speed", 0, 4, func(c *shader.Config) *float32 { return &c.BigSpeed }},
	{"Noise range down", -5, 0, func(c *shader.Config) *float32 { return &c.NoiseRangeDown }},
	{"Noise range up", 0, 5, func(c *shader.Config) *float32 { return &c.NoiseRangeUp }},
}

// ShaderPanel edits the wave parameters live.
type ShaderPanel struct {
	renderer *Renderer
	defaults shader.Config
	x, y     float32
	width    float32
	visible  bool
}

// NewShaderPanel creates a visible panel. Reset restores defaults.
func NewShaderPanel(x, y, width float32, defaults shader.Config) *ShaderPanel {
	return &ShaderPanel{
		renderer: NewRenderer(),
		defaults: defaults,
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// Toggle switches panel visibility.
func (p *ShaderPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// SetPosition updates the panel position.
func (p *ShaderPanel) SetPosition(x, y float32) {
	p.x = x
	p.y = y
}

// Contains reports whether a screen point is over the panel, so camera
// controls can ignore drags that belong to the sliders.
func (p *ShaderPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return x >= p.x && x <= p.x+p.width && y >= p.y && y <= p.y+p.height()
}

func (p *ShaderPanel) height() float32 {
	padding := float32(p.renderer.Theme.Padding)
	return padding*2 + 24 + float32(len(shaderSliders))*38 + 30 + 34
}

// Draw renders the panel and returns the edited config and whether it differs
// from cfg.
func (p *ShaderPanel) Draw(cfg shader.Config) (shader.Config, bool) {
	if !p.visible {
		return cfg, false
	}

	r := p.renderer
	padding := float32(r.Theme.Padding)
	r.DrawPanel(int32(p.x), int32(p.y), int32(p.width), int32(p.height()))

	x := p.x + padding
	y := p.y + padding
	sliderW := p.width - padding*2 - 50

	rl.DrawText("Wave", int32(x), int32(y), 16, r.Theme.SectionHeader)
	y += 24

	out := cfg
	for _, s := range shaderSliders {
		v := s.field(&out)
		rl.DrawText(s.label, int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
		y += 14
		*v = gui.SliderBar(
			rl.Rectangle{X: x, Y: y, Width: sliderW, Height: 16},
			"", "",
			*v, s.min, s.max,
		)
		rl.DrawText(fmt.Sprintf("%.2f", *v), int32(x+sliderW+6), int32(y+2), r.Theme.FontSize, r.Theme.ValueColor)
		y += 24
	}

	out.Wireframe = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 16, Height: 16}, "Wireframe", out.Wireframe)
	y += 30

	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 100, Height: 24}, "Reset") {
		out = p.defaults
	}

	return out, out != cfg
}
