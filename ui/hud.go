package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Title lines drawn in the top-left corner.
var titleLines = []string{"ICH MACHE", "ALLES FUER GELD"}

// creditLines are drawn in the bottom-right corner.
var creditLines = []string{
	"Inspiration and ideas",
	"Fundamentals",
	"Finding models",
	"Preparing them for the web",
	"Displaying and changing models",
	"Animation fundamentals",
	"Effects and making things look good",
	"Performance and time to load",
}

// HUD draws the static title overlay and the control legend.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the title and credit text in the screen corners.
func (h *HUD) Draw(screenWidth, screenHeight int32) {
	t := h.renderer.Theme

	y := int32(40)
	for _, line := range titleLines {
		rl.DrawText(line, 40, y, 48, t.TitleColor)
		y += 52
	}
	rl.DrawText("In Go & raylib", 40, y+6, 16, t.LabelColor)

	rl.DrawText("An idea by Endrick", 40, screenHeight-40, 14, t.LabelColor)

	lineHeight := int32(16)
	y = screenHeight - 40 - int32(len(creditLines)-1)*lineHeight
	for _, line := range creditLines {
		w := rl.MeasureText(line, 12)
		rl.DrawText(line, screenWidth-40-w, y, 12, t.LabelColor)
		y += lineHeight
	}
}

// DrawControls renders the control legend at the bottom centre of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	w := rl.MeasureText(controls, 12)
	rl.DrawText(controls, (screenWidth-w)/2, screenHeight-20, 12, rl.Gray)
}

// StatsData holds the per-frame numbers shown in the stats panel.
type StatsData struct {
	FPS     int32
	FrameMS float64
	Elapsed float64
	Notes   int
	Tiers   [3]int
	Stalled int
	Wrapped int
	Pushes  int
	Paused  bool
}

// tierShare returns the fraction of notes in tier i.
func (d StatsData) tierShare(i int) float32 {
	if d.Notes == 0 {
		return 0
	}
	return float32(d.Tiers[i]) / float32(d.Notes)
}

// StatsSections describes the stats panel layout.
func StatsSections() []SectionDescriptor {
	stats := func(data any) StatsData {
		s, _ := data.(StatsData)
		return s
	}
	return []SectionDescriptor{
		{
			ID:    "frame",
			Title: "Frame",
			Fields: []FieldDescriptor{
				{ID: "fps", Label: "FPS", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%d", stats(d).FPS)
				}},
				{ID: "frame_ms", Label: "Frame", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%.2f ms", stats(d).FrameMS)
				}},
				{ID: "elapsed", Label: "Elapsed", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%.1f s", stats(d).Elapsed)
				}},
				{ID: "paused", Label: "State", Widget: WidgetText,
					Visible:    func(d any) bool { return stats(d).Paused },
					TextGetter: func(any) string { return "PAUSED" },
				},
			},
		},
		{
			ID:    "field",
			Title: "Field",
			Fields: []FieldDescriptor{
				{ID: "notes", Label: "Notes", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%d", stats(d).Notes)
				}},
				{ID: "wrapped", Label: "Wrapped", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%d", stats(d).Wrapped)
				}},
				{ID: "stalled", Label: "Held", Widget: WidgetText,
					Visible:    func(d any) bool { return stats(d).Stalled > 0 },
					TextGetter: func(d any) string { return fmt.Sprintf("%d", stats(d).Stalled) },
				},
				{ID: "pushes", Label: "Uniform sync", Widget: WidgetText, TextGetter: func(d any) string {
					return fmt.Sprintf("%d", stats(d).Pushes)
				}},
			},
		},
		{
			ID:    "lod",
			Title: "Detail",
			Fields: []FieldDescriptor{
				{ID: "high", Label: "High", Widget: WidgetBar, Getter: func(d any) float32 { return stats(d).tierShare(0) }},
				{ID: "medium", Label: "Medium", Widget: WidgetBar, Getter: func(d any) float32 { return stats(d).tierShare(1) }},
				{ID: "low", Label: "Low", Widget: WidgetBar, Getter: func(d any) float32 { return stats(d).tierShare(2) }},
			},
		},
	}
}

// StatsPanel renders StatsSections in a panel.
type StatsPanel struct {
	renderer *Renderer
	sections []SectionDescriptor
	x, y     int32
	width    int32
	visible  bool
}

// NewStatsPanel creates a hidden stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		sections: StatsSections(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Toggle switches panel visibility.
func (p *StatsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// SetPosition updates the panel position.
func (p *StatsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel if visible.
func (p *StatsPanel) Draw(data StatsData) {
	if !p.visible {
		return
	}
	r := p.renderer
	padding := r.Theme.Padding

	height := padding * 2
	for _, sd := range p.sections {
		height += r.SectionHeight(sd, data)
	}
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + padding
	for _, sd := range p.sections {
		y = r.DrawSection(p.x+padding, y, sd, data, p.width-padding*2)
	}
}
