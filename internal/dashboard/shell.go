package dashboard

import (
	"fmt"

	"github.com/Faultbox/motorscope/internal/engine/ui2d"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/internal/telemetry"
)

// Action is what the user asked for during one Draw.
type Action struct {
	Toggle  registry.ComponentID
	Toggled bool
}

// Shell draws the panel and turns clicks into selection changes.
type Shell struct {
	ui *ui2d.Context

	Tab        telemetry.Channel
	PanelWidth float32

	cards map[registry.ComponentID]ui2d.Rect
}

const (
	tileH  = 54
	chartH = 150
	cardH  = 46
	rowH   = 20
)

var phaseColors = []ui2d.Color{
	ui2d.ColorHighlight,
	ui2d.RGB(0xf5, 0x9e, 0x0b),
	ui2d.RGB(0xa7, 0x8b, 0xfa),
}

// NewShell creates a shell drawing through ui.
func NewShell(ui *ui2d.Context, panelWidth float32) *Shell {
	return &Shell{
		ui:         ui,
		PanelWidth: panelWidth,
		cards:      make(map[registry.ComponentID]ui2d.Rect),
	}
}

// StatusColor maps a condition to its display color.
func StatusColor(s registry.Status) ui2d.Color {
	switch s {
	case registry.StatusCritical:
		return ui2d.ColorCritical
	case registry.StatusWarning:
		return ui2d.ColorWarning
	default:
		return ui2d.ColorGood
	}
}

// CardRect returns where the card for id was drawn last.
func (s *Shell) CardRect(id registry.ComponentID) (ui2d.Rect, bool) {
	r, ok := s.cards[id]
	return r, ok
}

// NextTab cycles the chart tab.
func (s *Shell) NextTab() {
	s.Tab = s.Tab.Next()
}

// Draw lays the panel out on the right edge of a screenW×screenH screen.
func (s *Shell) Draw(screenW, screenH float32, vm ViewModel) Action {
	var act Action
	ui := s.ui

	ui.BeginPanel("dash", ui2d.Rect{X: screenW - s.PanelWidth, Y: 0, W: s.PanelWidth, H: screenH}, "MOTORSCOPE  ACIM 7.5 kW")
	ui.Row(rowH)
	ui.LabelColored("t "+vm.Clock, ui2d.ColorTextDim)

	s.drawTiles(vm.Tiles)
	s.drawChart(vm.Chart)
	if id, ok := s.drawCards(vm.Cards); ok {
		act = Action{Toggle: id, Toggled: true}
	}
	if id, ok := s.drawFaults(vm); ok && !act.Toggled {
		act = Action{Toggle: id, Toggled: true}
	}
	ui.EndPanel()

	s.drawHints(screenH)
	return act
}

func (s *Shell) drawTiles(tiles []Tile) {
	ui := s.ui
	c := ui.Canvas()
	w := (ui.ContentWidth() - 4) / 2
	for i, t := range tiles {
		if i%2 == 0 {
			ui.Row(tileH)
		}
		r, _ := ui.Card(fmt.Sprintf("tile%d", i), w, tileH, false, StatusColor(t.Status))
		sc := ui.Scale
		c.DrawText(r.X+10, r.Y+6, t.Label, sc, ui2d.ColorTextDim)
		c.DrawText(r.X+10, r.Y+20, t.Value, sc*1.6, StatusColor(t.Status).Lighten(0.2))
		cw, _ := c.MeasureText(t.Caption, sc)
		c.DrawText(r.X+r.W-cw-8, r.Y+6, t.Caption, sc, ui2d.ColorTextDim)
	}
}

func (s *Shell) drawChart(ch Chart) {
	ui := s.ui
	c := ui.Canvas()

	ui.Row(22)
	tabW := (ui.ContentWidth() - 8) / float32(len(telemetry.Channels))
	for _, tab := range telemetry.Channels {
		if ui.Tab("tab_"+tab.String(), tabW, tab.Title(), tab == s.Tab) {
			s.Tab = tab
		}
	}

	ui.Row(chartH)
	x, y := ui.Cursor()
	area := ui2d.Rect{X: x, Y: y, W: ui.ContentWidth(), H: chartH}
	ui.Advance(area.W)

	c.DrawRect(area.X, area.Y, area.W, area.H, ui2d.ColorInputBg)
	c.DrawRectOutline(area.X, area.Y, area.W, area.H, 1, ui2d.ColorPanelBorder)
	plot := area.Inset(10)
	for i := 1; i < 4; i++ {
		gy := plot.Y + plot.H*float32(i)/4
		c.DrawLine(plot.X, gy, plot.X+plot.W, gy, 1, ui2d.ColorPanelBorder.WithAlpha(0.5))
	}

	for i, line := range ch.Lines {
		col := phaseColors[i%len(phaseColors)]
		for j := 1; j < len(line.Points); j++ {
			p0, p1 := line.Points[j-1], line.Points[j]
			c.DrawLine(
				plot.X+p0[0]*plot.W, plot.Y+(1-p0[1])*plot.H,
				plot.X+p1[0]*plot.W, plot.Y+(1-p1[1])*plot.H,
				1.5, col)
		}
	}

	sc := ui.Scale
	c.DrawText(area.X+4, area.Y+2, fmt.Sprintf("%.1f %s", ch.Max, ch.Unit), sc, ui2d.ColorTextDim)
	_, th := c.MeasureText("0", sc)
	c.DrawText(area.X+4, area.Y+area.H-th-2, fmt.Sprintf("%.1f", ch.Min), sc, ui2d.ColorTextDim)
	if len(ch.Last) > 0 {
		now := fmt.Sprintf("now %.1f %s", ch.Last[0], ch.Unit)
		nw, _ := c.MeasureText(now, sc)
		c.DrawText(area.X+area.W-nw-4, area.Y+2, now, sc, ui2d.ColorText)
	}
}

func (s *Shell) drawCards(cards []Card) (registry.ComponentID, bool) {
	ui := s.ui
	c := ui.Canvas()
	w := (ui.ContentWidth() - 4) / 2
	sc := ui.Scale

	var (
		clicked registry.ComponentID
		hit     bool
	)
	for i, card := range cards {
		if i%2 == 0 {
			ui.Row(cardH)
		}
		status := StatusColor(card.Status)
		r, ok := ui.Card(string(card.ID), w, cardH, card.Selected, status)
		s.cards[card.ID] = r
		if ok {
			clicked, hit = card.ID, true
		}

		c.DrawText(r.X+10, r.Y+6, card.Label, sc, ui2d.ColorText)
		pct := fmt.Sprintf("%.0f%%", card.Health)
		pw, _ := c.MeasureText(pct, sc)
		c.DrawText(r.X+r.W-pw-8, r.Y+6, pct, sc, status)

		bar := ui2d.Rect{X: r.X + 10, Y: r.Y + 24, W: r.W - 20, H: 6}
		c.DrawRect(bar.X, bar.Y, bar.W, bar.H, ui2d.ColorButtonNormal)
		c.DrawRect(bar.X, bar.Y, bar.W*float32(card.Health/100), bar.H, status)
		c.DrawText(r.X+10, r.Y+32, card.Status.String(), sc*0.85, ui2d.ColorTextDim)

		sw := ui2d.RGB(card.Color.R, card.Color.G, card.Color.B)
		c.DrawRect(r.X+r.W-16, r.Y+r.H-14, 8, 8, sw)
	}
	return clicked, hit
}

func (s *Shell) drawFaults(vm ViewModel) (registry.ComponentID, bool) {
	ui := s.ui
	ui.Separator()

	if d := vm.Detail; d != nil {
		ui.Row(rowH)
		ui.LabelColored(d.Label, ui2d.ColorHighlight)
		ui.LabelColored(d.Status.String(), StatusColor(d.Status))
		ui.Row(rowH)
		ui.LabelColored(fmt.Sprintf("%.0f °C  %.1f mm/s  RUL %s", d.TemperatureC, d.VibrationMmS, d.RemainingLife), ui2d.ColorTextDim)
		for _, f := range vm.Faults {
			ui.Row(rowH)
			ui.LabelColored("! "+f.Fault, StatusColor(f.Status))
		}
		for _, a := range d.Actions {
			ui.Row(rowH)
			ui.LabelColored("> "+a, ui2d.ColorText)
		}
		ui.Row(rowH)
		return d.ID, ui.Button("clear", 0, "Clear selection")
	}

	ui.Row(rowH)
	ui.LabelColored(fmt.Sprintf("Active faults (%d)", len(vm.Faults)), ui2d.ColorTextDim)
	ui.Row(rowH)
	var (
		clicked registry.ComponentID
		hit     bool
	)
	for i, f := range vm.Faults {
		if ui.Selectable(fmt.Sprintf("fault%d", i), f.Label+": "+f.Fault, false, StatusColor(f.Status)) {
			clicked, hit = f.Component, true
		}
	}
	return clicked, hit
}

func (s *Shell) drawHints(screenH float32) {
	const hint = "drag orbit  wheel zoom  click select  1-8 parts  tab chart  space pause"
	c := s.ui.Canvas()
	w, h := c.MeasureText(hint, s.ui.Scale)
	c.DrawRect(8, screenH-h-16, w+16, h+8, ui2d.ColorPanelBg)
	c.DrawText(16, screenH-h-12, hint, s.ui.Scale, ui2d.ColorTextDim)
}
