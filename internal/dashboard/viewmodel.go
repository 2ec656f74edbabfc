// Package dashboard builds and draws the condition-monitoring panel beside
// the 3D view.
package dashboard

import (
	"fmt"

	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/internal/telemetry"
)

// Input is everything the panel reads for one frame.
type Input struct {
	Records   []registry.Record
	Selection registry.Selection
	Telemetry *telemetry.Set
	Tab       telemetry.Channel
	Time      float64
	RPM       float64
	Paused    bool
}

// Tile is one summary figure.
type Tile struct {
	Label   string
	Value   string
	Caption string
	Status  registry.Status
}

// Card is one component in the grid.
type Card struct {
	ID       registry.ComponentID
	Label    string
	Health   float64
	Status   registry.Status
	Color    registry.RGB
	Selected bool
}

// FaultRow is one line of the fault list.
type FaultRow struct {
	Component registry.ComponentID
	Label     string
	Fault     string
	Status    registry.Status
}

// Polyline is a chart trace in unit coordinates: x and y in [0, 1], y up.
type Polyline struct {
	Name   string
	Points [][2]float32
}

// Chart is the active telemetry tab.
type Chart struct {
	Channel  telemetry.Channel
	Title    string
	Unit     string
	Min, Max float64
	Last     []float64
	Lines    []Polyline
}

// ViewModel is the panel content, independent of drawing.
type ViewModel struct {
	Clock  string
	Tiles  []Tile
	Chart  Chart
	Cards  []Card
	Faults []FaultRow
	Detail *registry.Record
}

// Build derives the view model from in.
func Build(in Input) ViewModel {
	sum := registry.Summarize(in.Records)

	overall := registry.StatusGood
	switch {
	case sum.Critical > 0:
		overall = registry.StatusCritical
	case sum.Warning > 0:
		overall = registry.StatusWarning
	}

	speed := "running"
	if in.Paused {
		speed = "paused"
	}

	vm := ViewModel{
		Clock: formatClock(in.Time),
		Tiles: []Tile{
			{Label: "Overall health", Value: fmt.Sprintf("%.0f%%", sum.AverageHealth), Caption: fmt.Sprintf("%d components", len(in.Records)), Status: overall},
			{Label: "Shaft speed", Value: fmt.Sprintf("%.0f rpm", in.RPM), Caption: fmt.Sprintf("%.1f Hz %s", in.RPM/60, speed), Status: registry.StatusGood},
			{Label: "Active faults", Value: fmt.Sprintf("%d", sum.Faults), Caption: fmt.Sprintf("%d warning", sum.Warning), Status: countStatus(sum.Faults, registry.StatusWarning)},
			{Label: "Critical parts", Value: fmt.Sprintf("%d", sum.Critical), Caption: "needs action", Status: countStatus(sum.Critical, registry.StatusCritical)},
		},
	}

	for _, r := range in.Records {
		vm.Cards = append(vm.Cards, Card{
			ID:       r.ID,
			Label:    r.Label,
			Health:   r.HealthPercent,
			Status:   r.Status,
			Color:    r.Color,
			Selected: in.Selection.Is(r.ID),
		})
	}

	if id, ok := in.Selection.Current(); ok {
		for i := range in.Records {
			if in.Records[i].ID == id {
				rec := in.Records[i]
				vm.Detail = &rec
			}
		}
	}
	for _, r := range in.Records {
		if vm.Detail != nil && r.ID != vm.Detail.ID {
			continue
		}
		for _, f := range r.Faults {
			vm.Faults = append(vm.Faults, FaultRow{Component: r.ID, Label: r.Label, Fault: f, Status: r.Status})
		}
	}

	if in.Telemetry != nil {
		vm.Chart = BuildChart(in.Telemetry.Get(in.Tab))
	}
	return vm
}

func countStatus(n int, nonzero registry.Status) registry.Status {
	if n == 0 {
		return registry.StatusGood
	}
	return nonzero
}

// BuildChart normalizes s into unit coordinates with 5% vertical padding.
func BuildChart(s telemetry.Series) Chart {
	lo, hi := s.Range()
	if hi <= lo {
		lo, hi = lo-1, hi+1
	}
	pad := (hi - lo) * 0.05
	lo, hi = lo-pad, hi+pad

	c := Chart{
		Channel: s.Channel,
		Title:   s.Channel.Title(),
		Unit:    s.Channel.Unit(),
		Min:     lo,
		Max:     hi,
	}
	for _, l := range s.Lines {
		n := len(l.Values)
		pl := Polyline{Name: l.Name, Points: make([][2]float32, n)}
		for i, v := range l.Values {
			x := float32(0)
			if n > 1 {
				x = float32(i) / float32(n-1)
			}
			pl.Points[i] = [2]float32{x, float32((v - lo) / (hi - lo))}
		}
		c.Lines = append(c.Lines, pl)
		if n > 0 {
			c.Last = append(c.Last, l.Values[n-1])
		}
	}
	return c
}

// formatClock renders seconds as mm:ss.t.
func formatClock(t float64) string {
	if t < 0 {
		t = 0
	}
	tenths := int(t * 10)
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, tenths/10%60, tenths%10)
}
