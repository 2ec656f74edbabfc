// Package monitor is a terminal rendition of the dashboard for machines
// without a GPU: live rotor state, telemetry chart and component health.
package monitor

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/motorscope/internal/dashboard"
	"github.com/Faultbox/motorscope/internal/export"
	"github.com/Faultbox/motorscope/internal/motor/animation"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/internal/telemetry"
)

// DefaultInterval is the refresh period.
const DefaultInterval = 100 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	selStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f8fafc"))
	tileStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	statusColors = map[registry.Status]lipgloss.Color{
		registry.StatusGood:     "#22c55e",
		registry.StatusWarning:  "#f59e0b",
		registry.StatusCritical: "#ef4444",
	}
)

type tickMsg time.Time

// Model is the bubbletea model of the monitor.
type Model struct {
	params    animation.Params
	telemetry *telemetry.Set
	interval  time.Duration

	Time      float64
	Paused    bool
	Tab       telemetry.Channel
	Selection registry.Selection

	width int
	bar   progress.Model
}

// New creates a monitor advancing simulated time by interval per tick.
func New(p animation.Params, set *telemetry.Set, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		params:    p,
		telemetry: set,
		interval:  interval,
		width:     80,
		bar:       progress.New(progress.WithWidth(16), progress.WithoutPercentage()),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.Paused {
			m.Time += m.interval.Seconds()
		}
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.Tab = m.Tab.Next()
		case " ":
			m.Paused = !m.Paused
		case "0":
			m.Selection.Clear()
		default:
			if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
				ids := registry.IDs()
				if i := int(key[0] - '1'); i < len(ids) {
					m.Selection.Toggle(ids[i])
				}
			}
		}
	}
	return m, nil
}

// View renders the monitor.
func (m Model) View() string {
	vm := dashboard.Build(dashboard.Input{
		Records:   registry.All(),
		Selection: m.Selection,
		Telemetry: m.telemetry,
		Tab:       m.Tab,
		Time:      m.Time,
		RPM:       m.params.RPM,
		Paused:    m.Paused,
	})

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("MOTORSCOPE  ACIM 7.5 kW"))
	sb.WriteString(dimStyle.Render("  t " + vm.Clock))
	sb.WriteString("\n")

	tiles := make([]string, 0, len(vm.Tiles))
	for _, t := range vm.Tiles {
		c := statusColors[t.Status]
		tiles = append(tiles, tileStyle.BorderForeground(c).Render(
			dimStyle.Render(t.Label)+"\n"+lipgloss.NewStyle().Bold(true).Foreground(c).Render(t.Value)))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	sb.WriteString("\n")

	rotor := animation.RotorAngle(m.Time, m.params.RPM)
	cage := animation.RotorAngle(m.Time, m.params.RPM*animation.CageRatio)
	fmt.Fprintf(&sb, "rotor %6.1f°   cage %6.1f°\n\n", rotor*180/math.Pi, cage*180/math.Pi)

	if m.telemetry != nil {
		sb.WriteString(export.ASCIIChart(m.telemetry.Get(m.Tab), max(m.width-12, 20), 8, true))
		sb.WriteString("\n\n")
	}

	for i, c := range vm.Cards {
		label := fmt.Sprintf("  %d %-22s", i+1, c.Label)
		if c.Selected {
			label = selStyle.Render(fmt.Sprintf("> %d %-22s", i+1, c.Label))
		}
		status := lipgloss.NewStyle().Foreground(statusColors[c.Status]).Render(fmt.Sprintf("%-8s", c.Status))
		fmt.Fprintf(&sb, "%s %s %3.0f%% %s\n", label, m.bar.ViewAs(c.Health/100), c.Health, status)
	}

	if vm.Detail != nil {
		sb.WriteString("\n")
		sb.WriteString(export.FaultList(*vm.Detail))
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("tab chart  1-8 select  0 clear  space pause  q quit"))
	return sb.String()
}

// Run starts the monitor on the terminal and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
