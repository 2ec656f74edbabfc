package export

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/motorscope/internal/motor/registry"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22d3ee"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))

	statusStyles = map[registry.Status]lipgloss.Style{
		registry.StatusGood:     lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#22c55e")),
		registry.StatusWarning:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#f59e0b")),
		registry.StatusCritical: lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ef4444")),
	}
)

var tableHeaders = []string{"ID", "Component", "Health", "Status", "Temp", "Vib", "RUL", "Faults"}

// RegistryTable renders recs as an aligned table with status colors and a
// summary footer.
func RegistryTable(recs []registry.Record) string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{
			string(r.ID),
			r.Label,
			fmt.Sprintf("%.0f%%", r.HealthPercent),
			r.Status.String(),
			fmt.Sprintf("%.0f °C", r.TemperatureC),
			fmt.Sprintf("%.1f mm/s", r.VibrationMmS),
			r.RemainingLife,
			fmt.Sprintf("%d", len(r.Faults)),
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	// Padding is part of the rendered width
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Component registry"))
	sb.WriteString("\n")

	sep := mutedStyle.Render("|")
	for i, h := range tableHeaders {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(headerStyle.Width(widths[i]).Render(h))
	}
	sb.WriteString("\n")

	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(mutedStyle.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")

	for ri, row := range rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(sep)
			}
			style := cellStyle
			if i == 3 {
				style = statusStyles[recs[ri].Status]
			}
			sb.WriteString(style.Width(widths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}

	sum := registry.Summarize(recs)
	sb.WriteString(mutedStyle.Render(fmt.Sprintf(
		"avg health %.1f%%  good %d  warning %d  critical %d  faults %d",
		sum.AverageHealth, sum.Good, sum.Warning, sum.Critical, sum.Faults)))
	sb.WriteString("\n")
	return sb.String()
}

// FaultList renders the faults and actions of one record.
func FaultList(r registry.Record) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(r.Label))
	sb.WriteString(" ")
	sb.WriteString(statusStyles[r.Status].Render(r.Status.String()))
	sb.WriteString("\n")
	for _, f := range r.Faults {
		sb.WriteString("  ! " + f + "\n")
	}
	for _, a := range r.Actions {
		sb.WriteString(mutedStyle.Render("  > "+a) + "\n")
	}
	return sb.String()
}
