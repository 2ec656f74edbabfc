package export

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Faultbox/motorscope/internal/telemetry"
)

// Trace colors, one per line of a series.
var traceColors = []color.RGBA{
	{R: 0x22, G: 0xd3, B: 0xee, A: 255},
	{R: 0xf5, G: 0x9e, B: 0x0b, A: 255},
	{R: 0xa7, G: 0x8b, B: 0xfa, A: 255},
}

var asciiColors = []asciigraph.AnsiColor{asciigraph.Cyan, asciigraph.Goldenrod, asciigraph.MediumPurple}

// ASCIIChart renders s for a terminal. width and height are in cells; zero
// picks asciigraph's defaults.
func ASCIIChart(s telemetry.Series, width, height int, colored bool) string {
	data := make([][]float64, 0, len(s.Lines))
	names := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		data = append(data, l.Values)
		names = append(names, l.Name)
	}
	if len(data) == 0 {
		return ""
	}

	opts := []asciigraph.Option{
		asciigraph.Caption(fmt.Sprintf("%s (%s)", s.Channel.Title(), s.Channel.Unit())),
		asciigraph.Precision(1),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}
	if height > 0 {
		opts = append(opts, asciigraph.Height(height))
	}
	// Legends index the color list, so both are always set together.
	colors := make([]asciigraph.AnsiColor, len(data))
	if colored {
		for i := range colors {
			colors[i] = asciiColors[i%len(asciiColors)]
		}
	}
	opts = append(opts, asciigraph.SeriesColors(colors...))
	if len(data) > 1 {
		opts = append(opts, asciigraph.SeriesLegends(names...))
	}
	return asciigraph.PlotMany(data, opts...)
}

// SaveChart writes s as an image; the extension picks the format.
func SaveChart(s telemetry.Series, filename string) error {
	p := plot.New()
	p.Title.Text = s.Channel.Title()
	p.X.Label.Text = "Sample"
	p.Y.Label.Text = s.Channel.Unit()
	p.Add(plotter.NewGrid())

	for i, l := range s.Lines {
		pts := make(plotter.XYs, len(l.Values))
		for j, v := range l.Values {
			pts[j] = plotter.XY{X: float64(j), Y: v}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("line %s: %w", l.Name, err)
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = traceColors[i%len(traceColors)]
		p.Add(line)
		if len(s.Lines) > 1 {
			p.Legend.Add(l.Name, line)
		}
	}
	p.Legend.Top = true

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
