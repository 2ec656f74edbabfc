// Package telemetry generates the mock sensor history shown by the dashboard.
package telemetry

import (
	"fmt"
	gomath "math"
	"math/rand/v2"

	"github.com/Faultbox/motorscope/internal/config"
)

// DefaultSamples is the length of every generated series.
const DefaultSamples = 60

// Channel identifies one chart tab.
type Channel int

const (
	Vibration Channel = iota
	Temperature
	Current
)

// Channels lists every channel in tab order.
var Channels = []Channel{Vibration, Temperature, Current}

func (c Channel) String() string {
	switch c {
	case Vibration:
		return "vibration"
	case Temperature:
		return "temperature"
	case Current:
		return "current"
	default:
		return fmt.Sprintf("channel(%d)", int(c))
	}
}

// Unit returns the display unit of c.
func (c Channel) Unit() string {
	switch c {
	case Vibration:
		return "mm/s"
	case Temperature:
		return "°C"
	case Current:
		return "A"
	default:
		return ""
	}
}

// Title returns the chart tab label of c.
func (c Channel) Title() string {
	switch c {
	case Vibration:
		return "Vibration"
	case Temperature:
		return "Temperature"
	case Current:
		return "Current"
	default:
		return c.String()
	}
}

// ParseChannel resolves a channel by name.
func ParseChannel(s string) (Channel, error) {
	for _, c := range Channels {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown channel %q", s)
}

// Next returns the channel after c, wrapping around.
func (c Channel) Next() Channel {
	return Channel((int(c) + 1) % len(Channels))
}

// Line is one plotted trace.
type Line struct {
	Name   string
	Values []float64
}

// Series holds the traces of one channel. Current carries three phases.
type Series struct {
	Channel Channel
	Lines   []Line
}

// Range returns the minimum and maximum over every line.
func (s Series) Range() (lo, hi float64) {
	lo, hi = gomath.Inf(1), gomath.Inf(-1)
	for _, l := range s.Lines {
		for _, v := range l.Values {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}

// Len returns the sample count of the first line.
func (s Series) Len() int {
	if len(s.Lines) == 0 {
		return 0
	}
	return len(s.Lines[0].Values)
}

// Set is the complete history, generated once at startup.
type Set struct {
	Samples int
	Seed    uint64
	series  [3]Series
}

// Get returns the series for c.
func (s *Set) Get(c Channel) Series {
	return s.series[c]
}

// wave describes a noisy sinusoid with a bounded drift.
type wave struct {
	base, amp, period, phase float64
	noise, drift, walkLimit  float64
}

func (w wave) generate(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	walk := 0.0
	for i := range out {
		walk += (rng.Float64()*2 - 1) * w.drift
		walk = min(max(walk, -w.walkLimit), w.walkLimit)
		s := gomath.Sin(2*gomath.Pi*float64(i)/w.period + w.phase)
		out[i] = w.base + w.amp*s + walk + rng.NormFloat64()*w.noise
	}
	return out
}

// Generate builds all three channels of n samples from seed.
func Generate(n int, seed uint64) *Set {
	if n <= 0 {
		n = DefaultSamples
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	set := &Set{Samples: n, Seed: seed}

	vib := wave{base: 4.2, amp: 1.1, period: 14, noise: 0.35, drift: 0.08, walkLimit: 0.8}
	set.series[Vibration] = Series{
		Channel: Vibration,
		Lines:   []Line{{Name: "RMS velocity", Values: clampAbove(vib.generate(rng, n), 0)}},
	}

	temp := wave{base: 68, amp: 3.5, period: 40, noise: 0.6, drift: 0.15, walkLimit: 2.5}
	set.series[Temperature] = Series{
		Channel: Temperature,
		Lines:   []Line{{Name: "Winding", Values: temp.generate(rng, n)}},
	}

	phases := make([]Line, 3)
	for i, name := range []string{"L1", "L2", "L3"} {
		cur := wave{
			base:      24,
			amp:       2.2,
			period:    12,
			phase:     float64(i) * 2 * gomath.Pi / 3,
			noise:     0.25,
			drift:     0.05,
			walkLimit: 0.6,
		}
		phases[i] = Line{Name: name, Values: cur.generate(rng, n)}
	}
	set.series[Current] = Series{Channel: Current, Lines: phases}

	return set
}

// FromConfig generates the set described by the telemetry config section.
func FromConfig(cfg config.TelemetryConfig) *Set {
	return Generate(cfg.Samples, cfg.Seed)
}

func clampAbove(v []float64, floor float64) []float64 {
	for i := range v {
		v[i] = max(v[i], floor)
	}
	return v
}
