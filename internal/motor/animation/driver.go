// Package animation advances the motor model once per frame.
package animation

import (
	gomath "math"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/internal/motor/assembly"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/pkg/math"
)

const twoPi = 2 * gomath.Pi

// CageRatio is the bearing cage speed as a fraction of shaft speed.
const CageRatio = 0.44

// Emissive pulse range for the copper windings.
const (
	pulseBase  = 0.15
	pulseRange = 0.6
)

// Params are the simulated machine constants.
type Params struct {
	RPM           float64
	WaveFrequency float64 // Hz of the travelling field pulse
	PolePairs     int
}

// ParamsFromConfig reads Params from the motor config section.
func ParamsFromConfig(cfg config.MotorConfig) Params {
	return Params{RPM: cfg.RPM, WaveFrequency: cfg.WaveFrequency, PolePairs: cfg.PolePairs}
}

// ViewerState is the per-frame state threaded through every Tick.
type ViewerState struct {
	Time       float64
	RotorAngle float64
	CageAngle  float64
	Selection  registry.Selection
}

// AngularVelocity converts rpm to radians per second.
func AngularVelocity(rpm float64) float64 {
	return rpm / 60 * twoPi
}

// RotorAngle returns the rotor position after t seconds, reduced to [0, 2π).
func RotorAngle(t, rpm float64) float64 {
	return wrap(t * AngularVelocity(rpm))
}

func wrap(a float64) float64 {
	a = gomath.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// PulseIntensity returns the emissive intensity of a winding at bore angle
// theta, time t, for a field of frequency f with p pole pairs.
func PulseIntensity(t, theta, f float64, p int) float32 {
	phase := twoPi*f*t - float64(p)*theta
	return float32(pulseBase + pulseRange*(0.5+0.5*gomath.Sin(phase)))
}

type winding struct {
	material scene.MaterialID
	theta    float64
}

// Driver mutates group rotations and material state of a composed model.
type Driver struct {
	State ViewerState

	model    *assembly.Model
	params   Params
	windings []winding
}

// NewDriver prepares a driver for m. Copper windings are discovered from the
// original material table so later highlight swaps do not hide them.
func NewDriver(m *assembly.Model, p Params) *Driver {
	d := &Driver{model: m, params: p}

	s := m.Scene
	seen := map[scene.MaterialID]bool{}
	for _, mesh := range s.Meshes {
		orig := s.OriginalMaterial(mesh.ID)
		if mesh.Component != registry.StatorWinding || s.Materials[orig].Kind != scene.KindCopper || seen[orig] {
			continue
		}
		seen[orig] = true
		pos := mesh.Local.Position
		d.windings = append(d.windings, winding{
			material: orig,
			theta:    wrap(gomath.Atan2(float64(pos.Y), float64(pos.X))),
		})
	}
	return d
}

// Params returns the machine constants.
func (d *Driver) Params() Params {
	return d.params
}

// Toggle flips selection of id.
func (d *Driver) Toggle(id registry.ComponentID) {
	d.State.Selection.Toggle(id)
}

// Tick advances time by dt seconds and applies rotation, highlight and the
// winding pulse to the scene.
func (d *Driver) Tick(dt float64) {
	st := &d.State
	st.Time += dt

	omega := AngularVelocity(d.params.RPM)
	st.RotorAngle = wrap(st.Time * omega)
	st.CageAngle = wrap(st.Time * omega * CageRatio)

	s := d.model.Scene
	spin := math.V3(0, 0, float32(st.RotorAngle))
	s.SetGroupRotation(d.model.Rotor, spin)
	if !d.model.FanCoupled {
		s.SetGroupRotation(d.model.Fan, spin)
	}
	for _, cage := range d.model.BallCages {
		s.SetGroupRotation(cage, math.V3(0, 0, float32(st.CageAngle)))
	}

	s.SetHighlight(st.Selection.Current())

	for _, w := range d.windings {
		s.Materials[w.material].EmissiveIntensity =
			PulseIntensity(st.Time, w.theta, d.params.WaveFrequency, d.params.PolePairs)
	}
}
