// Package assembly composes the procedural cutaway induction motor.
package assembly

import (
	gomath "math"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/pkg/math"
)

// Dimensions are the top-level constants every part is derived from.
// Units are decimetres; the spin axis is Z and Y is up.
type Dimensions struct {
	HousingRadius    float32
	HousingLength    float32
	HousingThickness float32
	FinCount         int
	FinHeight        float32
	FinThickness     float32

	StatorOuterRadius float32
	StatorBoreRadius  float32
	StatorLength      float32
	CoilCount         int

	RotorRadius float32
	RotorLength float32
	BarCount    int

	ShaftRadius    float32
	ShaftLength    float32
	ShaftExtension float32 // Shift of the shaft center towards the drive end

	BearingOuterRadius float32
	BearingInnerRadius float32
	BallCount          int
	BallRadius         float32

	FanRadius   float32
	BladeCount  int
	BladePitch  float32
	GuardRadius float32
	GuardLength float32

	// Cut arc around Z in radians; the housing, stator core and guard omit it.
	CutStart float64
	CutEnd   float64
	Segments int
}

// DefaultDimensions returns the compiled-in motor proportions.
func DefaultDimensions() Dimensions {
	return Dimensions{
		HousingRadius:    1.35,
		HousingLength:    3.0,
		HousingThickness: 0.08,
		FinCount:         24,
		FinHeight:        0.14,
		FinThickness:     0.04,

		StatorOuterRadius: 1.24,
		StatorBoreRadius:  0.8,
		StatorLength:      2.2,
		CoilCount:         12,

		RotorRadius: 0.74,
		RotorLength: 2.1,
		BarCount:    16,

		ShaftRadius:    0.16,
		ShaftLength:    5.2,
		ShaftExtension: 0.5,

		BearingOuterRadius: 0.36,
		BearingInnerRadius: 0.2,
		BallCount:          8,
		BallRadius:         0.065,

		FanRadius:   1.05,
		BladeCount:  8,
		BladePitch:  0.5,
		GuardRadius: 1.25,
		GuardLength: 0.6,

		CutStart: -10 * gomath.Pi / 180,
		CutEnd:   100 * gomath.Pi / 180,
		Segments: 64,
	}
}

// FromConfig applies the configurable motor settings over the defaults.
func FromConfig(cfg config.MotorConfig) Dimensions {
	d := DefaultDimensions()
	d.CutStart = cfg.CutStartDeg * gomath.Pi / 180
	d.CutEnd = cfg.CutEndDeg * gomath.Pi / 180
	if cfg.Segments > 0 {
		d.Segments = cfg.Segments
	}
	return d
}

// PartSpec is the parametric envelope of one sub-assembly.
type PartSpec struct {
	Radius   float32
	Length   float32
	Segments int
	Offset   math.Vec3
}

// Parts holds the envelope of every sub-assembly.
type Parts struct {
	Housing      PartSpec
	Stator       PartSpec
	Rotor        PartSpec
	Shaft        PartSpec
	DriveBearing PartSpec
	FanBearing   PartSpec
	Fan          PartSpec
	Guard        PartSpec
	JunctionBox  PartSpec
}

// Parts derives the sub-assembly envelopes from d.
func (d Dimensions) Parts() Parts {
	half := d.HousingLength / 2
	seg := d.Segments
	small := max(seg/2, 12)
	bearingInset := float32(0.18)

	return Parts{
		Housing: PartSpec{Radius: d.HousingRadius, Length: d.HousingLength, Segments: seg},
		Stator:  PartSpec{Radius: d.StatorOuterRadius, Length: d.StatorLength, Segments: seg},
		Rotor:   PartSpec{Radius: d.RotorRadius, Length: d.RotorLength, Segments: seg},
		Shaft: PartSpec{
			Radius:   d.ShaftRadius,
			Length:   d.ShaftLength,
			Segments: small,
			Offset:   math.V3(0, 0, d.ShaftExtension),
		},
		DriveBearing: PartSpec{
			Radius:   d.BearingOuterRadius,
			Length:   d.BallRadius * 2,
			Segments: small,
			Offset:   math.V3(0, 0, half-bearingInset),
		},
		FanBearing: PartSpec{
			Radius:   d.BearingOuterRadius,
			Length:   d.BallRadius * 2,
			Segments: small,
			Offset:   math.V3(0, 0, -half+bearingInset),
		},
		Fan: PartSpec{
			Radius:   d.FanRadius,
			Length:   0.22,
			Segments: small,
			Offset:   math.V3(0, 0, -half-d.GuardLength*0.45),
		},
		Guard: PartSpec{
			Radius:   d.GuardRadius,
			Length:   d.GuardLength,
			Segments: seg,
			Offset:   math.V3(0, 0, -half-d.GuardLength/2),
		},
		JunctionBox: PartSpec{
			Radius:   d.HousingRadius + 0.22,
			Length:   0.8,
			Segments: 16,
			Offset:   math.V3(0, 0, 0.35),
		},
	}
}

// GroundY returns the height of the mounting feet's underside.
func (d Dimensions) GroundY() float32 {
	return -d.HousingRadius - 0.25
}
