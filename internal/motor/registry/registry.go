// Package registry holds the static component table of the monitored motor.
package registry

import (
	"fmt"
	"slices"
)

// ComponentID identifies one logical part of the motor assembly.
type ComponentID string

// Component identifiers.
const (
	Housing       ComponentID = "housing"
	BearingDrive  ComponentID = "bearing_drive"
	BearingFan    ComponentID = "bearing_fan"
	StatorWinding ComponentID = "stator_winding"
	RotorBars     ComponentID = "rotor_bars"
	Shaft         ComponentID = "shaft"
	FanGuard      ComponentID = "fan_guard"
	JunctionBox   ComponentID = "junction_box"
)

// Status is the editorial condition of a component.
type Status int

const (
	StatusGood Status = iota
	StatusWarning
	StatusCritical
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusGood:
		return "good"
	case StatusWarning:
		return "warning"
	case StatusCritical:
		return "critical"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// RGB is an 8-bit display color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Float returns the color as normalized float32 components.
func (c RGB) Float() [3]float32 {
	return [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

// Record is one registry entry.
// Status is stored as given and is not derived from HealthPercent.
type Record struct {
	ID            ComponentID
	Label         string
	HealthPercent float64
	Status        Status
	TemperatureC  float64
	VibrationMmS  float64
	Faults        []string
	Actions       []string
	RemainingLife string
	Color         RGB
}

var records = []Record{
	{
		ID:            Housing,
		Label:         "Motor Housing",
		HealthPercent: 94,
		Status:        StatusGood,
		TemperatureC:  48.2,
		VibrationMmS:  1.1,
		RemainingLife: "> 5 years",
		Color:         RGB{0x8a, 0x96, 0xa3},
	},
	{
		ID:            BearingDrive,
		Label:         "Drive-End Bearing",
		HealthPercent: 62,
		Status:        StatusCritical,
		TemperatureC:  81.5,
		VibrationMmS:  7.4,
		Faults: []string{
			"Outer race defect (BPFO 107.4 Hz sidebands)",
			"Lubricant film breakdown",
		},
		Actions: []string{
			"Schedule bearing replacement within 3 weeks",
			"Re-grease with 12 g NLGI-2 and trend vibration daily",
		},
		RemainingLife: "~3 weeks",
		Color:         RGB{0xe5, 0x48, 0x4d},
	},
	{
		ID:            BearingFan,
		Label:         "Fan-End Bearing",
		HealthPercent: 81,
		Status:        StatusWarning,
		TemperatureC:  63.0,
		VibrationMmS:  3.9,
		Faults: []string{
			"Elevated high-frequency energy (early wear)",
		},
		Actions: []string{
			"Verify lubrication interval",
		},
		RemainingLife: "~7 months",
		Color:         RGB{0xf5, 0xa5, 0x24},
	},
	{
		ID:            StatorWinding,
		Label:         "Stator Winding",
		HealthPercent: 88,
		Status:        StatusGood,
		TemperatureC:  92.3,
		VibrationMmS:  0.8,
		RemainingLife: "~4 years",
		Color:         RGB{0xc8, 0x7a, 0x3a},
	},
	{
		ID:            RotorBars,
		Label:         "Rotor Bars",
		HealthPercent: 74,
		Status:        StatusWarning,
		TemperatureC:  88.0,
		VibrationMmS:  2.7,
		Faults: []string{
			"Pole-pass sidebands at 2 x slip frequency",
		},
		Actions: []string{
			"Run current signature analysis at full load",
		},
		RemainingLife: "~11 months",
		Color:         RGB{0xd9, 0xb4, 0x4a},
	},
	{
		ID:            Shaft,
		Label:         "Shaft",
		HealthPercent: 97,
		Status:        StatusGood,
		TemperatureC:  55.1,
		VibrationMmS:  1.4,
		RemainingLife: "> 5 years",
		Color:         RGB{0xb0, 0xb8, 0xc0},
	},
	{
		ID:            FanGuard,
		Label:         "Cooling Fan & Guard",
		HealthPercent: 90,
		Status:        StatusGood,
		TemperatureC:  41.7,
		VibrationMmS:  1.9,
		RemainingLife: "~3 years",
		Color:         RGB{0x4a, 0x9e, 0xd9},
	},
	{
		ID:            JunctionBox,
		Label:         "Terminal Box",
		HealthPercent: 85,
		Status:        StatusWarning,
		TemperatureC:  57.4,
		VibrationMmS:  0.6,
		Faults: []string{
			"Terminal T2 running 9 C above T1/T3",
		},
		Actions: []string{
			"Re-torque terminal lugs at next outage",
		},
		RemainingLife: "~1 year",
		Color:         RGB{0x6f, 0x7d, 0x8c},
	},
}

// All returns every record in display order. The returned records are
// copies and share no slices with the table.
func All() []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.clone()
	}
	return out
}

func (r Record) clone() Record {
	r.Faults = slices.Clone(r.Faults)
	r.Actions = slices.Clone(r.Actions)
	return r
}

// IDs returns every component identifier in display order.
func IDs() []ComponentID {
	ids := make([]ComponentID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

// Lookup returns the record for id.
func Lookup(id ComponentID) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r.clone(), true
		}
	}
	return Record{}, false
}

// Index returns the display position of id, or -1.
func Index(id ComponentID) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// ParseComponentID validates a component identifier string.
func ParseComponentID(s string) (ComponentID, error) {
	id := ComponentID(s)
	if Index(id) < 0 {
		return "", fmt.Errorf("unknown component %q", s)
	}
	return id, nil
}

// Summary aggregates the table for the dashboard tiles.
type Summary struct {
	AverageHealth float64
	Good          int
	Warning       int
	Critical      int
	Faults        int
}

// Summarize computes a Summary over recs.
func Summarize(recs []Record) Summary {
	var s Summary
	if len(recs) == 0 {
		return s
	}
	var total float64
	for _, r := range recs {
		total += r.HealthPercent
		s.Faults += len(r.Faults)
		switch r.Status {
		case StatusGood:
			s.Good++
		case StatusWarning:
			s.Warning++
		case StatusCritical:
			s.Critical++
		}
	}
	s.AverageHealth = total / float64(len(recs))
	return s
}
