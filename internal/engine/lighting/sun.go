// Package lighting provides the light rig used to shade the motor.
package lighting

import "math"

// SunDirection converts azimuth/elevation angles in degrees to a light
// direction vector. Azimuth is rotation around Y, elevation is measured from
// the horizon. Returns a normalized vector pointing towards the light.
func SunDirection(azimuth, elevation float32) [3]float32 {
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Sin(azRad))
	y := float32(math.Sin(elRad))
	z := float32(math.Cos(elRad) * math.Cos(azRad))

	return [3]float32{x, y, z}
}

// Directional is a light at infinity.
type Directional struct {
	Direction [3]float32 // Towards the light
	Color     [3]float32
	Intensity float32
}

// Rig is the fixed set of lights the shader consumes.
type Rig struct {
	Ambient      [3]float32
	Key          Directional
	Fill         Directional
	Rim          Directional
	Hemisphere   [3]float32 // Sky tint blended by normal.y
	GroundBounce [3]float32
}

// Lights returns the directional lights in shader order.
func (r Rig) Lights() [3]Directional {
	return [3]Directional{r.Key, r.Fill, r.Rim}
}

// StudioRig returns a three-point rig for an industrial product shot.
func StudioRig() Rig {
	return Rig{
		Ambient: [3]float32{0.18, 0.19, 0.21},
		Key: Directional{
			Direction: SunDirection(35, 50),
			Color:     [3]float32{1.0, 0.97, 0.92},
			Intensity: 1.1,
		},
		Fill: Directional{
			Direction: SunDirection(-120, 25),
			Color:     [3]float32{0.65, 0.75, 1.0},
			Intensity: 0.45,
		},
		Rim: Directional{
			Direction: SunDirection(180, 15),
			Color:     [3]float32{0.9, 0.95, 1.0},
			Intensity: 0.6,
		},
		Hemisphere:   [3]float32{0.22, 0.26, 0.32},
		GroundBounce: [3]float32{0.08, 0.07, 0.06},
	}
}
