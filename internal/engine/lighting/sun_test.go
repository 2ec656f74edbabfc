package lighting

import (
	"math"
	"testing"
)

func TestSunDirection(t *testing.T) {
	tests := []struct {
		azimuth, elevation float32
		want               [3]float32
	}{
		{0, 90, [3]float32{0, 1, 0}},
		{0, 0, [3]float32{0, 0, 1}},
		{90, 0, [3]float32{1, 0, 0}},
	}
	for _, tt := range tests {
		got := SunDirection(tt.azimuth, tt.elevation)
		for i := range 3 {
			if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
				t.Errorf("SunDirection(%g, %g) = %v, want %v", tt.azimuth, tt.elevation, got, tt.want)
				break
			}
		}
	}
}

func TestStudioRigNormalized(t *testing.T) {
	for i, l := range StudioRig().Lights() {
		d := l.Direction
		length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
		if math.Abs(length-1) > 1e-5 {
			t.Errorf("light %d direction length %g", i, length)
		}
		if l.Intensity <= 0 {
			t.Errorf("light %d has no intensity", i)
		}
	}
}
