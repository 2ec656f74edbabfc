package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep/v2"
)

const twoPi = 2 * math.Pi

// Mix of the hum partials. The peak never exceeds humPeak.
const (
	fundamentalGain = 0.7
	harmonicGain    = 0.3
	modDepth        = 0.15
	humPeak         = 0.5
)

// Hum is an endless beep.Streamer of an induction motor's sound: the
// magnetostriction tone at twice the line frequency with its first harmonic,
// amplitude modulated at the shaft rotation rate.
type Hum struct {
	mu sync.Mutex

	rate   float64
	lineHz float64
	shaft  float64 // Hz

	tone float64 // phase of 2×line
	rot  float64 // phase of the shaft modulation
}

// NewHum creates a hum for the given line frequency and shaft speed.
func NewHum(sr beep.SampleRate, lineHz, rpm float64) *Hum {
	return &Hum{rate: float64(sr), lineHz: lineHz, shaft: rpm / 60}
}

// SetShaftRPM changes the modulation rate without a phase jump.
func (h *Hum) SetShaftRPM(rpm float64) {
	h.mu.Lock()
	h.shaft = rpm / 60
	h.mu.Unlock()
}

// ToneHz returns the magnetostriction frequency.
func (h *Hum) ToneHz() float64 {
	return 2 * h.lineHz
}

// Stream fills samples with the same signal on both channels.
func (h *Hum) Stream(samples [][2]float64) (n int, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	dTone := twoPi * 2 * h.lineHz / h.rate
	dRot := twoPi * h.shaft / h.rate
	for i := range samples {
		tone := fundamentalGain*math.Sin(h.tone) + harmonicGain*math.Sin(2*h.tone)
		mod := 1 - modDepth + modDepth*math.Sin(h.rot)
		v := humPeak * tone * mod
		samples[i][0], samples[i][1] = v, v

		h.tone = math.Mod(h.tone+dTone, twoPi)
		h.rot = math.Mod(h.rot+dRot, twoPi)
	}
	return len(samples), true
}

// Err never fails.
func (h *Hum) Err() error {
	return nil
}
