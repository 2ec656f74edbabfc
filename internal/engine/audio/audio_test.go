package audio

import (
	"math"
	"testing"

	"go.uber.org/goleak"

	"github.com/Faultbox/motorscope/internal/config"
)

func TestMain(m *testing.M) {
	// Nothing may stream before Init.
	goleak.VerifyTestMain(m)
}

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewManager(t *testing.T) {
	m := New(config.AudioConfig{Enabled: false, Volume: 0.4}, 60, 1740)
	if m.IsInitialized() {
		t.Error("manager initialized before Init")
	}
	if m.Enabled() {
		t.Error("hum enabled although config disables it")
	}
	if m.Volume() != 0.4 {
		t.Errorf("volume = %f, want 0.4", m.Volume())
	}
	if !m.ctrl.Paused {
		t.Error("disabled hum is not paused")
	}
}

func TestToggleAndVolume(t *testing.T) {
	m := New(config.AudioConfig{Volume: 2}, 50, 1450)
	if m.Volume() != 1 {
		t.Errorf("volume = %f, want 1 (clamped)", m.Volume())
	}

	if !m.Toggle() || m.ctrl.Paused {
		t.Error("Toggle did not enable the hum")
	}
	if m.Toggle() || !m.ctrl.Paused {
		t.Error("second Toggle did not disable the hum")
	}

	m.SetVolume(0)
	if !m.volume.Silent {
		t.Error("zero volume not silent")
	}
	m.SetVolume(0.5)
	if m.volume.Silent {
		t.Error("volume 0.5 still silent")
	}

	m.Close() // not initialized: no-op
}

func TestHumSignal(t *testing.T) {
	h := NewHum(DefaultSampleRate, 60, 1740)
	if h.ToneHz() != 120 {
		t.Errorf("tone = %g Hz, want 120", h.ToneHz())
	}

	buf := make([][2]float64, 4410)
	n, ok := h.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("Stream = %d, %v", n, ok)
	}

	var energy float64
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d differs between channels", i)
		}
		if math.Abs(s[0]) > humPeak+1e-9 {
			t.Fatalf("sample %d = %g exceeds peak", i, s[0])
		}
		energy += s[0] * s[0]
	}
	if energy == 0 {
		t.Error("hum is silent")
	}
	if h.Err() != nil {
		t.Error("hum reported an error")
	}
}

func TestHumDeterministic(t *testing.T) {
	a := NewHum(DefaultSampleRate, 60, 1740)
	b := NewHum(DefaultSampleRate, 60, 1740)
	ba := make([][2]float64, 512)
	bb := make([][2]float64, 512)
	a.Stream(ba)
	b.Stream(bb)
	for i := range ba {
		if ba[i] != bb[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, ba[i], bb[i])
		}
	}

	// Retuning keeps the phase continuous.
	a.SetShaftRPM(0)
	next := make([][2]float64, 1)
	a.Stream(next)
	if math.Abs(next[0][0]-ba[511][0]) > 0.1 {
		t.Errorf("jump after retune: %g -> %g", ba[511][0], next[0][0])
	}
}
