// Package audio synthesizes the motor hum.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager owns the speaker and the hum voice.
type Manager struct {
	mu sync.RWMutex

	// State
	initialized bool
	enabled     bool
	sampleRate  beep.SampleRate

	hum    *Hum
	ctrl   *beep.Ctrl
	volume *effects.Volume

	// 0.0 to 1.0
	level float64
}

// New creates a manager for the hum. Nothing is played until Init.
func New(cfg config.AudioConfig, lineHz, rpm float64) *Manager {
	m := &Manager{
		enabled:    cfg.Enabled,
		sampleRate: DefaultSampleRate,
		level:      clamp(cfg.Volume, 0, 1),
	}
	m.hum = NewHum(m.sampleRate, lineHz, rpm)
	m.ctrl = &beep.Ctrl{Streamer: m.hum, Paused: !m.enabled}
	m.volume = &effects.Volume{Streamer: m.ctrl, Base: 10}
	m.updateVolume()
	return m
}

// Init opens the speaker and starts the hum voice.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	err := speaker.Init(m.sampleRate, m.sampleRate.N(time.Second/30))
	if err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(m.volume)

	m.initialized = true
	logger.Info("audio initialized",
		zap.Int("sample_rate", int(m.sampleRate)),
		zap.Bool("enabled", m.enabled),
	)
	return nil
}

// Close stops playback. Subsequent calls do nothing.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	m.initialized = false
}

// IsInitialized returns whether the speaker is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Enabled reports whether the hum is audible.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// Toggle flips the hum on or off and returns the new state.
func (m *Manager) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = !m.enabled
	m.locked(func() { m.ctrl.Paused = !m.enabled })
	return m.enabled
}

// SetVolume sets the hum level (0.0 to 1.0).
func (m *Manager) SetVolume(vol float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.level = clamp(vol, 0, 1)
	m.locked(m.updateVolume)
}

// Volume returns the hum level.
func (m *Manager) Volume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.level
}

// SetShaftRPM retunes the shaft-rate component. Zero rpm leaves only the
// magnetic tone.
func (m *Manager) SetShaftRPM(rpm float64) {
	m.hum.SetShaftRPM(rpm)
}

// locked runs fn under the speaker lock once the speaker streams.
func (m *Manager) locked(fn func()) {
	if !m.initialized {
		fn()
		return
	}
	speaker.Lock()
	fn()
	speaker.Unlock()
}

func (m *Manager) updateVolume() {
	if m.level <= 0 {
		m.volume.Silent = true
		return
	}
	m.volume.Silent = false
	// Base 10 with Volume = dB/20 gives amplitude = level.
	m.volume.Volume = volumeToDb(m.level) / 20
}

// volumeToDb converts a 0-1 volume to decibel scale.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
