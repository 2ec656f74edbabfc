// Package app runs the motor viewer: window, GPU renderers, audio and the
// frame loop around the platform-neutral viewer.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/engine/audio"
	"github.com/Faultbox/motorscope/internal/engine/debug"
	"github.com/Faultbox/motorscope/internal/engine/input"
	"github.com/Faultbox/motorscope/internal/engine/renderer"
	"github.com/Faultbox/motorscope/internal/engine/ui2d"
	"github.com/Faultbox/motorscope/internal/engine/window"
	"github.com/Faultbox/motorscope/internal/logger"
	"github.com/Faultbox/motorscope/internal/viewer"
)

// Title is the window caption.
const Title = "Motorscope - Predictive Maintenance"

// App is the running viewer instance.
type App struct {
	config  *config.Config
	running bool
	closed  bool

	window     *window.Window
	renderer   *renderer.Renderer
	ui         *ui2d.Renderer
	audio      *audio.Manager
	events     *input.Queue
	screenshot *debug.ScreenshotCapture

	viewer *viewer.Viewer
}

// New opens the window and builds every subsystem. On error everything
// created so far is released.
func New(cfg *config.Config) (a *App, err error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	a = &App{
		config:     cfg,
		events:     input.NewQueue(),
		screenshot: debug.NewScreenshotCapture(cfg.UI.ScreenshotDir, "motorscope"),
	}
	defer func() {
		if err != nil {
			a.Close()
			a = nil
		}
	}()

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	w, h := a.window.GetSize()
	dw, dh := a.window.DrawableSize()

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		Width:      dw,
		Height:     dh,
		ClearColor: [3]float32{0.043, 0.063, 0.098},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.ui, err = ui2d.New(w, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create ui renderer: %w", err)
	}

	a.viewer, err = viewer.New(cfg, a.ui)
	if err != nil {
		return nil, err
	}
	a.viewer.Resize(w, h)
	a.renderer.Upload(a.viewer.Model.Scene)

	a.audio = audio.New(cfg.Audio, cfg.Motor.LineFrequency, cfg.Motor.RPM)
	if err := a.audio.Init(); err != nil {
		// The viewer is usable without sound.
		logger.Warn("audio unavailable", zap.Error(err))
	}

	logger.Info("viewer initialized successfully")
	return a, nil
}

// Run starts the frame loop and returns when the user quits.
func (a *App) Run() error {
	a.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Input
		a.window.PollEvents(a.events)
		req := a.viewer.HandleEvents(a.events.Events())
		a.apply(req)
		if !a.running {
			break
		}

		// 2. Animation
		a.viewer.Update(dt)

		// 3. Scene, then dashboard on top
		a.render()
		if req.Screenshot {
			a.capture()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (a *App) apply(req viewer.Requests) {
	if req.Quit {
		a.running = false
		return
	}
	if req.Resized {
		w, h := a.viewer.Size()
		dw, dh := a.window.DrawableSize()
		a.renderer.Resize(dw, dh)
		a.ui.Resize(w, h)
	}
	if req.ToggleAudio {
		on := a.audio.Toggle()
		logger.Info("motor hum", zap.Bool("enabled", on))
	}

	rpm := a.viewer.Driver.Params().RPM
	if a.viewer.Paused {
		rpm = 0
	}
	a.audio.SetShaftRPM(rpm)
}

func (a *App) render() {
	v := a.viewer

	a.renderer.Begin()
	a.renderer.Render(v.Model.Scene, v.Camera, renderer.Overlay{
		Grid:   v.ShowGrid,
		Bounds: v.SelectionBounds(),
	})
	a.renderer.End()

	a.ui.Begin()
	v.DrawUI()
	a.ui.End()
}

func (a *App) capture() {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.screenshot.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases all resources. Subsequent calls do nothing.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	logger.Info("closing viewer")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.ui != nil {
		a.ui.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
