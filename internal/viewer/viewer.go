// Package viewer is the platform-neutral frame logic: it turns input events
// into camera motion, selection changes and host requests, advances the
// animation and lays out the dashboard.
package viewer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/dashboard"
	"github.com/Faultbox/motorscope/internal/engine/camera"
	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/input"
	"github.com/Faultbox/motorscope/internal/engine/ui2d"
	"github.com/Faultbox/motorscope/internal/logger"
	"github.com/Faultbox/motorscope/internal/motor/animation"
	"github.com/Faultbox/motorscope/internal/motor/assembly"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/internal/telemetry"
)

// clickSlop is how far in pixels a press may travel and still count as a click.
const clickSlop = 4

// Requests are side effects the host performs after HandleEvents.
type Requests struct {
	Quit        bool
	Screenshot  bool
	ToggleAudio bool
	Resized     bool
}

type press struct {
	x, y   float32
	active bool
}

// Viewer owns the motor model and everything the user manipulates.
type Viewer struct {
	Model     *assembly.Model
	Driver    *animation.Driver
	Camera    *camera.OrbitCamera
	Telemetry *telemetry.Set
	UI        *ui2d.Context
	Shell     *dashboard.Shell

	Paused     bool
	ShowGrid   bool
	ShowBounds bool

	width, height int
	fixedStep     float64

	mouseX, mouseY float32
	press          press
	downThisFrame  bool
}

// New composes the motor and prepares camera, telemetry and dashboard. The
// dashboard draws onto canvas.
func New(cfg *config.Config, canvas ui2d.Canvas) (*Viewer, error) {
	model, err := assembly.Compose(assembly.FromConfig(cfg.Motor), assembly.Options{FanCoupled: cfg.Motor.FanCoupled})
	if err != nil {
		return nil, fmt.Errorf("compose motor: %w", err)
	}

	ui := ui2d.NewContext(canvas)
	if cfg.UI.TextScale > 0 {
		ui.Scale = cfg.UI.TextScale
	}

	v := &Viewer{
		Model:      model,
		Driver:     animation.NewDriver(model, animation.ParamsFromConfig(cfg.Motor)),
		Camera:     camera.NewOrbitCamera(cfg.Camera),
		Telemetry:  telemetry.FromConfig(cfg.Telemetry),
		UI:         ui,
		Shell:      dashboard.NewShell(ui, float32(cfg.UI.PanelWidth)),
		ShowGrid:   cfg.Graphics.ShowGround,
		ShowBounds: cfg.Graphics.ShowBounds,
		width:      cfg.Graphics.Width,
		height:     cfg.Graphics.Height,
		fixedStep:  cfg.Motor.FixedStep,
	}
	if cfg.Graphics.FOVDegrees > 0 {
		v.Camera.FOVDegrees = cfg.Graphics.FOVDegrees
	}
	if b := model.Scene.Bounds(); b.Valid() {
		c := b.Center()
		v.Camera.Target.X, v.Camera.Target.Y, v.Camera.Target.Z = c[0], c[1], c[2]
	}
	v.Driver.Tick(0)

	logger.Info("viewer ready",
		zap.Int("meshes", len(model.Scene.Meshes)),
		zap.Float64("rpm", v.Driver.Params().RPM),
		zap.Bool("fan_coupled", model.FanCoupled),
	)
	return v, nil
}

// Size returns the viewport size.
func (v *Viewer) Size() (int, int) {
	return v.width, v.height
}

// Resize records a new viewport. Zero-sized viewports are ignored.
func (v *Viewer) Resize(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	v.width, v.height = w, h
	return true
}

// Selection returns the selected component.
func (v *Viewer) Selection() (registry.ComponentID, bool) {
	return v.Driver.State.Selection.Current()
}

// HandleEvents applies one frame of input.
func (v *Viewer) HandleEvents(events []input.Event) Requests {
	var req Requests
	in := v.UI.Input()
	v.downThisFrame = false

	for _, e := range events {
		switch e.Type {
		case input.EventQuit:
			req.Quit = true

		case input.EventWindowResize:
			if v.Resize(e.Width, e.Height) {
				req.Resized = true
			}

		case input.EventKeyDown:
			v.handleKey(e.Key, &req)

		case input.EventMouseMove:
			v.mouseX, v.mouseY = float32(e.MouseX), float32(e.MouseY)
			in.MouseX, in.MouseY = v.mouseX, v.mouseY
			v.Camera.PointerMove(v.mouseX, v.mouseY)

		case input.EventMouseDown:
			if e.Button != input.ButtonLeft {
				continue
			}
			v.mouseX, v.mouseY = float32(e.MouseX), float32(e.MouseY)
			v.pointerDown(v.mouseX, v.mouseY)

		case input.EventMouseUp:
			if e.Button != input.ButtonLeft {
				continue
			}
			v.mouseX, v.mouseY = float32(e.MouseX), float32(e.MouseY)
			v.Camera.PointerUp()
			v.pointerUp(v.mouseX, v.mouseY)

		case input.EventWheel:
			if !v.UI.OverUI(v.mouseX, v.mouseY) {
				v.Camera.Wheel(e.Wheel)
			}

		case input.EventTouchDown:
			x, y := float32(e.MouseX), float32(e.MouseY)
			if v.UI.OverUI(x, y) {
				v.pointerDown(x, y)
				continue
			}
			v.Camera.TouchStart(e.Finger, x, y)
			v.press = press{x: x, y: y, active: v.Camera.Dragging()}

		case input.EventTouchMove:
			x, y := float32(e.MouseX), float32(e.MouseY)
			v.Camera.TouchMove(e.Finger, x, y)
			if !v.Camera.Dragging() {
				v.press.active = false
			}

		case input.EventTouchUp:
			x, y := float32(e.MouseX), float32(e.MouseY)
			v.Camera.TouchEnd(e.Finger)
			v.pointerUp(x, y)
		}
	}
	return req
}

func (v *Viewer) pointerDown(x, y float32) {
	in := v.UI.Input()
	in.MouseX, in.MouseY = x, y
	in.MouseLeftDown = true
	v.downThisFrame = true

	if v.UI.OverUI(x, y) {
		return
	}
	v.Camera.PointerDown(x, y)
	v.press = press{x: x, y: y, active: true}
}

func (v *Viewer) pointerUp(x, y float32) {
	in := v.UI.Input()
	in.MouseX, in.MouseY = x, y
	in.MouseLeftDown = false
	if v.downThisFrame {
		in.MouseLeftClicked = true
	}

	p := v.press
	v.press = press{}
	if !p.active {
		return
	}
	dx, dy := x-p.x, y-p.y
	if dx*dx+dy*dy <= clickSlop*clickSlop {
		v.Pick(x, y)
	}
}

// Pick toggles the component under window point (x, y). A miss changes nothing.
func (v *Viewer) Pick(x, y float32) (registry.ComponentID, bool) {
	if v.width <= 0 || v.height <= 0 {
		return "", false
	}
	ray := v.Camera.Ray(x, y, float32(v.width), float32(v.height))
	id, ok := v.Model.Scene.Pick(ray)
	if !ok {
		return "", false
	}
	v.Driver.Toggle(id)
	logger.Debug("picked component", zap.String("component", string(id)))
	return id, true
}

// keyPanStep is the target pan per arrow key press in HandleMovement units.
const keyPanStep = 10

func (v *Viewer) handleKey(k input.Key, req *Requests) {
	if d, ok := k.Digit(); ok {
		ids := registry.IDs()
		switch {
		case d == 0:
			v.Driver.State.Selection.Clear()
		case d <= len(ids):
			v.Driver.Toggle(ids[d-1])
		}
		return
	}

	switch k {
	case input.KeyEscape:
		req.Quit = true
	case input.KeyTab:
		v.Shell.NextTab()
	case input.KeySpace:
		v.Paused = !v.Paused
	case input.KeyF12:
		req.Screenshot = true
	case input.KeyM:
		req.ToggleAudio = true
	case input.KeyG:
		v.ShowGrid = !v.ShowGrid
	case input.KeyB:
		v.ShowBounds = !v.ShowBounds
	case input.KeyF:
		v.Camera.FitToBounds(v.focusBounds())
	case input.KeyUp:
		v.Camera.HandleMovement(keyPanStep, 0, 0)
	case input.KeyDown:
		v.Camera.HandleMovement(-keyPanStep, 0, 0)
	case input.KeyLeft:
		v.Camera.HandleMovement(0, -keyPanStep, 0)
	case input.KeyRight:
		v.Camera.HandleMovement(0, keyPanStep, 0)
	}
}

func (v *Viewer) focusBounds() geometry.Bounds {
	if id, ok := v.Selection(); ok {
		if b, ok := v.Model.Scene.ComponentBounds(id); ok {
			return b
		}
	}
	return v.Model.Scene.Bounds()
}

// Step returns the simulated time advance for a frame of wall-clock dt.
func (v *Viewer) Step(dt float64) float64 {
	switch {
	case v.Paused:
		return 0
	case v.fixedStep > 0:
		return v.fixedStep
	default:
		return dt
	}
}

// Update advances the animation by one frame.
func (v *Viewer) Update(dt float64) {
	v.Driver.Tick(v.Step(dt))
}

// SelectionBounds returns the box to outline, or an invalid box when nothing
// is selected or bounds are hidden.
func (v *Viewer) SelectionBounds() geometry.Bounds {
	if !v.ShowBounds {
		return geometry.EmptyBounds()
	}
	id, ok := v.Selection()
	if !ok {
		return geometry.EmptyBounds()
	}
	b, ok := v.Model.Scene.ComponentBounds(id)
	if !ok {
		return geometry.EmptyBounds()
	}
	return b
}

// ViewModel derives the dashboard content for the current state.
func (v *Viewer) ViewModel() dashboard.ViewModel {
	st := v.Driver.State
	return dashboard.Build(dashboard.Input{
		Records:   registry.All(),
		Selection: st.Selection,
		Telemetry: v.Telemetry,
		Tab:       v.Shell.Tab,
		Time:      st.Time,
		RPM:       v.Driver.Params().RPM,
		Paused:    v.Paused,
	})
}

// DrawUI lays out the dashboard and applies any selection it produced.
func (v *Viewer) DrawUI() {
	vm := v.ViewModel()
	v.UI.Begin()
	act := v.Shell.Draw(float32(v.width), float32(v.height), vm)
	v.UI.End()
	if act.Toggled {
		v.Driver.Toggle(act.Toggle)
	}
}
