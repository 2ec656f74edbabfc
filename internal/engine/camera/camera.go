// Package camera provides the orbit camera used by the motor viewer.
package camera

import (
	gomath "math"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/picking"
	"github.com/Faultbox/motorscope/pkg/math"
)

// PolarMargin keeps the polar angle away from the poles so the view never flips.
const PolarMargin = 0.15

// OrbitCamera orbits a target point in spherical coordinates.
// Polar is measured from +Y, azimuth around Y starting at +Z.
type OrbitCamera struct {
	Target math.Vec3

	Radius  float32
	Polar   float32
	Azimuth float32

	// Constraints
	MinRadius float32
	MaxRadius float32

	// Sensitivity
	DragSensitivity float32 // radians per pixel
	ZoomStep        float32 // radius units per wheel notch

	FOVDegrees float32
	Near, Far  float32

	dragging     bool
	lastX, lastY float32

	touches map[int64]struct{}
	touchID int64
}

// NewOrbitCamera creates an orbit camera from the camera config section.
func NewOrbitCamera(cfg config.CameraConfig) *OrbitCamera {
	c := &OrbitCamera{
		Radius:          cfg.Radius,
		Polar:           cfg.Polar,
		Azimuth:         cfg.Azimuth,
		MinRadius:       cfg.MinRadius,
		MaxRadius:       cfg.MaxRadius,
		DragSensitivity: cfg.DragSensitivity,
		ZoomStep:        cfg.ZoomStep,
		FOVDegrees:      45,
		Near:            0.1,
		Far:             100,
		touches:         make(map[int64]struct{}),
	}
	c.clamp()
	return c
}

// Frame places the camera at the given spherical coordinates around target.
func (c *OrbitCamera) Frame(target math.Vec3, radius, polar, azimuth float32) {
	c.Target = target
	c.Radius = radius
	c.Polar = polar
	c.Azimuth = azimuth
	c.clamp()
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	sp, cp := gomath.Sincos(float64(c.Polar))
	sa, ca := gomath.Sincos(float64(c.Azimuth))
	return c.Target.Add(math.V3(
		c.Radius*float32(sp*sa),
		c.Radius*float32(cp),
		c.Radius*float32(sp*ca),
	))
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Target, math.V3(0, 1, 0))
}

// ProjectionMatrix returns a perspective projection for the given aspect ratio.
func (c *OrbitCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	fov := c.FOVDegrees * gomath.Pi / 180
	return math.Perspective(fov, aspect, c.Near, c.Far)
}

// ViewProjection returns projection × view.
func (c *OrbitCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// Ray returns the world-space ray under a pixel of a w×h viewport.
func (c *OrbitCamera) Ray(x, y, w, h float32) picking.Ray {
	inv := c.ViewProjection(w / h).Inverse()
	return picking.ScreenToRay(x, y, w, h, inv)
}

// Dragging reports whether a pointer or single touch drag is active.
func (c *OrbitCamera) Dragging() bool {
	return c.dragging
}

// PointerDown begins a drag at (x, y).
func (c *OrbitCamera) PointerDown(x, y float32) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// PointerMove orbits by the pixel delta since the last event while dragging.
func (c *OrbitCamera) PointerMove(x, y float32) {
	if !c.dragging {
		return
	}
	c.HandleDrag(x-c.lastX, y-c.lastY)
	c.lastX, c.lastY = x, y
}

// PointerUp ends the drag. There is no inertia.
func (c *OrbitCamera) PointerUp() {
	c.dragging = false
}

// HandleDrag updates azimuth and polar angle from a pixel delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Azimuth -= deltaX * c.DragSensitivity
	c.Polar -= deltaY * c.DragSensitivity
	c.Azimuth = float32(gomath.Remainder(float64(c.Azimuth), 2*gomath.Pi))
	c.clamp()
}

// Wheel zooms by delta notches; positive values move closer.
func (c *OrbitCamera) Wheel(delta float32) {
	c.Radius -= delta * c.ZoomStep
	c.clamp()
}

// TouchStart registers a contact. Only a lone contact drags; a second finger
// cancels the drag until every contact is lifted.
func (c *OrbitCamera) TouchStart(id int64, x, y float32) {
	c.touches[id] = struct{}{}
	if len(c.touches) == 1 {
		c.touchID = id
		c.PointerDown(x, y)
		return
	}
	c.dragging = false
}

// TouchMove behaves as PointerMove for the single dragging contact.
func (c *OrbitCamera) TouchMove(id int64, x, y float32) {
	if len(c.touches) != 1 || id != c.touchID {
		return
	}
	c.PointerMove(x, y)
}

// TouchEnd removes a contact and ends any drag it drove.
func (c *OrbitCamera) TouchEnd(id int64) {
	delete(c.touches, id)
	if id == c.touchID || len(c.touches) == 0 {
		c.dragging = false
	}
}

// HandleMovement pans the target in the camera's ground plane.
func (c *OrbitCamera) HandleMovement(forward, right, up float32) {
	// Speed scales with radius for consistent feel
	speed := c.Radius * 0.01

	sa, ca := gomath.Sincos(float64(c.Azimuth))
	dirX, dirZ := float32(sa), float32(ca)
	rightX, rightZ := float32(ca), float32(-sa)

	c.Target.X += (-dirX*forward + rightX*right) * speed
	c.Target.Z += (-dirZ*forward + rightZ*right) * speed
	c.Target.Y += up * speed
}

// FitToBounds centers on b and backs off until it fits the field of view.
func (c *OrbitCamera) FitToBounds(b geometry.Bounds) {
	if !b.Valid() {
		return
	}
	center := b.Center()
	c.Target = math.V3(center[0], center[1], center[2])

	size := math.V3(b.Max[0]-b.Min[0], b.Max[1]-b.Min[1], b.Max[2]-b.Min[2])
	half := size.Length() / 2
	fov := float64(c.FOVDegrees) * gomath.Pi / 180
	c.Radius = half / float32(gomath.Sin(fov/2))
	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.Polar = min(max(c.Polar, PolarMargin), gomath.Pi-PolarMargin)
	if c.MaxRadius >= c.MinRadius {
		c.Radius = min(max(c.Radius, c.MinRadius), c.MaxRadius)
	}
}
