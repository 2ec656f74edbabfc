package camera

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/pkg/math"
)

func newCamera() *OrbitCamera {
	return NewOrbitCamera(config.Default().Camera)
}

func TestWheelClampsRadius(t *testing.T) {
	c := newCamera()
	for range 200 {
		c.Wheel(3)
	}
	if c.Radius != c.MinRadius {
		t.Errorf("radius after zooming in = %g, want %g", c.Radius, c.MinRadius)
	}
	for range 200 {
		c.Wheel(-5)
	}
	if c.Radius != c.MaxRadius {
		t.Errorf("radius after zooming out = %g, want %g", c.Radius, c.MaxRadius)
	}
}

func TestWheelEqualRadiusBounds(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.MinRadius, cfg.Camera.MaxRadius, cfg.Camera.Radius = 5, 5, 5
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	c := NewOrbitCamera(cfg.Camera)
	for range 50 {
		c.Wheel(-1)
	}
	if c.Radius != 5 {
		t.Errorf("radius after zooming out = %g, want 5", c.Radius)
	}
	for range 50 {
		c.Wheel(1)
	}
	if c.Radius != 5 {
		t.Errorf("radius after zooming in = %g, want 5", c.Radius)
	}
}

func TestDragClampsPolar(t *testing.T) {
	lo := float32(PolarMargin)
	hi := float32(gomath.Pi - PolarMargin)

	c := newCamera()
	c.PointerDown(100, 100)
	for i := range 100 {
		c.PointerMove(100, 100+float32(i+1)*40)
		if c.Polar < lo || c.Polar > hi {
			t.Fatalf("polar %g escaped [%g, %g]", c.Polar, lo, hi)
		}
	}
	if c.Polar != lo {
		t.Errorf("polar after dragging down = %g, want %g", c.Polar, lo)
	}
	for i := range 200 {
		c.PointerMove(100, 4000-float32(i+1)*40)
	}
	if c.Polar != hi {
		t.Errorf("polar after dragging up = %g, want %g", c.Polar, hi)
	}
}

func TestDragOrbitsAzimuth(t *testing.T) {
	c := newCamera()
	start := c.Azimuth
	c.PointerDown(0, 0)
	c.PointerMove(10, 0)
	want := start - 10*c.DragSensitivity
	if gomath.Abs(float64(c.Azimuth-want)) > 1e-6 {
		t.Errorf("azimuth = %g, want %g", c.Azimuth, want)
	}
}

func TestMoveWithoutDragIgnored(t *testing.T) {
	c := newCamera()
	before := *c
	c.PointerMove(300, 300)
	if c.Azimuth != before.Azimuth || c.Polar != before.Polar {
		t.Error("pointer move without a drag changed the orbit")
	}

	c.PointerDown(0, 0)
	c.PointerUp()
	c.PointerMove(50, 50)
	if c.Azimuth != before.Azimuth || c.Polar != before.Polar {
		t.Error("pointer move after release changed the orbit")
	}
}

func TestSingleTouchDrags(t *testing.T) {
	mouse := newCamera()
	mouse.PointerDown(10, 10)
	mouse.PointerMove(30, 25)

	touch := newCamera()
	touch.TouchStart(7, 10, 10)
	touch.TouchMove(7, 30, 25)

	if mouse.Azimuth != touch.Azimuth || mouse.Polar != touch.Polar {
		t.Errorf("touch orbit (%g, %g) differs from mouse (%g, %g)",
			touch.Azimuth, touch.Polar, mouse.Azimuth, mouse.Polar)
	}

	touch.TouchEnd(7)
	if touch.Dragging() {
		t.Error("drag still active after touch end")
	}
}

func TestMultiTouchIgnored(t *testing.T) {
	c := newCamera()
	az, polar := c.Azimuth, c.Polar

	c.TouchStart(1, 10, 10)
	c.TouchStart(2, 50, 50)
	c.TouchMove(1, 200, 200)
	c.TouchMove(2, 300, 10)
	if c.Azimuth != az || c.Polar != polar {
		t.Error("two-finger gesture moved the camera")
	}

	// Lifting one finger does not resume dragging with the other
	c.TouchEnd(2)
	c.TouchMove(1, 400, 400)
	if c.Azimuth != az || c.Polar != polar {
		t.Error("remaining finger moved the camera")
	}
	c.TouchEnd(1)
	if c.Dragging() {
		t.Error("drag active with no contacts")
	}
}

func TestPositionSpherical(t *testing.T) {
	c := newCamera()
	c.Frame(math.V3(1, 2, 3), 5, gomath.Pi/2, 0)
	p := c.Position()
	want := math.V3(1, 2, 8)
	if p.Sub(want).Length() > 1e-5 {
		t.Errorf("position = %+v, want %+v", p, want)
	}
	if got := p.Sub(c.Target).Length(); gomath.Abs(float64(got-5)) > 1e-5 {
		t.Errorf("distance to target = %g", got)
	}
}

func TestRayThroughCenterHitsTarget(t *testing.T) {
	c := newCamera()
	c.Frame(math.V3(0, 0, 0), 8, 1.0, 0.6)
	r := c.Ray(400, 300, 800, 600)

	// The center ray passes within a hair of the orbit target
	toTarget := c.Target.Sub(r.Origin)
	along := toTarget.Dot(r.Direction)
	miss := toTarget.Sub(r.Direction.Scale(along)).Length()
	if miss > 1e-3 {
		t.Errorf("center ray misses target by %g", miss)
	}
}

func TestFitToBounds(t *testing.T) {
	c := newCamera()
	b := geometry.EmptyBounds()
	b.Extend([3]float32{-1, -1, -2})
	b.Extend([3]float32{1, 1, 2})
	c.FitToBounds(b)

	if c.Target.Length() > 1e-6 {
		t.Errorf("target = %+v, want origin", c.Target)
	}
	if c.Radius < c.MinRadius || c.Radius > c.MaxRadius {
		t.Errorf("radius %g outside clamp", c.Radius)
	}
}
