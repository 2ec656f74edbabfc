package debug

import (
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/scene"
)

func TestBoxLines(t *testing.T) {
	b := geometry.EmptyBounds()
	b.Extend([3]float32{-1, 0, -2})
	b.Extend([3]float32{1, 3, 2})

	v := BoxLines(b, 0.5)
	if len(v) != BBoxWireframeVertexCount*3 {
		t.Fatalf("len = %d, want %d", len(v), BBoxWireframeVertexCount*3)
	}
	for i := 0; i < len(v); i += 3 {
		x, y, z := v[i], v[i+1], v[i+2]
		if (x != -1.5 && x != 1.5) || (y != -0.5 && y != 3.5) || (z != -2.5 && z != 2.5) {
			t.Fatalf("vertex (%g, %g, %g) is not a padded corner", x, y, z)
		}
	}

	if BoxLines(geometry.EmptyBounds(), 0) != nil {
		t.Error("empty bounds produced lines")
	}
}

func TestGridLines(t *testing.T) {
	g := scene.Grid{Size: 10, Divisions: 4, Y: -1.6}
	v := GridLines(g)
	if want := (4 + 1) * 4 * 3; len(v) != want {
		t.Fatalf("len = %d, want %d", len(v), want)
	}
	for i := 1; i < len(v); i += 3 {
		if v[i] != g.Y {
			t.Fatalf("vertex %d y = %g, want %g", i/3, v[i], g.Y)
		}
	}
	if v[0] != -5 || v[len(v)-3] != 5 {
		t.Errorf("grid does not span [-5, 5]: first x %g, last x %g", v[0], v[len(v)-3])
	}

	if GridLines(scene.Grid{}) != nil {
		t.Error("zero grid produced lines")
	}
}

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "motorscope")
	sc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue in GL order
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if want := dir + "/motorscope_2026-01-02_03-04-05.000.png"; path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if b == 0 || r != 0 {
		t.Error("top row is not the last GL row")
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	if _, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
