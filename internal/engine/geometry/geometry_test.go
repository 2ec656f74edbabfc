package geometry

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/motorscope/pkg/math"
)

const eps = 1e-5

func approx(a, b, tol float64) bool {
	return gomath.Abs(a-b) <= tol
}

func TestPartialCylinderCounts(t *testing.T) {
	for _, segments := range []int{1, 2, 3, 17, 64} {
		g, err := PartialCylinder(1.5, 2, 0.3, 4.1, segments)
		if err != nil {
			t.Fatalf("segments=%d: %v", segments, err)
		}
		if got, want := len(g.Vertices), 2*(segments+1); got != want {
			t.Errorf("segments=%d: vertices = %d, want %d", segments, got, want)
		}
		if got, want := g.TriangleCount(), 2*segments; got != want {
			t.Errorf("segments=%d: triangles = %d, want %d", segments, got, want)
		}
		for _, idx := range g.Indices {
			if int(idx) >= len(g.Vertices) {
				t.Fatalf("segments=%d: index %d out of range", segments, idx)
			}
		}
	}
}

func TestPartialCylinderNormalsRadial(t *testing.T) {
	const segments = 12
	arcStart, arcEnd := -0.5, 3.9
	g, err := PartialCylinder(2, 1, arcStart, arcEnd, segments)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range g.Vertices {
		n := v.Normal
		length := gomath.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		if !approx(length, 1, eps) {
			t.Errorf("vertex %d normal length %g", i, length)
		}
		sample := i % (segments + 1)
		a := arcStart + (arcEnd-arcStart)*float64(sample)/segments
		if !approx(float64(n[0]), gomath.Cos(a), eps) || !approx(float64(n[1]), gomath.Sin(a), eps) || n[2] != 0 {
			t.Errorf("vertex %d normal %v not radial at angle %g", i, n, a)
		}
		// Position lies on the radius along the same direction
		if !approx(float64(v.Position[0]), 2*gomath.Cos(a), 1e-4) {
			t.Errorf("vertex %d position %v off the shell", i, v.Position)
		}
	}
	if g.Vertices[0].Position[2] != -0.5 || g.Vertices[segments+1].Position[2] != 0.5 {
		t.Error("rings should sit at -h/2 and +h/2")
	}
}

func TestPartialCylinderWindingOutward(t *testing.T) {
	g, err := PartialCylinder(1, 1, 0, gomath.Pi, 8)
	if err != nil {
		t.Fatal(err)
	}
	for tri := 0; tri < g.TriangleCount(); tri++ {
		p0 := vec(g.Vertices[g.Indices[tri*3]].Position)
		p1 := vec(g.Vertices[g.Indices[tri*3+1]].Position)
		p2 := vec(g.Vertices[g.Indices[tri*3+2]].Position)
		face := p1.Sub(p0).Cross(p2.Sub(p0))
		centroid := p0.Add(p1).Add(p2).Scale(1.0 / 3)
		radial := math.V3(centroid.X, centroid.Y, 0)
		if face.Dot(radial) <= 0 {
			t.Errorf("triangle %d faces inward", tri)
		}
	}
}

func vec(p [3]float32) math.Vec3 {
	return math.V3(p[0], p[1], p[2])
}

func TestPartialCylinderErrors(t *testing.T) {
	if _, err := PartialCylinder(1, 1, 0, 1, 0); !errors.Is(err, ErrDegenerate) {
		t.Errorf("segments=0: err = %v, want ErrDegenerate", err)
	}
	if _, err := PartialCylinder(1, 1, 2, 2, 4); !errors.Is(err, ErrArc) {
		t.Errorf("empty arc: err = %v, want ErrArc", err)
	}
	if _, err := PartialCylinder(1, 1, 3, 1, 4); !errors.Is(err, ErrArc) {
		t.Errorf("reversed arc: err = %v, want ErrArc", err)
	}
}

func TestSolidArcComplement(t *testing.T) {
	const cutSpan = 1.9
	// Slide the cut around the circle, including negative and multi-turn starts
	for _, start := range []float64{-7, -3.2, -0.17, 0, 0.5, 2, 4.4, 6.2, 13} {
		arc, err := SolidArc(start, start+cutSpan)
		if err != nil {
			t.Fatalf("start=%g: %v", start, err)
		}
		if !approx(arc.Span(), TwoPi-cutSpan, 1e-9) {
			t.Errorf("start=%g: span = %g, want %g", start, arc.Span(), TwoPi-cutSpan)
		}
		if arc.End <= arc.Start {
			t.Errorf("start=%g: arc %+v not positive", start, arc)
		}
		// The solid arc begins where the cut ends
		turns := (arc.Start - start - cutSpan) / TwoPi
		if !approx(turns, gomath.Round(turns), 1e-9) {
			t.Errorf("start=%g: solid arc starts at %g", start, arc.Start)
		}
	}
}

func TestSolidArcInvalid(t *testing.T) {
	for _, c := range [][2]float64{{1, 1}, {2, 1}, {0, TwoPi}, {0, 7}} {
		if _, err := SolidArc(c[0], c[1]); !errors.Is(err, ErrArc) {
			t.Errorf("SolidArc(%g, %g) err = %v, want ErrArc", c[0], c[1], err)
		}
	}
}

func TestSolidArcFeedsPartialCylinder(t *testing.T) {
	arc, err := SolidArc(-0.2, 1.7)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := PartialCylinder(1, 1, arc.Start, arc.End, 48); err != nil {
		t.Errorf("solid arc rejected by builder: %v", err)
	}
}

func TestCylinder(t *testing.T) {
	g, err := Cylinder(0.5, 3, 16)
	if err != nil {
		t.Fatal(err)
	}
	// Side plus two caps of center + ring
	if got, want := len(g.Vertices), 2*17+2*(1+17); got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := g.TriangleCount(), 2*16+2*16; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	if !approx(float64(g.Bounds.Max[2]), 1.5, eps) || !approx(float64(g.Bounds.Min[0]), -0.5, eps) {
		t.Errorf("bounds = %+v", g.Bounds)
	}
	if _, err := Cylinder(1, 1, 2); !errors.Is(err, ErrDegenerate) {
		t.Errorf("err = %v, want ErrDegenerate", err)
	}
}

func TestTorus(t *testing.T) {
	g, err := Torus(2, 0.25, 8, 24, TwoPi)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(g.Vertices), 9*25; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := g.TriangleCount(), 2*8*24; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	if !approx(float64(g.Bounds.Max[0]), 2.25, 1e-4) || !approx(float64(g.Bounds.Max[2]), 0.25, 1e-4) {
		t.Errorf("bounds = %+v", g.Bounds)
	}
	if _, err := Torus(2, 0.25, 8, 24, 0); !errors.Is(err, ErrArc) {
		t.Errorf("zero sweep err = %v", err)
	}
}

func TestBoxNormalsFaceOutward(t *testing.T) {
	g := Box(2, 4, 6)
	if len(g.Vertices) != 24 || g.TriangleCount() != 12 {
		t.Fatalf("box has %d vertices, %d triangles", len(g.Vertices), g.TriangleCount())
	}
	want := Bounds{Min: [3]float32{-1, -2, -3}, Max: [3]float32{1, 2, 3}}
	if g.Bounds != want {
		t.Errorf("bounds = %+v, want %+v", g.Bounds, want)
	}
	for tri := 0; tri < g.TriangleCount(); tri++ {
		v0 := g.Vertices[g.Indices[tri*3]]
		p0, p1, p2 := vec(v0.Position), vec(g.Vertices[g.Indices[tri*3+1]].Position), vec(g.Vertices[g.Indices[tri*3+2]].Position)
		face := p1.Sub(p0).Cross(p2.Sub(p0))
		if face.Dot(vec(v0.Normal)) <= 0 {
			t.Errorf("triangle %d winding disagrees with normal %v", tri, v0.Normal)
		}
	}
}

func TestSphere(t *testing.T) {
	g, err := Sphere(1, 12, 8)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(g.Vertices), 13*9; got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	// Pole rows contribute one triangle per quad
	if got, want := g.TriangleCount(), 12*(2*8-2); got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	for i, v := range g.Vertices {
		p := vec(v.Position)
		if !approx(float64(p.Length()), 1, 1e-5) {
			t.Errorf("vertex %d off the sphere: %v", i, p)
		}
	}
}

func TestTransform(t *testing.T) {
	g := Box(1, 1, 1)
	moved := Transform(g, math.Translate(10, 0, 0).Mul(math.RotateZ(gomath.Pi/2)))
	if !approx(float64(moved.Bounds.Min[0]), 9.5, 1e-5) || !approx(float64(moved.Bounds.Max[0]), 10.5, 1e-5) {
		t.Errorf("bounds = %+v", moved.Bounds)
	}
	// +X face normal rotates to +Y
	n := moved.Vertices[0].Normal
	if !approx(float64(n[1]), 1, 1e-5) {
		t.Errorf("rotated normal = %v, want +Y", n)
	}
	if len(moved.Indices) != len(g.Indices) {
		t.Error("indices not copied")
	}
}

func TestBoundsUnion(t *testing.T) {
	b := EmptyBounds()
	if b.Valid() {
		t.Error("empty bounds should be invalid")
	}
	b.Union(EmptyBounds())
	if b.Valid() {
		t.Error("union with empty should stay invalid")
	}
	b.Extend([3]float32{1, 2, 3})
	b.Union(Bounds{Min: [3]float32{-1, 0, 0}, Max: [3]float32{0, 5, 1}})
	want := Bounds{Min: [3]float32{-1, 0, 0}, Max: [3]float32{1, 5, 3}}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	if c := b.Center(); c != [3]float32{0, 2.5, 1.5} {
		t.Errorf("center = %v", c)
	}
}
