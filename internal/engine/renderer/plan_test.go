package renderer

import (
	"testing"

	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/pkg/math"
)

func TestPlanOrdersTranslucentBackToFront(t *testing.T) {
	s := scene.New()
	box := s.AddGeometry(geometry.Box(1, 1, 1))
	solid := s.AddMaterial(scene.Material{Name: "steel"})
	glass := s.AddMaterial(scene.Material{Name: "glass", Opacity: 0.4})

	near := s.AddMesh("near", box, glass, registry.FanGuard, s.Root(), scene.At(math.V3(0, 0, 2)))
	s.AddMesh("core", box, solid, registry.Housing, s.Root(), scene.Identity())
	far := s.AddMesh("far", box, glass, registry.FanGuard, s.Root(), scene.At(math.V3(0, 0, -6)))

	items := Plan(s, math.V3(0, 0, 10))
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if s.Materials[items[0].Material].Opacity < 1 {
		t.Error("translucent mesh drawn before opaque")
	}
	if items[1].Mesh != far || items[2].Mesh != near {
		t.Errorf("translucent order = %d, %d; want far %d then near %d", items[1].Mesh, items[2].Mesh, far, near)
	}
}

func TestPlanUsesWorldMatrix(t *testing.T) {
	s := scene.New()
	box := s.AddGeometry(geometry.Box(1, 1, 1))
	mat := s.AddMaterial(scene.Material{Name: "steel"})
	g := s.AddGroup("rotor", s.Root(), scene.At(math.V3(0, 3, 0)))
	s.AddMesh("bar", box, mat, registry.RotorBars, g, scene.At(math.V3(1, 0, 0)))

	items := Plan(s, math.Vec3{})
	p := items[0].World.TransformVec3(math.Vec3{})
	if p != math.V3(1, 3, 0) {
		t.Errorf("world origin = %+v, want (1, 3, 0)", p)
	}
	if items[0].Depth != 10 {
		t.Errorf("depth = %g, want 10", items[0].Depth)
	}
}

func TestInterleave(t *testing.T) {
	geo := geometry.Box(2, 2, 2)
	data := Interleave(geo)
	if len(data) != len(geo.Vertices)*VertexStride {
		t.Fatalf("len = %d", len(data))
	}
	v := geo.Vertices[3]
	got := data[3*VertexStride : 4*VertexStride]
	for i := range 3 {
		if got[i] != v.Position[i] || got[3+i] != v.Normal[i] {
			t.Fatalf("vertex 3 packed as %v, want %v %v", got, v.Position, v.Normal)
		}
	}
}
