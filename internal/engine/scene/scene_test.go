package scene

import (
	gomath "math"
	"slices"
	"testing"

	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/picking"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/pkg/math"
)

type fixture struct {
	s        *Scene
	steel    MaterialID
	copper   MaterialID
	hl       MaterialID
	rotor    GroupID
	shaft    MeshID
	housing  MeshID
	winding1 MeshID
	winding2 MeshID
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	s := New()
	box := s.AddGeometry(geometry.Box(1, 1, 1))

	f := fixture{s: s}
	f.steel = s.AddMaterial(Material{Name: "steel", Kind: KindSteel})
	f.copper = s.AddMaterial(Material{Name: "copper", Kind: KindCopper})
	f.hl = s.AddMaterial(Material{Name: "highlight", Kind: KindHighlight})
	s.SetHighlightMaterial(f.hl)

	stator := s.AddGroup("stator", s.Root(), Identity())
	f.rotor = s.AddGroup("rotor", s.Root(), At(math.V3(0, 2, 0)))

	f.housing = s.AddMesh("housing", box, f.steel, registry.Housing, stator, At(math.V3(0, 0, -10)))
	f.winding1 = s.AddMesh("coil-0", box, f.copper, registry.StatorWinding, stator, At(math.V3(3, 0, 0)))
	f.winding2 = s.AddMesh("coil-1", box, f.copper, registry.StatorWinding, stator, At(math.V3(-3, 0, 0)))
	f.shaft = s.AddMesh("shaft", box, f.steel, registry.Shaft, f.rotor, At(math.V3(1, 0, 0)))

	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return f
}

func TestSetHighlightAssignsSharedMaterial(t *testing.T) {
	f := newFixture(t)

	f.s.SetHighlight(registry.StatorWinding, true)
	for _, id := range []MeshID{f.winding1, f.winding2} {
		if got := f.s.Meshes[id].Material; got != f.hl {
			t.Errorf("mesh %d material = %d, want highlight", id, got)
		}
	}
	if got := f.s.Meshes[f.shaft].Material; got != f.steel {
		t.Errorf("shaft material = %d, want steel", got)
	}
}

func TestSetHighlightIdempotent(t *testing.T) {
	f := newFixture(t)

	f.s.SetHighlight(registry.Shaft, true)
	once := f.s.Assignment()
	f.s.SetHighlight(registry.Shaft, true)
	twice := f.s.Assignment()

	if !slices.Equal(once, twice) {
		t.Errorf("second pass changed assignment: %v vs %v", once, twice)
	}
}

func TestSetHighlightRestoresOriginal(t *testing.T) {
	f := newFixture(t)
	before := f.s.Assignment()

	f.s.SetHighlight(registry.StatorWinding, true)
	f.s.SetHighlight(registry.Shaft, true)
	if f.s.Meshes[f.winding1].Material != f.copper {
		t.Error("winding kept highlight after selection moved")
	}

	f.s.SetHighlight("", false)
	if after := f.s.Assignment(); !slices.Equal(before, after) {
		t.Errorf("clearing selection gave %v, want %v", after, before)
	}
	if f.s.OriginalMaterial(f.shaft) != f.steel {
		t.Error("original table changed")
	}
}

func TestGroupWorldChain(t *testing.T) {
	f := newFixture(t)
	f.s.SetGroupRotation(f.rotor, math.V3(0, 0, gomath.Pi/2))

	// Shaft sits at +1 X inside a rotor translated to +2 Y and spun 90 deg about Z
	p := f.s.MeshWorld(f.shaft).TransformVec3(math.V3(0, 0, 0))
	if gomath.Abs(float64(p.X)) > 1e-5 || gomath.Abs(float64(p.Y-3)) > 1e-5 {
		t.Errorf("shaft origin = %+v, want (0, 3, 0)", p)
	}
}

func TestWalkVisitsEveryMesh(t *testing.T) {
	f := newFixture(t)
	seen := map[MeshID]bool{}
	f.s.Walk(func(mesh *Mesh, _ math.Mat4) { seen[mesh.ID] = true })
	if len(seen) != len(f.s.Meshes) {
		t.Errorf("walked %d meshes, have %d", len(seen), len(f.s.Meshes))
	}
}

func TestComponentBounds(t *testing.T) {
	f := newFixture(t)
	b, ok := f.s.ComponentBounds(registry.StatorWinding)
	if !ok {
		t.Fatal("no bounds for winding")
	}
	want := geometry.Bounds{Min: [3]float32{-3.5, -0.5, -0.5}, Max: [3]float32{3.5, 0.5, 0.5}}
	if b != want {
		t.Errorf("bounds = %+v, want %+v", b, want)
	}
	if _, ok := f.s.ComponentBounds(registry.JunctionBox); ok {
		t.Error("untagged component should have no bounds")
	}
}

func TestPick(t *testing.T) {
	f := newFixture(t)

	down := math.V3(0, -1, 0)
	id, ok := f.s.Pick(picking.Ray{Origin: math.V3(3.2, 10, 0.1), Direction: down})
	if !ok || id != registry.StatorWinding {
		t.Errorf("pick over coil = %q, %v", id, ok)
	}
	// Shaft is above the coil plane, so it wins over the stator below it
	id, ok = f.s.Pick(picking.Ray{Origin: math.V3(1.1, 10, 0.2), Direction: down})
	if !ok || id != registry.Shaft {
		t.Errorf("pick over shaft = %q, %v", id, ok)
	}
	if _, ok := f.s.Pick(picking.Ray{Origin: math.V3(40, 10, 0), Direction: down}); ok {
		t.Error("expected miss")
	}
}

func TestValidateRejectsUntagged(t *testing.T) {
	s := New()
	geo := s.AddGeometry(geometry.Box(1, 1, 1))
	mat := s.AddMaterial(Material{Name: "m"})
	s.SetHighlightMaterial(mat)
	s.AddMesh("bare", geo, mat, "", s.Root(), Identity())
	if err := s.Validate(); err == nil {
		t.Error("expected error for untagged mesh")
	}
}

func TestAddMaterialDefaultsOpacity(t *testing.T) {
	s := New()
	id := s.AddMaterial(Material{Name: "m"})
	if s.Materials[id].Opacity != 1 {
		t.Errorf("opacity = %g, want 1", s.Materials[id].Opacity)
	}
	clone := s.CloneMaterial(id, "m2")
	if clone == id || s.Materials[clone].Name != "m2" {
		t.Error("CloneMaterial did not create a new entry")
	}
}
