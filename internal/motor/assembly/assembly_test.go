package assembly

import (
	gomath "math"
	"strings"
	"testing"

	"github.com/Faultbox/motorscope/internal/config"
	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/internal/motor/registry"
)

func compose(t *testing.T, opts Options) *Model {
	t.Helper()
	m, err := Compose(DefaultDimensions(), opts)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return m
}

func TestEveryMeshTaggedWithKnownComponent(t *testing.T) {
	m := compose(t, Options{FanCoupled: true})

	counts := map[registry.ComponentID]int{}
	for _, mesh := range m.Scene.Meshes {
		if _, ok := registry.Lookup(mesh.Component); !ok {
			t.Errorf("mesh %q tagged with unknown component %q", mesh.Name, mesh.Component)
		}
		counts[mesh.Component]++
	}
	for _, id := range registry.IDs() {
		if counts[id] == 0 {
			t.Errorf("component %s has no meshes", id)
		}
	}
}

func TestOriginalMaterialsRecordedBeforeHighlight(t *testing.T) {
	m := compose(t, Options{})
	hl, ok := m.Scene.HighlightMaterial()
	if !ok {
		t.Fatal("no highlight material")
	}
	for _, mesh := range m.Scene.Meshes {
		orig := m.Scene.OriginalMaterial(mesh.ID)
		if orig == hl {
			t.Errorf("mesh %q recorded the highlight as its original", mesh.Name)
		}
		if orig != mesh.Material {
			t.Errorf("mesh %q material %d differs from original %d", mesh.Name, mesh.Material, orig)
		}
	}
}

func TestHousingShellIsCut(t *testing.T) {
	d := DefaultDimensions()
	m := compose(t, Options{})

	wantSpan := geometry.TwoPi - (d.CutEnd - d.CutStart)
	if gomath.Abs(m.Solid.Span()-wantSpan) > 1e-9 {
		t.Errorf("solid span = %g, want %g", m.Solid.Span(), wantSpan)
	}

	var shells int
	for _, mesh := range m.Scene.Meshes {
		if !strings.HasPrefix(mesh.Name, "housing_shell") {
			continue
		}
		shells++
		geo := m.Scene.Geometries[mesh.Geometry]
		if got, want := len(geo.Vertices), 2*(d.Segments+1); got != want {
			t.Errorf("%s has %d vertices, want %d", mesh.Name, got, want)
		}
	}
	if shells != 2 {
		t.Errorf("found %d housing shells, want 2", shells)
	}
}

func TestRotorGroupHoldsMovingParts(t *testing.T) {
	m := compose(t, Options{FanCoupled: true})
	s := m.Scene

	moving := map[registry.ComponentID]bool{}
	for _, mid := range s.Groups[m.Rotor].Meshes {
		moving[s.Meshes[mid].Component] = true
	}
	if !moving[registry.RotorBars] || !moving[registry.Shaft] {
		t.Errorf("rotor group components = %v", moving)
	}
	for _, mid := range s.Groups[m.Stator].Meshes {
		if c := s.Meshes[mid].Component; c == registry.Shaft || c == registry.RotorBars {
			t.Errorf("stator group holds moving part %q", s.Meshes[mid].Name)
		}
	}
}

func TestFanVariants(t *testing.T) {
	coupled := compose(t, Options{FanCoupled: true})
	if p := coupled.Scene.Groups[coupled.Fan].Parent; p != coupled.Rotor {
		t.Errorf("coupled fan parent = %d, want rotor %d", p, coupled.Rotor)
	}

	separate := compose(t, Options{FanCoupled: false})
	if p := separate.Scene.Groups[separate.Fan].Parent; p != separate.Scene.Root() {
		t.Errorf("separate fan parent = %d, want root", p)
	}
	if len(separate.Scene.Groups[separate.Fan].Meshes) != 1+DefaultDimensions().BladeCount {
		t.Errorf("fan has %d meshes", len(separate.Scene.Groups[separate.Fan].Meshes))
	}
}

func TestBallCages(t *testing.T) {
	m := compose(t, Options{})
	d := DefaultDimensions()
	if len(m.BallCages) != 2 {
		t.Fatalf("ball cages = %d, want 2", len(m.BallCages))
	}
	for i, want := range []registry.ComponentID{registry.BearingDrive, registry.BearingFan} {
		g := m.Scene.Groups[m.BallCages[i]]
		if len(g.Meshes) != d.BallCount {
			t.Errorf("cage %s holds %d balls, want %d", g.Name, len(g.Meshes), d.BallCount)
		}
		for _, mid := range g.Meshes {
			if c := m.Scene.Meshes[mid].Component; c != want {
				t.Errorf("ball in %s tagged %s", g.Name, c)
			}
		}
	}
}

func TestCoilsOwnCopperMaterials(t *testing.T) {
	m := compose(t, Options{})
	s := m.Scene

	coilMats := map[scene.MaterialID]bool{}
	for _, mesh := range s.Meshes {
		mat := s.Materials[s.OriginalMaterial(mesh.ID)]
		if mat.Kind != scene.KindCopper {
			continue
		}
		if mesh.Component != registry.StatorWinding {
			t.Errorf("copper mesh %q tagged %s", mesh.Name, mesh.Component)
		}
		coilMats[s.OriginalMaterial(mesh.ID)] = true
	}
	if got, want := len(coilMats), DefaultDimensions().CoilCount; got != want {
		t.Errorf("distinct coil materials = %d, want %d", got, want)
	}
}

func TestFinsAvoidCut(t *testing.T) {
	m := compose(t, Options{})
	c := &composer{arc: m.Solid}
	for _, mesh := range m.Scene.Meshes {
		if !strings.HasPrefix(mesh.Name, "housing_fin") {
			continue
		}
		p := mesh.Local.Position
		a := gomath.Atan2(float64(p.Y), float64(p.X))
		if !c.inSolid(a) {
			t.Errorf("%s at %.2f rad sits in the cut", mesh.Name, a)
		}
	}
}

func TestModelRestsOnGround(t *testing.T) {
	m := compose(t, Options{})
	b := m.Scene.Bounds()
	if gomath.Abs(float64(b.Min[1]-m.Scene.Ground.Y)) > 1e-4 {
		t.Errorf("model bottom %g, ground %g", b.Min[1], m.Scene.Ground.Y)
	}
}

func TestComposeRejectsBadCut(t *testing.T) {
	d := DefaultDimensions()
	d.CutStart, d.CutEnd = 1, 1
	if _, err := Compose(d, Options{}); err == nil {
		t.Error("expected error for empty cut")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default().Motor
	cfg.CutStartDeg, cfg.CutEndDeg = 0, 90
	cfg.Segments = 32
	d := FromConfig(cfg)
	if gomath.Abs(d.CutEnd-gomath.Pi/2) > 1e-12 || d.CutStart != 0 {
		t.Errorf("cut = [%g, %g]", d.CutStart, d.CutEnd)
	}
	if d.Segments != 32 {
		t.Errorf("segments = %d", d.Segments)
	}
}

func TestPartsOffsets(t *testing.T) {
	p := DefaultDimensions().Parts()
	if p.DriveBearing.Offset.Z <= 0 || p.FanBearing.Offset.Z >= 0 {
		t.Errorf("bearing offsets drive=%g fan=%g", p.DriveBearing.Offset.Z, p.FanBearing.Offset.Z)
	}
	if p.Fan.Offset.Z >= p.FanBearing.Offset.Z {
		t.Error("fan should sit outboard of the fan-end bearing")
	}
}
