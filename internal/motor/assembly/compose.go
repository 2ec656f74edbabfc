package assembly

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/pkg/math"
)

// Group names.
const (
	GroupStator    = "stator"
	GroupRotor     = "rotor"
	GroupFan       = "fan"
	GroupDriveCage = "bearing_drive_cage"
	GroupFanCage   = "bearing_fan_cage"
)

// Options selects assembly variants.
type Options struct {
	// FanCoupled mounts the fan under the rotor group; otherwise the fan is a
	// separate group the animation spins in step with the rotor.
	FanCoupled bool
}

// Model is the composed motor with handles to its animated groups.
type Model struct {
	Scene      *scene.Scene
	Dims       Dimensions
	Parts      Parts
	Solid      geometry.Arc
	Stator     scene.GroupID
	Rotor      scene.GroupID
	Fan        scene.GroupID
	FanCoupled bool
	BallCages  []scene.GroupID
}

type materials struct {
	paint, steel, copper, aluminum, chrome, shaft, fan, guard, terminal, rubber scene.MaterialID
}

type composer struct {
	s    *scene.Scene
	d    Dimensions
	p    Parts
	arc  geometry.Arc
	mats materials
}

// Compose builds the stator and rotor hierarchy, lights, ground and the
// highlight material. Original materials are recorded before any highlight.
func Compose(d Dimensions, opts Options) (*Model, error) {
	arc, err := geometry.SolidArc(d.CutStart, d.CutEnd)
	if err != nil {
		return nil, err
	}

	c := &composer{s: scene.New(), d: d, p: d.Parts(), arc: arc}
	c.addMaterials()

	s := c.s
	m := &Model{Scene: s, Dims: d, Parts: c.p, Solid: arc, FanCoupled: opts.FanCoupled}
	m.Stator = s.AddGroup(GroupStator, s.Root(), scene.Identity())
	m.Rotor = s.AddGroup(GroupRotor, s.Root(), scene.Identity())

	fanParent := s.Root()
	if opts.FanCoupled {
		fanParent = m.Rotor
	}
	m.Fan = s.AddGroup(GroupFan, fanParent, scene.At(c.p.Fan.Offset))

	steps := []struct {
		name string
		fn   func(*Model) error
	}{
		{"housing", c.housing},
		{"stator", c.stator},
		{"rotor", c.rotor},
		{"shaft", c.shaft},
		{"bearings", c.bearings},
		{"fan", c.fan},
		{"guard", c.guard},
		{"junction box", c.junctionBox},
	}
	for _, step := range steps {
		if err := step.fn(m); err != nil {
			return nil, fmt.Errorf("building %s: %w", step.name, err)
		}
	}

	s.Ground = scene.Grid{Size: 12, Divisions: 24, Y: d.GroundY(), Color: [3]float32{0.32, 0.35, 0.4}}
	s.View = scene.View{Target: math.V3(0, 0, 0.2), Radius: 7.5, Polar: 1.15, Azimuth: 0.75}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *composer) addMaterials() {
	s := c.s
	c.mats = materials{
		paint: s.AddMaterial(scene.Material{
			Name: "housing_paint", Kind: scene.KindPainted,
			Color: [3]float32{0.22, 0.32, 0.42}, Shininess: 24, Specular: 0.25, DoubleSided: true,
		}),
		steel: s.AddMaterial(scene.Material{
			Name: "lamination_steel", Kind: scene.KindSteel,
			Color: [3]float32{0.46, 0.48, 0.5}, Shininess: 48, Specular: 0.5, DoubleSided: true,
		}),
		copper: s.AddMaterial(scene.Material{
			Name: "winding_copper", Kind: scene.KindCopper,
			Color: [3]float32{0.78, 0.45, 0.2}, Emissive: [3]float32{1.0, 0.42, 0.08},
			EmissiveIntensity: 0.15, Shininess: 64, Specular: 0.7,
		}),
		aluminum: s.AddMaterial(scene.Material{
			Name: "cage_aluminum", Kind: scene.KindAluminum,
			Color: [3]float32{0.76, 0.77, 0.79}, Shininess: 40, Specular: 0.6,
		}),
		chrome: s.AddMaterial(scene.Material{
			Name: "bearing_chrome", Kind: scene.KindSteel,
			Color: [3]float32{0.82, 0.84, 0.86}, Shininess: 96, Specular: 0.9,
		}),
		shaft: s.AddMaterial(scene.Material{
			Name: "shaft_steel", Kind: scene.KindSteel,
			Color: [3]float32{0.62, 0.64, 0.66}, Shininess: 80, Specular: 0.8,
		}),
		fan: s.AddMaterial(scene.Material{
			Name: "fan_polymer", Kind: scene.KindRubber,
			Color: [3]float32{0.12, 0.13, 0.14}, Shininess: 12, Specular: 0.15,
		}),
		guard: s.AddMaterial(scene.Material{
			Name: "guard_paint", Kind: scene.KindPainted,
			Color: [3]float32{0.18, 0.26, 0.34}, Shininess: 16, Specular: 0.2, DoubleSided: true,
		}),
		terminal: s.AddMaterial(scene.Material{
			Name: "terminal_paint", Kind: scene.KindPainted,
			Color: [3]float32{0.28, 0.36, 0.45}, Shininess: 24, Specular: 0.25,
		}),
		rubber: s.AddMaterial(scene.Material{
			Name: "gland_rubber", Kind: scene.KindRubber,
			Color: [3]float32{0.07, 0.07, 0.08}, Shininess: 6, Specular: 0.05,
		}),
	}
	s.SetHighlightMaterial(s.AddMaterial(scene.Material{
		Name: "highlight", Kind: scene.KindHighlight,
		Color: [3]float32{0.1, 0.8, 1.0}, Emissive: [3]float32{0.1, 0.6, 0.95},
		EmissiveIntensity: 0.6, Shininess: 32, Specular: 0.4, DoubleSided: true,
	}))
}

// radial places a part at angle a (radians around Z) and radius r, turned so
// its local +Y points outwards.
func radial(a float64, r, z float32) scene.Transform {
	t := scene.At(math.V3(r*float32(gomath.Cos(a)), r*float32(gomath.Sin(a)), z))
	t.Rotation = math.V3(0, 0, float32(a-gomath.Pi/2))
	return t
}

// inSolid reports whether angle a falls inside the solid (uncut) arc.
func (c *composer) inSolid(a float64) bool {
	rel := gomath.Mod(a-c.arc.Start, geometry.TwoPi)
	if rel < 0 {
		rel += geometry.TwoPi
	}
	return rel <= c.arc.Span()
}

func (c *composer) housing(m *Model) error {
	s, d, hp := c.s, c.d, c.p.Housing
	grp := m.Stator

	outer, err := geometry.PartialCylinder(hp.Radius, hp.Length, c.arc.Start, c.arc.End, hp.Segments)
	if err != nil {
		return err
	}
	inner, err := geometry.PartialCylinder(hp.Radius-d.HousingThickness, hp.Length, c.arc.Start, c.arc.End, hp.Segments)
	if err != nil {
		return err
	}
	s.AddMesh("housing_shell_outer", s.AddGeometry(outer), c.mats.paint, registry.Housing, grp, scene.Identity())
	s.AddMesh("housing_shell_inner", s.AddGeometry(inner), c.mats.paint, registry.Housing, grp, scene.Identity())

	fin := s.AddGeometry(geometry.Box(d.FinThickness, d.FinHeight, hp.Length*0.92))
	for i := range d.FinCount {
		a := geometry.TwoPi * float64(i) / float64(d.FinCount)
		// Fins stay off the cut, the feet and the terminal box
		if !c.inSolid(a) || gomath.Sin(a) < -0.6 || gomath.Abs(a-junctionAngle) < 0.3 {
			continue
		}
		s.AddMesh(fmt.Sprintf("housing_fin_%d", i), fin, c.mats.paint, registry.Housing, grp,
			radial(a, hp.Radius+d.FinHeight/2, 0))
	}

	const footHeight = 0.6
	foot := s.AddGeometry(geometry.Box(0.5, footHeight, 0.45))
	for i, pos := range [4][2]float32{{-0.85, -1}, {0.85, -1}, {-0.85, 1}, {0.85, 1}} {
		s.AddMesh(fmt.Sprintf("housing_foot_%d", i), foot, c.mats.paint, registry.Housing, grp,
			scene.At(math.V3(pos[0], d.GroundY()+footHeight/2, pos[1]*hp.Length*0.32)))
	}

	rim, err := geometry.Torus(hp.Radius-d.HousingThickness/2, 0.07, 10, hp.Segments, geometry.TwoPi)
	if err != nil {
		return err
	}
	rimID := s.AddGeometry(rim)
	hub, err := geometry.Torus(d.BearingOuterRadius+0.08, 0.08, 10, 32, geometry.TwoPi)
	if err != nil {
		return err
	}
	hubID := s.AddGeometry(hub)
	spokeLen := hp.Radius - d.BearingOuterRadius - 0.2
	spoke := s.AddGeometry(geometry.Box(0.12, spokeLen, 0.08))

	for _, end := range []struct {
		name string
		z    float32
	}{{"drive", hp.Length / 2}, {"fan", -hp.Length / 2}} {
		s.AddMesh("housing_bracket_rim_"+end.name, rimID, c.mats.paint, registry.Housing, grp, scene.At(math.V3(0, 0, end.z)))
		s.AddMesh("housing_bracket_hub_"+end.name, hubID, c.mats.paint, registry.Housing, grp, scene.At(math.V3(0, 0, end.z)))
		for k := range 4 {
			a := gomath.Pi/4 + float64(k)*gomath.Pi/2
			if !c.inSolid(a) {
				continue
			}
			s.AddMesh(fmt.Sprintf("housing_bracket_spoke_%s_%d", end.name, k), spoke, c.mats.paint, registry.Housing, grp,
				radial(a, d.BearingOuterRadius+0.12+spokeLen/2, end.z))
		}
	}
	return nil
}

func (c *composer) stator(m *Model) error {
	s, d, sp := c.s, c.d, c.p.Stator
	grp := m.Stator

	core, err := geometry.PartialCylinder(sp.Radius, sp.Length, c.arc.Start, c.arc.End, sp.Segments)
	if err != nil {
		return err
	}
	bore, err := geometry.PartialCylinder(d.StatorBoreRadius, sp.Length, c.arc.Start, c.arc.End, sp.Segments)
	if err != nil {
		return err
	}
	s.AddMesh("stator_core_outer", s.AddGeometry(core), c.mats.steel, registry.StatorWinding, grp, scene.Identity())
	s.AddMesh("stator_core_bore", s.AddGeometry(bore), c.mats.steel, registry.StatorWinding, grp, scene.Identity())

	coilRadius := (d.StatorBoreRadius + sp.Radius) / 2
	slot := s.AddGeometry(geometry.Box(0.14, sp.Radius-d.StatorBoreRadius-0.08, sp.Length*1.04))
	endTurn, err := geometry.Torus(0.13, 0.04, 8, 20, geometry.TwoPi)
	if err != nil {
		return err
	}
	endTurnID := s.AddGeometry(endTurn)

	// Each coil gets its own copper so the emissive wave can vary by position
	for i := range d.CoilCount {
		a := geometry.TwoPi * float64(i) / float64(d.CoilCount)
		mat := s.CloneMaterial(c.mats.copper, fmt.Sprintf("winding_copper_%d", i))
		s.AddMesh(fmt.Sprintf("stator_coil_%d", i), slot, mat, registry.StatorWinding, grp, radial(a, coilRadius, 0))
		for _, z := range [2]float32{sp.Length / 2, -sp.Length / 2} {
			t := scene.At(math.V3(coilRadius*float32(gomath.Cos(a)), coilRadius*float32(gomath.Sin(a)), z))
			t.Rotation = math.V3(0, gomath.Pi/2, float32(a))
			s.AddMesh(fmt.Sprintf("stator_coil_%d_end", i), endTurnID, mat, registry.StatorWinding, grp, t)
		}
	}
	return nil
}

func (c *composer) rotor(m *Model) error {
	s, d, rp := c.s, c.d, c.p.Rotor
	grp := m.Rotor

	core, err := geometry.Cylinder(rp.Radius-0.03, rp.Length, rp.Segments)
	if err != nil {
		return err
	}
	s.AddMesh("rotor_core", s.AddGeometry(core), c.mats.steel, registry.RotorBars, grp, scene.Identity())

	bar := s.AddGeometry(geometry.Box(0.08, 0.08, rp.Length*1.02))
	for i := range d.BarCount {
		a := geometry.TwoPi * float64(i) / float64(d.BarCount)
		s.AddMesh(fmt.Sprintf("rotor_bar_%d", i), bar, c.mats.aluminum, registry.RotorBars, grp,
			radial(a, rp.Radius-0.04, 0))
	}

	ring, err := geometry.Torus(rp.Radius-0.08, 0.07, 10, rp.Segments, geometry.TwoPi)
	if err != nil {
		return err
	}
	ringID := s.AddGeometry(ring)
	for _, z := range [2]float32{rp.Length / 2, -rp.Length / 2} {
		s.AddMesh("rotor_end_ring", ringID, c.mats.aluminum, registry.RotorBars, grp, scene.At(math.V3(0, 0, z)))
	}
	return nil
}

func (c *composer) shaft(m *Model) error {
	s, sp := c.s, c.p.Shaft

	body, err := geometry.Cylinder(sp.Radius, sp.Length, sp.Segments)
	if err != nil {
		return err
	}
	s.AddMesh("shaft", s.AddGeometry(body), c.mats.shaft, registry.Shaft, m.Rotor, scene.At(sp.Offset))

	driveEnd := sp.Offset.Z + sp.Length/2
	key := s.AddGeometry(geometry.Box(0.07, 0.06, 0.5))
	s.AddMesh("shaft_key", key, c.mats.shaft, registry.Shaft, m.Rotor,
		scene.At(math.V3(0, sp.Radius, driveEnd-0.3)))
	return nil
}

func (c *composer) bearings(m *Model) error {
	s, d := c.s, c.d

	outer, err := geometry.Torus(d.BearingOuterRadius, 0.05, 10, 32, geometry.TwoPi)
	if err != nil {
		return err
	}
	inner, err := geometry.Torus(d.BearingInnerRadius, 0.045, 10, 32, geometry.TwoPi)
	if err != nil {
		return err
	}
	ball, err := geometry.Sphere(d.BallRadius, 12, 8)
	if err != nil {
		return err
	}
	outerID, innerID, ballID := s.AddGeometry(outer), s.AddGeometry(inner), s.AddGeometry(ball)
	pitch := (d.BearingOuterRadius + d.BearingInnerRadius) / 2

	for _, b := range []struct {
		id    registry.ComponentID
		spec  PartSpec
		group string
	}{
		{registry.BearingDrive, c.p.DriveBearing, GroupDriveCage},
		{registry.BearingFan, c.p.FanBearing, GroupFanCage},
	} {
		at := scene.At(b.spec.Offset)
		s.AddMesh(string(b.id)+"_outer_race", outerID, c.mats.chrome, b.id, m.Stator, at)
		s.AddMesh(string(b.id)+"_inner_race", innerID, c.mats.chrome, b.id, m.Stator, at)

		cage := s.AddGroup(b.group, m.Stator, at)
		m.BallCages = append(m.BallCages, cage)
		for i := range d.BallCount {
			a := geometry.TwoPi * float64(i) / float64(d.BallCount)
			s.AddMesh(fmt.Sprintf("%s_ball_%d", b.id, i), ballID, c.mats.chrome, b.id, cage,
				scene.At(math.V3(pitch*float32(gomath.Cos(a)), pitch*float32(gomath.Sin(a)), 0)))
		}
	}
	return nil
}

func (c *composer) fan(m *Model) error {
	s, d, fp := c.s, c.d, c.p.Fan

	hub, err := geometry.Cylinder(0.22, fp.Length, fp.Segments)
	if err != nil {
		return err
	}
	s.AddMesh("fan_hub", s.AddGeometry(hub), c.mats.fan, registry.FanGuard, m.Fan, scene.Identity())

	bladeLen := fp.Radius - 0.22
	blade := s.AddGeometry(geometry.Box(0.26, bladeLen, 0.03))
	for i := range d.BladeCount {
		a := geometry.TwoPi * float64(i) / float64(d.BladeCount)
		t := radial(a, 0.22+bladeLen/2, 0)
		t.Rotation.Y = d.BladePitch
		s.AddMesh(fmt.Sprintf("fan_blade_%d", i), blade, c.mats.fan, registry.FanGuard, m.Fan, t)
	}
	return nil
}

func (c *composer) guard(m *Model) error {
	s, gp := c.s, c.p.Guard

	shell, err := geometry.PartialCylinder(gp.Radius, gp.Length, c.arc.Start, c.arc.End, gp.Segments)
	if err != nil {
		return err
	}
	s.AddMesh("fan_guard_shell", s.AddGeometry(shell), c.mats.guard, registry.FanGuard, m.Stator, scene.At(gp.Offset))

	grilleZ := gp.Offset.Z - gp.Length/2
	for i, r := range []float32{0.3, 0.6, 0.9, gp.Radius - 0.03} {
		ring, err := geometry.Torus(r, 0.025, 6, max(16, int(r*40)), geometry.TwoPi)
		if err != nil {
			return err
		}
		s.AddMesh(fmt.Sprintf("fan_guard_grille_%d", i), s.AddGeometry(ring), c.mats.guard, registry.FanGuard, m.Stator,
			scene.At(math.V3(0, 0, grilleZ)))
	}
	return nil
}

// junctionAngle is where the terminal box sits around the frame.
const junctionAngle = 3 * gomath.Pi / 4

func (c *composer) junctionBox(m *Model) error {
	s, jp := c.s, c.p.JunctionBox
	const angle = junctionAngle

	body := s.AddGeometry(geometry.Box(0.7, 0.44, jp.Length))
	s.AddMesh("junction_box_body", body, c.mats.terminal, registry.JunctionBox, m.Stator, radial(angle, jp.Radius, jp.Offset.Z))

	lid := s.AddGeometry(geometry.Box(0.78, 0.06, jp.Length+0.08))
	s.AddMesh("junction_box_lid", lid, c.mats.terminal, registry.JunctionBox, m.Stator, radial(angle, jp.Radius+0.25, jp.Offset.Z))

	gland, err := geometry.Cylinder(0.08, 0.22, jp.Segments)
	if err != nil {
		return err
	}
	// Gland exits the drive-end face of the box along +Z
	s.AddMesh("junction_box_gland", s.AddGeometry(gland), c.mats.rubber, registry.JunctionBox, m.Stator,
		radial(angle, jp.Radius, jp.Offset.Z+jp.Length/2+0.1))
	return nil
}
