// Package scene provides the arena-backed scene graph for the motor model.
//
// Geometries, materials, meshes and groups live in flat slices and refer to
// each other through typed indices. After composition the only mutations are
// material swaps, material emissive intensity and group rotations.
package scene

import (
	"fmt"

	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/lighting"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/pkg/math"
)

type (
	GeometryID int
	MaterialID int
	MeshID     int
	GroupID    int
)

// NoGroup is the parent of the root group.
const NoGroup GroupID = -1

// MaterialKind classifies surface finishes.
type MaterialKind int

const (
	KindPainted MaterialKind = iota
	KindSteel
	KindCopper
	KindAluminum
	KindRubber
	KindHighlight
)

// Material describes how a surface is shaded.
type Material struct {
	Name              string
	Kind              MaterialKind
	Color             [3]float32
	Emissive          [3]float32
	EmissiveIntensity float32
	Shininess         float32
	Specular          float32
	Opacity           float32
	DoubleSided       bool
}

// Transform is a local translation, XYZ euler rotation and scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// Identity returns a transform with unit scale.
func Identity() Transform {
	return Transform{Scale: math.V3(1, 1, 1)}
}

// At returns an identity transform translated to p.
func At(p math.Vec3) Transform {
	t := Identity()
	t.Position = p
	return t
}

// Matrix returns T * R * S.
func (t Transform) Matrix() math.Mat4 {
	return math.TranslateVec(t.Position).
		Mul(math.RotateEuler(t.Rotation)).
		Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Mesh is a drawable leaf tagged with the component it represents.
type Mesh struct {
	ID        MeshID
	Name      string
	Geometry  GeometryID
	Material  MaterialID
	Component registry.ComponentID
	Group     GroupID
	Local     Transform
}

// Group is a node sharing one transform across its meshes and children.
type Group struct {
	ID       GroupID
	Name     string
	Parent   GroupID
	Local    Transform
	Children []GroupID
	Meshes   []MeshID
}

// Grid is the ground reference drawn under the model.
type Grid struct {
	Size      float32
	Divisions int
	Y         float32
	Color     [3]float32
}

// View is the initial camera framing.
type View struct {
	Target  math.Vec3
	Radius  float32
	Polar   float32
	Azimuth float32
}

// Scene owns every node of the composed model.
type Scene struct {
	Geometries []*geometry.Geometry
	Materials  []Material
	Meshes     []Mesh
	Groups     []Group

	Lights lighting.Rig
	Ground Grid
	View   View

	root      GroupID
	original  []MaterialID
	highlight MaterialID
	hasHL     bool
}

// New creates an empty scene with a root group.
func New() *Scene {
	s := &Scene{Lights: lighting.StudioRig()}
	s.root = s.AddGroup("root", NoGroup, Identity())
	return s
}

// Root returns the root group.
func (s *Scene) Root() GroupID {
	return s.root
}

// AddGeometry stores g and returns its handle.
func (s *Scene) AddGeometry(g *geometry.Geometry) GeometryID {
	s.Geometries = append(s.Geometries, g)
	return GeometryID(len(s.Geometries) - 1)
}

// AddMaterial stores m and returns its handle.
func (s *Scene) AddMaterial(m Material) MaterialID {
	if m.Opacity == 0 {
		m.Opacity = 1
	}
	s.Materials = append(s.Materials, m)
	return MaterialID(len(s.Materials) - 1)
}

// CloneMaterial copies an existing material under a new name.
func (s *Scene) CloneMaterial(id MaterialID, name string) MaterialID {
	m := s.Materials[id]
	m.Name = name
	return s.AddMaterial(m)
}

// SetHighlightMaterial designates the shared material used for selection.
func (s *Scene) SetHighlightMaterial(id MaterialID) {
	s.highlight = id
	s.hasHL = true
}

// HighlightMaterial returns the shared highlight material.
func (s *Scene) HighlightMaterial() (MaterialID, bool) {
	return s.highlight, s.hasHL
}

// AddGroup creates a group under parent. Use NoGroup only for the root.
func (s *Scene) AddGroup(name string, parent GroupID, local Transform) GroupID {
	id := GroupID(len(s.Groups))
	s.Groups = append(s.Groups, Group{ID: id, Name: name, Parent: parent, Local: local})
	if parent != NoGroup {
		s.Groups[parent].Children = append(s.Groups[parent].Children, id)
	}
	return id
}

// AddMesh creates a mesh in group and records mat as its original material.
func (s *Scene) AddMesh(name string, geo GeometryID, mat MaterialID, component registry.ComponentID, group GroupID, local Transform) MeshID {
	id := MeshID(len(s.Meshes))
	s.Meshes = append(s.Meshes, Mesh{
		ID:        id,
		Name:      name,
		Geometry:  geo,
		Material:  mat,
		Component: component,
		Group:     group,
		Local:     local,
	})
	s.original = append(s.original, mat)
	s.Groups[group].Meshes = append(s.Groups[group].Meshes, id)
	return id
}

// OriginalMaterial returns the material mesh had when it was added.
func (s *Scene) OriginalMaterial(id MeshID) MaterialID {
	return s.original[id]
}

// SetGroupRotation replaces a group's local euler rotation.
func (s *Scene) SetGroupRotation(id GroupID, r math.Vec3) {
	s.Groups[id].Local.Rotation = r
}

// FindGroup returns the first group with the given name.
func (s *Scene) FindGroup(name string) (GroupID, bool) {
	for _, g := range s.Groups {
		if g.Name == name {
			return g.ID, true
		}
	}
	return 0, false
}

// GroupWorld returns the world matrix of a group by walking up to the root.
func (s *Scene) GroupWorld(id GroupID) math.Mat4 {
	m := math.Identity()
	for g := id; g != NoGroup; g = s.Groups[g].Parent {
		m = s.Groups[g].Local.Matrix().Mul(m)
	}
	return m
}

// MeshWorld returns the world matrix of a mesh.
func (s *Scene) MeshWorld(id MeshID) math.Mat4 {
	mesh := &s.Meshes[id]
	return s.GroupWorld(mesh.Group).Mul(mesh.Local.Matrix())
}

// Walk visits every mesh depth-first from the root with its world matrix.
func (s *Scene) Walk(fn func(mesh *Mesh, world math.Mat4)) {
	s.walk(s.root, math.Identity(), fn)
}

func (s *Scene) walk(id GroupID, parent math.Mat4, fn func(*Mesh, math.Mat4)) {
	g := &s.Groups[id]
	world := parent.Mul(g.Local.Matrix())
	for _, mid := range g.Meshes {
		mesh := &s.Meshes[mid]
		fn(mesh, world.Mul(mesh.Local.Matrix()))
	}
	for _, child := range g.Children {
		s.walk(child, world, fn)
	}
}

// Validate checks arena references. Composers call it once after building.
func (s *Scene) Validate() error {
	for _, m := range s.Meshes {
		if int(m.Geometry) < 0 || int(m.Geometry) >= len(s.Geometries) {
			return fmt.Errorf("mesh %q: geometry %d out of range", m.Name, m.Geometry)
		}
		if int(m.Material) < 0 || int(m.Material) >= len(s.Materials) {
			return fmt.Errorf("mesh %q: material %d out of range", m.Name, m.Material)
		}
		if m.Component == "" {
			return fmt.Errorf("mesh %q: missing component tag", m.Name)
		}
	}
	if !s.hasHL {
		return fmt.Errorf("scene has no highlight material")
	}
	return nil
}
