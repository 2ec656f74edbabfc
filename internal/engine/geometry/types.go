// Package geometry builds indexed triangle meshes for procedural primitives.
//
// All primitives with an axis (cylinders, toruses) are built around +Z.
package geometry

import "errors"

var (
	// ErrDegenerate is returned when a primitive has too few segments.
	ErrDegenerate = errors.New("geometry: segment count below minimum")
	// ErrArc is returned when an arc has a non-positive or full-turn span.
	ErrArc = errors.New("geometry: arc end must be greater than arc start")
)

// Vertex represents a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Geometry holds indexed triangle data ready for GPU upload.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of indexed triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// EmptyBounds returns inverted bounds that any point will expand.
func EmptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

// Extend grows b to contain p.
func (b *Bounds) Extend(p [3]float32) {
	for i := range 3 {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
}

// Union grows b to contain other.
func (b *Bounds) Union(other Bounds) {
	if !other.Valid() {
		return
	}
	b.Extend(other.Min)
	b.Extend(other.Max)
}

// Valid reports whether b contains at least one point.
func (b Bounds) Valid() bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1] && b.Min[2] <= b.Max[2]
}

// Center returns the midpoint of b.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// builder accumulates vertices and indices for one primitive.
type builder struct {
	vertices []Vertex
	indices  []uint32
}

func (b *builder) vertex(pos, normal [3]float32) uint32 {
	b.vertices = append(b.vertices, Vertex{Position: pos, Normal: normal})
	return uint32(len(b.vertices) - 1)
}

func (b *builder) triangle(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

// quad emits two counter-clockwise triangles for corners given in
// counter-clockwise order as seen from the front face.
func (b *builder) quad(i0, i1, i2, i3 uint32) {
	b.triangle(i0, i1, i2)
	b.triangle(i0, i2, i3)
}

func (b *builder) finish() *Geometry {
	bounds := EmptyBounds()
	for _, v := range b.vertices {
		bounds.Extend(v.Position)
	}
	return &Geometry{Vertices: b.vertices, Indices: b.indices, Bounds: bounds}
}
