package renderer

import (
	"cmp"
	"slices"

	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/pkg/math"
)

// VertexStride is the number of floats per interleaved vertex.
const VertexStride = 6

// Item is one draw call.
type Item struct {
	Mesh     scene.MeshID
	Geometry scene.GeometryID
	Material scene.MaterialID
	World    math.Mat4
	Depth    float32 // squared distance from the eye to the mesh origin
}

// Plan lists the draw calls for s: opaque meshes in scene order, then
// translucent meshes back to front as seen from eye.
func Plan(s *scene.Scene, eye math.Vec3) []Item {
	var opaque, translucent []Item
	s.Walk(func(m *scene.Mesh, world math.Mat4) {
		p := world.TransformVec3(math.Vec3{})
		d := p.Sub(eye)
		it := Item{
			Mesh:     m.ID,
			Geometry: m.Geometry,
			Material: m.Material,
			World:    world,
			Depth:    d.Dot(d),
		}
		if s.Materials[m.Material].Opacity < 1 {
			translucent = append(translucent, it)
		} else {
			opaque = append(opaque, it)
		}
	})
	slices.SortStableFunc(translucent, func(a, b Item) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
	return append(opaque, translucent...)
}

// Interleave packs geo as position+normal floats.
func Interleave(geo *geometry.Geometry) []float32 {
	out := make([]float32, 0, len(geo.Vertices)*VertexStride)
	for _, v := range geo.Vertices {
		out = append(out, v.Position[0], v.Position[1], v.Position[2], v.Normal[0], v.Normal[1], v.Normal[2])
	}
	return out
}
