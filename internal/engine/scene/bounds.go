package scene

import (
	"github.com/Faultbox/motorscope/internal/engine/geometry"
	"github.com/Faultbox/motorscope/internal/engine/picking"
	"github.com/Faultbox/motorscope/internal/motor/registry"
	"github.com/Faultbox/motorscope/pkg/math"
)

// transformBounds returns the world AABB of local bounds under m.
func transformBounds(local geometry.Bounds, m math.Mat4) geometry.Bounds {
	out := geometry.EmptyBounds()
	for i := range 8 {
		corner := [3]float32{local.Min[0], local.Min[1], local.Min[2]}
		if i&1 != 0 {
			corner[0] = local.Max[0]
		}
		if i&2 != 0 {
			corner[1] = local.Max[1]
		}
		if i&4 != 0 {
			corner[2] = local.Max[2]
		}
		out.Extend(m.TransformPoint(corner))
	}
	return out
}

// MeshBounds returns the world-space AABB of a mesh.
func (s *Scene) MeshBounds(id MeshID) geometry.Bounds {
	mesh := &s.Meshes[id]
	return transformBounds(s.Geometries[mesh.Geometry].Bounds, s.MeshWorld(id))
}

// ComponentBounds returns the union of world AABBs of every mesh tagged id.
func (s *Scene) ComponentBounds(id registry.ComponentID) (geometry.Bounds, bool) {
	b := geometry.EmptyBounds()
	s.Walk(func(mesh *Mesh, world math.Mat4) {
		if mesh.Component == id {
			b.Union(transformBounds(s.Geometries[mesh.Geometry].Bounds, world))
		}
	})
	return b, b.Valid()
}

// Bounds returns the world AABB of the whole model.
func (s *Scene) Bounds() geometry.Bounds {
	b := geometry.EmptyBounds()
	s.Walk(func(mesh *Mesh, world math.Mat4) {
		b.Union(transformBounds(s.Geometries[mesh.Geometry].Bounds, world))
	})
	return b
}

// Pick returns the component of the nearest mesh surface hit by the ray.
// Mesh AABBs reject misses before any triangle is tested.
func (s *Scene) Pick(ray picking.Ray) (registry.ComponentID, bool) {
	var (
		best  registry.ComponentID
		dist  float32
		found bool
	)
	s.Walk(func(mesh *Mesh, world math.Mat4) {
		geo := s.Geometries[mesh.Geometry]
		if _, hit := ray.IntersectBounds(transformBounds(geo.Bounds, world)); !hit {
			return
		}
		if t, ok := nearestTriangle(ray, geo, world); ok && (!found || t < dist) {
			best, dist, found = mesh.Component, t, true
		}
	})
	return best, found
}

func nearestTriangle(ray picking.Ray, geo *geometry.Geometry, world math.Mat4) (float32, bool) {
	var (
		nearest float32
		found   bool
	)
	point := func(i uint32) math.Vec3 {
		p := world.TransformPoint(geo.Vertices[i].Position)
		return math.V3(p[0], p[1], p[2])
	}
	for i := 0; i+2 < len(geo.Indices); i += 3 {
		t, hit := ray.IntersectTriangle(point(geo.Indices[i]), point(geo.Indices[i+1]), point(geo.Indices[i+2]))
		if hit && (!found || t < nearest) {
			nearest, found = t, true
		}
	}
	return nearest, found
}
