// Package debug provides line overlays and screenshots for the viewer.
package debug

import "github.com/Faultbox/motorscope/internal/engine/geometry"

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// DefaultBBoxPadding is the default padding for selection boxes.
const DefaultBBoxPadding = 0.04

// BoxLines returns the 12 edges of b grown by padding as line-list vertices,
// three floats per vertex. An invalid box yields nil.
func BoxLines(b geometry.Bounds, padding float32) []float32 {
	if !b.Valid() {
		return nil
	}
	x0, y0, z0 := b.Min[0]-padding, b.Min[1]-padding, b.Min[2]-padding
	x1, y1, z1 := b.Max[0]+padding, b.Max[1]+padding, b.Max[2]+padding

	return []float32{
		// Bottom
		x0, y0, z0, x1, y0, z0,
		x1, y0, z0, x1, y0, z1,
		x1, y0, z1, x0, y0, z1,
		x0, y0, z1, x0, y0, z0,
		// Top
		x0, y1, z0, x1, y1, z0,
		x1, y1, z0, x1, y1, z1,
		x1, y1, z1, x0, y1, z1,
		x0, y1, z1, x0, y1, z0,
		// Verticals
		x0, y0, z0, x0, y1, z0,
		x1, y0, z0, x1, y1, z0,
		x1, y0, z1, x1, y1, z1,
		x0, y0, z1, x0, y1, z1,
	}
}
