package debug

import "github.com/Faultbox/motorscope/internal/engine/scene"

// GridLines returns the ground grid as line-list vertices on the XZ plane,
// centered on the origin at height g.Y.
func GridLines(g scene.Grid) []float32 {
	if g.Divisions <= 0 || g.Size <= 0 {
		return nil
	}
	half := g.Size / 2
	step := g.Size / float32(g.Divisions)

	vertices := make([]float32, 0, (g.Divisions+1)*12)
	for i := 0; i <= g.Divisions; i++ {
		p := -half + float32(i)*step
		vertices = append(vertices,
			p, g.Y, -half, p, g.Y, half,
			-half, g.Y, p, half, g.Y, p,
		)
	}
	return vertices
}
