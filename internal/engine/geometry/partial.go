package geometry

import (
	"fmt"
	gomath "math"
)

// TwoPi is a full turn in radians.
const TwoPi = 2 * gomath.Pi

// Arc is an angular range in radians, End > Start.
type Arc struct {
	Start, End float64
}

// Span returns End - Start.
func (a Arc) Span() float64 {
	return a.End - a.Start
}

// SolidArc returns the complement of the cut arc [cutStart, cutEnd).
// The cut is normalized so its start lies in [0, 2π); the returned arc runs
// from the cut's end to the cut's start one turn later, so its span is always
// 2π - (cutEnd - cutStart).
func SolidArc(cutStart, cutEnd float64) (Arc, error) {
	span := cutEnd - cutStart
	if span <= 0 || span >= TwoPi {
		return Arc{}, fmt.Errorf("cut [%g, %g): %w", cutStart, cutEnd, ErrArc)
	}
	start := gomath.Mod(cutStart, TwoPi)
	if start < 0 {
		start += TwoPi
	}
	return Arc{Start: start + span, End: start + TwoPi}, nil
}

// PartialCylinder builds an open cylindrical shell around +Z spanning
// [arcStart, arcEnd]. It emits segments+1 ring samples at z = -height/2 and
// again at z = +height/2, so the vertex count is 2*(segments+1) and the
// triangle count 2*segments. Normals are the outward radial unit vector.
// No caps are generated, neither at the z ends nor along the cut edges.
func PartialCylinder(radius, height float32, arcStart, arcEnd float64, segments int) (*Geometry, error) {
	if segments < 1 {
		return nil, fmt.Errorf("partial cylinder with %d segments: %w", segments, ErrDegenerate)
	}
	if arcEnd <= arcStart {
		return nil, fmt.Errorf("partial cylinder [%g, %g]: %w", arcStart, arcEnd, ErrArc)
	}

	b := &builder{
		vertices: make([]Vertex, 0, 2*(segments+1)),
		indices:  make([]uint32, 0, 6*segments),
	}
	half := height / 2
	step := (arcEnd - arcStart) / float64(segments)

	// Bottom ring occupies [0, segments], top ring [segments+1, 2*segments+1]
	for _, z := range [2]float32{-half, half} {
		for i := 0; i <= segments; i++ {
			a := arcStart + float64(i)*step
			c, s := float32(gomath.Cos(a)), float32(gomath.Sin(a))
			b.vertex([3]float32{radius * c, radius * s, z}, [3]float32{c, s, 0})
		}
	}

	top := uint32(segments + 1)
	for i := range uint32(segments) {
		b.quad(i, i+1, top+i+1, top+i)
	}
	return b.finish(), nil
}
