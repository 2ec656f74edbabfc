package geometry

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/motorscope/pkg/math"
)

// Cylinder builds a capped cylinder around +Z centered on the origin.
func Cylinder(radius, height float32, segments int) (*Geometry, error) {
	if segments < 3 {
		return nil, fmt.Errorf("cylinder with %d segments: %w", segments, ErrDegenerate)
	}
	side, err := PartialCylinder(radius, height, 0, TwoPi, segments)
	if err != nil {
		return nil, err
	}
	b := &builder{vertices: side.Vertices, indices: side.Indices}

	half := height / 2
	for _, end := range [2]struct {
		z float32
		n float32
	}{{half, 1}, {-half, -1}} {
		normal := [3]float32{0, 0, end.n}
		center := b.vertex([3]float32{0, 0, end.z}, normal)
		first := uint32(len(b.vertices))
		for i := 0; i <= segments; i++ {
			a := TwoPi * float64(i) / float64(segments)
			b.vertex([3]float32{
				radius * float32(gomath.Cos(a)),
				radius * float32(gomath.Sin(a)),
				end.z,
			}, normal)
		}
		for i := range uint32(segments) {
			if end.n > 0 {
				b.triangle(center, first+i, first+i+1)
			} else {
				b.triangle(center, first+i+1, first+i)
			}
		}
	}
	return b.finish(), nil
}

// Torus builds a torus lying in the XY plane around +Z.
// arc limits the sweep around Z; pass TwoPi for a closed ring.
func Torus(radius, tube float32, radialSegments, tubularSegments int, arc float64) (*Geometry, error) {
	if radialSegments < 3 || tubularSegments < 1 {
		return nil, fmt.Errorf("torus with %dx%d segments: %w", radialSegments, tubularSegments, ErrDegenerate)
	}
	if arc <= 0 || arc > TwoPi {
		return nil, fmt.Errorf("torus sweep %g: %w", arc, ErrArc)
	}

	b := &builder{}
	for i := 0; i <= tubularSegments; i++ {
		u := arc * float64(i) / float64(tubularSegments)
		cu, su := gomath.Cos(u), gomath.Sin(u)
		for j := 0; j <= radialSegments; j++ {
			v := TwoPi * float64(j) / float64(radialSegments)
			cv, sv := gomath.Cos(v), gomath.Sin(v)
			ring := float64(radius) + float64(tube)*cv
			b.vertex(
				[3]float32{float32(ring * cu), float32(ring * su), float32(float64(tube) * sv)},
				[3]float32{float32(cv * cu), float32(cv * su), float32(sv)},
			)
		}
	}

	row := uint32(radialSegments + 1)
	for i := range uint32(tubularSegments) {
		for j := range uint32(radialSegments) {
			a := i*row + j
			b.quad(a, a+row, a+row+1, a+1)
		}
	}
	return b.finish(), nil
}

// Box builds an axis-aligned box centered on the origin.
func Box(width, height, depth float32) *Geometry {
	hx, hy, hz := width/2, height/2, depth/2
	x := math.V3(hx, 0, 0)
	y := math.V3(0, hy, 0)
	z := math.V3(0, 0, hz)

	// Each face: outward offset, then u and v with u x v along the normal
	faces := [6][3]math.Vec3{
		{x, y, z},
		{x.Scale(-1), z, y},
		{y, z, x},
		{y.Scale(-1), x, z},
		{z, x, y},
		{z.Scale(-1), y, x},
	}

	b := &builder{}
	for _, f := range faces {
		c, u, v := f[0], f[1], f[2]
		n := c.Normalize().Array()
		i0 := b.vertex(c.Sub(u).Sub(v).Array(), n)
		i1 := b.vertex(c.Add(u).Sub(v).Array(), n)
		i2 := b.vertex(c.Add(u).Add(v).Array(), n)
		i3 := b.vertex(c.Sub(u).Add(v).Array(), n)
		b.quad(i0, i1, i2, i3)
	}
	return b.finish()
}

// Sphere builds a UV sphere with its poles on Z.
func Sphere(radius float32, widthSegments, heightSegments int) (*Geometry, error) {
	if widthSegments < 3 || heightSegments < 2 {
		return nil, fmt.Errorf("sphere with %dx%d segments: %w", widthSegments, heightSegments, ErrDegenerate)
	}

	b := &builder{}
	for j := 0; j <= heightSegments; j++ {
		theta := gomath.Pi * float64(j) / float64(heightSegments)
		st, ct := gomath.Sin(theta), gomath.Cos(theta)
		for i := 0; i <= widthSegments; i++ {
			phi := TwoPi * float64(i) / float64(widthSegments)
			n := [3]float32{float32(st * gomath.Cos(phi)), float32(st * gomath.Sin(phi)), float32(ct)}
			b.vertex([3]float32{radius * n[0], radius * n[1], radius * n[2]}, n)
		}
	}

	row := uint32(widthSegments + 1)
	last := uint32(heightSegments - 1)
	for j := range uint32(heightSegments) {
		for i := range uint32(widthSegments) {
			a := j*row + i
			bb := a + 1
			d := a + row
			c := d + 1
			// Skip the zero-area triangle at each pole
			if j != 0 {
				b.triangle(a, c, bb)
			}
			if j != last {
				b.triangle(a, d, c)
			}
		}
	}
	return b.finish(), nil
}

// Transform returns a copy of g with positions transformed by m and normals
// by its normal matrix.
func Transform(g *Geometry, m math.Mat4) *Geometry {
	nm := m.NormalMatrix()
	b := &builder{
		vertices: make([]Vertex, 0, len(g.Vertices)),
		indices:  append([]uint32(nil), g.Indices...),
	}
	for _, v := range g.Vertices {
		n := v.Normal
		tn := math.V3(
			nm[0]*n[0]+nm[3]*n[1]+nm[6]*n[2],
			nm[1]*n[0]+nm[4]*n[1]+nm[7]*n[2],
			nm[2]*n[0]+nm[5]*n[1]+nm[8]*n[2],
		).Normalize()
		b.vertex(m.TransformPoint(v.Position), tn.Array())
	}
	return b.finish()
}
