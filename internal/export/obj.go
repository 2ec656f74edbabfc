// Package export writes the motor model, registry and telemetry to files and
// terminals.
package export

import (
	"bufio"
	"fmt"
	"io"
	gomath "math"

	"github.com/Faultbox/motorscope/internal/engine/scene"
	"github.com/Faultbox/motorscope/internal/motor/registry"
)

// OBJStats counts what WriteOBJ emitted.
type OBJStats struct {
	Objects   int
	Meshes    int
	Vertices  int
	Triangles int
}

// WriteOBJ writes s as Wavefront OBJ in world space at its current pose. Each
// component becomes one "o" object holding a "g" group per mesh. mtllib names
// the companion file written by WriteMTL; empty skips the reference.
func WriteOBJ(w io.Writer, s *scene.Scene, mtllib string) (OBJStats, error) {
	var st OBJStats
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# motorscope cutaway motor")
	if mtllib != "" {
		fmt.Fprintf(bw, "mtllib %s\n", mtllib)
	}

	byComponent := make(map[registry.ComponentID][]scene.MeshID)
	for _, m := range s.Meshes {
		byComponent[m.Component] = append(byComponent[m.Component], m.ID)
	}

	base := 1
	for _, id := range registry.IDs() {
		meshes := byComponent[id]
		if len(meshes) == 0 {
			continue
		}
		st.Objects++
		fmt.Fprintf(bw, "o %s\n", id)

		for _, mid := range meshes {
			mesh := &s.Meshes[mid]
			geo := s.Geometries[mesh.Geometry]
			world := s.MeshWorld(mid)
			nm := world.NormalMatrix()

			fmt.Fprintf(bw, "g %s\n", mesh.Name)
			fmt.Fprintf(bw, "usemtl %s\n", s.Materials[s.OriginalMaterial(mid)].Name)
			for _, v := range geo.Vertices {
				p := world.TransformPoint(v.Position)
				fmt.Fprintf(bw, "v %.5f %.5f %.5f\n", p[0], p[1], p[2])
			}
			for _, v := range geo.Vertices {
				n := transformNormal(nm, v.Normal)
				fmt.Fprintf(bw, "vn %.4f %.4f %.4f\n", n[0], n[1], n[2])
			}
			for i := 0; i+2 < len(geo.Indices); i += 3 {
				a := base + int(geo.Indices[i])
				b := base + int(geo.Indices[i+1])
				c := base + int(geo.Indices[i+2])
				fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a, a, b, b, c, c)
			}

			base += len(geo.Vertices)
			st.Meshes++
			st.Vertices += len(geo.Vertices)
			st.Triangles += geo.TriangleCount()
		}
	}

	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("write obj: %w", err)
	}
	return st, nil
}

// WriteMTL writes one material per scene material, skipping the highlight.
func WriteMTL(w io.Writer, s *scene.Scene) error {
	bw := bufio.NewWriter(w)
	for _, m := range s.Materials {
		if m.Kind == scene.KindHighlight {
			continue
		}
		fmt.Fprintf(bw, "newmtl %s\n", m.Name)
		fmt.Fprintf(bw, "Kd %.4f %.4f %.4f\n", m.Color[0], m.Color[1], m.Color[2])
		fmt.Fprintf(bw, "Ks %.4f %.4f %.4f\n", m.Specular, m.Specular, m.Specular)
		fmt.Fprintf(bw, "Ns %.1f\n", m.Shininess)
		fmt.Fprintf(bw, "d %.3f\n\n", m.Opacity)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write mtl: %w", err)
	}
	return nil
}

func transformNormal(m [9]float32, n [3]float32) [3]float32 {
	x := m[0]*n[0] + m[3]*n[1] + m[6]*n[2]
	y := m[1]*n[0] + m[4]*n[1] + m[7]*n[2]
	z := m[2]*n[0] + m[5]*n[1] + m[8]*n[2]
	l := float32(gomath.Sqrt(float64(x*x + y*y + z*z)))
	if l == 0 {
		return n
	}
	return [3]float32{x / l, y / l, z / l}
}
