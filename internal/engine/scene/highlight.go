package scene

import "github.com/Faultbox/motorscope/internal/motor/registry"

// SetHighlight assigns the highlight material to every mesh tagged id and
// restores the original material everywhere else. With ok false every mesh
// gets its original back. Repeating the call with the same arguments leaves
// the assignment unchanged.
func (s *Scene) SetHighlight(id registry.ComponentID, ok bool) {
	for i := range s.Meshes {
		mesh := &s.Meshes[i]
		if ok && s.hasHL && mesh.Component == id {
			mesh.Material = s.highlight
		} else {
			mesh.Material = s.original[i]
		}
	}
}

// Assignment snapshots the current mesh to material mapping.
func (s *Scene) Assignment() []MaterialID {
	out := make([]MaterialID, len(s.Meshes))
	for i, m := range s.Meshes {
		out[i] = m.Material
	}
	return out
}

// MeshesOf returns the meshes tagged with a component.
func (s *Scene) MeshesOf(id registry.ComponentID) []MeshID {
	var out []MeshID
	for _, m := range s.Meshes {
		if m.Component == id {
			out = append(out, m.ID)
		}
	}
	return out
}
