package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Face is a triangle given as three indices into its mesh's vertex list.
type Face [3]int

// Mesh is a batch of triangle meshes. Element i has Verts[i] and Faces[i],
// and optionally one RGB colour per vertex in [0,1].
type Mesh struct {
	verts  [][]r3.Vec
	faces  [][]Face
	colors [][]r3.Vec // nil when the batch has no vertex colours
}

// NewMeshes builds a mesh batch. colors may be nil; otherwise it must hold
// one colour per vertex for every element.
func NewMeshes(verts [][]r3.Vec, faces [][]Face, colors [][]r3.Vec) (*Mesh, error) {
	if len(verts) != len(faces) {
		return nil, fmt.Errorf("mesh batch has %d vertex lists but %d face lists", len(verts), len(faces))
	}
	if colors != nil && len(colors) != len(verts) {
		return nil, fmt.Errorf("mesh batch has %d vertex lists but %d colour lists", len(verts), len(colors))
	}
	for i := range verts {
		n := len(verts[i])
		for j, f := range faces[i] {
			for _, idx := range f {
				if idx < 0 || idx >= n {
					return nil, fmt.Errorf("mesh %d face %d: vertex index %d out of range [0,%d)", i, j, idx, n)
				}
			}
		}
		if colors != nil && len(colors[i]) != n {
			return nil, fmt.Errorf("mesh %d: %d colours for %d vertices", i, len(colors[i]), n)
		}
	}
	return &Mesh{verts: verts, faces: faces, colors: colors}, nil
}

// MustNewMeshes is NewMeshes that panics on error, for fixtures and demos.
func MustNewMeshes(verts [][]r3.Vec, faces [][]Face, colors [][]r3.Vec) *Mesh {
	m, err := NewMeshes(verts, faces, colors)
	if err != nil {
		panic(err)
	}
	return m
}

// Len returns the batch size.
func (m *Mesh) Len() int {
	if m == nil {
		return 0
	}
	return len(m.verts)
}

// At returns element i as a batch of one. The arrays are shared, not copied.
func (m *Mesh) At(i int) *Mesh {
	if i < 0 || i >= m.Len() {
		panic(fmt.Sprintf("geom: mesh index %d out of range [0,%d)", i, m.Len()))
	}
	out := &Mesh{
		verts: [][]r3.Vec{m.verts[i]},
		faces: [][]Face{m.faces[i]},
	}
	if m.colors != nil {
		out.colors = [][]r3.Vec{m.colors[i]}
	}
	return out
}

// HasVertexColors reports whether the batch carries per-vertex colours.
func (m *Mesh) HasVertexColors() bool {
	return m != nil && m.colors != nil
}

// NumVerts returns the total vertex count across the batch.
func (m *Mesh) NumVerts() int {
	n := 0
	for _, v := range m.verts {
		n += len(v)
	}
	return n
}

// VertsPacked returns a fresh copy of all vertices, concatenated in batch order.
func (m *Mesh) VertsPacked() []r3.Vec {
	return packVecs(m.verts, m.NumVerts())
}

// FacesPacked returns all faces with indices offset into VertsPacked.
func (m *Mesh) FacesPacked() []Face {
	n := 0
	for _, f := range m.faces {
		n += len(f)
	}
	out := make([]Face, 0, n)
	offset := 0
	for i, faces := range m.faces {
		for _, f := range faces {
			out = append(out, Face{f[0] + offset, f[1] + offset, f[2] + offset})
		}
		offset += len(m.verts[i])
	}
	return out
}

// VertsFeaturesPacked returns a copy of the per-vertex colours aligned with
// VertsPacked, or nil if the batch has none.
func (m *Mesh) VertsFeaturesPacked() []r3.Vec {
	if m.colors == nil {
		return nil
	}
	return packVecs(m.colors, m.NumVerts())
}

// JoinMeshesAsScene merges every element of the batch into a single mesh.
func JoinMeshesAsScene(m *Mesh) *Mesh {
	out := &Mesh{
		verts: [][]r3.Vec{m.VertsPacked()},
		faces: [][]Face{m.FacesPacked()},
	}
	if m.colors != nil {
		out.colors = [][]r3.Vec{m.VertsFeaturesPacked()}
	}
	return out
}

// String summarises the batch for error messages.
func (m *Mesh) String() string {
	if m == nil {
		return "Mesh(nil)"
	}
	return fmt.Sprintf("Mesh(batch=%d, verts=%d)", m.Len(), m.NumVerts())
}

func packVecs(batch [][]r3.Vec, n int) []r3.Vec {
	out := make([]r3.Vec, 0, n)
	for _, v := range batch {
		out = append(out, v...)
	}
	return out
}
