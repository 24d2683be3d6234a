package vis

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/geom"
)

type meshTrace struct {
	*geom.Mesh
}

func (m meshTrace) at(i int) Structure { return m.Mesh.At(i) }

// addTo joins the batch into one surface and draws it as a mesh3d trace.
// Vertex colours, when present, are clamped to [0,1] and scaled to [0,255].
func (m meshTrace) addTo(b *sceneBuilder, name string, subplot int) error {
	mesh := geom.JoinMeshesAsScene(m.Mesh)
	verts := mesh.VertsPacked()
	faces := mesh.FacesPacked()

	var colors []figure.RGB
	if mesh.HasVertexColors() {
		feats := mesh.VertsFeaturesPacked()
		colors = make([]figure.RGB, len(feats))
		for i, c := range feats {
			colors[i] = figure.RGB{255 * clamp01(c.X), 255 * clamp01(c.Y), 255 * clamp01(c.Z)}
		}
	}

	relocateUnusedVerts(verts, faces)

	xs, ys, zs := columns(verts)
	is := make([]int, len(faces))
	js := make([]int, len(faces))
	ks := make([]int, len(faces))
	for n, f := range faces {
		is[n], js[n], ks[n] = f[0], f[1], f[2]
	}

	lighting := b.opts.Lighting
	trace := &figure.Mesh3D{
		Name:        name,
		X:           xs,
		Y:           ys,
		Z:           zs,
		I:           is,
		J:           js,
		K:           ks,
		VertexColor: colors,
		Lighting:    &lighting,
	}
	if err := b.addTrace(trace, subplot); err != nil {
		return err
	}
	return b.widen(subplot, xs, ys, zs)
}

// relocateUnusedVerts moves every vertex no face references onto the mean of
// the referenced vertices, so it renders inside the surface. A mesh without
// faces is left as is.
func relocateUnusedVerts(verts []r3.Vec, faces []geom.Face) {
	if len(faces) == 0 {
		return
	}
	used := make([]bool, len(verts))
	for _, f := range faces {
		for _, idx := range f {
			used[idx] = true
		}
	}

	var sum r3.Vec
	n := 0
	for i, v := range verts {
		if used[i] {
			sum = r3.Add(sum, v)
			n++
		}
	}
	center := r3.Scale(1/float64(n), sum)
	for i := range verts {
		if !used[i] {
			verts[i] = center
		}
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
