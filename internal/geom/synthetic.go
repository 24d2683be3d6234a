package geom

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// SyntheticGenerator produces demo meshes and point clouds.
type SyntheticGenerator struct {
	// Configuration
	SphereStacks int     // latitude bands per sphere
	SphereSlices int     // longitude segments per sphere
	DiscRadius   float64 // metres, radius of generated point discs
	DiscHeight   float64 // metres, max height jitter of disc points

	rng *rand.Rand
}

// NewSyntheticGenerator creates a generator seeded with seed.
func NewSyntheticGenerator(seed uint64) *SyntheticGenerator {
	return &SyntheticGenerator{
		SphereStacks: 12,
		SphereSlices: 24,
		DiscRadius:   1.0,
		DiscHeight:   0.2,
		rng:          rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Sphere returns the vertices, faces and per-vertex colours of a UV sphere.
// Colours map the outward normal into [0,1].
func (g *SyntheticGenerator) Sphere(center r3.Vec, radius float64) ([]r3.Vec, []Face, []r3.Vec) {
	stacks, slices := g.SphereStacks, g.SphereSlices
	verts := make([]r3.Vec, 0, (stacks+1)*slices)
	colors := make([]r3.Vec, 0, (stacks+1)*slices)
	for i := 0; i <= stacks; i++ {
		theta := math.Pi * float64(i) / float64(stacks)
		for j := 0; j < slices; j++ {
			phi := 2 * math.Pi * float64(j) / float64(slices)
			n := r3.Vec{
				X: math.Sin(theta) * math.Cos(phi),
				Y: math.Cos(theta),
				Z: math.Sin(theta) * math.Sin(phi),
			}
			verts = append(verts, r3.Add(center, r3.Scale(radius, n)))
			colors = append(colors, r3.Scale(0.5, r3.Add(n, r3.Vec{X: 1, Y: 1, Z: 1})))
		}
	}

	faces := make([]Face, 0, 2*stacks*slices)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*slices + j
			b := i*slices + (j+1)%slices
			c := (i+1)*slices + j
			d := (i+1)*slices + (j+1)%slices
			faces = append(faces, Face{a, c, b}, Face{b, c, d})
		}
	}
	return verts, faces, colors
}

// Box returns the 8 vertices and 12 faces of an axis-aligned box.
func (g *SyntheticGenerator) Box(box r3.Box) ([]r3.Vec, []Face) {
	verts := box.Vertices()
	faces := []Face{
		{0, 1, 2}, {0, 2, 3}, // z min
		{4, 6, 5}, {4, 7, 6}, // z max
		{0, 5, 1}, {0, 4, 5},
		{1, 6, 2}, {1, 5, 6},
		{2, 7, 3}, {2, 6, 7},
		{3, 4, 0}, {3, 7, 4},
	}
	return verts, faces
}

// SphereBatch returns n coloured spheres, each in its own batch element,
// spread along the X axis with random radii.
func (g *SyntheticGenerator) SphereBatch(n int) *Mesh {
	verts := make([][]r3.Vec, n)
	faces := make([][]Face, n)
	colors := make([][]r3.Vec, n)
	for i := 0; i < n; i++ {
		radius := 0.5 + g.rng.Float64()
		verts[i], faces[i], colors[i] = g.Sphere(r3.Vec{X: 3 * float64(i)}, radius)
	}
	return MustNewMeshes(verts, faces, colors)
}

// Disc returns count points uniformly spread over a disc in the XZ plane,
// with small height jitter along Y. channels selects the feature layout:
// 3 for RGB, 4 for RGBA, anything else for no features.
func (g *SyntheticGenerator) Disc(center r3.Vec, count, channels int) ([]r3.Vec, [][]float64) {
	points := make([]r3.Vec, count)
	var features [][]float64
	if channels == 3 || channels == 4 {
		features = make([][]float64, count)
	}
	for i := 0; i < count; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		r := math.Sqrt(g.rng.Float64()) * g.DiscRadius
		points[i] = r3.Add(center, r3.Vec{
			X: r * math.Cos(angle),
			Y: g.rng.Float64() * g.DiscHeight,
			Z: r * math.Sin(angle),
		})
		if features != nil {
			f := []float64{r / g.DiscRadius, angle / (2 * math.Pi), g.rng.Float64()}
			if channels == 4 {
				f = append(f, 0.5+0.5*g.rng.Float64())
			}
			features[i] = f
		}
	}
	return points, features
}

// DiscBatch returns n point discs of count points each.
func (g *SyntheticGenerator) DiscBatch(n, count, channels int) *PointCloud {
	points := make([][]r3.Vec, n)
	var features [][][]float64
	if channels == 3 || channels == 4 {
		features = make([][][]float64, n)
	}
	for i := 0; i < n; i++ {
		pts, feats := g.Disc(r3.Vec{X: 3 * float64(i), Y: -1.5}, count, channels)
		points[i] = pts
		if features != nil {
			features[i] = feats
		}
	}
	return MustNewPointclouds(points, features)
}
