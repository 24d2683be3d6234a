package vis

import (
	"fmt"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/geom"
)

type pointCloudTrace struct {
	*geom.PointCloud
}

func (p pointCloudTrace) at(i int) Structure { return p.PointCloud.At(i) }

// addTo draws the batch as one scatter3d trace of markers. Batches holding
// more than PointcloudMaxPoints per element are sub-sampled uniformly without
// replacement.
func (p pointCloudTrace) addTo(b *sceneBuilder, name string, subplot int) error {
	pts := p.PointsPacked()
	feats := p.FeaturesPacked()

	if k := sampleSize(len(pts), p.Len(), b.opts.PointcloudMaxPoints); k < len(pts) {
		idx := make([]int, k)
		sampleuv.WithoutReplacement(idx, len(pts), b.opts.Rand)
		pts = gather(pts, idx)
		if feats != nil {
			feats = gather(feats, idx)
		}
	}

	xs, ys, zs := columns(pts)
	trace := &figure.Scatter3D{
		Name: name,
		Mode: "markers",
		X:    xs,
		Y:    ys,
		Z:    zs,
		Marker: figure.Marker{
			Color: pointColors(feats, p.NumFeatures()),
			Size:  b.opts.PointcloudMarkerSize,
		},
	}
	if err := b.addTrace(trace, subplot); err != nil {
		return err
	}
	return b.widen(subplot, xs, ys, zs)
}

// pointColors formats per-point colours. Four channels give
// "rgb(r, g, b, a)" with a left unscaled, three give "rgb(r, g, b)". Any other
// channel count leaves the marker colour unset.
func pointColors(feats [][]float64, channels int) []string {
	if channels != 3 && channels != 4 {
		return nil
	}
	out := make([]string, len(feats))
	for i, f := range feats {
		r := int(255 * clamp01(f[0]))
		g := int(255 * clamp01(f[1]))
		b := int(255 * clamp01(f[2]))
		if channels == 4 {
			out[i] = fmt.Sprintf("rgb(%d, %d, %d, %f)", r, g, b, f[3])
		} else {
			out[i] = fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
		}
	}
	return out
}

func gather[T any](s []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = s[j]
	}
	return out
}

// sampleSize is the number of points drawn for a batch of n points over
// elements batch elements.
func sampleSize(n, elements, maxPoints int) int {
	return min(n, maxPoints*elements)
}
