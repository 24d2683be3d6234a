package geom

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// PointCloud is a batch of point sets. Each point may carry a feature vector;
// every point in the batch has the same number of feature channels.
type PointCloud struct {
	points   [][]r3.Vec
	features [][][]float64 // nil when the batch has no features
	channels int
}

// NewPointclouds builds a point cloud batch. features may be nil; otherwise
// it must hold one equally sized feature vector per point.
func NewPointclouds(points [][]r3.Vec, features [][][]float64) (*PointCloud, error) {
	pc := &PointCloud{points: points}
	if features == nil {
		return pc, nil
	}
	if len(features) != len(points) {
		return nil, fmt.Errorf("point cloud batch has %d point lists but %d feature lists", len(points), len(features))
	}
	channels := -1
	for i := range points {
		if len(features[i]) != len(points[i]) {
			return nil, fmt.Errorf("point cloud %d: %d feature vectors for %d points", i, len(features[i]), len(points[i]))
		}
		for j, f := range features[i] {
			if channels < 0 {
				channels = len(f)
			}
			if len(f) != channels {
				return nil, fmt.Errorf("point cloud %d point %d: %d feature channels, want %d", i, j, len(f), channels)
			}
		}
	}
	if channels < 0 {
		channels = 0
	}
	pc.features = features
	pc.channels = channels
	return pc, nil
}

// MustNewPointclouds is NewPointclouds that panics on error.
func MustNewPointclouds(points [][]r3.Vec, features [][][]float64) *PointCloud {
	pc, err := NewPointclouds(points, features)
	if err != nil {
		panic(err)
	}
	return pc
}

// Len returns the batch size.
func (pc *PointCloud) Len() int {
	if pc == nil {
		return 0
	}
	return len(pc.points)
}

// At returns element i as a batch of one. The arrays are shared, not copied.
func (pc *PointCloud) At(i int) *PointCloud {
	if i < 0 || i >= pc.Len() {
		panic(fmt.Sprintf("geom: point cloud index %d out of range [0,%d)", i, pc.Len()))
	}
	out := &PointCloud{points: [][]r3.Vec{pc.points[i]}, channels: pc.channels}
	if pc.features != nil {
		out.features = [][][]float64{pc.features[i]}
	}
	return out
}

// NumPoints returns the total point count across the batch.
func (pc *PointCloud) NumPoints() int {
	n := 0
	for _, p := range pc.points {
		n += len(p)
	}
	return n
}

// NumFeatures returns the number of feature channels, 0 when there are none.
func (pc *PointCloud) NumFeatures() int {
	if pc.features == nil {
		return 0
	}
	return pc.channels
}

// PointsPacked returns a fresh copy of all points, concatenated in batch order.
func (pc *PointCloud) PointsPacked() []r3.Vec {
	return packVecs(pc.points, pc.NumPoints())
}

// FeaturesPacked returns copies of the feature vectors aligned with
// PointsPacked, or nil if the batch has none.
func (pc *PointCloud) FeaturesPacked() [][]float64 {
	if pc.features == nil {
		return nil
	}
	out := make([][]float64, 0, pc.NumPoints())
	for _, feats := range pc.features {
		for _, f := range feats {
			out = append(out, append([]float64(nil), f...))
		}
	}
	return out
}

// String summarises the batch for error messages.
func (pc *PointCloud) String() string {
	if pc == nil {
		return "PointCloud(nil)"
	}
	return fmt.Sprintf("PointCloud(batch=%d, points=%d, features=%d)", pc.Len(), pc.NumPoints(), pc.NumFeatures())
}
