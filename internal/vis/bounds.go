package vis

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/sceneplot/internal/figure"
)

// AxisRange is the closed interval [Min, Max] shown along one axis.
type AxisRange struct {
	Min, Max float64
}

// Contains reports whether o lies within r.
func (r AxisRange) Contains(o AxisRange) bool {
	return r.Min <= o.Min && o.Max <= r.Max
}

// Bounds holds a subplot's x, y and z ranges. A nil axis has no trace yet.
type Bounds struct {
	X, Y, Z *AxisRange
}

// Cube returns the bounds of the cube of half-size halfExtent around center.
func Cube(center r3.Vec, halfExtent float64) Bounds {
	return Widen(Bounds{}, center, halfExtent)
}

// Widen returns b grown to enclose the cube of half-size halfExtent centred
// at center. Each axis is widened independently and never shrinks; an unset
// axis takes the cube's range.
func Widen(b Bounds, center r3.Vec, halfExtent float64) Bounds {
	return Bounds{
		X: widenAxis(b.X, center.X, halfExtent),
		Y: widenAxis(b.Y, center.Y, halfExtent),
		Z: widenAxis(b.Z, center.Z, halfExtent),
	}
}

func widenAxis(prior *AxisRange, center, halfExtent float64) *AxisRange {
	r := AxisRange{Min: center - halfExtent, Max: center + halfExtent}
	if prior != nil {
		r.Min = math.Min(prior.Min, r.Min)
		r.Max = math.Max(prior.Max, r.Max)
	}
	return &r
}

// Contains reports whether every axis of o lies within b. An unset axis of o
// is always contained; an unset axis of b contains nothing else.
func (b Bounds) Contains(o Bounds) bool {
	within := func(outer, inner *AxisRange) bool {
		if inner == nil {
			return true
		}
		return outer != nil && outer.Contains(*inner)
	}
	return within(b.X, o.X) && within(b.Y, o.Y) && within(b.Z, o.Z)
}

// applyTo writes the set ranges onto the scene's axes.
func (b Bounds) applyTo(s *figure.Scene) {
	for _, a := range []struct {
		r  *AxisRange
		ax *figure.Axis
	}{{b.X, &s.XAxis}, {b.Y, &s.YAxis}, {b.Z, &s.ZAxis}} {
		if a.r != nil {
			a.ax.Range = []float64{a.r.Min, a.r.Max}
		}
	}
}

// traceExtent returns the mean point of the coordinates and the largest
// max-min spread over the three axes. ok is false when there are no points.
func traceExtent(xs, ys, zs []float64) (center r3.Vec, spread float64, ok bool) {
	if len(xs) == 0 {
		return r3.Vec{}, 0, false
	}
	center = r3.Vec{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil), Z: stat.Mean(zs, nil)}
	box := r3.Box{
		Min: r3.Vec{X: floats.Min(xs), Y: floats.Min(ys), Z: floats.Min(zs)},
		Max: r3.Vec{X: floats.Max(xs), Y: floats.Max(ys), Z: floats.Max(zs)},
	}
	size := box.Size()
	return center, math.Max(size.X, math.Max(size.Y, size.Z)), true
}

// columns splits points into per-axis coordinate slices.
func columns(pts []r3.Vec) (xs, ys, zs []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	zs = make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}
