package vis

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/geom"
)

// Structure is a batched *geom.Mesh or *geom.PointCloud. Other
// implementations are rejected by PlotScene with ErrUnsupportedStructure.
type Structure interface {
	Len() int
}

// TraceDict maps trace names to structures, in display order.
type TraceDict = ordmap.Map[string, Structure]

// SceneDict maps subplot titles to their traces, in display order.
type SceneDict = ordmap.Map[string, *TraceDict]

// NewSceneDict returns an empty SceneDict.
func NewSceneDict() *SceneDict { return ordmap.New[string, *TraceDict]() }

// NewTraceDict returns an empty TraceDict.
func NewTraceDict() *TraceDict { return ordmap.New[string, Structure]() }

// traceAdapter draws one kind of structure. meshTrace and pointCloudTrace are
// the only implementations; adapt is the single place that picks one.
type traceAdapter interface {
	Structure
	// at returns batch element i as a structure of its own.
	at(i int) Structure
	// addTo draws the whole batch as one trace in the given subplot.
	addTo(b *sceneBuilder, name string, subplot int) error
}

func adapt(s Structure) (traceAdapter, error) {
	switch v := s.(type) {
	case *geom.Mesh:
		if v != nil {
			return meshTrace{v}, nil
		}
	case *geom.PointCloud:
		if v != nil {
			return pointCloudTrace{v}, nil
		}
	}
	return nil, fmt.Errorf("%w: %T %v", ErrUnsupportedStructure, s, s)
}

// sceneBuilder is the figure under construction and its per-subplot bounds.
type sceneBuilder struct {
	fig    *figure.Figure
	opts   Options
	bounds map[int]Bounds
}

func (b *sceneBuilder) addTrace(t figure.Trace, subplot int) error {
	row, col := gridCell(subplot, b.opts.NCols)
	return b.fig.AddTrace(t, row, col)
}

// widen grows the subplot's bounds to fit a trace with the given coordinates.
func (b *sceneBuilder) widen(subplot int, xs, ys, zs []float64) error {
	center, spread, ok := traceExtent(xs, ys, zs)
	if !ok {
		return nil
	}
	scene, err := b.fig.Scene(subplot)
	if err != nil {
		return err
	}
	bounds := Widen(b.bounds[subplot], center, spread)
	b.bounds[subplot] = bounds
	bounds.applyTo(scene)
	return nil
}

// style applies the axis settings, cube aspect and y-up camera to a subplot.
func (b *sceneBuilder) style(subplot int, x, y, z AxisArgs) error {
	scene, err := b.fig.Scene(subplot)
	if err != nil {
		return err
	}
	x.apply(&scene.XAxis)
	y.apply(&scene.YAxis)
	z.apply(&scene.ZAxis)
	scene.AspectMode = "cube"
	scene.Camera = &figure.Camera{Up: figure.Vec3{X: 0, Y: 1, Z: 0}}
	return nil
}

// PlotScene draws every structure of scenes into a grid of titled subplots,
// opts.NCols per row. Each trace widens its subplot's cubic axis ranges.
// Unsupported structures and bad options are rejected before any subplot is
// built; a subplot that falls outside a truncated grid fails the call.
func PlotScene(scenes *SceneDict, opts Options) (*figure.Figure, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if scenes == nil {
		scenes = NewSceneDict()
	}

	type plannedTrace struct {
		name    string
		adapter traceAdapter
	}
	plan := make([][]plannedTrace, scenes.Len())
	for i := 0; i < scenes.Len(); i++ {
		traces := scenes.ValueByIndex(i)
		for j := 0; j < traces.Len(); j++ {
			name := traces.KeyByIndex(j)
			a, err := adapt(traces.ValueByIndex(j))
			if err != nil {
				return nil, fmt.Errorf("subplot %q trace %q: %w", scenes.KeyByIndex(i), name, err)
			}
			plan[i] = append(plan[i], plannedTrace{name: name, adapter: a})
		}
	}

	fig, err := BuildGrid(scenes.Len(), opts.NCols, scenes.Keys())
	if err != nil {
		return nil, err
	}
	b := &sceneBuilder{fig: fig, opts: opts, bounds: make(map[int]Bounds)}

	x := opts.AxisArgs.Merge(opts.XAxis)
	y := opts.AxisArgs.Merge(opts.YAxis)
	z := opts.AxisArgs.Merge(opts.ZAxis)

	for i, traces := range plan {
		for _, t := range traces {
			if err := t.adapter.addTo(b, t.name, i); err != nil {
				return nil, fmt.Errorf("subplot %q trace %q: %w", scenes.KeyByIndex(i), t.name, err)
			}
		}
		if err := b.style(i, x, y, z); err != nil {
			return nil, fmt.Errorf("subplot %q: %w", scenes.KeyByIndex(i), err)
		}
	}
	return fig, nil
}
