package vis

import (
	"fmt"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/monitoring"
)

// PlotBatchIndividually draws each batch index of structs in its own subplot.
// Every structure must have the batch size of the largest one, or size 1.
// Subplot n holds element n of each structure, named "trace{n+1}-{i+1}" for
// the structure at position i. A size-1 structure is repeated in every
// subplot when opts.ExtendStruct is set and drawn only in the first one
// otherwise.
//
// An empty structs logs a warning and returns ErrNoStructures.
func PlotBatchIndividually(structs []Structure, opts BatchOptions) (*figure.Figure, error) {
	if len(structs) == 0 {
		monitoring.Warnf("empty batched_structs list provided")
		return nil, ErrNoStructures
	}

	adapters := make([]traceAdapter, len(structs))
	maxSize := 0
	for i, s := range structs {
		a, err := adapt(s)
		if err != nil {
			return nil, fmt.Errorf("structure %d: %w", i, err)
		}
		adapters[i] = a
		maxSize = max(maxSize, a.Len())
	}
	for _, a := range adapters {
		if n := a.Len(); n != 1 && n != maxSize {
			return nil, fmt.Errorf("%w %d provided: %v", ErrBatchSizeMismatch, n, a)
		}
	}

	scenes, err := expandBatch(maxSize, opts, func(n int, traces *TraceDict) {
		for i, a := range adapters {
			if n >= a.Len() && !opts.ExtendStruct {
				continue
			}
			traces.Add(traceName(n, i), a.at(min(n, a.Len()-1)))
		}
	})
	if err != nil {
		return nil, err
	}
	return PlotScene(scenes, opts.Scene)
}

// PlotBatch draws each element of a single batched structure in its own
// subplot, as trace "trace{n+1}-1".
func PlotBatch(s Structure, opts BatchOptions) (*figure.Figure, error) {
	a, err := adapt(s)
	if err != nil {
		return nil, err
	}
	scenes, err := expandBatch(a.Len(), opts, func(n int, traces *TraceDict) {
		traces.Add(traceName(n, 0), a.at(n))
	})
	if err != nil {
		return nil, err
	}
	return PlotScene(scenes, opts.Scene)
}

// expandBatch checks the batch size against the titles and builds one
// subplot per batch index, letting fill add that index's traces.
func expandBatch(size int, opts BatchOptions, fill func(n int, traces *TraceDict)) (*SceneDict, error) {
	if size == 0 {
		return nil, ErrEmptyBatch
	}
	titles := opts.SubplotTitles
	if len(titles) > 0 && len(titles) != size {
		return nil, fmt.Errorf("%w: got %d for %d subplots", ErrSubplotTitleCount, len(titles), size)
	}

	scenes := NewSceneDict()
	for n := range size {
		title := fmt.Sprintf("subplot %d", n+1)
		if len(titles) > 0 {
			title = titles[n]
		}
		traces := NewTraceDict()
		fill(n, traces)
		scenes.Add(title, traces)
	}
	return scenes, nil
}

func traceName(n, i int) string {
	return fmt.Sprintf("trace%d-%d", n+1, i+1)
}
