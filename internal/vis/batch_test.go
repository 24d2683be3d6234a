package vis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/geom"
)

// traceNames returns the trace names of every subplot, in order.
func traceNames(fig *figure.Figure) [][]string {
	out := make([][]string, fig.NumScenes())
	for i := range out {
		out[i] = []string{}
		for _, tr := range fig.TracesIn(i) {
			out[i] = append(out[i], tr.TraceName())
		}
	}
	return out
}

func titles(fig *figure.Figure) []string {
	out := make([]string, fig.NumScenes())
	for i := range out {
		out[i] = fig.Title(i)
	}
	return out
}

func TestPlotBatchIndividually_OneSubplotPerIndex(t *testing.T) {
	gen := geom.NewSyntheticGenerator(11)
	fig, err := PlotBatchIndividually(
		[]Structure{gen.SphereBatch(2), gen.DiscBatch(2, 50, 3)},
		DefaultBatchOptions(),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"subplot 1", "subplot 2"}, titles(fig))
	assert.Equal(t, [][]string{
		{"trace1-1", "trace1-2"},
		{"trace2-1", "trace2-2"},
	}, traceNames(fig))
	assert.Equal(t, 2, fig.Rows())
}

func TestPlotBatchIndividually_SelectsElement(t *testing.T) {
	pc := geom.MustNewPointclouds([][]r3.Vec{{{X: 1}}, {{X: 2}, {X: 3}}}, nil)
	fig, err := PlotBatchIndividually([]Structure{pc}, DefaultBatchOptions())
	require.NoError(t, err)

	first, _, _ := fig.TracesIn(0)[0].Coords()
	second, _, _ := fig.TracesIn(1)[0].Coords()
	assert.Equal(t, []float64{1}, first)
	assert.Equal(t, []float64{2, 3}, second)
}

func TestPlotBatchIndividually_ExtendStruct(t *testing.T) {
	gen := geom.NewSyntheticGenerator(5)
	single := gen.SphereBatch(1)
	triple := gen.DiscBatch(3, 20, 0)

	tests := []struct {
		name   string
		extend bool
		want   [][]string
	}{
		{
			name:   "broadcast",
			extend: true,
			want: [][]string{
				{"trace1-1", "trace1-2"},
				{"trace2-1", "trace2-2"},
				{"trace3-1", "trace3-2"},
			},
		},
		{
			name:   "first subplot only",
			extend: false,
			want: [][]string{
				{"trace1-1", "trace1-2"},
				{"trace2-2"},
				{"trace3-2"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultBatchOptions()
			opts.ExtendStruct = tt.extend
			fig, err := PlotBatchIndividually([]Structure{single, triple}, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, traceNames(fig))
		})
	}
}

func TestPlotBatchIndividually_BroadcastRepeatsElement(t *testing.T) {
	single := geom.MustNewPointclouds([][]r3.Vec{{{X: 7}}}, nil)
	pair := geom.MustNewPointclouds([][]r3.Vec{{{X: 1}}, {{X: 2}}}, nil)

	fig, err := PlotBatchIndividually([]Structure{single, pair}, DefaultBatchOptions())
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		xs, _, _ := fig.TracesIn(i)[0].Coords()
		assert.Equal(t, []float64{7}, xs, "subplot %d", i+1)
	}
}

func TestPlotBatchIndividually_Titles(t *testing.T) {
	gen := geom.NewSyntheticGenerator(9)
	opts := DefaultBatchOptions()
	opts.SubplotTitles = []string{"left", "right"}
	opts.Scene.NCols = 2

	fig, err := PlotBatchIndividually([]Structure{gen.SphereBatch(2)}, opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"left", "right"}, titles(fig))
	assert.Equal(t, 1, fig.Rows())

	opts.SubplotTitles = []string{"only one"}
	_, err = PlotBatchIndividually([]Structure{gen.SphereBatch(2)}, opts)
	assert.True(t, errors.Is(err, ErrSubplotTitleCount))
}

func TestPlotBatchIndividually_Errors(t *testing.T) {
	gen := geom.NewSyntheticGenerator(4)
	empty := geom.MustNewPointclouds(nil, nil)

	tests := []struct {
		name    string
		structs []Structure
		want    error
	}{
		{"no structures", nil, ErrNoStructures},
		{"size mismatch", []Structure{gen.SphereBatch(2), gen.SphereBatch(3)}, ErrBatchSizeMismatch},
		{"zero size", []Structure{empty}, ErrEmptyBatch},
		{"unsupported", []Structure{gen.SphereBatch(1), notAStructure{}}, ErrUnsupportedStructure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureWarnings(t)
			fig, err := PlotBatchIndividually(tt.structs, DefaultBatchOptions())
			assert.Nil(t, fig)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestPlotBatchIndividually_EmptyListWarns(t *testing.T) {
	warnings := captureWarnings(t)
	_, err := PlotBatchIndividually([]Structure{}, DefaultBatchOptions())
	assert.True(t, errors.Is(err, ErrNoStructures))
	require.Len(t, *warnings, 1)
	assert.Contains(t, (*warnings)[0], "empty")
}

func TestPlotBatchIndividually_MismatchNamesStructure(t *testing.T) {
	gen := geom.NewSyntheticGenerator(4)
	_, err := PlotBatchIndividually([]Structure{gen.SphereBatch(2), gen.SphereBatch(3)}, DefaultBatchOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid batch size 2 provided")
	assert.Contains(t, err.Error(), "Mesh(batch=2")
}

func TestPlotBatch_Single(t *testing.T) {
	gen := geom.NewSyntheticGenerator(8)
	fig, err := PlotBatch(gen.SphereBatch(3), DefaultBatchOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"subplot 1", "subplot 2", "subplot 3"}, titles(fig))
	assert.Equal(t, [][]string{{"trace1-1"}, {"trace2-1"}, {"trace3-1"}}, traceNames(fig))
}

func TestPlotBatch_Errors(t *testing.T) {
	_, err := PlotBatch(notAStructure{}, DefaultBatchOptions())
	assert.True(t, errors.Is(err, ErrUnsupportedStructure))

	_, err = PlotBatch(geom.MustNewMeshes(nil, nil, nil), DefaultBatchOptions())
	assert.True(t, errors.Is(err, ErrEmptyBatch))
}
