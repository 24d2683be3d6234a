package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/sceneplot/internal/figure"
)

// maxEChartsPoints caps the points sent to the browser per trace.
const maxEChartsPoints = 8000

// meshSymbolSize is the marker size used for mesh vertices.
const meshSymbolSize = 2

// EChartsPage builds a go-echarts page with one 3D scatter chart per scene.
// Meshes are drawn as their vertices. Scenes keep the figure's axis ranges.
func EChartsPage(fig *figure.Figure, title string) *components.Page {
	page := components.NewPage()
	page.SetPageTitle(title)

	for idx := 0; idx < fig.NumScenes(); idx++ {
		scene, err := fig.Scene(idx)
		if err != nil {
			continue
		}
		page.AddCharts(sceneChart(fig, idx, scene))
	}
	return page
}

// RenderECharts writes the EChartsPage of fig as HTML.
func RenderECharts(fig *figure.Figure, title string, w io.Writer) error {
	if err := EChartsPage(fig, title).Render(w); err != nil {
		return fmt.Errorf("render echarts page: %w", err)
	}
	return nil
}

func sceneChart(fig *figure.Figure, idx int, scene *figure.Scene) *charts.Scatter3D {
	traces := fig.TracesIn(idx)
	palette := traceColors(len(traces))

	total := 0
	for _, tr := range traces {
		xs, _, _ := tr.Coords()
		total += len(xs)
	}

	chart := charts.NewScatter3D()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: fig.Title(idx), Width: "900px", Height: "700px"}),
		charts.WithTitleOpts(opts.Title{Title: fig.Title(idx), Subtitle: fmt.Sprintf("traces=%d points=%d", len(traces), total)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Min: axisMin(scene.XAxis), Max: axisMax(scene.XAxis)}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Min: axisMin(scene.YAxis), Max: axisMax(scene.YAxis)}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Min: axisMin(scene.ZAxis), Max: axisMax(scene.ZAxis)}),
	)

	for j, tr := range traces {
		size := float64(meshSymbolSize)
		if s, ok := tr.(*figure.Scatter3D); ok {
			size = s.Marker.Size
		}
		chart.AddSeries(tr.TraceName(), chart3DData(tr),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: hexColor(palette[j])}),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: size}),
		)
	}
	return chart
}

// chart3DData converts a trace to echarts points, keeping every stride-th
// point so at most maxEChartsPoints remain. Per-point colours override the
// series colour.
func chart3DData(tr figure.Trace) []opts.Chart3DData {
	xs, ys, zs := tr.Coords()
	colors := tr.PointColors()

	stride := 1
	if len(xs) > maxEChartsPoints {
		stride = int(math.Ceil(float64(len(xs)) / float64(maxEChartsPoints)))
	}

	data := make([]opts.Chart3DData, 0, len(xs)/stride+1)
	for i := 0; i < len(xs); i += stride {
		d := opts.Chart3DData{Value: []interface{}{xs[i], ys[i], zs[i]}}
		if i < len(colors) {
			if c, err := parseCSSColor(colors[i]); err == nil {
				d.ItemStyle = &opts.ItemStyle{Color: hexColor(c)}
			}
		}
		data = append(data, d)
	}
	return data
}

func axisMin(ax figure.Axis) interface{} {
	if len(ax.Range) != 2 {
		return nil
	}
	return ax.Range[0]
}

func axisMax(ax figure.Axis) interface{} {
	if len(ax.Range) != 2 {
		return nil
	}
	return ax.Range[1]
}
