package export

import (
	"bytes"
	"encoding/json"
	"image/color"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/testutil"
)

func TestParseCSSColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "rgb(255, 0, 12)", want: color.NRGBA{R: 255, G: 0, B: 12, A: 255}},
		{in: "rgb(10, 20, 30, 0.500000)", want: color.NRGBA{R: 10, G: 20, B: 30, A: 127}},
		{in: "rgb(127.5, 300, -4)", want: color.NRGBA{R: 127, G: 255, B: 0, A: 255}},
		{in: "rgb(1, 2, 3, 7)", want: color.NRGBA{R: 1, G: 2, B: 3, A: 255}},
		{in: "#ffffff", wantErr: true},
		{in: "rgb(1, 2)", wantErr: true},
		{in: "rgb(1, x, 3)", wantErr: true},
		{in: "rgb(1, 2, 3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCSSColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff0080", hexColor(color.NRGBA{R: 255, G: 0, B: 128, A: 255}))
	assert.Equal(t, "#000000", hexColor(color.Black))
}

func TestTraceColors(t *testing.T) {
	assert.Nil(t, traceColors(0))

	colors := traceColors(4)
	require.Len(t, colors, 4)
	seen := map[color.Color]bool{}
	for _, c := range colors {
		assert.False(t, seen[c], "duplicate colour %v", c)
		seen[c] = true
	}

	r, g, b := hslToRGB(0, 0, 0.5)
	assert.Equal(t, [3]uint8{127, 127, 127}, [3]uint8{r, g, b})
}

func TestRenderECharts(t *testing.T) {
	fig := testutil.SampleFigure(t, 2)

	var buf bytes.Buffer
	require.NoError(t, RenderECharts(fig, "demo", &buf))
	html := buf.String()
	assert.Contains(t, html, "<title>demo</title>")
	assert.Contains(t, html, "scatter3D")
	assert.Contains(t, html, "trace1-1")
	assert.Contains(t, html, "trace2-2")
	assert.Contains(t, html, "subplot 2")
}

func TestChart3DData_StridesLargeTraces(t *testing.T) {
	n := 2*maxEChartsPoints + 1
	tr := &figure.Scatter3D{X: make([]float64, n), Y: make([]float64, n), Z: make([]float64, n)}
	data := chart3DData(tr)
	assert.LessOrEqual(t, len(data), maxEChartsPoints)
	assert.NotEmpty(t, data)
}

func TestChart3DData_PerPointColours(t *testing.T) {
	tr := &figure.Scatter3D{
		X:      []float64{1, 2},
		Y:      []float64{3, 4},
		Z:      []float64{5, 6},
		Marker: figure.Marker{Color: []string{"rgb(255, 0, 0)", "bogus"}},
	}
	data := chart3DData(tr)
	require.Len(t, data, 2)
	assert.Equal(t, []interface{}{1.0, 3.0, 5.0}, data[0].Value)
	require.NotNil(t, data[0].ItemStyle)
	assert.Equal(t, "#ff0000", data[0].ItemStyle.Color)
	assert.Nil(t, data[1].ItemStyle)
}

func TestPreviewPlot(t *testing.T) {
	fig := testutil.SampleFigure(t, 2)

	p, err := PreviewPlot(fig, 1)
	require.NoError(t, err)
	assert.Equal(t, "subplot 2", p.Title.Text)

	scene, err := fig.Scene(1)
	require.NoError(t, err)
	assert.Equal(t, scene.XAxis.Range[0], p.X.Min)
	assert.Equal(t, scene.XAxis.Range[1], p.X.Max)

	_, err = PreviewPlot(fig, 5)
	assert.ErrorIs(t, err, figure.ErrNoSuchSubplot)
}

func TestPointColors(t *testing.T) {
	assert.Nil(t, pointColors(nil))
	assert.Nil(t, pointColors([]string{"rgb(1, 2, 3)", "nope"}))
	assert.Len(t, pointColors([]string{"rgb(1, 2, 3)", "rgb(4, 5, 6, 0.5)"}), 2)
}

func TestWritePreviewPNGs(t *testing.T) {
	fig := testutil.SampleFigure(t, 2)
	dir := filepath.Join(t.TempDir(), "previews")

	n, err := WritePreviewPNGs(fig, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, name := range []string{"scene_01.png", "scene_02.png"} {
		f, err := os.Open(filepath.Join(dir, name))
		require.NoError(t, err)
		_, err = png.Decode(f)
		f.Close()
		assert.NoError(t, err, name)
	}

	_, err = WritePreviewPNGs(fig, "")
	assert.Error(t, err)
}

func TestServer(t *testing.T) {
	fig := testutil.SampleFigure(t, 2)
	srv := NewServer(fig, "demo")

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/figure.json", http.StatusOK, "application/json"},
		{"/echarts", http.StatusOK, "text/html"},
		{"/preview.png", http.StatusOK, "image/png"},
		{"/preview.png?scene=2", http.StatusOK, "image/png"},
		{"/preview.png?scene=3", http.StatusBadRequest, "application/json"},
		{"/preview.png?scene=x", http.StatusBadRequest, "application/json"},
		{"/nope", http.StatusNotFound, "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := testutil.NewTestRecorder()
			srv.ServeHTTP(rec, testutil.NewTestRequest(http.MethodGet, tt.path))
			testutil.AssertStatusCode(t, rec.Code, tt.status)
			testutil.AssertContentType(t, rec, tt.contentType)
		})
	}
}

func TestServer_FigureJSON(t *testing.T) {
	fig := testutil.SampleFigure(t, 1)
	rec := testutil.NewTestRecorder()
	NewServer(fig, "demo").ServeHTTP(rec, testutil.NewTestRequest(http.MethodGet, "/figure.json"))
	testutil.AssertStatusCode(t, rec.Code, http.StatusOK)

	var got struct {
		Data []struct {
			Type  string `json:"type"`
			Name  string `json:"name"`
			Scene string `json:"scene"`
		} `json:"data"`
		Layout map[string]json.RawMessage `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 2)
	assert.Equal(t, "mesh3d", got.Data[0].Type)
	assert.Equal(t, "scatter3d", got.Data[1].Type)
	assert.Equal(t, "trace1-2", got.Data[1].Name)
	assert.Contains(t, got.Layout, "scene")
}

func TestServer_PlotlyPage(t *testing.T) {
	fig := testutil.SampleFigure(t, 1)
	rec := testutil.NewTestRecorder()
	NewServer(fig, "demo page").ServeHTTP(rec, testutil.NewTestRequest(http.MethodGet, "/"))
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, figure.PlotlyJS))
	assert.Contains(t, body, "<title>demo page</title>")
}
