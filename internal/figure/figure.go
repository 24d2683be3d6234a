// Package figure is a declarative model of an interactive 3D figure.
//
// A Figure is a grid of 3D scenes, each holding named traces (triangle
// meshes or marker clouds). The JSON encoding follows plotly.js's figure
// schema, so the output can be handed straight to Plotly.newPlot.
package figure

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrNoSuchSubplot is returned when a row/column or scene index falls outside
// the figure's grid.
var ErrNoSuchSubplot = errors.New("no such subplot")

// Figure is a grid of 3D scenes and the traces drawn in them.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`

	rows, cols int
	titles     []string
}

// New returns an empty figure without subplots.
func New() *Figure {
	return &Figure{Data: []Trace{}}
}

// Rows returns the number of subplot rows.
func (f *Figure) Rows() int { return f.rows }

// Cols returns the number of subplot columns.
func (f *Figure) Cols() int { return f.cols }

// NumScenes returns the number of subplot cells.
func (f *Figure) NumScenes() int { return len(f.Layout.Scenes) }

// Title returns the title shown above scene idx, or "" if it has none.
func (f *Figure) Title(idx int) string {
	if idx < 0 || idx >= len(f.titles) || idx >= f.NumScenes() {
		return ""
	}
	return f.titles[idx]
}

// Scene returns the scene at idx (row-major, 0-based).
func (f *Figure) Scene(idx int) (*Scene, error) {
	if idx < 0 || idx >= len(f.Layout.Scenes) {
		return nil, fmt.Errorf("scene %d of %d: %w", idx+1, len(f.Layout.Scenes), ErrNoSuchSubplot)
	}
	return f.Layout.Scenes[idx], nil
}

// AddTrace appends t to the scene at the 1-based row and col.
func (f *Figure) AddTrace(t Trace, row, col int) error {
	if row < 1 || row > f.rows || col < 1 || col > f.cols {
		return fmt.Errorf("row %d col %d in a %dx%d grid: %w", row, col, f.rows, f.cols, ErrNoSuchSubplot)
	}
	t.setScene(SceneRef((row-1)*f.cols + col - 1))
	f.Data = append(f.Data, t)
	return nil
}

// TracesIn returns the traces drawn in scene idx, in the order they were added.
func (f *Figure) TracesIn(idx int) []Trace {
	ref := SceneRef(idx)
	var out []Trace
	for _, t := range f.Data {
		if t.SceneRef() == ref {
			out = append(out, t)
		}
	}
	return out
}

// SceneRef returns the layout key and trace reference for scene idx.
// plotly.js names the first scene "scene" and later ones "scene2", "scene3", ...
func SceneRef(idx int) string {
	if idx == 0 {
		return "scene"
	}
	return "scene" + strconv.Itoa(idx+1)
}

// Layout holds figure-wide settings and one Scene per subplot.
type Layout struct {
	Scenes      []*Scene
	Annotations []Annotation
	ShowLegend  bool
}

// MarshalJSON flattens the scenes into "scene", "scene2", ... keys.
func (l Layout) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(l.Scenes)+2)
	for i, s := range l.Scenes {
		m[SceneRef(i)] = s
	}
	if len(l.Annotations) > 0 {
		m["annotations"] = l.Annotations
	}
	m["showlegend"] = l.ShowLegend
	return json.Marshal(m)
}

// Scene is one 3D subplot.
type Scene struct {
	Domain     Domain  `json:"domain"`
	XAxis      Axis    `json:"xaxis"`
	YAxis      Axis    `json:"yaxis"`
	ZAxis      Axis    `json:"zaxis"`
	AspectMode string  `json:"aspectmode,omitempty"`
	Camera     *Camera `json:"camera,omitempty"`
}

// Domain is the paper-coordinate rectangle occupied by a scene.
type Domain struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
}

// Axis is a scene axis. Nil fields are left to plotly's defaults.
type Axis struct {
	Range           []float64 `json:"range,omitempty"`
	ShowGrid        *bool     `json:"showgrid,omitempty"`
	ZeroLine        *bool     `json:"zeroline,omitempty"`
	ShowLine        *bool     `json:"showline,omitempty"`
	Ticks           *string   `json:"ticks,omitempty"`
	ShowTickLabels  *bool     `json:"showticklabels,omitempty"`
	BackgroundColor string    `json:"backgroundcolor,omitempty"`
	ShowBackground  *bool     `json:"showbackground,omitempty"`
	ShowAxesLabels  *bool     `json:"showaxeslabels,omitempty"`
}

// Camera positions the scene's viewpoint.
type Camera struct {
	Up Vec3 `json:"up"`
}

// Vec3 is a plotly {x, y, z} object.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Annotation is a text label in paper coordinates; subplot titles use these.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	XAnchor   string  `json:"xanchor"`
	YAnchor   string  `json:"yanchor"`
	ShowArrow bool    `json:"showarrow"`
	Font      Font    `json:"font"`
}

// Font is an annotation font.
type Font struct {
	Size float64 `json:"size"`
}
