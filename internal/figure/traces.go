package figure

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Trace is one named drawable in a scene. Mesh3D and Scatter3D are the only
// implementations.
type Trace interface {
	// Kind returns the plotly trace type.
	Kind() string
	// TraceName returns the legend name.
	TraceName() string
	// SceneRef returns the scene the trace is drawn in.
	SceneRef() string
	// Coords returns the X, Y and Z coordinate arrays.
	Coords() (xs, ys, zs []float64)
	// PointColors returns one CSS colour per point, or nil for the default.
	PointColors() []string

	setScene(ref string)
}

// Lighting holds the reflectance parameters of a mesh trace.
type Lighting struct {
	Ambient              float64 `json:"ambient"`
	Diffuse              float64 `json:"diffuse"`
	Fresnel              float64 `json:"fresnel"`
	Specular             float64 `json:"specular"`
	Roughness            float64 `json:"roughness"`
	FaceNormalsEpsilon   float64 `json:"facenormalsepsilon"`
	VertexNormalsEpsilon float64 `json:"vertexnormalsepsilon"`
}

// RGB is a colour with channels in [0,255]. It encodes as "rgb(r, g, b)".
type RGB [3]float64

// String formats the colour the way plotly.js parses it.
func (c RGB) String() string {
	return "rgb(" + formatChannel(c[0]) + ", " + formatChannel(c[1]) + ", " + formatChannel(c[2]) + ")"
}

// MarshalJSON encodes the colour as a CSS string.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func formatChannel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Mesh3D is a triangulated surface. Faces are the index triples (I[n], J[n], K[n]).
type Mesh3D struct {
	Name        string    `json:"name,omitempty"`
	X           []float64 `json:"x"`
	Y           []float64 `json:"y"`
	Z           []float64 `json:"z"`
	I           []int     `json:"i"`
	J           []int     `json:"j"`
	K           []int     `json:"k"`
	VertexColor []RGB     `json:"vertexcolor,omitempty"`
	Lighting    *Lighting `json:"lighting,omitempty"`
	Scene       string    `json:"scene,omitempty"`
}

func (m *Mesh3D) Kind() string                   { return "mesh3d" }
func (m *Mesh3D) TraceName() string              { return m.Name }
func (m *Mesh3D) SceneRef() string               { return m.Scene }
func (m *Mesh3D) Coords() (xs, ys, zs []float64) { return m.X, m.Y, m.Z }
func (m *Mesh3D) setScene(ref string)            { m.Scene = ref }

// PointColors returns the vertex colours as CSS strings.
func (m *Mesh3D) PointColors() []string {
	if m.VertexColor == nil {
		return nil
	}
	out := make([]string, len(m.VertexColor))
	for i, c := range m.VertexColor {
		out[i] = c.String()
	}
	return out
}

// MarshalJSON adds the plotly "type" discriminator.
func (m *Mesh3D) MarshalJSON() ([]byte, error) {
	type alias Mesh3D
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{m.Kind(), (*alias)(m)})
}

// Marker styles the points of a Scatter3D trace.
type Marker struct {
	Color []string `json:"color,omitempty"`
	Size  float64  `json:"size"`
}

// Scatter3D is a cloud of markers.
type Scatter3D struct {
	Name   string    `json:"name,omitempty"`
	Mode   string    `json:"mode"`
	X      []float64 `json:"x"`
	Y      []float64 `json:"y"`
	Z      []float64 `json:"z"`
	Marker Marker    `json:"marker"`
	Scene  string    `json:"scene,omitempty"`
}

func (s *Scatter3D) Kind() string                   { return "scatter3d" }
func (s *Scatter3D) TraceName() string              { return s.Name }
func (s *Scatter3D) SceneRef() string               { return s.Scene }
func (s *Scatter3D) Coords() (xs, ys, zs []float64) { return s.X, s.Y, s.Z }
func (s *Scatter3D) PointColors() []string          { return s.Marker.Color }
func (s *Scatter3D) setScene(ref string)            { s.Scene = ref }

// MarshalJSON adds the plotly "type" discriminator.
func (s *Scatter3D) MarshalJSON() ([]byte, error) {
	type alias Scatter3D
	a := *s
	if a.Mode == "" {
		a.Mode = "markers"
	}
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{s.Kind(), (*alias)(&a)})
}

// String summarises the trace for logs.
func (s *Scatter3D) String() string {
	return fmt.Sprintf("scatter3d %q (%d points)", s.Name, len(s.X))
}

// String summarises the trace for logs.
func (m *Mesh3D) String() string {
	return fmt.Sprintf("mesh3d %q (%d vertices, %d faces)", m.Name, len(m.X), len(m.I))
}
