// Package config loads figure styling from JSON or YAML files.
package config

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/banshee-data/sceneplot/internal/vis"
)

// StyleConfig is the on-disk form of vis.Options. Every field is optional;
// omitted fields keep the vis defaults, so partial files are safe.
type StyleConfig struct {
	NCols                *int     `json:"ncols,omitempty" yaml:"ncols,omitempty"`
	PointcloudMaxPoints  *int     `json:"pointcloud_max_points,omitempty" yaml:"pointcloud_max_points,omitempty"`
	PointcloudMarkerSize *float64 `json:"pointcloud_marker_size,omitempty" yaml:"pointcloud_marker_size,omitempty"`

	// Seed fixes point cloud sub-sampling. Unset means a different sample
	// on every run.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	AxisArgs *AxisConfig     `json:"axis_args,omitempty" yaml:"axis_args,omitempty"`
	XAxis    *AxisConfig     `json:"xaxis,omitempty" yaml:"xaxis,omitempty"`
	YAxis    *AxisConfig     `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
	ZAxis    *AxisConfig     `json:"zaxis,omitempty" yaml:"zaxis,omitempty"`
	Lighting *LightingConfig `json:"lighting,omitempty" yaml:"lighting,omitempty"`
}

// AxisConfig mirrors vis.AxisOverrides.
type AxisConfig struct {
	ShowGrid        *bool   `json:"showgrid,omitempty" yaml:"showgrid,omitempty"`
	ZeroLine        *bool   `json:"zeroline,omitempty" yaml:"zeroline,omitempty"`
	ShowLine        *bool   `json:"showline,omitempty" yaml:"showline,omitempty"`
	Ticks           *string `json:"ticks,omitempty" yaml:"ticks,omitempty"`
	ShowTickLabels  *bool   `json:"showticklabels,omitempty" yaml:"showticklabels,omitempty"`
	BackgroundColor *string `json:"backgroundcolor,omitempty" yaml:"backgroundcolor,omitempty"`
	ShowAxesLabels  *bool   `json:"showaxeslabels,omitempty" yaml:"showaxeslabels,omitempty"`
}

// LightingConfig mirrors figure.Lighting.
type LightingConfig struct {
	Ambient              *float64 `json:"ambient,omitempty" yaml:"ambient,omitempty"`
	Diffuse              *float64 `json:"diffuse,omitempty" yaml:"diffuse,omitempty"`
	Fresnel              *float64 `json:"fresnel,omitempty" yaml:"fresnel,omitempty"`
	Specular             *float64 `json:"specular,omitempty" yaml:"specular,omitempty"`
	Roughness            *float64 `json:"roughness,omitempty" yaml:"roughness,omitempty"`
	FaceNormalsEpsilon   *float64 `json:"facenormalsepsilon,omitempty" yaml:"facenormalsepsilon,omitempty"`
	VertexNormalsEpsilon *float64 `json:"vertexnormalsepsilon,omitempty" yaml:"vertexnormalsepsilon,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }
func ptrInt(v int) *int             { return &v }
func ptrUint64(v uint64) *uint64    { return &v }

// maxFileSize bounds style files.
const maxFileSize = 1 * 1024 * 1024 // 1MB

// LoadStyleConfig reads a StyleConfig from a .json, .yaml or .yml file and
// validates it.
func LoadStyleConfig(path string) (*StyleConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	if ext != ".json" && ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &StyleConfig{}
	if ext == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the values that are set.
func (c *StyleConfig) Validate() error {
	if c.NCols != nil && *c.NCols < 1 {
		return fmt.Errorf("ncols must be positive, got %d", *c.NCols)
	}
	if c.PointcloudMaxPoints != nil && *c.PointcloudMaxPoints < 1 {
		return fmt.Errorf("pointcloud_max_points must be positive, got %d", *c.PointcloudMaxPoints)
	}
	if c.PointcloudMarkerSize != nil && *c.PointcloudMarkerSize <= 0 {
		return fmt.Errorf("pointcloud_marker_size must be positive, got %f", *c.PointcloudMarkerSize)
	}

	for name, ax := range map[string]*AxisConfig{"axis_args": c.AxisArgs, "xaxis": c.XAxis, "yaxis": c.YAxis, "zaxis": c.ZAxis} {
		if ax == nil || ax.Ticks == nil {
			continue
		}
		switch *ax.Ticks {
		case "", "inside", "outside":
		default:
			return fmt.Errorf("%s.ticks must be \"\", \"inside\" or \"outside\", got %q", name, *ax.Ticks)
		}
	}

	if l := c.Lighting; l != nil {
		for _, r := range []struct {
			name   string
			v      *float64
			lo, hi float64
		}{
			{"ambient", l.Ambient, 0, 1},
			{"diffuse", l.Diffuse, 0, 1},
			{"fresnel", l.Fresnel, 0, 5},
			{"specular", l.Specular, 0, 2},
			{"roughness", l.Roughness, 0, 1},
			{"facenormalsepsilon", l.FaceNormalsEpsilon, 0, 1},
			{"vertexnormalsepsilon", l.VertexNormalsEpsilon, 0, 1},
		} {
			if r.v != nil && (*r.v < r.lo || *r.v > r.hi) {
				return fmt.Errorf("lighting.%s must be between %g and %g, got %f", r.name, r.lo, r.hi, *r.v)
			}
		}
	}
	return nil
}

// GetNCols returns the ncols value or the default.
func (c *StyleConfig) GetNCols() int {
	if c.NCols == nil {
		return 1
	}
	return *c.NCols
}

// GetPointcloudMaxPoints returns the pointcloud_max_points value or the default.
func (c *StyleConfig) GetPointcloudMaxPoints() int {
	if c.PointcloudMaxPoints == nil {
		return 20000
	}
	return *c.PointcloudMaxPoints
}

// GetPointcloudMarkerSize returns the pointcloud_marker_size value or the default.
func (c *StyleConfig) GetPointcloudMarkerSize() float64 {
	if c.PointcloudMarkerSize == nil {
		return 1
	}
	return *c.PointcloudMarkerSize
}

// Options converts the config into vis.Options, starting from
// vis.DefaultOptions.
func (c *StyleConfig) Options() vis.Options {
	o := vis.DefaultOptions()
	o.NCols = c.GetNCols()
	o.PointcloudMaxPoints = c.GetPointcloudMaxPoints()
	o.PointcloudMarkerSize = c.GetPointcloudMarkerSize()
	if c.Seed != nil {
		o.Rand = rand.NewPCG(*c.Seed, *c.Seed)
	}

	o.AxisArgs = o.AxisArgs.Merge(c.AxisArgs.overrides())
	o.XAxis = c.XAxis.overrides()
	o.YAxis = c.YAxis.overrides()
	o.ZAxis = c.ZAxis.overrides()

	if l := c.Lighting; l != nil {
		set := func(dst *float64, v *float64) {
			if v != nil {
				*dst = *v
			}
		}
		set(&o.Lighting.Ambient, l.Ambient)
		set(&o.Lighting.Diffuse, l.Diffuse)
		set(&o.Lighting.Fresnel, l.Fresnel)
		set(&o.Lighting.Specular, l.Specular)
		set(&o.Lighting.Roughness, l.Roughness)
		set(&o.Lighting.FaceNormalsEpsilon, l.FaceNormalsEpsilon)
		set(&o.Lighting.VertexNormalsEpsilon, l.VertexNormalsEpsilon)
	}
	return o
}

func (a *AxisConfig) overrides() vis.AxisOverrides {
	if a == nil {
		return vis.AxisOverrides{}
	}
	return vis.AxisOverrides{
		ShowGrid:        a.ShowGrid,
		ZeroLine:        a.ZeroLine,
		ShowLine:        a.ShowLine,
		Ticks:           a.Ticks,
		ShowTickLabels:  a.ShowTickLabels,
		BackgroundColor: a.BackgroundColor,
		ShowAxesLabels:  a.ShowAxesLabels,
	}
}
