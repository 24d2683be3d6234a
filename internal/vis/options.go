package vis

import (
	"fmt"
	"math/rand/v2"

	"github.com/banshee-data/sceneplot/internal/figure"
)

// AxisArgs are the display settings applied to the x, y and z axes of every
// subplot.
type AxisArgs struct {
	ShowGrid        bool   // default: false
	ZeroLine        bool   // default: false
	ShowLine        bool   // default: false
	Ticks           string // "", "inside" or "outside" (default: "")
	ShowTickLabels  bool   // default: false
	BackgroundColor string // default: "#fff"
	ShowAxesLabels  bool   // default: false
}

// DefaultAxisArgs returns bare axes on a white background.
func DefaultAxisArgs() AxisArgs {
	return AxisArgs{BackgroundColor: "#fff"}
}

// AxisOverrides replaces selected AxisArgs fields for a single axis.
// Nil fields keep the shared value.
type AxisOverrides struct {
	ShowGrid        *bool
	ZeroLine        *bool
	ShowLine        *bool
	Ticks           *string
	ShowTickLabels  *bool
	BackgroundColor *string
	ShowAxesLabels  *bool
}

// Merge returns a with every non-nil field of o applied.
func (a AxisArgs) Merge(o AxisOverrides) AxisArgs {
	if o.ShowGrid != nil {
		a.ShowGrid = *o.ShowGrid
	}
	if o.ZeroLine != nil {
		a.ZeroLine = *o.ZeroLine
	}
	if o.ShowLine != nil {
		a.ShowLine = *o.ShowLine
	}
	if o.Ticks != nil {
		a.Ticks = *o.Ticks
	}
	if o.ShowTickLabels != nil {
		a.ShowTickLabels = *o.ShowTickLabels
	}
	if o.BackgroundColor != nil {
		a.BackgroundColor = *o.BackgroundColor
	}
	if o.ShowAxesLabels != nil {
		a.ShowAxesLabels = *o.ShowAxesLabels
	}
	return a
}

// apply writes the settings onto ax, keeping its range.
func (a AxisArgs) apply(ax *figure.Axis) {
	showGrid, zeroLine, showLine := a.ShowGrid, a.ZeroLine, a.ShowLine
	ticks, tickLabels, axesLabels := a.Ticks, a.ShowTickLabels, a.ShowAxesLabels
	ax.ShowGrid = &showGrid
	ax.ZeroLine = &zeroLine
	ax.ShowLine = &showLine
	ax.Ticks = &ticks
	ax.ShowTickLabels = &tickLabels
	ax.BackgroundColor = a.BackgroundColor
	ax.ShowAxesLabels = &axesLabels
}

// DefaultLighting returns flat, matte mesh lighting.
func DefaultLighting() figure.Lighting {
	return figure.Lighting{
		Ambient:              0.8,
		Diffuse:              1.0,
		Fresnel:              0.0,
		Specular:             0.0,
		Roughness:            0.5,
		FaceNormalsEpsilon:   1e-6,
		VertexNormalsEpsilon: 1e-12,
	}
}

// Options configures PlotScene.
type Options struct {
	NCols                int     // subplots per row (default: 1)
	PointcloudMaxPoints  int     // max points drawn per point cloud batch element (default: 20000)
	PointcloudMarkerSize float64 // marker size of point cloud traces (default: 1)

	AxisArgs AxisArgs
	Lighting figure.Lighting

	// Per-axis overrides merged over AxisArgs.
	XAxis AxisOverrides
	YAxis AxisOverrides
	ZAxis AxisOverrides

	// Rand drives point cloud sub-sampling. Nil uses the process-wide source.
	Rand rand.Source
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NCols:                1,
		PointcloudMaxPoints:  20000,
		PointcloudMarkerSize: 1,
		AxisArgs:             DefaultAxisArgs(),
		Lighting:             DefaultLighting(),
	}
}

// Validate checks that the numeric options are usable.
func (o Options) Validate() error {
	if o.NCols < 1 {
		return fmt.Errorf("%w: ncols must be positive, got %d", ErrInvalidOption, o.NCols)
	}
	if o.PointcloudMaxPoints < 1 {
		return fmt.Errorf("%w: pointcloud max points must be positive, got %d", ErrInvalidOption, o.PointcloudMaxPoints)
	}
	if o.PointcloudMarkerSize <= 0 {
		return fmt.Errorf("%w: pointcloud marker size must be positive, got %g", ErrInvalidOption, o.PointcloudMarkerSize)
	}
	return nil
}

// BatchOptions configures PlotBatchIndividually.
type BatchOptions struct {
	// ExtendStruct draws size-1 structures in every subplot instead of only
	// the first (default: true).
	ExtendStruct bool
	// SubplotTitles names the subplots; empty means "subplot 1", "subplot 2", ...
	SubplotTitles []string
	// Scene is passed through to PlotScene.
	Scene Options
}

// DefaultBatchOptions returns the documented defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{ExtendStruct: true, Scene: DefaultOptions()}
}
