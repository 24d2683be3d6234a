package export

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/sceneplot/internal/figure"
)

// PreviewSize is the width and height of a saved preview image.
const PreviewSize = 6 * vg.Inch

// PreviewPlot projects scene idx onto the XY plane as a static scatter plot.
// Each trace gets a legend entry; per-point colours are kept.
func PreviewPlot(fig *figure.Figure, idx int) (*plot.Plot, error) {
	scene, err := fig.Scene(idx)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = fig.Title(idx)
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	if r := scene.XAxis.Range; len(r) == 2 {
		p.X.Min, p.X.Max = r[0], r[1]
	}
	if r := scene.YAxis.Range; len(r) == 2 {
		p.Y.Min, p.Y.Max = r[0], r[1]
	}

	traces := fig.TracesIn(idx)
	palette := traceColors(len(traces))
	for j, tr := range traces {
		xs, ys, _ := tr.Coords()
		if len(xs) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(xs))
		for i := range xs {
			pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("trace %q: %w", tr.TraceName(), err)
		}
		s.GlyphStyle.Color = palette[j]
		s.GlyphStyle.Radius = vg.Points(1)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		if colors := pointColors(tr.PointColors()); colors != nil {
			base := s.GlyphStyle
			s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
				g := base
				g.Color = colors[i]
				return g
			}
		}
		p.Add(s)
		p.Legend.Add(tr.TraceName(), s)
	}
	return p, nil
}

// pointColors parses per-point CSS colours. It returns nil when any colour
// cannot be parsed, so the trace falls back to its palette colour.
func pointColors(css []string) []color.Color {
	if len(css) == 0 {
		return nil
	}
	out := make([]color.Color, len(css))
	for i, s := range css {
		c, err := parseCSSColor(s)
		if err != nil {
			return nil
		}
		out[i] = c
	}
	return out
}

// WritePreviewPNGs saves one scene_NN.png per scene into dir and returns how
// many were written.
func WritePreviewPNGs(fig *figure.Figure, dir string) (int, error) {
	if dir == "" {
		return 0, errors.New("no output directory configured")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("create output directory: %w", err)
	}

	count := 0
	for idx := 0; idx < fig.NumScenes(); idx++ {
		p, err := PreviewPlot(fig, idx)
		if err != nil {
			return count, fmt.Errorf("scene %d: %w", idx+1, err)
		}
		file := filepath.Join(dir, fmt.Sprintf("scene_%02d.png", idx+1))
		if err := p.Save(PreviewSize, PreviewSize, file); err != nil {
			return count, fmt.Errorf("save scene %d: %w", idx+1, err)
		}
		count++
	}
	return count, nil
}
