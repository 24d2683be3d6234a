// Command scene-plot draws synthetic mesh and point cloud batches as a grid
// of 3D subplots and writes the figure as plotly JSON or HTML, an echarts
// page, PNG previews, or serves all of them over HTTP.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/sceneplot/internal/config"
	"github.com/banshee-data/sceneplot/internal/export"
	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/geom"
	"github.com/banshee-data/sceneplot/internal/monitoring"
	"github.com/banshee-data/sceneplot/internal/version"
	"github.com/banshee-data/sceneplot/internal/vis"
)

type flags struct {
	output     string
	format     string
	mode       string
	ncols      int
	batch      int
	points     int
	channels   int
	maxPoints  int
	markerSize float64
	seed       uint64
	configPath string
	serve      string
	useZap     bool
	version    bool

	set map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (*flags, error) {
	defaults := vis.DefaultOptions()
	f := &flags{}
	fs.StringVar(&f.output, "o", "scene.html", "output path (a directory for -format png)")
	fs.StringVar(&f.format, "format", "html", "output format: json, html, echarts or png")
	fs.StringVar(&f.mode, "mode", "batch", "batch: one subplot per batch index; scene: everything in one subplot")
	fs.IntVar(&f.ncols, "ncols", defaults.NCols, "subplots per row")
	fs.IntVar(&f.batch, "batch", 2, "batch size of the generated sphere meshes and point discs")
	fs.IntVar(&f.points, "points", 5000, "points per generated disc")
	fs.IntVar(&f.channels, "channels", 4, "point features: 3 (RGB), 4 (RGBA) or 0 (none)")
	fs.IntVar(&f.maxPoints, "max-points", defaults.PointcloudMaxPoints, "max points drawn per point cloud batch element")
	fs.Float64Var(&f.markerSize, "marker-size", defaults.PointcloudMarkerSize, "point marker size")
	fs.Uint64Var(&f.seed, "seed", 1, "seed for geometry and, when given, point sub-sampling")
	fs.StringVar(&f.configPath, "config", "", "style config file (.json, .yaml or .yml)")
	fs.StringVar(&f.serve, "serve", "", "serve the figure on this address (e.g. :8080) instead of writing a file")
	fs.BoolVar(&f.useZap, "zap", false, "log through zap's production logger")
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// options layers explicitly set flags over the style config.
func (f *flags) options() (vis.Options, error) {
	cfg := &config.StyleConfig{}
	if f.configPath != "" {
		loaded, err := config.LoadStyleConfig(f.configPath)
		if err != nil {
			return vis.Options{}, err
		}
		cfg = loaded
	}
	opts := cfg.Options()
	if f.set["ncols"] {
		opts.NCols = f.ncols
	}
	if f.set["max-points"] {
		opts.PointcloudMaxPoints = f.maxPoints
	}
	if f.set["marker-size"] {
		opts.PointcloudMarkerSize = f.markerSize
	}
	if f.set["seed"] {
		opts.Rand = rand.NewPCG(f.seed, f.seed)
	}
	return opts, opts.Validate()
}

// buildFigure generates the synthetic batch and composes it.
func buildFigure(f *flags, opts vis.Options) (*figure.Figure, error) {
	if f.batch < 1 {
		return nil, fmt.Errorf("-batch must be positive, got %d", f.batch)
	}
	gen := geom.NewSyntheticGenerator(f.seed)
	spheres := gen.SphereBatch(f.batch)
	discs := gen.DiscBatch(f.batch, f.points, f.channels)

	switch f.mode {
	case "batch":
		bopts := vis.DefaultBatchOptions()
		bopts.Scene = opts
		// A shared floor box is repeated under every subplot.
		verts, faces := gen.Box(r3.Box{
			Min: r3.Vec{X: -1, Y: -2, Z: -1},
			Max: r3.Vec{X: 3*float64(f.batch-1) + 1, Y: -1.8, Z: 1},
		})
		floor := geom.MustNewMeshes([][]r3.Vec{verts}, [][]geom.Face{faces}, nil)
		return vis.PlotBatchIndividually([]vis.Structure{spheres, discs, floor}, bopts)
	case "scene":
		traces := vis.NewTraceDict()
		traces.Add("spheres", spheres)
		traces.Add("discs", discs)
		scenes := vis.NewSceneDict()
		scenes.Add("scene", traces)
		return vis.PlotScene(scenes, opts)
	default:
		return nil, fmt.Errorf("unknown -mode %q", f.mode)
	}
}

func writeFigure(fig *figure.Figure, format, output string) error {
	title := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))

	if format == "png" {
		n, err := export.WritePreviewPNGs(fig, output)
		if err != nil {
			return err
		}
		log.Printf("✓ Wrote %d previews to %s", n, output)
		return nil
	}

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	switch format {
	case "json":
		err = fig.WriteJSON(out)
	case "html":
		err = fig.WriteHTML(out, title)
	case "echarts":
		err = export.RenderECharts(fig, title, out)
	default:
		return fmt.Errorf("unknown -format %q", format)
	}
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	log.Printf("✓ Created: %s", output)
	return nil
}

func run(args []string) error {
	fs := flag.NewFlagSet("scene-plot", flag.ContinueOnError)
	f, err := parseFlags(fs, args)
	if err != nil {
		return err
	}
	if f.version {
		fmt.Println(version.String())
		return nil
	}

	if f.useZap {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("create zap logger: %w", err)
		}
		defer logger.Sync()
		monitoring.UseZap(logger)
		defer monitoring.UseZap(nil)
	}

	opts, err := f.options()
	if err != nil {
		return err
	}
	fig, err := buildFigure(f, opts)
	if err != nil {
		return err
	}

	if f.serve != "" {
		log.Printf("Serving %d subplots on %s", fig.NumScenes(), f.serve)
		return http.ListenAndServe(f.serve, export.NewServer(fig, "scene-plot"))
	}
	return writeFigure(fig, f.format, f.output)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("scene-plot: %v", err)
	}
}
