package export

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/httputil"
)

// Server serves one finished figure in several renderings:
//
//	/             plotly.js page
//	/figure.json  plotly.js {data, layout} JSON
//	/echarts      go-echarts page
//	/preview.png  XY projection of one scene (?scene=N, 1-based, default 1)
type Server struct {
	fig   *figure.Figure
	title string
	mux   *http.ServeMux
}

// NewServer returns a Server for fig.
func NewServer(fig *figure.Figure, title string) *Server {
	s := &Server{fig: fig, title: title, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handlePlotly)
	s.mux.HandleFunc("GET /figure.json", s.handleJSON)
	s.mux.HandleFunc("GET /echarts", s.handleECharts)
	s.mux.HandleFunc("GET /preview.png", s.handlePreview)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handlePlotly(w http.ResponseWriter, r *http.Request) {
	httputil.WriteRendered(w, "text/html; charset=utf-8", func(out io.Writer) error {
		return s.fig.WriteHTML(out, s.title)
	})
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	httputil.WriteRendered(w, "application/json", s.fig.WriteJSON)
}

func (s *Server) handleECharts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteRendered(w, "text/html; charset=utf-8", func(out io.Writer) error {
		return RenderECharts(s.fig, s.title, out)
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	scene := 1
	if v := r.URL.Query().Get("scene"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > s.fig.NumScenes() {
			httputil.BadRequest(w, fmt.Sprintf("scene must be between 1 and %d", s.fig.NumScenes()))
			return
		}
		scene = n
	}

	p, err := PreviewPlot(s.fig, scene-1)
	if err != nil {
		httputil.NotFound(w, err.Error())
		return
	}
	httputil.WriteRendered(w, "image/png", func(out io.Writer) error {
		wt, err := p.WriterTo(PreviewSize, PreviewSize, "png")
		if err != nil {
			return err
		}
		_, err = wt.WriteTo(out)
		return err
	})
}
