// Package testutil provides shared test helpers and figure fixtures for the
// packages that consume finished figures.
package testutil

import (
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/banshee-data/sceneplot/internal/figure"
	"github.com/banshee-data/sceneplot/internal/geom"
	"github.com/banshee-data/sceneplot/internal/vis"
)

// NewTestRequest creates an HTTP request for testing.
func NewTestRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

// NewTestRecorder creates a response recorder for testing.
func NewTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// AssertStatusCode checks that the response status code matches expected.
func AssertStatusCode(t testing.TB, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("status code = %d, want %d", got, want)
	}
}

// AssertContentType checks the response's Content-Type starts with want.
func AssertContentType(t testing.TB, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, want) {
		t.Errorf("Content-Type = %q, want %q", got, want)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// SampleFigure returns a deterministic figure with n subplots side by side.
// Each subplot holds a coloured sphere ("trace{k}-1") and an RGBA point disc
// ("trace{k}-2") of 200 points.
func SampleFigure(t testing.TB, n int) *figure.Figure {
	t.Helper()
	gen := geom.NewSyntheticGenerator(1)
	opts := vis.DefaultBatchOptions()
	opts.Scene.NCols = n
	opts.Scene.Rand = rand.NewPCG(1, 2)

	fig, err := vis.PlotBatchIndividually(
		[]vis.Structure{gen.SphereBatch(n), gen.DiscBatch(n, 200, 4)},
		opts,
	)
	AssertNoError(t, err)
	return fig
}
