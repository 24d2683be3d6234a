package testutil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// recordingTB notes failures instead of stopping the test.
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Errorf(string, ...any) { r.failed = true }
func (r *recordingTB) Fatalf(string, ...any) { r.failed = true }
func (r *recordingTB) Fatal(...any)          { r.failed = true }

func TestAssertStatusCode(t *testing.T) {
	t.Parallel()

	ok := &recordingTB{TB: t}
	AssertStatusCode(ok, http.StatusOK, http.StatusOK)
	if ok.failed {
		t.Error("matching status codes reported a failure")
	}

	bad := &recordingTB{TB: t}
	AssertStatusCode(bad, http.StatusOK, http.StatusBadRequest)
	if !bad.failed {
		t.Error("mismatched status codes did not fail")
	}
}

func TestAssertContentType(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	rec.Header().Set("Content-Type", "text/html; charset=utf-8")

	ok := &recordingTB{TB: t}
	AssertContentType(ok, rec, "text/html")
	if ok.failed {
		t.Error("matching content type reported a failure")
	}

	bad := &recordingTB{TB: t}
	AssertContentType(bad, rec, "image/png")
	if !bad.failed {
		t.Error("mismatched content type did not fail")
	}
}

func TestAssertNoError(t *testing.T) {
	t.Parallel()

	ok := &recordingTB{TB: t}
	AssertNoError(ok, nil)
	if ok.failed {
		t.Error("nil error reported a failure")
	}

	bad := &recordingTB{TB: t}
	AssertNoError(bad, errors.New("boom"))
	if !bad.failed {
		t.Error("non-nil error did not fail")
	}
}

func TestAssertError(t *testing.T) {
	t.Parallel()

	ok := &recordingTB{TB: t}
	AssertError(ok, errors.New("expected"))
	if ok.failed {
		t.Error("non-nil error reported a failure")
	}

	bad := &recordingTB{TB: t}
	AssertError(bad, nil)
	if !bad.failed {
		t.Error("nil error did not fail")
	}
}

func TestSampleFigure(t *testing.T) {
	fig := SampleFigure(t, 2)
	if got := fig.NumScenes(); got != 2 {
		t.Fatalf("NumScenes() = %d, want 2", got)
	}
	if got := len(fig.Data); got != 4 {
		t.Fatalf("len(Data) = %d, want 4", got)
	}
	for i := 0; i < 2; i++ {
		if got := len(fig.TracesIn(i)); got != 2 {
			t.Errorf("scene %d has %d traces, want 2", i, got)
		}
	}
}

func TestNewTestRequest(t *testing.T) {
	req := NewTestRequest(http.MethodGet, "/preview.png?scene=2")
	if req.Method != http.MethodGet {
		t.Errorf("Method = %s, want GET", req.Method)
	}
	if got := req.URL.Query().Get("scene"); got != "2" {
		t.Errorf("scene = %q, want 2", got)
	}
	if rec := NewTestRecorder(); rec.Code != http.StatusOK {
		t.Errorf("fresh recorder code = %d, want 200", rec.Code)
	}
}
