package storage

import (
	"math"
	"testing"

	"github.com/san-kum/drainsim/internal/config"
	"github.com/san-kum/drainsim/internal/drain"
)

func testResult() *drain.Result {
	return &drain.Result{
		Trace: drain.Trace{
			{Time: 0, Height: 0.2010},
			{Time: 0.05, Height: 0.2002},
			{Time: 0.10, Height: 0.1994},
		},
		Reason:  drain.TimedOut,
		Metrics: map[string]float64{"peak_outflow": 1.56e-4},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	cfg := config.DefaultConfig()
	result := testResult()

	runID, err := st.Save(cfg, result)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != runID {
		t.Errorf("id: got %s, want %s", meta.ID, runID)
	}
	if meta.Fluid != cfg.Flow.Fluid {
		t.Errorf("fluid: got %s", meta.Fluid)
	}
	if meta.Reason != "timed_out" {
		t.Errorf("reason: got %s", meta.Reason)
	}
	if meta.Samples != 3 {
		t.Errorf("samples: got %d", meta.Samples)
	}
	if math.Abs(meta.Metrics["peak_outflow"]-1.56e-4) > 1e-12 {
		t.Errorf("metrics not round-tripped: %+v", meta.Metrics)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(trace) != len(result.Trace) {
		t.Fatalf("trace length: got %d, want %d", len(trace), len(result.Trace))
	}
	for i := range trace {
		if math.Abs(trace[i].Time-result.Trace[i].Time) > 1e-6 {
			t.Errorf("sample %d time: got %g, want %g", i, trace[i].Time, result.Trace[i].Time)
		}
		if math.Abs(trace[i].Height-result.Trace[i].Height) > 1e-9 {
			t.Errorf("sample %d height: got %g, want %g", i, trace[i].Height, result.Trace[i].Height)
		}
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}

	cfg := config.DefaultConfig()
	if _, err := st.Save(cfg, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := st.Save(cfg, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestList_MissingDir(t *testing.T) {
	st := New("does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("list of missing dir should not error: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoad_Unknown(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope_123"); err == nil {
		t.Error("expected error for unknown run")
	}
}
