package metrics

import (
	"math"
	"testing"
)

func TestPeakOutflow(t *testing.T) {
	m := NewPeakOutflow()
	if m.Name() != "peak_outflow" {
		t.Errorf("name: got %s", m.Name())
	}

	for _, q := range []float64{0.1, 0.5, 0.3} {
		m.Observe(0, 0, q)
	}
	if m.Value() != 0.5 {
		t.Errorf("peak: got %g, want 0.5", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the peak")
	}
}

func TestMeanOutflow(t *testing.T) {
	m := NewMeanOutflow()

	if m.Value() != 0 {
		t.Error("mean with no samples should be 0")
	}

	for _, q := range []float64{0.2, 0.4, 0.6} {
		m.Observe(0, 0, q)
	}
	if math.Abs(m.Value()-0.4) > 1e-12 {
		t.Errorf("mean: got %g, want 0.4", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the mean")
	}
}

func TestDrainedVolume(t *testing.T) {
	m := NewDrainedVolume(0.5)

	// Constant 0.01 m³/s for 4 observed steps of 0.5 s.
	for i := 0; i < 4; i++ {
		m.Observe(float64(i)*0.5, 1.0, 0.01)
	}
	if math.Abs(m.Value()-0.02) > 1e-12 {
		t.Errorf("volume: got %g, want 0.02", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the total")
	}
}
