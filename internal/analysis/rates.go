package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/drainsim/internal/drain"
)

// Rates estimates dh/dt at every trace sample by finite differences:
// central differences in the interior, one-sided at the two
// boundaries. The result has the same length as the trace.
func Rates(trace drain.Trace) []float64 {
	n := len(trace)
	out := make([]float64, n)
	if n < 2 {
		return out
	}

	out[0] = (trace[1].Height - trace[0].Height) / (trace[1].Time - trace[0].Time)
	for i := 1; i < n-1; i++ {
		out[i] = (trace[i+1].Height - trace[i-1].Height) / (trace[i+1].Time - trace[i-1].Time)
	}
	out[n-1] = (trace[n-1].Height - trace[n-2].Height) / (trace[n-1].Time - trace[n-2].Time)

	return out
}

// Summary condenses a trace and its rate series into a few scalars.
type Summary struct {
	DrainTime   float64 // time of the last sample (s)
	FinalHeight float64 // m
	PeakRate    float64 // fastest drop, most negative dh/dt (m/s)
	MeanRate    float64 // m/s
}

func Summarize(trace drain.Trace) Summary {
	rates := Rates(trace)
	return Summary{
		DrainTime:   trace.DrainTime(),
		FinalHeight: trace.Final().Height,
		PeakRate:    floats.Min(rates),
		MeanRate:    stat.Mean(rates, nil),
	}
}
