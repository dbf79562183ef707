package drain

// Sample is one point of a drain trace.
type Sample struct {
	Time   float64 // s
	Height float64 // m
}

// Trace is the time-ordered height series of one run, starting at
// (0, full height). It is append-only while the run steps and
// read-only to every downstream consumer.
type Trace []Sample

func (tr Trace) Times() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Time
	}
	return out
}

func (tr Trace) Heights() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.Height
	}
	return out
}

// Final returns the last sample. A finished trace always has at least
// the initial sample.
func (tr Trace) Final() Sample {
	return tr[len(tr)-1]
}

// DrainTime returns the time of the last sample.
func (tr Trace) DrainTime() float64 {
	return tr.Final().Time
}

// Reason records how a run ended.
type Reason int

const (
	// Drained means the height reached the near-zero threshold.
	Drained Reason = iota
	// TimedOut means the safety cap elapsed before the tank emptied.
	// Callers must not treat this as a completed drain.
	TimedOut
)

func (r Reason) String() string {
	switch r {
	case Drained:
		return "drained"
	case TimedOut:
		return "timed_out"
	}
	return "unknown"
}

// Result is the artifact of one run: the trace, how it ended, and any
// metric values accumulated along the way.
type Result struct {
	Trace   Trace
	Reason  Reason
	Metrics map[string]float64
}

// Metric accumulates a scalar over the steps of a run. Observe sees
// the pre-step time, height and outlet flow rate.
type Metric interface {
	Name() string
	Observe(t, h, q float64)
	Value() float64
	Reset()
}

// Observer is notified of each step without contributing a value.
type Observer interface {
	OnStep(t, h, q float64)
}
