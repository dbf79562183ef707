package drain

import (
	"fmt"
	"math"

	"github.com/san-kum/drainsim/internal/flow"
	"github.com/san-kum/drainsim/internal/fluid"
	"github.com/san-kum/drainsim/internal/tank"
)

const (
	// DrainedThreshold is the height below which the tank counts as empty.
	DrainedThreshold = 1e-6 // m

	// MaxDrainTime is the hard safety cap on simulated time.
	MaxDrainTime = 10000.0 // s
)

// Bucket composes a frustum tank with an outlet flow model. Geometry
// and flow parameters are fixed at construction; all validation
// happens here, so a run either starts clean or does not start.
type Bucket struct {
	geom      *tank.Frustum
	flow      *flow.Model
	metrics   []Metric
	observers []Observer
}

func NewBucket(r1, r2, volumeLiters, outletDiameter, dischargeCoefficient float64, f fluid.Properties) (*Bucket, error) {
	geom, err := tank.NewFrustum(r1, r2, volumeLiters)
	if err != nil {
		return nil, err
	}
	fm, err := flow.NewModel(outletDiameter, dischargeCoefficient, f)
	if err != nil {
		return nil, err
	}
	return &Bucket{geom: geom, flow: fm}, nil
}

func (b *Bucket) Geometry() *tank.Frustum { return b.geom }
func (b *Bucket) Flow() *flow.Model       { return b.flow }

func (b *Bucket) AddMetric(m Metric)     { b.metrics = append(b.metrics, m) }
func (b *Bucket) AddObserver(o Observer) { b.observers = append(b.observers, o) }

// Simulate drains the bucket from full with the given fixed time step
// and returns the completed trace. The trace always contains at least
// the initial (0, height) sample. Fails fast on dt <= 0.
func (b *Bucket) Simulate(dt float64) (*Result, error) {
	if dt <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrTimeStep, dt)
	}

	for _, m := range b.metrics {
		m.Reset()
	}

	st := b.Stepper()
	trace := Trace{{Time: 0, Height: st.Height()}}
	for !st.Done() {
		trace = append(trace, st.Step(dt))
	}

	res := &Result{
		Trace:   trace,
		Reason:  st.Reason(),
		Metrics: make(map[string]float64),
	}
	for _, m := range b.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res, nil
}

// Stepper is the private running cursor of a drainage, exposed for
// callers that render between steps (the live view). A fresh Stepper
// starts at t = 0 with the tank full; it becomes terminal once drained
// or past the time cap and then ignores further Step calls.
type Stepper struct {
	b      *Bucket
	t      float64
	h      float64
	q      float64
	done   bool
	reason Reason
}

func (b *Bucket) Stepper() *Stepper {
	s := &Stepper{b: b, h: b.geom.Height()}
	if s.h <= DrainedThreshold {
		s.done = true
		s.reason = Drained
	}
	return s
}

func (s *Stepper) Time() float64   { return s.t }
func (s *Stepper) Height() float64 { return s.h }

// Rate returns the outlet flow rate of the most recent step.
func (s *Stepper) Rate() float64 { return s.q }

func (s *Stepper) Done() bool     { return s.done }
func (s *Stepper) Reason() Reason { return s.reason }

// Step advances one explicit Euler step and returns the new sample.
func (s *Stepper) Step(dt float64) Sample {
	if s.done {
		return Sample{Time: s.t, Height: s.h}
	}

	s.q = s.b.flow.Rate(s.h)
	for _, m := range s.b.metrics {
		m.Observe(s.t, s.h, s.q)
	}
	for _, o := range s.b.observers {
		o.OnStep(s.t, s.h, s.q)
	}

	// With r2 == 0 the cross-section vanishes at the drained limit;
	// treat the rate of change as zero there rather than dividing.
	a := s.b.geom.CrossSection(s.h)
	dhdt := 0.0
	if a > 0 {
		dhdt = -s.q / a
	}

	s.h = math.Max(0, s.h+dhdt*dt)
	s.t += dt

	if s.h <= DrainedThreshold {
		s.done = true
		s.reason = Drained
	} else if s.t > MaxDrainTime {
		s.done = true
		s.reason = TimedOut
	}

	return Sample{Time: s.t, Height: s.h}
}
