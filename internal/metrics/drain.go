package metrics

// Per-step accumulators over a drainage run. Each implements
// drain.Metric; Observe sees the pre-step time, height and outlet
// flow rate.

type PeakOutflow struct {
	peak float64
}

func NewPeakOutflow() *PeakOutflow {
	return &PeakOutflow{}
}

func (p *PeakOutflow) Name() string { return "peak_outflow" }

func (p *PeakOutflow) Observe(t, h, q float64) {
	if q > p.peak {
		p.peak = q
	}
}

func (p *PeakOutflow) Value() float64 { return p.peak }

func (p *PeakOutflow) Reset() { p.peak = 0 }

type MeanOutflow struct {
	sum     float64
	samples int
}

func NewMeanOutflow() *MeanOutflow {
	return &MeanOutflow{}
}

func (m *MeanOutflow) Name() string { return "mean_outflow" }

func (m *MeanOutflow) Observe(t, h, q float64) {
	m.sum += q
	m.samples++
}

func (m *MeanOutflow) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanOutflow) Reset() {
	m.sum = 0
	m.samples = 0
}

// DrainedVolume integrates the outflow, sum of q*dt, over the run. For
// a run that drains completely this approaches the tank volume.
type DrainedVolume struct {
	dt    float64
	total float64
}

func NewDrainedVolume(dt float64) *DrainedVolume {
	return &DrainedVolume{dt: dt}
}

func (d *DrainedVolume) Name() string { return "drained_volume" }

func (d *DrainedVolume) Observe(t, h, q float64) {
	d.total += q * d.dt
}

func (d *DrainedVolume) Value() float64 { return d.total }

func (d *DrainedVolume) Reset() { d.total = 0 }
