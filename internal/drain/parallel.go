package drain

import (
	"sync"

	"github.com/san-kum/drainsim/internal/fluid"
)

// Pair holds an idealized run (Cd = 1, water) and a realistic run
// (caller's Cd and fluid) over the same tank geometry. The two buckets
// share nothing mutable, so the runs may proceed concurrently; the
// only synchronization point is the join before their results are
// compared.
type Pair struct {
	Ideal     *Bucket
	Realistic *Bucket
}

func NewPair(r1, r2, volumeLiters, outletDiameter, dischargeCoefficient float64, f fluid.Properties) (*Pair, error) {
	ideal, err := NewBucket(r1, r2, volumeLiters, outletDiameter, 1.0, fluid.Water())
	if err != nil {
		return nil, err
	}
	realistic, err := NewBucket(r1, r2, volumeLiters, outletDiameter, dischargeCoefficient, f)
	if err != nil {
		return nil, err
	}
	return &Pair{Ideal: ideal, Realistic: realistic}, nil
}

type PairResult struct {
	Ideal     *Result
	Realistic *Result
}

// Run executes both drainages with the same time step and joins.
func (p *Pair) Run(dt float64) (*PairResult, error) {
	var (
		wg   sync.WaitGroup
		res  [2]*Result
		errs [2]error
	)

	run := func(idx int, b *Bucket) {
		defer wg.Done()
		res[idx], errs[idx] = b.Simulate(dt)
	}

	wg.Add(2)
	go run(0, p.Ideal)
	go run(1, p.Realistic)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return &PairResult{Ideal: res[0], Realistic: res[1]}, nil
}
