package qecc

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// A SamplerOpts packages together the arguments necessary to construct a
// new Sampler. The zero value is usable: it produces a single-threaded
// sampler seeded from the system clock.
type SamplerOpts struct {
	// Rand provides the base source of randomness. This may use pRNG;
	// each worker derives an independent generator by drawing a seed
	// against it, so a seeded Rand makes estimates reproducible even
	// across parallel runs. If nil, a clock-seeded source is used.
	Rand *rand.Rand

	// Workers specifies the number of goroutines to split trials
	// across. Each worker samples with its own generator instance.
	// Defaults to DefaultWorkers.
	Workers int
}

// A Sampler produces Monte Carlo estimates of block error probabilities.
// It is independent of the analytic approximation in BlockError, which
// makes it useful for cross-validating the two.
type Sampler struct {
	rand    *rand.Rand
	workers int
}

// NewSampler returns a new Sampler, configured in accordance with opts,
// or an error if the options are nonsensical.
func NewSampler(opts SamplerOpts) (*Sampler, error) {
	if opts.Workers < 0 {
		return nil, fmt.Errorf("workers must be non-negative, got %d", opts.Workers)
	}
	workers := opts.Workers
	if workers == 0 {
		workers = DefaultWorkers
	}
	r := opts.Rand
	if r == nil {
		r = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Sampler{rand: r, workers: workers}, nil
}

// BlockError estimates the block error probability for a code correcting
// up to t errors of each type on n qubits at depolarizing rate p, by
// sampling `trials` random error patterns and measuring the fraction
// whose X or Z error count exceeds t.
//
// Rather than flipping n coins per channel, each trial draws the two
// channel error counts directly from a Binomial(n, p/2) distribution,
// which is identical in distribution and much cheaper for large n. The
// estimate carries sampling noise on the order of 1/sqrt(trials).
func (s *Sampler) BlockError(n, t int, p float64, trials int) (float64, error) {
	if err := checkArgs(n, t, p); err != nil {
		return 0, err
	}
	if trials <= 0 {
		return 0, fmt.Errorf("trials must be positive, got %d", trials)
	}

	workers := s.workers
	if workers > trials {
		workers = trials
	}
	per := trials / workers
	rem := trials % workers

	var wg sync.WaitGroup
	results := make(chan int, workers)
	for i := 0; i < workers; i++ {
		count := per
		if i == workers-1 {
			count += rem
		}
		// Seeds are drawn serially here so that worker generators are
		// independent of scheduling order.
		src := rand.NewSource(s.rand.Uint64())
		wg.Add(1)
		go func(count int, src rand.Source) {
			defer wg.Done()
			results <- sampleFailures(n, t, p/2, count, src)
		}(count, src)
	}
	wg.Wait()
	close(results)

	failures := 0
	for f := range results {
		failures += f
	}
	return float64(failures) / float64(trials), nil
}

func sampleFailures(n, t int, pxz float64, trials int, src rand.Source) int {
	bin := distuv.Binomial{N: float64(n), P: pxz, Src: src}
	failures := 0
	for i := 0; i < trials; i++ {
		if int(bin.Rand()) > t || int(bin.Rand()) > t {
			failures++
		}
	}
	return failures
}

// MonteCarloBlockError estimates the block error probability using a
// single-threaded, clock-seeded Sampler. Callers wanting reproducible
// estimates or parallel sampling should construct a Sampler themselves.
func MonteCarloBlockError(n, t int, p float64, trials int) (float64, error) {
	s, err := NewSampler(SamplerOpts{})
	if err != nil {
		return 0, err
	}
	return s.BlockError(n, t, p, trials)
}
