package simulation

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum population to fork the step across
// goroutines. Below this, single-threaded is faster than the goroutine
// overhead.
const parallelThreshold = 64

// stepParallel fork-joins the per-boid query-update-wrap work across
// contiguous index chunks, one per available CPU. Every worker reads the same
// immutable index and snapshot built by Step and writes only its own boids'
// slots, so the result is identical to the serial loop.
func (f *Flock) stepParallel() error {
	n := len(f.boids)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	errs := make([]error, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, n)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if err := f.stepBoid(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, start, end)
	}
	wg.Wait()

	// Report the error from the lowest chunk, matching the serial loop's
	// first-failure behavior as closely as a joined run can.
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
