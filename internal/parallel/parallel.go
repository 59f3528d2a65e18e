// Package parallel fans independent jobs out over a bounded set of goroutines.
//
// Jobs must not share mutable state. In minigrad each job owns its own
// expression trees, so the single-owner rule of the autodiff engine holds
// inside every goroutine.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of goroutines; <= 0 means runtime.NumCPU.
}

// DefaultConfig returns a config using every CPU.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// For executes f(i) for i in [0, n).
// Falls back to sequential execution if parallelism is disabled or n < 2.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if !cfg.Enabled || n < 2 || workers == 1 {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}

// ForErr is For for jobs that can fail. Every job runs; the returned error
// joins the failures in index order, or is nil if all succeeded.
func ForErr(n int, f func(i int) error, cfg Config) error {
	errs := make([]error, n)
	For(n, func(i int) {
		errs[i] = f(i)
	}, cfg)
	return errors.Join(errs...)
}
