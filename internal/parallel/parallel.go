// Package parallel provides the chunked parallel-for used by the CPU
// backend's batched kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split across goroutines.
type Config struct {
	Enabled      bool // Whether to run chunks concurrently at all.
	NumWorkers   int  // Upper bound on concurrent goroutines.
	MinChunkSize int  // Minimum items per goroutine to amortize spawn cost.
}

// DefaultConfig sizes the pool from the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// WithWorkers caps the worker count. A value < 1 disables parallelism.
func (c Config) WithWorkers(n int) Config {
	if n < 1 {
		c.Enabled = false
		c.NumWorkers = 1
		return c
	}
	c.NumWorkers = n
	c.Enabled = n > 1
	return c
}

// For executes f(i) for i in [0, n), splitting the range into chunks
// across workers. Each index is visited exactly once; f must only write
// to regions owned by its index. Falls back to a sequential loop when
// parallelism is disabled or n is too small to be worth it.
func For(n int, cfg Config, f func(i int)) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	chunk := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
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
