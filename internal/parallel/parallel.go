// Package parallel fans independent evaluations out over worker goroutines.
//
// Callers must give every task its own jets; nothing here synchronises access to
// shared values.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum tasks per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
// A gradient check is far heavier than a single arithmetic kernel, so chunks are small.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4,
	}
}

// Sequential returns a config that runs every task on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for i in [0, n).
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	workers := cfg.NumWorkers
	if workers < 1 {
		workers = 1
	}
	if !cfg.Enabled || workers == 1 || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

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

// Map evaluates f for every index in [0, n) and returns the results in index order.
func Map[R any](n int, f func(i int) R, cfg Config) []R {
	out := make([]R, n)
	For(n, func(i int) {
		out[i] = f(i)
	}, cfg)
	return out
}
