package config

import "runtime"

// Worker resolution chain (highest priority first):
//   1. CLI flag (--workers)
//   2. Hardware estimation (this file)

// ApplyAdaptiveWorkers fills a zero worker count from the hardware, leaving
// user-specified values untouched.
func ApplyAdaptiveWorkers(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers(cfg.MaxN)
	}
	return cfg
}

// EstimateOptimalWorkers provides a heuristic worker count for a batch up to
// maxN. Rows are independent, but each row costs O(n²), so small batches are
// cheaper sequentially than the goroutine fan-out.
func EstimateOptimalWorkers(maxN int) int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1 || maxN < 32:
		return 1 // Sequential
	case maxN < 128:
		return min(numCPU, 4)
	default:
		return numCPU
	}
}
