// Package parallel splits index ranges across CPU cores and provides
// deterministic sum reductions on top of that partitioning.
package parallel

import (
	"runtime"
	"sync"
)

// chunkSpan returns the per-worker chunk length used to partition items
// across the available CPUs. Every helper in this package partitions through
// it, so chunk boundaries are identical wherever a range is split.
func chunkSpan(items int) int {
	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	return (items + numWorkers - 1) / numWorkers
}

// Parallelize splits [0, items) into per-CPU chunks and runs fn on each
// chunk in its own goroutine, waiting for all of them to finish.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	chunkSize := chunkSpan(items)

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn in parallel only when items exceeds the
// threshold; below it the whole range is handled in a single call.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}

	Parallelize(items, fn)
}

// SumWithThreshold computes the sum of per-chunk partial sums returned by fn
// over [0, items). Below the threshold the reduction runs sequentially.
// Each chunk's partial lands in a slot derived from its start index and the
// slots are combined in chunk order, so the result is deterministic for a
// fixed item count and CPU count.
func SumWithThreshold(items, threshold int, fn func(start, end int) float64) float64 {
	if items <= threshold {
		return fn(0, items)
	}

	chunkSize := chunkSpan(items)
	partials := make([]float64, numChunks(items, chunkSize))
	Parallelize(items, func(start, end int) {
		partials[start/chunkSize] = fn(start, end)
	})

	var total float64
	for _, p := range partials {
		total += p
	}
	return total
}

// Sum2WithThreshold is SumWithThreshold for functions that produce two
// partial sums per chunk, avoiding a second pass over the data.
func Sum2WithThreshold(items, threshold int, fn func(start, end int) (float64, float64)) (float64, float64) {
	if items <= threshold {
		return fn(0, items)
	}

	chunkSize := chunkSpan(items)
	chunks := numChunks(items, chunkSize)
	firsts := make([]float64, chunks)
	seconds := make([]float64, chunks)
	Parallelize(items, func(start, end int) {
		idx := start / chunkSize
		firsts[idx], seconds[idx] = fn(start, end)
	})

	var totalFirst, totalSecond float64
	for i := range firsts {
		totalFirst += firsts[i]
		totalSecond += seconds[i]
	}
	return totalFirst, totalSecond
}

func numChunks(items, chunkSize int) int {
	return (items + chunkSize - 1) / chunkSize
}
