// SPDX-License-Identifier: MIT
// Package matrix: data-parallel fan-out helper shared by Mul, MatVec and
// Inverse. The contract is determinism-by-index: every unit writes only the
// output cells of its own index, so the merged result is bit-for-bit
// identical to a sequential run regardless of goroutine scheduling.

package matrix

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// workerLimit caps the number of goroutines a single kernel call may fan out.
// GOMAXPROCS is the natural ceiling for CPU-bound units; there is no I/O to
// overlap, so more workers only add scheduling overhead.
func workerLimit() int {
	return runtime.GOMAXPROCS(0)
}

// forEachIndex dispatches fn(0), fn(1), ..., fn(n-1) across an errgroup and
// waits for completion. Callers guarantee fn(i) touches only output index i,
// which is what makes the merged result deterministic.
//
// Preconditions must be validated BEFORE calling, so no partial work happens
// on invalid input. The first non-nil error cancels nothing mid-write (units
// are independent) but is returned after Wait.
// Time: O(n * cost(fn)) work, spread over workerLimit goroutines.
func forEachIndex(n int, fn func(i int) error) error {
	g := new(errgroup.Group)
	// Limit concurrency to the CPU count (see workerLimit).
	g.SetLimit(workerLimit())

	for i := 0; i < n; i++ {
		i := i // pre-Go 1.22 loop variable capture
		g.Go(func() error {
			return fn(i)
		})
	}

	return g.Wait()
}
