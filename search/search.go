// Package search drives the enumerative synthesis loop: try every
// formula of size 1, then 2, then 3, ..., against the sample, returning
// the first one found consistent. It is the only package in this
// module that performs CPU-bound fan-out; I/O happens only at its
// boundary (the sample has already been loaded, the result is handed
// back to the caller to print or persist).
package search

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hsp-iit/learn-ltl/enumerate"
	"github.com/hsp-iit/learn-ltl/ltl"
	"github.com/hsp-iit/learn-ltl/sample"
	"github.com/hsp-iit/learn-ltl/shape"
)

// defaultParallelThreshold is the size below which fan-out overhead
// exceeds the work it would save, per the concurrency model's
// recommendation; sizes below it always run sequentially even when
// Parallel is set.
const defaultParallelThreshold = 6

// defaultChunkSize is how many candidates a single dispatched task
// evaluates before the next candidate is picked up, amortising
// goroutine-scheduling overhead across tens-to-hundreds of candidates
// per task, per the design notes.
const defaultChunkSize = 128

// Driver holds the search's optional knobs. The zero value is a usable
// sequential, unbounded, silent driver.
type Driver struct {
	// Parallel enables data-parallel candidate evaluation within a
	// size, once that size reaches ParallelThreshold.
	Parallel bool

	// ParallelThreshold overrides defaultParallelThreshold when non-zero.
	ParallelThreshold int

	// Workers overrides runtime.GOMAXPROCS(0) as the parallel fan-out
	// width when non-zero.
	Workers int

	// MaxSize, when non-zero, bounds the search: sizes beyond it are
	// never tried and Search returns (nil, false).
	MaxSize int

	// Logger, when non-nil, receives one Info line per size before that
	// size is enumerated, and nothing else: the hot loop has no other
	// observable side effect.
	Logger *zap.Logger
}

// Search runs the enumerative loop against s: size 1, 2, 3, ..., each
// size's candidates checked against s.IsConsistent, stopping at the
// first survivor. "Size" here is package shape's generation index, the
// same index MaxSize bounds; a returned formula's own Size() (its leaf
// count) can be smaller, since a skeleton with a unary node sits at a
// higher generation index than its leaf count. It returns (nil, false)
// immediately, without invoking the enumerator, when s.IsSolvable() is
// false.
func (d *Driver) Search(s *sample.Sample) (*ltl.Formula, bool, error) {
	if !s.IsSolvable() {
		return nil, false, nil
	}
	vars := s.Vars()
	threshold := d.ParallelThreshold
	if threshold == 0 {
		threshold = defaultParallelThreshold
	}
	e := enumerate.New(vars)

	for size := 1; d.MaxSize == 0 || size <= d.MaxSize; size++ {
		if d.Logger != nil {
			d.Logger.Info("searching size", zap.Int("size", size))
		}

		var (
			found *ltl.Formula
			err   error
		)
		if d.Parallel && size >= threshold {
			found, err = d.searchParallel(e, size, s)
		} else {
			found = searchSequential(e, size, s)
		}
		if err != nil {
			return nil, false, fmt.Errorf("search: size %d: %w", size, err)
		}
		if found != nil {
			return found, true, nil
		}
	}
	return nil, false, nil
}

// searchSequential tries every candidate of the given size, in the
// deterministic enumeration order of packages shape/enumerate, and
// returns the first consistent one. Sequential mode is what makes
// search reproducible: the same sample always yields the same witness.
func searchSequential(e *enumerate.Enumerator, size int, s *sample.Sample) *ltl.Formula {
	for _, k := range shape.Skeletons(size) {
		for _, f := range e.Label(k) {
			if s.IsConsistent(f) {
				return f
			}
		}
	}
	return nil
}

// searchParallel fans candidate chunks out across a bounded worker
// pool and returns any consistent formula of this size — not
// necessarily the lexicographically first one. Outstanding work is
// cancelled cooperatively as soon as one worker finds a witness, via a
// shared atomic flag plus context cancellation; work for a *later*
// size is never started, since Search only calls this once per size
// and waits for it to finish first.
func (d *Driver) searchParallel(e *enumerate.Enumerator, size int, s *sample.Sample) (*ltl.Formula, error) {
	var candidates []*ltl.Formula
	for _, k := range shape.Skeletons(size) {
		candidates = append(candidates, e.Label(k)...)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	workers := d.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	var found atomic.Bool
	var resultMu sync.Mutex
	var result *ltl.Formula

	var errsMu sync.Mutex
	var errs error

	for start := 0; start < len(candidates); start += defaultChunkSize {
		end := start + defaultChunkSize
		if end > len(candidates) {
			end = len(candidates)
		}
		chunk := candidates[start:end]

		g.Go(func() (rerr error) {
			if err := sem.Acquire(gctx, 1); err != nil {
				return nil // cancelled before we even started: not a failure
			}
			defer sem.Release(1)
			defer func() {
				if r := recover(); r != nil {
					errsMu.Lock()
					errs = multierr.Append(errs, fmt.Errorf("search worker panic: %v", r))
					errsMu.Unlock()
				}
			}()

			for _, f := range chunk {
				if found.Load() {
					return nil
				}
				select {
				case <-gctx.Done():
					return nil
				default:
				}
				if s.IsConsistent(f) {
					if found.CompareAndSwap(false, true) {
						resultMu.Lock()
						result = f
						resultMu.Unlock()
						cancel()
					}
					return nil
				}
			}
			return nil
		})
	}

	_ = g.Wait() // individual tasks never return a hard error; panics are aggregated into errs

	errsMu.Lock()
	defer errsMu.Unlock()
	return result, errs
}
