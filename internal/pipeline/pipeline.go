// internal/pipeline/pipeline.go

// Package pipeline fans per-sequence analysis out across a worker pool and
// folds the partial results into one corpus-wide aggregate.
//
// Each sequence is analyzed by exactly one worker into its own result slot;
// no state is shared during per-sequence work. The fold runs single-threaded
// after every worker has finished, so the aggregate is identical for any
// worker count and any completion order.
package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"dnastat-core/stats"
)

// Analyzer is the minimal capability the pipeline needs. Fakes in tests can
// satisfy this.
type Analyzer interface {
	Analyze(idx int, raw string) stats.SequenceResult
}

// Config controls the fan-out.
type Config struct {
	Threads int // worker goroutines (<=0 = all CPUs)
}

// WorkerError reports an unexpected fault while analyzing one sequence,
// carrying the corpus position needed to reproduce it. It aborts the run:
// a partial aggregate is never returned.
type WorkerError struct {
	Index int
	Cause error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("worker failed on sequence %d: %v", e.Index, e.Cause)
}

func (e *WorkerError) Unwrap() error { return e.Cause }

// Run analyzes every sequence and returns the merged aggregate. Invalid
// sequences are counted and excluded, not errors. The first worker fault
// cancels the remaining work and is returned as a *WorkerError.
func Run(ctx context.Context, cfg Config, sequences []string, an Analyzer) (*stats.Aggregate, error) {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	results := make([]stats.SequenceResult, len(sequences))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)
	for i, s := range sequences {
		i, s := i, s
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = &WorkerError{Index: i, Cause: fmt.Errorf("panic: %v", p)}
				}
			}()
			if e := gctx.Err(); e != nil {
				return e
			}
			results[i] = an.Analyze(i, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge after the barrier, single-threaded, in corpus order.
	agg := stats.NewAggregate()
	for i := range results {
		agg.Absorb(results[i])
	}
	agg.SortPalindromes()
	return agg, nil
}
