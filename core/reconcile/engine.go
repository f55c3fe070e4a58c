package reconcile

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ProcessFunc reconciles a single item and reports its outcome.
// Implementations must not panic; a panic is recovered and recorded as a failure.
type ProcessFunc[T any] func(ctx context.Context, item T) Outcome

// Partition splits items into consecutive batches of at most size elements,
// preserving input order. A non-positive size falls back to DefaultBatchSize.
func Partition[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = DefaultBatchSize
	}
	batches := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		batches = append(batches, items[start:end])
	}
	return batches
}

// Run processes items batch by batch. Batches run strictly in sequence; the items of a
// batch run concurrently and batch N+1 starts only after every item of batch N settled.
// Item failures never abort the run. The returned outcomes are in input order.
func Run[T any](ctx context.Context, items []T, opts Options, process ProcessFunc[T]) []Outcome {
	outcomes := make([]Outcome, 0, len(items))

	offset := 0
	for index, batch := range Partition(items, opts.BatchSize) {
		results := runBatch(ctx, batch, offset, opts.Concurrency, process)
		if opts.OnBatch != nil {
			opts.OnBatch(index, results)
		}
		outcomes = append(outcomes, results...)
		offset += len(batch)
	}

	return outcomes
}

func runBatch[T any](ctx context.Context, batch []T, offset, concurrency int, process ProcessFunc[T]) []Outcome {
	results := make([]Outcome, len(batch))

	var g errgroup.Group
	if concurrency > 0 && concurrency < len(batch) {
		g.SetLimit(concurrency)
	}

	for i, item := range batch {
		g.Go(func() error {
			results[i] = safeProcess(ctx, item, offset+i, process)
			return nil
		})
	}

	// Workers never return errors; Wait only blocks until the batch settles.
	_ = g.Wait()

	return results
}

func safeProcess[T any](ctx context.Context, item T, position int, process ProcessFunc[T]) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = Failed(fmt.Sprintf("#%d", position), fmt.Errorf("panic: %v", r))
		}
	}()
	return process(ctx, item)
}

// Fold aggregates outcomes into a Summary. Total is the number of outcomes.
func Fold(outcomes []Outcome) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		switch o.Kind {
		case OutcomeCreated:
			summary.Created++
		case OutcomeUpdated:
			summary.Updated++
		default:
			summary.Failed++
		}
	}
	return summary
}

// Failures returns the failed outcomes, in input order.
func Failures(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Kind == OutcomeFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
