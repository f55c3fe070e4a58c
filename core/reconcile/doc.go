// Package reconcile provides the batch engine that reconciles an incoming dataset
// against a persisted store.
//
// The engine is agnostic of the entity being reconciled. Callers supply a ProcessFunc
// that decides, for one item, whether to create or update a record and reports the
// result as a tagged Outcome (Created, Updated or Failed). The engine only owns the
// scheduling:
//
//   - Partition splits the dataset into consecutive fixed-size batches (10 by default),
//     preserving input order across batches.
//   - Run processes batches strictly one after another. Inside a batch every item runs
//     in its own goroutine (optionally bounded by Options.Concurrency), and the next
//     batch starts only when all items of the current one have settled.
//   - A failing or panicking item is recorded as Failed and never aborts the batch or
//     the run.
//   - Fold turns the outcome list into a Summary; created + updated + failed == total.
//
// # Usage Example
//
//	outcomes := reconcile.Run(ctx, incoming, reconcile.Options{BatchSize: 10}, svc.reconcileCountry)
//	summary := reconcile.Fold(outcomes)
package reconcile
