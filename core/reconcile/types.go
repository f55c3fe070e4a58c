package reconcile

// OutcomeKind tags the result of reconciling a single item.
type OutcomeKind string

const (
	// OutcomeCreated means the item did not exist and was created.
	OutcomeCreated OutcomeKind = "created"
	// OutcomeUpdated means an existing record was overwritten.
	OutcomeUpdated OutcomeKind = "updated"
	// OutcomeFailed means processing the item failed; the run continues.
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome is the tagged result of processing one item.
type Outcome struct {
	// Key identifies the item (the normalized entity key when known).
	Key string `json:"key"`

	// Kind is the result tag.
	Kind OutcomeKind `json:"kind"`

	// Reason describes why a failed item failed. Empty otherwise.
	Reason string `json:"reason,omitempty"`

	// Err is the underlying failure, if any.
	Err error `json:"-"`
}

// Created returns a created outcome for key.
func Created(key string) Outcome {
	return Outcome{Key: key, Kind: OutcomeCreated}
}

// Updated returns an updated outcome for key.
func Updated(key string) Outcome {
	return Outcome{Key: key, Kind: OutcomeUpdated}
}

// Failed returns a failed outcome for key carrying err as the reason.
func Failed(key string, err error) Outcome {
	o := Outcome{Key: key, Kind: OutcomeFailed, Err: err}
	if err != nil {
		o.Reason = err.Error()
	}
	return o
}

// Succeeded reports whether the outcome committed a write.
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeCreated || o.Kind == OutcomeUpdated
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// Created counts newly created records.
	Created int `json:"created"`

	// Updated counts overwritten records.
	Updated int `json:"updated"`

	// Failed counts items whose processing failed.
	Failed int `json:"failed"`

	// Total is the number of input items.
	Total int `json:"total"`
}

// Options controls how a run is batched.
type Options struct {
	// BatchSize is the number of consecutive items per batch. Defaults to DefaultBatchSize.
	BatchSize int

	// Concurrency bounds in-flight items within a batch. Zero or a value above
	// BatchSize means one goroutine per item.
	Concurrency int

	// OnBatch, if set, is called after each batch settles with its outcomes.
	OnBatch func(index int, outcomes []Outcome)
}

// DefaultBatchSize is the batch size used when Options.BatchSize is not set.
const DefaultBatchSize = 10

// Config is the configurable part of Options.
type Config struct {
	// BatchSize is the number of items processed together.
	BatchSize int `mapstructure:"batch_size" default:"10"`

	// Concurrency bounds in-flight items per batch. Zero means the batch size.
	Concurrency int `mapstructure:"concurrency" default:"10"`
}

// Options returns run options for cfg.
func (c Config) Options() Options {
	return Options{BatchSize: c.BatchSize, Concurrency: c.Concurrency}
}
