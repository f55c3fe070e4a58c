package gdp

import (
	"math/rand/v2"
	"sync"
)

const (
	// MinMultiplier is the inclusive lower bound of the random multiplier.
	MinMultiplier = 1000.0
	// MaxMultiplier is the upper bound of the random multiplier.
	MaxMultiplier = 2000.0
)

// Estimator derives an estimated GDP from population and exchange rate.
// Results are intentionally non-deterministic.
type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator creates an estimator drawing from the global random source.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// NewSeededEstimator creates an estimator drawing from src.
func NewSeededEstimator(src rand.Source) *Estimator {
	return &Estimator{rng: rand.New(src)}
}

// Estimate returns population × rate × m with m uniform in [1000, 2000].
// A nil rate yields nil.
func (e *Estimator) Estimate(rate *float64, population int64) *float64 {
	if rate == nil {
		return nil
	}
	value := float64(population) * *rate * e.multiplier()
	return &value
}

func (e *Estimator) multiplier() float64 {
	var f float64
	if e.rng == nil {
		f = rand.Float64()
	} else {
		e.mu.Lock()
		f = e.rng.Float64()
		e.mu.Unlock()
	}
	return MinMultiplier + f*(MaxMultiplier-MinMultiplier)
}
