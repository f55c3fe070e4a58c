package gdp

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestEstimate_UnknownRate(t *testing.T) {
	assert.Nil(t, NewEstimator().Estimate(nil, 1_000_000))
}

func TestEstimate_Range(t *testing.T) {
	e := NewEstimator()
	for i := 0; i < 1000; i++ {
		got := e.Estimate(ptr(1.1), 30000)
		require.NotNil(t, got)
		assert.GreaterOrEqual(t, *got, 30000*1.1*MinMultiplier)
		assert.LessOrEqual(t, *got, 30000*1.1*MaxMultiplier)
	}
}

func TestEstimate_ZeroPopulation(t *testing.T) {
	got := NewEstimator().Estimate(ptr(3.5), 0)
	require.NotNil(t, got)
	assert.Zero(t, *got)
}

func TestEstimate_NotIdempotent(t *testing.T) {
	e := NewSeededEstimator(rand.NewPCG(1, 2))
	seen := map[float64]struct{}{}
	for i := 0; i < 20; i++ {
		seen[*e.Estimate(ptr(1), 1000)] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestEstimate_Concurrent(t *testing.T) {
	e := NewSeededEstimator(rand.NewPCG(7, 7))
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := e.Estimate(ptr(2), 10)
			assert.GreaterOrEqual(t, *got, 2*10*MinMultiplier)
		}()
	}
	wg.Wait()
}
