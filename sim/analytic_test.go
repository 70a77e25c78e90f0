package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictMMc_SingleServer_MatchesMM1(t *testing.T) {
	// M/M/1 with λ=0.5, Ts=1: ρ=0.5, Wq = ρ/(μ-λ) = 1.0 minutes.
	cfg := SimulationConfig{Riders: 1, OrderRate: 0.5, MeanServiceTime: 1, Horizon: 100, Seed: 1}

	pred := PredictMMc(cfg)

	assert.True(t, pred.Stable)
	assert.InDelta(t, 0.5, pred.OfferedLoad, 1e-12)
	assert.InDelta(t, 0.5, pred.Utilization, 1e-12)
	assert.InDelta(t, 1.0, pred.ExpectedWait, 1e-9)
}

func TestPredictMMc_TwoServers_KnownValue(t *testing.T) {
	// M/M/2 with λ=1, Ts=1: a=1, ρ=0.5, Erlang C gives Wq = 1/3 minutes.
	cfg := SimulationConfig{Riders: 2, OrderRate: 1, MeanServiceTime: 1, Horizon: 100, Seed: 1}

	pred := PredictMMc(cfg)

	assert.True(t, pred.Stable)
	assert.InDelta(t, 1.0/3.0, pred.ExpectedWait, 1e-9)
}

func TestPredictMMc_Overloaded_Unstable(t *testing.T) {
	// The study's demand point: 5 riders, 0.6/min, 15min service → ρ=1.8.
	cfg := SimulationConfig{Riders: 5, OrderRate: 0.6, MeanServiceTime: 15, Horizon: 180, Seed: 42}

	pred := PredictMMc(cfg)

	assert.False(t, pred.Stable)
	assert.InDelta(t, 1.8, pred.Utilization, 1e-12)
	assert.True(t, math.IsInf(pred.ExpectedWait, 1))
}

func TestPredictMMc_LightLoad_NegligibleWait(t *testing.T) {
	cfg := SimulationConfig{Riders: 10, OrderRate: 0.01, MeanServiceTime: 1, Horizon: 100, Seed: 1}

	pred := PredictMMc(cfg)

	assert.True(t, pred.Stable)
	assert.Less(t, pred.ExpectedWait, 1e-6)
}
