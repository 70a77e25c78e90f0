package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// studyConfig is the demand point from the rider comparison study.
func studyConfig() SimulationConfig {
	return SimulationConfig{
		Riders:          5,
		OrderRate:       0.6,
		MeanServiceTime: 15,
		Horizon:         180,
		Seed:            42,
	}
}

func TestRun_Determinism(t *testing.T) {
	// Two independent runs with identical config must produce bit-identical
	// summaries.
	first, err := Run(studyConfig())
	assert.NoError(t, err)

	second, err := Run(studyConfig())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_SeedChangesOutcome(t *testing.T) {
	base, err := Run(studyConfig())
	assert.NoError(t, err)

	other := studyConfig()
	other.Seed = 43
	reseeded, err := Run(other)
	assert.NoError(t, err)

	assert.NotEqual(t, base.AvgWaitMinutes, reseeded.AvgWaitMinutes)
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimulationConfig)
	}{
		{"zero riders", func(c *SimulationConfig) { c.Riders = 0 }},
		{"negative riders", func(c *SimulationConfig) { c.Riders = -3 }},
		{"zero order rate", func(c *SimulationConfig) { c.OrderRate = 0 }},
		{"negative order rate", func(c *SimulationConfig) { c.OrderRate = -0.5 }},
		{"zero service time", func(c *SimulationConfig) { c.MeanServiceTime = 0 }},
		{"zero horizon", func(c *SimulationConfig) { c.Horizon = 0 }},
		{"negative horizon", func(c *SimulationConfig) { c.Horizon = -180 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := studyConfig()
			tt.mutate(&cfg)

			_, err := Run(cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestRun_StudyScenario_PlausibleSummary(t *testing.T) {
	// 5 riders at 0.6 orders/min with 15min mean service is an overloaded
	// system (offered load 9 > 5); completions track rider throughput and
	// utilization approaches saturation.
	got, err := Run(studyConfig())
	assert.NoError(t, err)

	assert.Equal(t, 5, got.Riders)
	// rider throughput bounds completions: ≈ horizon·riders/meanService = 60
	assert.Greater(t, got.OrdersCompleted, 25)
	assert.Less(t, got.OrdersCompleted, 100)
	assert.InDelta(t, 15.0, got.AvgServiceMinutes, 6.0)
	assert.Greater(t, got.AvgWaitMinutes, 1.0)
	assert.Less(t, got.AvgWaitMinutes, 180.0)
	assert.Greater(t, got.UtilizationPercent, 60.0)
	assert.LessOrEqual(t, got.UtilizationPercent, 100.0)
}

func TestRun_ScalingProperty_MoreRidersNoWorseWait(t *testing.T) {
	// Holding demand fixed, growing the pool from 5 to 8 riders must not
	// increase the average wait.
	base, err := Run(studyConfig())
	assert.NoError(t, err)

	scaled := studyConfig()
	scaled.Riders = 8
	wide, err := Run(scaled)
	assert.NoError(t, err)

	assert.LessOrEqual(t, wide.AvgWaitMinutes, base.AvgWaitMinutes)
}

func TestRun_SaturationProperty_HigherRateMoreWaitAndUtilization(t *testing.T) {
	light := studyConfig()
	light.OrderRate = 0.1 // offered load 1.5 over 5 riders

	heavy := studyConfig() // offered load 9 over 5 riders

	lightSummary, err := Run(light)
	assert.NoError(t, err)
	heavySummary, err := Run(heavy)
	assert.NoError(t, err)

	assert.LessOrEqual(t, lightSummary.AvgWaitMinutes, heavySummary.AvgWaitMinutes)
	assert.Less(t, lightSummary.UtilizationPercent, heavySummary.UtilizationPercent)
}

func TestRun_UtilizationBounds(t *testing.T) {
	tests := []struct {
		name string
		cfg  SimulationConfig
	}{
		{"light load", SimulationConfig{Riders: 10, OrderRate: 0.05, MeanServiceTime: 2, Horizon: 400, Seed: 7}},
		{"moderate load", SimulationConfig{Riders: 4, OrderRate: 0.2, MeanServiceTime: 10, Horizon: 500, Seed: 11}},
		{"overload", SimulationConfig{Riders: 2, OrderRate: 2, MeanServiceTime: 20, Horizon: 300, Seed: 13}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(tt.cfg)
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, got.UtilizationPercent, 0.0)
			assert.LessOrEqual(t, got.UtilizationPercent, 100.0)
		})
	}
}

func TestRun_Conservation(t *testing.T) {
	// orders_completed == len(waits) == len(services); busy ≤ horizon·capacity.
	cfg := studyConfig()
	s := NewSimulator(cfg)
	s.Arrivals.Start(s)
	s.Run()

	assert.Equal(t, len(s.Metrics.WaitDurations), len(s.Metrics.ServiceDurations))
	assert.LessOrEqual(t, s.Metrics.BusyTimeTotal, cfg.Horizon*float64(cfg.Riders)+1e-9)
	assert.GreaterOrEqual(t, s.Metrics.OrdersArrived, len(s.Metrics.ServiceDurations))

	summary := Summarize(s.Metrics, cfg)
	assert.Equal(t, len(s.Metrics.ServiceDurations), summary.OrdersCompleted)
}

func TestRun_NothingCompletes_WellFormedSummary(t *testing.T) {
	// Services far longer than the horizon: orders arrive and occupy riders
	// but none completes inside the window.
	cfg := SimulationConfig{Riders: 3, OrderRate: 1, MeanServiceTime: 1e6, Horizon: 30, Seed: 5}

	got, err := Run(cfg)
	assert.NoError(t, err)

	assert.Equal(t, 0, got.OrdersCompleted)
	assert.Equal(t, 0.0, got.AvgWaitMinutes)
	assert.Equal(t, 0.0, got.AvgServiceMinutes)
	// in-flight grants still accrue partial busy time up to the horizon
	assert.Greater(t, got.UtilizationPercent, 0.0)
	assert.LessOrEqual(t, got.UtilizationPercent, 100.0)
}

func TestRun_ArrivalIDsAreFreshPerRun(t *testing.T) {
	// Package-level state must not leak between runs: a second simulator
	// starts its order IDs and clock from scratch.
	s1 := NewSimulator(studyConfig())
	s1.Arrivals.Start(s1)
	s1.Run()

	s2 := NewSimulator(studyConfig())
	s2.Arrivals.Start(s2)
	s2.Run()

	assert.Equal(t, s1.Metrics.OrdersArrived, s2.Metrics.OrdersArrived)
	assert.Equal(t, s1.Metrics.WaitDurations, s2.Metrics.WaitDurations)
}
