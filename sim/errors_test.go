package sim

import (
	"errors"
	"testing"
)

func TestValidate_WrapsErrInvalidConfig(t *testing.T) {
	// Validation failures must be matchable with errors.Is, so callers can
	// distinguish bad input from engine invariant violations.
	cfg := SimulationConfig{Riders: 0, OrderRate: 0.6, MeanServiceTime: 15, Horizon: 180, Seed: 42}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Validate: got %v, want an ErrInvalidConfig wrap", err)
	}
}

func TestSchedule_WrapsErrInvalidDelay(t *testing.T) {
	s := newTestSimulator(100)
	s.Clock = 5

	err := s.Schedule(&testEvent{at: 3})
	if !errors.Is(err, ErrInvalidDelay) {
		t.Errorf("Schedule: got %v, want an ErrInvalidDelay wrap", err)
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	if errors.Is(ErrInvalidConfig, ErrInvalidDelay) {
		t.Error("ErrInvalidConfig and ErrInvalidDelay must be distinct sentinels")
	}
}
