package sim

import (
	"fmt"
	"math"
)

// SimulationConfig is the immutable input to a single simulation run.
// All durations and rates are in simulated minutes.
type SimulationConfig struct {
	Riders          int     // number of interchangeable riders in the pool (must be > 0)
	OrderRate       float64 // mean order arrival rate, orders per minute (must be > 0)
	MeanServiceTime float64 // mean time a rider holds an order, minutes (must be > 0)
	Horizon         float64 // simulated measurement window, minutes (must be > 0)
	Seed            int64   // master seed for the run's variate stream
}

// Validate checks the config before a run starts. Messages name the offending
// field and the value received.
func (c SimulationConfig) Validate() error {
	if c.Riders <= 0 {
		return fmt.Errorf("%w: riders must be positive, got %d", ErrInvalidConfig, c.Riders)
	}
	if err := mustBePositiveFinite("order_rate", c.OrderRate); err != nil {
		return err
	}
	if err := mustBePositiveFinite("mean_service_time", c.MeanServiceTime); err != nil {
		return err
	}
	if err := mustBePositiveFinite("horizon", c.Horizon); err != nil {
		return err
	}
	return nil
}

func mustBePositiveFinite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s must be a finite number, got %f", ErrInvalidConfig, name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %f", ErrInvalidConfig, name, val)
	}
	return nil
}
