package sim

import "errors"

// Sentinel errors for the two failure modes the engine can report.
// Everything else in the domain is handled by policy (empty sample sets
// reduce to zero-valued summaries rather than failing).
var (
	// ErrInvalidConfig is returned by Run when a SimulationConfig fails
	// validation. No partial run is attempted.
	ErrInvalidConfig = errors.New("invalid simulation config")

	// ErrInvalidDelay is returned by Simulator.Schedule when an event's
	// trigger time is behind the clock. Unreachable given a valid config
	// and non-negative variate draws.
	ErrInvalidDelay = errors.New("invalid delay")
)
