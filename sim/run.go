package sim

// Run executes one complete simulation: validate the config, build fresh
// run-scoped state (clock, event queue, pool, variate stream, accumulator),
// drive the event loop to the horizon, and reduce the accumulated samples
// into a SummaryMetrics record.
//
// Run performs no I/O and touches no package-level state, so sequential or
// concurrent calls never interfere.
func Run(cfg SimulationConfig) (SummaryMetrics, error) {
	if err := cfg.Validate(); err != nil {
		return SummaryMetrics{}, err
	}

	sim := NewSimulator(cfg)
	sim.Arrivals.Start(sim)
	sim.Run()

	return Summarize(sim.Metrics, cfg), nil
}
