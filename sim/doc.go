// Package sim provides the discrete-event simulation engine for the dispatch
// simulator: orders arriving as a Poisson stream and competing for a fixed
// pool of riders.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - order.go: Order lifecycle (arrived → waiting → in_service → completed)
//   - event.go: Event types that drive the simulation (Arrival, ServiceCompletion)
//   - simulator.go: The event heap, clock, and run loop
//
// # Architecture
//
// The engine is single-threaded cooperative scheduling: exactly one event
// executes at a time, and "concurrency" is logical overlap in simulated time.
// An order suspends in exactly two places — waiting for a rider when the pool
// is saturated (riderpool.go) and waiting for its service duration to elapse
// (a scheduled ServiceCompletionEvent). Determinism rests on two ordering
// rules: equal-time events fire in scheduling order (stable heap tie-break),
// and the rider pool hands off in strict FIFO order.
//
// Run (run.go) is the single entry point consumed by the CLI/reporting layer;
// it builds all state fresh per call and reduces to a SummaryMetrics record.
// The analytical M/M/c cross-check in analytic.go is a pure companion and
// plays no part in the event loop.
package sim
