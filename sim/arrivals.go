// Implements the arrival process: a perpetual Poisson stream of new orders.

package sim

// ArrivalGenerator spawns order arrivals at exponentially distributed
// intervals (a Poisson stream with the configured rate). It is a logically
// infinite process — each arrival schedules the next one — bounded only by
// the scheduler's horizon cutoff, never by an internal termination condition.
type ArrivalGenerator struct {
	rate   float64 // orders per minute
	nextID int64
}

// NewArrivalGenerator creates a generator for the given order rate.
func NewArrivalGenerator(rate float64) *ArrivalGenerator {
	return &ArrivalGenerator{rate: rate, nextID: 1}
}

// Start schedules the first arrival. Called once, before the event loop runs.
func (g *ArrivalGenerator) Start(sim *Simulator) {
	g.scheduleNext(sim)
}

// scheduleNext draws the next interarrival gap and schedules the arrival.
// The order itself is created when the event fires, so orders past the
// horizon never come into existence.
func (g *ArrivalGenerator) scheduleNext(sim *Simulator) {
	gap := sim.Variates.Exponential(1.0 / g.rate)
	sim.mustSchedule(&OrderArrivalEvent{
		time:    sim.Clock + gap,
		orderID: g.nextID,
	})
	g.nextID++
}
