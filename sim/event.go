package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event carries its trigger time (in simulated minutes) and an Execute
// method that advances simulation state when the scheduler fires it.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// OrderArrivalEvent represents a new order entering the system. The order
// itself is only materialized when the event fires, so arrivals past the
// horizon are never created.
type OrderArrivalEvent struct {
	time    float64
	orderID int64
}

// Timestamp returns the scheduled time of the OrderArrivalEvent.
func (e *OrderArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute creates the order, requests a rider for it, and schedules the next
// arrival. When a rider is free the order starts service in the same instant;
// otherwise it suspends in the pool's waiter queue.
func (e *OrderArrivalEvent) Execute(sim *Simulator) {
	logrus.Infof("<< Arrival: order %d at t=%.3f", e.orderID, e.time)

	o := &Order{
		ID:          e.orderID,
		State:       StateArrived,
		ArrivalTime: e.time,
	}
	sim.Metrics.OrdersArrived++

	o.State = StateWaiting
	if sim.Pool.Acquire(o, sim.Clock) {
		sim.beginService(o)
	}

	sim.Arrivals.scheduleNext(sim)
}

// ServiceCompletionEvent fires when an order's service duration has elapsed.
type ServiceCompletionEvent struct {
	time  float64
	Order *Order
}

// Timestamp returns the scheduled time of the ServiceCompletionEvent.
func (e *ServiceCompletionEvent) Timestamp() float64 {
	return e.time
}

// Execute completes the order: records its service duration, folds its
// samples into the metrics accumulator, and releases the rider. If a waiter
// was handed the rider, its service begins at this same instant.
func (e *ServiceCompletionEvent) Execute(sim *Simulator) {
	o := e.Order

	o.ServiceDuration = e.time - o.GrantTime
	o.State = StateCompleted
	logrus.Infof("<< Completion: order %d at t=%.3f (waited %.3f, served %.3f)",
		o.ID, e.time, o.WaitDuration, o.ServiceDuration)

	sim.Metrics.RecordCompletion(o)

	if next := sim.Pool.Release(o, sim.Clock); next != nil {
		sim.beginService(next)
	}
}

// beginService transitions o from waiting to in-service at the current clock
// value. The wait duration is fixed here, a service duration is drawn, and
// the completion event is scheduled.
func (sim *Simulator) beginService(o *Order) {
	now := sim.Clock
	o.GrantTime = now
	o.WaitDuration = now - o.ArrivalTime
	o.State = StateInService

	service := sim.Variates.Exponential(sim.Config.MeanServiceTime)
	sim.mustSchedule(&ServiceCompletionEvent{time: now + service, Order: o})
}
