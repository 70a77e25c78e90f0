// Defines the Order struct that models a single delivery order in the
// simulation. Tracks arrival time, the wait for a rider, and service duration.

package sim

import (
	"fmt"
)

// OrderState represents the lifecycle state of an order.
type OrderState string

const (
	StateArrived   OrderState = "arrived"
	StateWaiting   OrderState = "waiting"
	StateInService OrderState = "in_service"
	StateCompleted OrderState = "completed"
)

// Order models a single order's wait-then-serve lifecycle:
// arrived → waiting → in_service → completed. An order is created by the
// arrival process, mutated only by its own events, and folded into the
// metrics accumulator exactly once, on completion. Orders still waiting or
// in service when the horizon is reached stay in their current state and
// never produce samples.
type Order struct {
	ID int64 // monotonically increasing, assigned by the arrival process

	State OrderState

	ArrivalTime     float64 // clock value when the order entered the system
	GrantTime       float64 // clock value when a rider was granted (zero until then)
	WaitDuration    float64 // GrantTime - ArrivalTime, set once at grant
	ServiceDuration float64 // set once at service completion
}

func (o Order) String() string {
	return fmt.Sprintf("Order: (ID: %d, State: %s, ArrivalTime: %.3f)", o.ID, o.State, o.ArrivalTime)
}
