// Implements the RiderPool, the capacity-limited resource orders compete for.
// Riders are granted in strict first-come-first-served order.

package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// RiderPool models a fixed pool of interchangeable riders. Acquisition is
// strict FIFO: a free rider is granted immediately, otherwise the order is
// parked at the tail of the waiter queue until a release hands a rider over.
// Invariants: 0 <= inUse <= capacity; waiters is non-empty only while
// inUse == capacity.
//
// Each open grant records its start time so busy time can be attributed as
// the exact interval [grant, release), with grants still open at the horizon
// accruing proportionally up to it.
type RiderPool struct {
	capacity int
	inUse    int
	waiters  []*Order // FIFO queue of orders waiting for a rider

	grants      map[int64]float64 // order ID → grant time, open grants only
	peakWaiters int
}

// NewRiderPool creates a pool with the given rider count.
func NewRiderPool(capacity int) *RiderPool {
	if capacity <= 0 {
		panic(fmt.Sprintf("NewRiderPool: capacity must be positive, got %d", capacity))
	}
	return &RiderPool{
		capacity: capacity,
		grants:   make(map[int64]float64),
	}
}

// Acquire requests a rider for o at the current clock value. When a rider is
// free it is granted immediately and Acquire returns true; otherwise o joins
// the tail of the waiter queue and Acquire returns false — the order stays
// suspended until a Release dequeues it.
func (p *RiderPool) Acquire(o *Order, now float64) bool {
	if p.inUse < p.capacity {
		p.grant(o, now)
		return true
	}
	p.waiters = append(p.waiters, o)
	if len(p.waiters) > p.peakWaiters {
		p.peakWaiters = len(p.waiters)
	}
	logrus.Debugf("[t %8.3f] order %d waiting for rider (%d in queue)", now, o.ID, len(p.waiters))
	return false
}

// Release frees the rider held by o. If anyone is waiting, the head of the
// queue is granted the freed rider in the same instant — a direct hand-off,
// never momentarily idle while a waiter exists — and returned so the caller
// can resume it. Returns nil when no one was waiting.
func (p *RiderPool) Release(o *Order, now float64) *Order {
	if _, ok := p.grants[o.ID]; !ok {
		panic(fmt.Sprintf("Release: order %d holds no rider", o.ID))
	}
	delete(p.grants, o.ID)
	p.inUse--

	if len(p.waiters) == 0 {
		return nil
	}
	next := p.waiters[0]
	p.waiters = p.waiters[1:]
	p.grant(next, now)
	return next
}

func (p *RiderPool) grant(o *Order, now float64) {
	p.inUse++
	p.grants[o.ID] = now
	logrus.Debugf("[t %8.3f] order %d granted rider (%d/%d busy)", now, o.ID, p.inUse, p.capacity)
}

// OpenBusyTime returns the busy time accrued by grants still open at cutoff.
// Called once at the end of a run with cutoff = horizon so that in-flight
// services contribute their partial interval to utilization. Grants are
// summed in ascending order ID so the float accumulation order, and with it
// the reduced summary, is identical across runs — map iteration order is not.
func (p *RiderPool) OpenBusyTime(cutoff float64) float64 {
	ids := make([]int64, 0, len(p.grants))
	for id := range p.grants {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var total float64
	for _, id := range ids {
		if grantedAt := p.grants[id]; grantedAt < cutoff {
			total += cutoff - grantedAt
		}
	}
	return total
}

// Capacity returns the fixed rider count.
func (p *RiderPool) Capacity() int { return p.capacity }

// InUse returns the number of riders currently granted.
func (p *RiderPool) InUse() int { return p.inUse }

// Waiting returns the number of orders queued for a rider.
func (p *RiderPool) Waiting() int { return len(p.waiters) }

// PeakWaiters returns the largest waiter-queue length observed so far.
func (p *RiderPool) PeakWaiters() int { return p.peakWaiters }
