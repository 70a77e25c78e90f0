// Tracks run-wide performance metrics and reduces them into a summary record.

package sim

import (
	"math"
	"sort"
)

// MetricsAccumulator collects per-order samples and rider busy time over one
// simulation run. It is initialized at run start, mutated only by completing
// orders (plus the horizon-boundary busy-time fold), and reduced once at run
// end. Never shared across runs.
type MetricsAccumulator struct {
	WaitDurations    []float64 // one sample per completed order, in completion order
	ServiceDurations []float64 // one sample per completed order, in completion order
	BusyTimeTotal    float64   // sum of per-grant busy intervals, minutes

	OrdersArrived   int // orders created within the horizon
	PeakQueueLength int // largest rider-wait queue observed
}

// NewMetricsAccumulator creates an empty accumulator for a fresh run.
func NewMetricsAccumulator() *MetricsAccumulator {
	return &MetricsAccumulator{}
}

// RecordCompletion folds a completed order's samples into the accumulator.
// Called exactly once per order, on the completed transition.
func (m *MetricsAccumulator) RecordCompletion(o *Order) {
	m.WaitDurations = append(m.WaitDurations, o.WaitDuration)
	m.ServiceDurations = append(m.ServiceDurations, o.ServiceDuration)
	m.BusyTimeTotal += o.ServiceDuration
}

// SummaryMetrics is the result record a run reduces to. Values are raw
// (unrounded); presentation-layer rounding is the caller's concern.
type SummaryMetrics struct {
	Riders             int
	OrderRate          float64 // orders per minute, echoed from the config
	AvgWaitMinutes     float64 // 0 when no order completed
	AvgServiceMinutes  float64 // 0 when no order completed
	P50WaitMinutes     float64
	P95WaitMinutes     float64
	UtilizationPercent float64 // busy time / (horizon * riders), as a percentage
	OrdersCompleted    int
}

// Summarize is a pure reduction over a finished run's accumulator. It has no
// side effects and returns identical results on repeated calls.
func Summarize(m *MetricsAccumulator, cfg SimulationConfig) SummaryMetrics {
	s := SummaryMetrics{
		Riders:          cfg.Riders,
		OrderRate:       cfg.OrderRate,
		OrdersCompleted: len(m.ServiceDurations),
	}

	s.AvgWaitMinutes = Mean(m.WaitDurations)
	s.AvgServiceMinutes = Mean(m.ServiceDurations)

	if len(m.WaitDurations) > 0 {
		sorted := append([]float64(nil), m.WaitDurations...)
		sort.Float64s(sorted)
		s.P50WaitMinutes = Percentile(sorted, 50)
		s.P95WaitMinutes = Percentile(sorted, 95)
	}

	s.UtilizationPercent = m.BusyTimeTotal / (cfg.Horizon * float64(cfg.Riders)) * 100

	return s
}

// Mean is a util function that calculates the mean of a data list.
// Returns 0 for an empty list.
func Mean(samples []float64) float64 {
	if len(samples) == 0 {
		return 0.0
	}
	sum := 0.0
	for _, sample := range samples {
		sum += sample
	}
	return sum / float64(len(samples))
}

// Percentile is a util function that calculates the p-th percentile of a
// sorted data list using linear interpolation between ranks.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0.0
	}

	rank := p / 100.0 * float64(n-1)
	lowerIdx := int(math.Floor(rank))
	upperIdx := int(math.Ceil(rank))

	if lowerIdx == upperIdx || upperIdx >= n {
		return sorted[lowerIdx]
	}
	return sorted[lowerIdx] + (sorted[upperIdx]-sorted[lowerIdx])*(rank-float64(lowerIdx))
}
