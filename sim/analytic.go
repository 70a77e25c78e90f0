// Closed-form M/M/c steady-state predictions, used by the reporting layer as
// a cross-check against simulated results.

package sim

import "math"

// MMcPrediction holds the analytical M/M/c steady-state view of a config.
//
// The model assumes Poisson arrivals (λ = OrderRate) and exponential service
// (Ts = MeanServiceTime) over c = Riders servers:
//
//	offered load  a = λ·Ts
//	utilization   ρ = a / c
//	expected wait Wq = Lq / λ   (Erlang C)
//
// Being steady-state averages, these ignore warm-up from an initially empty
// system, so short-horizon simulated values sit below them.
type MMcPrediction struct {
	OfferedLoad  float64 // a = λ·Ts, in erlangs
	Utilization  float64 // ρ, fraction (not percent)
	Stable       bool    // ρ < 1
	ExpectedWait float64 // Wq in minutes; +Inf when unstable
}

// PredictMMc computes the analytical prediction for a config.
func PredictMMc(cfg SimulationConfig) MMcPrediction {
	lambda := cfg.OrderRate
	ts := cfg.MeanServiceTime
	c := cfg.Riders

	offered := lambda * ts
	rho := offered / float64(c)

	p := MMcPrediction{
		OfferedLoad: offered,
		Utilization: rho,
		Stable:      rho < 1.0,
	}
	if !p.Stable {
		p.ExpectedWait = math.Inf(1)
		return p
	}

	// Erlang C: P(wait) = (a^c / c!) / ((1-ρ)·Σ_{n<c} a^n/n! + a^c/c!)
	sum := 0.0
	for n := 0; n < c; n++ {
		sum += math.Pow(offered, float64(n)) / factorial(n)
	}
	termC := math.Pow(offered, float64(c)) / factorial(c)
	pWait := termC / ((1.0-rho)*sum + termC)

	// Lq = P(wait)·ρ/(1-ρ); Wq = Lq/λ
	lq := pWait * rho / (1.0 - rho)
	p.ExpectedWait = lq / lambda
	return p
}

// factorial calculates n!. A helper needed for the M/M/c queuing formulas.
func factorial(n int) float64 {
	res := 1.0
	for i := 2; i <= n; i++ {
		res *= float64(i)
	}
	return res
}
