package sim

import "math/rand"

// VariateSource draws the random durations that drive a run from a single
// deterministic pseudorandom stream. Two runs constructed from the same seed
// replay bit-for-bit identical draw sequences, and therefore identical event
// timelines.
//
// Thread-safety: NOT thread-safe. The event loop is single-threaded.
type VariateSource struct {
	rng *rand.Rand
}

// NewVariateSource creates a VariateSource seeded once for the run.
func NewVariateSource(seed int64) *VariateSource {
	return &VariateSource{rng: rand.New(rand.NewSource(seed))}
}

// Exponential returns a non-negative draw from an exponential distribution
// with the given mean. Interarrival gaps use mean = 1/rate (Poisson stream);
// service durations use the configured mean hold time.
func (v *VariateSource) Exponential(mean float64) float64 {
	return v.rng.ExpFloat64() * mean
}
