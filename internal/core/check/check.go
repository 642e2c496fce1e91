// Package check implements the Bernoulli check behind every life event:
// one uniform draw compared against an event probability.
package check

import "github.com/louisbranch/lifeevents/internal/random"

// Succeeds returns true if sample < probability.
// A probability of 0 never succeeds; a probability of 1 always does for
// samples in [0, 1).
func Succeeds(sample, probability float64) bool {
	return sample < probability
}

// Result represents the outcome of a Bernoulli check.
type Result struct {
	Success     bool
	Sample      float64
	Probability float64
}

// Roll draws one sample from rng and checks it against probability.
// Exactly one value is consumed regardless of probability, so seeded
// sequences stay aligned across inputs. A nil rng uses the process-wide
// generator.
func Roll(rng random.Source, probability float64) Result {
	sample := random.OrDefault(rng).Float64()
	return Result{
		Success:     Succeeds(sample, probability),
		Sample:      sample,
		Probability: probability,
	}
}
