// Package fertility samples whether an individual gives birth in a given
// year.
//
// Yearly birth probabilities by age come from the UN Department of Economic
// and Social Affairs, World Population Prospects
// (https://population.un.org/wpp/Download/Standard/Fertility/). Ages outside
// 15-49 have probability 0.
//
// # Determinism
//
// Every call draws exactly one sample, whatever the age. Given the same
// generator state and the same sequence of calls, the outcomes are
// identical.
package fertility

import (
	"github.com/louisbranch/lifeevents/internal/core/check"
	"github.com/louisbranch/lifeevents/internal/core/lifetable"
	"github.com/louisbranch/lifeevents/internal/random"
)

var birthTable = lifetable.MustSparse(map[int]float64{
	15: 0.013355,
	16: 0.025160000000000002,
	17: 0.040733,
	18: 0.058070000000000004,
	19: 0.07627800000000001,
	20: 0.096371,
	21: 0.110794,
	22: 0.12112600000000001,
	23: 0.12814699999999998,
	24: 0.13259,
	25: 0.134492,
	26: 0.133936,
	27: 0.131562,
	28: 0.127503,
	29: 0.121737,
	30: 0.113844,
	31: 0.105234,
	32: 0.096591,
	33: 0.087627,
	34: 0.078933,
	35: 0.07048399999999999,
	36: 0.061793999999999995,
	37: 0.053277,
	38: 0.044770000000000004,
	39: 0.036818,
	40: 0.029645,
	41: 0.023043,
	42: 0.017268000000000002,
	43: 0.012609,
	44: 0.009054,
	45: 0.006445,
	46: 0.0046559999999999995,
	47: 0.003414,
	48: 0.0025670000000000003,
	49: 0.0017,
})

// Table returns the age-indexed birth probabilities.
func Table() lifetable.Sparse { return birthTable }

// Option adjusts how the effective age is computed.
type Option func(*options)

type options struct {
	aces  int
	alpha float64
}

// WithACEs sets the number of adverse childhood experiences (default 0).
func WithACEs(n int) Option {
	return func(o *options) { o.aces = n }
}

// WithAlpha sets the years of shift per ACE (default DefaultAlpha).
func WithAlpha(alpha float64) Option {
	return func(o *options) { o.alpha = alpha }
}

func buildOptions(opts []Option) options {
	o := options{alpha: DefaultAlpha}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Probability returns the yearly birth probability at age after the ACE
// adjustment. An effective age that is fractional or outside 15-49 yields 0.
func Probability(age int, opts ...Option) float64 {
	o := buildOptions(opts)
	return birthTable.Lookup(AdjustAge(age, o.aces, o.alpha))
}

// Birth reports whether an individual of the given age gives birth this
// year, drawing from the process-wide generator.
func Birth(age int, opts ...Option) bool {
	return BirthWithRng(nil, age, opts...)
}

// BirthWithRng is like Birth but draws from rng.
// This is useful when callers own their generator, e.g. one per goroutine.
func BirthWithRng(rng random.Source, age int, opts ...Option) bool {
	return check.Roll(rng, Probability(age, opts...)).Success
}
