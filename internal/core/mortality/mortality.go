// Package mortality samples whether an individual dies in a given year.
//
// The yearly death probability q(x) is tabulated for ages 0 to 100. The
// series follows a cohort of 100,000 births down to 94,205 survivors at 25,
// 87,655 at 50 and 879 at 100. Beyond the table everyone dies: any age past
// 100, and any negative age, has probability 1. That is a modelling
// simplification, not demographic data.
package mortality

import (
	"github.com/louisbranch/lifeevents/internal/core/check"
	"github.com/louisbranch/lifeevents/internal/core/lifetable"
	"github.com/louisbranch/lifeevents/internal/random"
)

var deathTable = lifetable.MustDense([]float64{
	0.028267, 0.002827, 0.001696, 0.001225, 0.001036, // 0-4
	0.000942, 0.000848, 0.000754, 0.00066, 0.00066, // 5-9
	0.00066, 0.00066, 0.000754, 0.000848, 0.001036, // 10-14
	0.001225, 0.001413, 0.001602, 0.00179, 0.001884, // 15-19
	0.001884, 0.00179, 0.001696, 0.001602, 0.001508, // 20-24
	0.001618, 0.001658, 0.001702, 0.001752, 0.001807, // 25-29
	0.001869, 0.001937, 0.002012, 0.002095, 0.002187, // 30-34
	0.002288, 0.002399, 0.002522, 0.002657, 0.002805, // 35-39
	0.002969, 0.00315, 0.00335, 0.003571, 0.003816, // 40-44
	0.004086, 0.004386, 0.004719, 0.005089, 0.005502, // 45-49
	0.005961, 0.006471, 0.007025, 0.007627, 0.00828, // 50-54
	0.008989, 0.009759, 0.010594, 0.011501, 0.012486, // 55-59
	0.013555, 0.014716, 0.015976, 0.017344, 0.018829, // 60-64
	0.020441, 0.022191, 0.024091, 0.026154, 0.028393, // 65-69
	0.030824, 0.033463, 0.036328, 0.039439, 0.042816, // 70-74
	0.046482, 0.050462, 0.054782, 0.059473, 0.064565, // 75-79
	0.070093, 0.076095, 0.08261, 0.089683, 0.097362, // 80-84
	0.105698, 0.114748, 0.124573, 0.13524, 0.146819, // 85-89
	0.15939, 0.173037, 0.187853, 0.203937, 0.221399, // 90-94
	0.240355, 0.260935, 0.283276, 0.307531, 0.333862, // 95-99
	1, // 100
})

// Table returns the age-indexed death probabilities.
func Table() lifetable.Dense { return deathTable }

// Probability returns the yearly death probability at age.
func Probability(age int) float64 {
	return deathTable.Lookup(age)
}

// Death reports whether an individual of the given age dies this year,
// drawing from the process-wide generator.
func Death(age int) bool {
	return DeathWithRng(nil, age)
}

// DeathWithRng is like Death but draws from rng.
// Exactly one sample is drawn per call, including ages with probability 1.
func DeathWithRng(rng random.Source, age int) bool {
	return check.Roll(rng, Probability(age)).Success
}
