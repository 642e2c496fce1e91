// Package lifetable holds immutable age-indexed probability tables.
//
// Two shapes exist. A Sparse table maps a bounded range of integer ages to
// probabilities and treats every miss as probability 0. A Dense table is
// indexed by age from 0 and treats every index past either end as
// probability 1.
package lifetable

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

// ErrEmptyTable indicates a table was built with no entries.
var ErrEmptyTable = errors.New("table must have at least one entry")

// ErrInvalidProbability indicates a table entry is outside [0, 1].
var ErrInvalidProbability = errors.New("probability must be within [0, 1]")

// Sparse maps integer ages to probabilities.
type Sparse struct {
	probs    map[int]float64
	min, max int
}

// NewSparse builds a Sparse table from a copy of probs.
func NewSparse(probs map[int]float64) (Sparse, error) {
	if len(probs) == 0 {
		return Sparse{}, ErrEmptyTable
	}

	ages := slices.Sorted(maps.Keys(probs))
	for _, age := range ages {
		if err := validate(probs[age]); err != nil {
			return Sparse{}, fmt.Errorf("age %d: %w", age, err)
		}
	}

	return Sparse{
		probs: maps.Clone(probs),
		min:   ages[0],
		max:   ages[len(ages)-1],
	}, nil
}

// MustSparse is like NewSparse but panics on error.
// It is meant for compiled-in tables.
func MustSparse(probs map[int]float64) Sparse {
	t, err := NewSparse(probs)
	if err != nil {
		panic(fmt.Sprintf("lifetable: %v", err))
	}
	return t
}

// Lookup returns the probability at age.
// Only an exact integer key matches: fractional, non-finite and
// out-of-range ages return 0.
func (s Sparse) Lookup(age float64) float64 {
	if !(age >= float64(s.min) && age <= float64(s.max)) {
		return 0
	}
	if age != math.Trunc(age) {
		return 0
	}
	return s.probs[int(age)]
}

// Bounds returns the lowest and highest tabulated ages.
func (s Sparse) Bounds() (lo, hi int) {
	return s.min, s.max
}

// Len returns the number of tabulated ages.
func (s Sparse) Len() int {
	return len(s.probs)
}

// Dense holds one probability per age, starting at age 0.
type Dense struct {
	probs []float64
}

// NewDense builds a Dense table from a copy of probs; probs[i] is the
// probability at age i.
func NewDense(probs []float64) (Dense, error) {
	if len(probs) == 0 {
		return Dense{}, ErrEmptyTable
	}
	for age, p := range probs {
		if err := validate(p); err != nil {
			return Dense{}, fmt.Errorf("age %d: %w", age, err)
		}
	}
	return Dense{probs: slices.Clone(probs)}, nil
}

// MustDense is like NewDense but panics on error.
func MustDense(probs []float64) Dense {
	t, err := NewDense(probs)
	if err != nil {
		panic(fmt.Sprintf("lifetable: %v", err))
	}
	return t
}

// Lookup returns the probability at age.
// Any age outside the table, negative ages included, returns 1.
func (d Dense) Lookup(age int) float64 {
	if age < 0 || age >= len(d.probs) {
		return 1
	}
	return d.probs[age]
}

// MaxAge returns the last tabulated age.
func (d Dense) MaxAge() int {
	return len(d.probs) - 1
}

// Len returns the number of tabulated ages.
func (d Dense) Len() int {
	return len(d.probs)
}

func validate(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
	}
	return nil
}
