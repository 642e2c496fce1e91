package lifetable

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewSparse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		probs   map[int]float64
		wantErr error
	}{
		{"empty", map[int]float64{}, ErrEmptyTable},
		{"nil", nil, ErrEmptyTable},
		{"negative", map[int]float64{1: -0.1}, ErrInvalidProbability},
		{"above one", map[int]float64{1: 0.5, 2: 1.5}, ErrInvalidProbability},
		{"nan", map[int]float64{1: math.NaN()}, ErrInvalidProbability},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSparse(tt.probs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSparse_Lookup(t *testing.T) {
	table := MustSparse(map[int]float64{10: 0.1, 11: 0.2, 13: 0.3})

	tests := []struct {
		name string
		age  float64
		want float64
	}{
		{"first key", 10, 0.1},
		{"last key", 13, 0.3},
		{"gap inside range", 12, 0},
		{"below range", 9, 0},
		{"above range", 14, 0},
		{"fractional", 10.5, 0},
		{"nearly integer", 11.000000000000002, 0},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"huge", 1e300, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Lookup(tt.age))
		})
	}

	lo, hi := table.Bounds()
	assert.Equal(t, 10, lo)
	assert.Equal(t, 13, hi)
	assert.Equal(t, 3, table.Len())
}

func TestSparse_CopiesInput(t *testing.T) {
	probs := map[int]float64{1: 0.5}
	table := MustSparse(probs)
	probs[1] = 0.9
	probs[2] = 0.9

	assert.Equal(t, 0.5, table.Lookup(1))
	assert.Equal(t, 0.0, table.Lookup(2))
}

func TestMustSparse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustSparse(nil) })
}

func TestNewDense_Errors(t *testing.T) {
	_, err := NewDense(nil)
	require.ErrorIs(t, err, ErrEmptyTable)

	_, err = NewDense([]float64{0.1, 2})
	require.ErrorIs(t, err, ErrInvalidProbability)
	assert.Contains(t, err.Error(), "age 1")
}

func TestDense_Lookup(t *testing.T) {
	table := MustDense([]float64{0.01, 0.02, 0.5})

	tests := []struct {
		name string
		age  int
		want float64
	}{
		{"first index", 0, 0.01},
		{"last index", 2, 0.5},
		{"one past end", 3, 1},
		{"far past end", 1000, 1},
		{"negative", -1, 1},
		{"min int", math.MinInt, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Lookup(tt.age))
		})
	}

	assert.Equal(t, 2, table.MaxAge())
	assert.Equal(t, 3, table.Len())
}

func TestDense_CopiesInput(t *testing.T) {
	probs := []float64{0.5}
	table := MustDense(probs)
	probs[0] = 0.9

	assert.Equal(t, 0.5, table.Lookup(0))
}

func TestMustDense_Panics(t *testing.T) {
	assert.Panics(t, func() { MustDense([]float64{-1}) })
}

func TestLookup_AlwaysProbability(t *testing.T) {
	sparse := MustSparse(map[int]float64{0: 0, 1: 1, 2: 0.5})
	dense := MustDense([]float64{0, 1, 0.5})

	rapid.Check(t, func(r *rapid.T) {
		age := rapid.Int().Draw(r, "age")
		for _, p := range []float64{sparse.Lookup(float64(age)), dense.Lookup(age)} {
			if p < 0 || p > 1 {
				r.Fatalf("lookup(%d) = %v outside [0, 1]", age, p)
			}
		}
	})
}
