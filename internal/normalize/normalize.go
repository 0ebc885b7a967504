// Package normalize rescales a list of numbers to the range [0,1] using
// min-max normalization: (v - min) / (max - min).
//
// Degenerate inputs are rejected with a model.NormalizeError: an empty list,
// a list with a single value, and a list whose values are all equal.
package normalize

import (
	"math"

	"github.com/mmr-tortoise/minmax/internal/model"
)

// Summary describes the spread of a list of values.
type Summary struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Range float64 `json:"range"`
}

// Bounds returns the minimum and maximum of values in a single pass.
// It fails with ErrEmptyList, ErrSingletonList or ErrZeroRange, checked in
// that order.
func Bounds(values []float64) (lo, hi float64, err error) {
	switch len(values) {
	case 0:
		return 0, 0, model.ErrEmptyList
	case 1:
		return 0, 0, model.ErrSingletonList
	}

	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		return 0, 0, model.ErrZeroRange
	}
	return lo, hi, nil
}

// Normalize maps every value to [0,1]. The result has the same length and
// order as values; the minimum maps to exactly 0 and the maximum to exactly 1.
func Normalize(values []float64) ([]float64, error) {
	lo, hi, err := Bounds(values)
	if err != nil {
		return nil, err
	}

	// max - min can overflow for values near ±MaxFloat64. Halving both
	// operands keeps the quotient unchanged and finite.
	scale := 1.0
	if math.IsInf(hi-lo, 0) {
		scale = 0.5
	}
	span := hi*scale - lo*scale

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v*scale - lo*scale) / span
	}
	return out, nil
}

// Summarize reports the count, bounds and range of values. It fails for the
// same degenerate inputs as Normalize.
func Summarize(values []float64) (Summary, error) {
	lo, hi, err := Bounds(values)
	if err != nil {
		return Summary{Count: len(values)}, err
	}
	return Summary{Count: len(values), Min: lo, Max: hi, Range: hi - lo}, nil
}
