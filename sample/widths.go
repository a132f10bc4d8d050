// SPDX-License-Identifier: MIT
// Package: numrange/sample
//
// widths.go — per-width sampling over the Float64 primitive.
//
// Narrowing rules:
//   • Integer widths floor the draw (identical to truncation, since min ≥ 0)
//     and clamp to [min, max]; the clamp only matters above 2^53, where
//     float64 can no longer tell max from max+1.
//   • Float widths convert the raw draw to T.

package sample

import (
	"math"

	"github.com/katalvlaran/numrange/bound"
)

// Between draws a value of width T from [min, max] using the Float64 formula.
// Errors match ErrInvalidArgument (see Float64).
// Complexity: O(1).
func Between[T bound.Number](s *Sampler, min, max T) (T, error) {
	lo, hi := float64(min), float64(max)
	if err := checkRange(lo, hi); err != nil {
		var zero T
		return zero, sampleErrorf(methodBetween, err, "min=%v max=%v", min, max)
	}

	f := s.draw(lo, hi)
	if !bound.IsIntegral[T]() {
		return T(f), nil
	}

	f = math.Floor(f)
	switch {
	case f >= hi:
		return max, nil
	case f <= lo:
		return min, nil
	}

	return T(f), nil
}

// UpTo draws from [0, max].
func UpTo[T bound.Number](s *Sampler, max T) (T, error) {
	return Between(s, 0, max)
}

// Within draws from [b.Lowest(), b.Highest()]; direction plays no part.
func Within[T bound.Number](s *Sampler, b bound.Bound[T]) (T, error) {
	return Between(s, b.Lowest(), b.Highest())
}

// Int draws an int from [min, max].
func (s *Sampler) Int(min, max int) (int, error) { return Between(s, min, max) }

// Int8 draws an int8 from [min, max].
func (s *Sampler) Int8(min, max int8) (int8, error) { return Between(s, min, max) }

// Int16 draws an int16 from [min, max].
func (s *Sampler) Int16(min, max int16) (int16, error) { return Between(s, min, max) }

// Int32 draws an int32 from [min, max].
func (s *Sampler) Int32(min, max int32) (int32, error) { return Between(s, min, max) }

// Int64 draws an int64 from [min, max].
func (s *Sampler) Int64(min, max int64) (int64, error) { return Between(s, min, max) }

// Float32 draws a float32 from [min, max+1).
func (s *Sampler) Float32(min, max float32) (float32, error) { return Between(s, min, max) }
