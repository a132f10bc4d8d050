// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// normalize.go — wrap values back into a bound.
//
// Wrapping rules:
//   • Values already admitted are returned unchanged.
//   • Integer widths wrap modulo highest − lowest + 1, so highest+1 becomes
//     lowest and lowest−1 becomes highest.
//   • Float widths wrap modulo highest − lowest into [lowest, highest); a
//     single-point bound maps everything finite to that point.
//   • NaN and infinite inputs, or a float bound with a non-finite endpoint,
//     are returned unchanged.

package bound

import "math"

// Normalize wraps v into [lowest, highest].
//
// Example: New(0, 5).Normalize(6) = 0, New(0, 5).Normalize(-1) = 5.
// Complexity: O(1).
func (b Bound[T]) Normalize(v T) T {
	if b.Admit(v) {
		return v
	}
	if IsIntegral[T]() {
		return b.wrapInt(v)
	}

	return b.wrapFloat(v)
}

// NormalizeAll returns a new slice holding Normalize of every element of vs,
// in order.
// Complexity: O(len(vs)).
func (b Bound[T]) NormalizeAll(vs []T) []T {
	out := make([]T, len(vs))
	for i, v := range vs {
		out[i] = b.Normalize(v)
	}

	return out
}

// wrapInt computes lowest + (v − lowest) mod (span + 1) in uint64, exact for
// every signed width.
func (b Bound[T]) wrapInt(v T) T {
	var period, r uint64
	period = intSpan(b) + 1
	if period == 0 {
		// The bound covers all of int64.
		return v
	}
	if v > b.highest {
		r = (bits64(v) - bits64(b.lowest)) % period
	} else {
		r = (bits64(b.lowest) - bits64(v)) % period
		if r != 0 {
			r = period - r
		}
	}

	return fromBits64[T](bits64(b.lowest) + r)
}

func (b Bound[T]) wrapFloat(v T) T {
	if !finite(v) || !finite(b.lowest) || !finite(b.highest) {
		return v
	}
	var lo, period, r float64
	lo = float64(b.lowest)
	period = float64(b.highest) - lo
	if period == 0 {
		return b.lowest
	}
	r = math.Mod(float64(v)-lo, period)
	if r < 0 {
		r += period
	}

	return T(lo + r)
}
