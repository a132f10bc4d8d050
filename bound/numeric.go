// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// numeric.go — the width boundary: the only place values leave T for int64,
// uint64 or float64 and come back.
//
// Integer widths:
//   • A value v is widened to int64 and reinterpreted as uint64; distances
//     and offsets are then computed modulo 2^64, which is exact for any two
//     values of the same signed width (including int64 extremes).
//   • An element is narrowed back with T(int64(u)); callers guarantee the
//     result lies in [lowest, highest], so the narrowing never truncates.
//
// Float widths:
//   • Elements are computed as float64(start) ± step·i and narrowed per
//     element, so float32 sequences carry no accumulated drift.

package bound

import "math"

// IsIntegral reports whether T is an integer width.
// Complexity: O(1).
func IsIntegral[T Number]() bool {
	var half T = 1
	half /= 2

	return half == 0
}

// bits64 reinterprets an integer value as its 64-bit two's complement pattern.
func bits64[T Number](v T) uint64 {
	return uint64(int64(v))
}

// fromBits64 narrows a two's complement pattern back to T.
func fromBits64[T Number](u uint64) T {
	return T(int64(u))
}

// intMagnitude returns |step| as uint64, with 0 mapped to 1.
// |MinInt64| is representable as uint64, so no width overflows here.
func intMagnitude[T Number](step T) uint64 {
	var u uint64
	u = bits64(step)
	if step < 0 {
		u = -u
	}
	if u == 0 {
		u = 1
	}

	return u
}

// intSpan returns highest − lowest for an integer bound, exactly.
func intSpan[T Number](b Bound[T]) uint64 {
	return bits64(b.highest) - bits64(b.lowest)
}

// floatMagnitude returns |step| as float64, with 0 mapped to 1.
func floatMagnitude[T Number](step T) (float64, bool) {
	var f float64
	f = math.Abs(float64(step))
	if math.IsNaN(f) {
		return 0, false
	}
	if f == 0 {
		f = 1
	}

	return f, true
}

// finite reports whether v is neither NaN nor ±Inf. Always true for integers.
func finite[T Number](v T) bool {
	var f float64
	f = float64(v)

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
