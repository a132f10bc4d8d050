// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// fit.go — how many whole steps fit inside a span.
//
// Both functions take a positive step magnitude and a non-negative span and
// return (count, remainder) with span = count·step + remainder. Callers
// normalize the step first (0 → 1, negative → absolute value); direction is
// carried by the bound, never by the step's sign.

package bound

import "math"

// fitTolerance is the minimum snapping distance, relative to the step, so
// that 0.3 holds three steps of 0.1.
const fitTolerance = 1e-9

// fitSpanUlps scales the width's epsilon by the span: a span of n steps
// carries representation error of a few ulps of the span, not of the step.
const fitSpanUlps = 4

// fitMaxTolerance caps snapping at a thousandth of a step, so genuine
// remainders are never mistaken for rounding noise.
const fitMaxTolerance = 1e-3

// float32Epsilon and float64Epsilon are the gaps between 1 and the next
// representable value of each width.
const (
	float32Epsilon = 0x1p-23
	float64Epsilon = 0x1p-52
)

// maxFloatCount is the largest step count a float span can be split into
// before consecutive elements stop being distinguishable in float64.
const maxFloatCount = 1 << 53

// Fit reports how many whole steps of size step fit inside span, and what is
// left over: Fit(2, 4) = (2, 0), Fit(3, 4) = (1, 1).
//
// A zero step is a caller error; Fit returns (0, span) rather than dividing
// by zero.
//
// Complexity: O(1).
func Fit(step, span uint64) (count, remainder uint64) {
	if step == 0 {
		return 0, span
	}

	return span / step, span % step
}

// FitFloat is Fit for floating-point spans given in float64 precision.
//
// A remainder within the snapping tolerance of either 0 or step is snapped,
// so FitFloat(0.1, 0.3) = (3, 0) and FitFloat(0.1, 1.7) = (17, 0). The
// tolerance is max(1e-9·step, 4ε·max(span, step)), capped at 1e-3·step.
// Non-positive, NaN or infinite steps yield (0, span). Counts beyond 2^64-1
// saturate.
//
// Complexity: O(1).
func FitFloat(step, span float64) (count uint64, remainder float64) {
	return fitFloat(step, span, float64Epsilon)
}

// fitFloat is FitFloat with the epsilon of the width the step and span were
// originally expressed in; float32 values widened to float64 carry float32
// representation error.
func fitFloat(step, span, eps float64) (count uint64, remainder float64) {
	if !(step > 0) || math.IsInf(step, 1) || !(span > 0) {
		return 0, math.Max(span, 0)
	}

	var q, rem, tol float64
	tol = fitSnap(step, span, eps)
	q = math.Floor(span / step)
	rem = span - q*step
	if rem < 0 {
		q--
		rem += step
	}
	if step-rem <= tol {
		q++
		rem = 0
	}
	if rem <= tol {
		rem = 0
	}
	if q >= math.MaxUint64 {
		return math.MaxUint64, 0
	}

	return uint64(q), rem
}

// fitSnap returns the absolute distance under which a remainder is treated
// as rounding noise.
func fitSnap(step, span, eps float64) float64 {
	var tol float64
	tol = math.Max(fitTolerance*step, fitSpanUlps*eps*math.Max(span, step))

	return math.Min(tol, fitMaxTolerance*step)
}

// floatEpsilon returns the epsilon of T: float32Epsilon when T has float32
// precision, float64Epsilon otherwise.
func floatEpsilon[T Number]() float64 {
	var probe float64
	probe = 1 + float32Epsilon/4
	if float64(T(probe)) == 1 {
		return float32Epsilon
	}

	return float64Epsilon
}
