// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// materialize.go — expand a bound into its ordered sequence at a given step.
//
// Sequence shape (all widths):
//   • len = Fit(|step|, highest − lowest).count + 1
//   • elem[0] = start; elem[i] = start ± |step|·i (minus when descending)
//   • elem[len-1] == final only when |step| divides the span; otherwise the
//     sequence stops short of final. This truncation is not an error.
//
// Step policy: 0 → 1 and negative → |step|, identical to StreamStep.

package bound

import "math"

// MaxMaterialize caps the number of elements ToArrayStep will allocate.
// Larger spans can still be walked with Values or Stream.
const MaxMaterialize = 1 << 30

// walk describes a sequence without holding its elements.
type walk[T Number] struct {
	b         Bound[T]
	intStep   uint64  // |step| for integer widths
	floatStep float64 // |step| for float widths
	count     uint64  // number of steps; the sequence has count+1 elements
	exact     bool    // step divides the span, so the last element is final
	integral  bool
}

// newWalk normalizes step and fits it into the span of b.
// Complexity: O(1).
func newWalk[T Number](b Bound[T], step T) (walk[T], error) {
	w := walk[T]{b: b, integral: IsIntegral[T]()}
	if w.integral {
		var rem uint64
		w.intStep = intMagnitude(step)
		w.count, rem = Fit(w.intStep, intSpan(b))
		w.exact = rem == 0

		return w, nil
	}

	if !finite(b.start) || !finite(b.final) {
		return w, ErrNonFinite
	}
	var ok bool
	if w.floatStep, ok = floatMagnitude(step); !ok {
		return w, ErrInvalidStep
	}
	var rem float64
	w.count, rem = fitFloat(w.floatStep, b.Span(), floatEpsilon[T]())
	if w.count > maxFloatCount {
		return w, ErrSpanTooLarge
	}
	w.exact = rem == 0

	return w, nil
}

// at returns the i-th element, 0 ≤ i ≤ count.
// Complexity: O(1).
func (w walk[T]) at(i uint64) T {
	if w.integral {
		var offset uint64
		offset = w.intStep * i
		if w.b.descending {
			return fromBits64[T](bits64(w.b.start) - offset)
		}

		return fromBits64[T](bits64(w.b.start) + offset)
	}

	if i == w.count && w.exact && i > 0 {
		return w.b.final
	}
	var offset float64
	offset = w.floatStep * float64(i)
	if w.b.descending {
		offset = -offset
	}

	return T(float64(w.b.start) + offset)
}

// remainder returns the part of the span left over after the last element.
func (w walk[T]) remainder() T {
	last := w.at(w.count)
	if last > w.b.final {
		return last - w.b.final
	}

	return w.b.final - last
}

// ToArray returns every value of b in enumeration order, one unit apart.
// Equivalent to ToArrayStep(1).
//
// Example: New(1, 5).ToArray() = [1 2 3 4 5]; New(5, 1).ToArray() = [5 4 3 2 1].
func (b Bound[T]) ToArray() ([]T, error) {
	xs, err := b.materialize(1)
	if err != nil {
		return nil, boundErrorf(methodToArray, err, "")
	}

	return xs, nil
}

// ToArrayStep returns the values of b in enumeration order, |step| apart.
//
// Example: New(1, 5).ToArrayStep(2) = [1 3 5], and New(1, 6).ToArrayStep(2)
// is also [1 3 5]: 6 is not reachable at step 2.
//
// Errors: ErrNonFinite, ErrInvalidStep (float widths), ErrSpanTooLarge.
// Complexity: O(span/step) time and memory.
func (b Bound[T]) ToArrayStep(step T) ([]T, error) {
	xs, err := b.materialize(step)
	if err != nil {
		return nil, boundErrorf(methodToArrayStep, err, "bound=%v step=%v", b, step)
	}

	return xs, nil
}

// Last returns the final element ToArrayStep(step) would produce, and the
// distance from it to final (zero when step divides the span).
// Complexity: O(1).
func (b Bound[T]) Last(step T) (last, remainder T, err error) {
	w, err := newWalk(b, step)
	if err != nil {
		return last, remainder, boundErrorf(methodLast, err, "bound=%v step=%v", b, step)
	}

	return w.at(w.count), w.remainder(), nil
}

// Len returns the number of elements ToArrayStep(step) would produce.
// Non-finite float bounds and NaN steps have no elements.
// Complexity: O(1).
func (b Bound[T]) Len(step T) uint64 {
	w, err := newWalk(b, step)
	if err != nil {
		return 0
	}
	if w.count == math.MaxUint64 {
		return w.count
	}

	return w.count + 1
}

func (b Bound[T]) materialize(step T) ([]T, error) {
	w, err := newWalk(b, step)
	if err != nil {
		return nil, err
	}
	if w.count >= MaxMaterialize {
		return nil, ErrSpanTooLarge
	}

	xs := make([]T, w.count+1)
	var i uint64
	for i = 0; i <= w.count; i++ {
		xs[i] = w.at(i)
	}

	return xs, nil
}
