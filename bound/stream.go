// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// stream.go — lazy enumeration for integer bounds (Streamable).
//
// Loop contract:
//   • ascending:  emit while current ≤ final, current += |step|
//   • descending: emit while current ≥ final, current -= |step|
//   • step 0 is treated as 1; the sign of step is ignored.
// The next candidate is checked against the remaining distance before it is
// computed, so the loop stops at the width's extremes instead of wrapping.

package bound

import "iter"

// NewInt returns the integer bound from start to final.
// Complexity: O(1).
func NewInt[T Integer](start, final T) IntBound[T] {
	return IntBound[T]{Bound: New(start, final)}
}

// Stream yields every integral value from start to final inclusive.
func (b IntBound[T]) Stream() iter.Seq[T] {
	return b.StreamStep(1)
}

// StreamStep yields start, start±|step|, … up to and including final when
// reachable. Nothing is materialized.
// Complexity: O(span/step) time, O(1) memory.
func (b IntBound[T]) StreamStep(step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		var (
			mag  uint64
			cur  uint64
			fin  uint64
			left uint64
		)
		mag = intMagnitude(step)
		cur = bits64(b.start)
		fin = bits64(b.final)
		for {
			if !yield(fromBits64[T](cur)) {
				return
			}
			if b.descending {
				left = cur - fin
			} else {
				left = fin - cur
			}
			if left < mag {
				return
			}
			if b.descending {
				cur -= mag
			} else {
				cur += mag
			}
		}
	}
}
