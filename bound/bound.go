// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// bound.go — construction, accessors and membership.

package bound

import "fmt"

// New returns the inclusive bound from start to final.
// It never fails: final < start declares a descending bound.
// Complexity: O(1).
func New[T Number](start, final T) Bound[T] {
	b := Bound[T]{start: start, final: final}
	b.descending = start > final
	if b.descending {
		b.highest, b.lowest = start, final
	} else {
		b.highest, b.lowest = final, start
	}

	return b
}

// Start returns the first endpoint as given to New.
func (b Bound[T]) Start() T { return b.start }

// Final returns the second endpoint as given to New.
func (b Bound[T]) Final() T { return b.final }

// Highest returns max(start, final).
func (b Bound[T]) Highest() T { return b.highest }

// Lowest returns min(start, final).
func (b Bound[T]) Lowest() T { return b.lowest }

// IsDescending reports whether enumeration runs from high to low.
func (b Bound[T]) IsDescending() bool { return b.descending }

// Admit reports whether lowest ≤ v ≤ highest. NaN is never admitted.
// Complexity: O(1).
func (b Bound[T]) Admit(v T) bool {
	return b.lowest <= v && v <= b.highest
}

// AdmitBound reports whether other lies entirely within b.
// Direction plays no part: only lowest and highest are compared.
// Complexity: O(1).
func (b Bound[T]) AdmitBound(other Bound[T]) bool {
	return b.lowest <= other.lowest && b.highest >= other.highest
}

// Equal reports whether both bounds have the same start and final.
func (b Bound[T]) Equal(other Bound[T]) bool {
	return b.start == other.start && b.final == other.final
}

// Span returns highest − lowest as a float64, so that spans wider than the
// width itself (e.g. 255 for [-128, 127] in int8) are reported correctly.
func (b Bound[T]) Span() float64 {
	return float64(b.highest) - float64(b.lowest)
}

// String renders the bound in enumeration order, e.g. "[5..1]".
func (b Bound[T]) String() string {
	return fmt.Sprintf("[%v..%v]", b.start, b.final)
}
