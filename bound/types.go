// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// types.go — numeric constraints and the Bound value type.
//
// Contract:
//   • Bound is a value type; every derived field is computed once in New.
//   • Integer widths are signed; arithmetic that may exceed the width is done
//     in 64-bit two's complement and narrowed per element (see numeric.go).
//   • Streaming is a capability of integer bounds only (Streamable/IntBound).

package bound

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Integer permits the signed integer widths a Bound can be built over.
type Integer interface {
	constraints.Signed
}

// Float permits the floating-point widths a Bound can be built over.
type Float interface {
	constraints.Float
}

// Number is the numeric trait shared by every Bound: ordered, closed under
// + and -, and convertible to and from int64/float64 at a single boundary.
type Number interface {
	Integer | Float
}

// Bound is an inclusive interval [lowest, highest] that also remembers the
// order the endpoints were given in.
//
// Fields are unexported so a Bound cannot drift from its invariants:
//   - lowest  = min(start, final)
//   - highest = max(start, final)
//   - descending = start > final
//
// Bounds compare with == by value.
type Bound[T Number] struct {
	start      T
	final      T
	highest    T
	lowest     T
	descending bool
}

// Streamable is implemented by bounds that can enumerate their integral
// values lazily, without materializing a slice first.
type Streamable[T Integer] interface {
	// Stream yields every value from start to final inclusive.
	Stream() iter.Seq[T]
	// StreamStep yields values |step| apart, starting at start and never
	// crossing final. A zero step is treated as 1.
	StreamStep(step T) iter.Seq[T]
}

// IntBound is a Bound over an integer width. It is the only Streamable bound.
type IntBound[T Integer] struct {
	Bound[T]
}

var _ Streamable[int8] = IntBound[int8]{}
