// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// errors.go — sentinel errors for the bound package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Methods attach context as "<Method>: <sentinel> (<detail>)" via %w.
//   • Nothing in this package panics on caller input.

package bound

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidStep indicates a step that has no magnitude (NaN).
	ErrInvalidStep = errors.New("bound: invalid step")

	// ErrNonFinite indicates a floating-point bound with a NaN or infinite
	// endpoint; such a bound has no enumerable span.
	ErrNonFinite = errors.New("bound: non-finite endpoint")

	// ErrSpanTooLarge indicates that materializing the requested sequence
	// would exceed MaxMaterialize elements. Use Values or Stream instead.
	ErrSpanTooLarge = errors.New("bound: span too large to materialize")
)

// Method names used as error context prefixes.
const (
	methodToArray     = "ToArray"
	methodToArrayStep = "ToArrayStep"
	methodIterator    = "Iterator"
	methodLast        = "Last"
)

// boundErrorf prefixes err with the method name and an optional detail.
// The sentinel stays reachable through errors.Is.
func boundErrorf(method string, err error, format string, args ...any) error {
	if format == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %w (%s)", method, err, fmt.Sprintf(format, args...))
}
