// SPDX-License-Identifier: MIT
// Package: numrange/sample
//
// errors.go — sentinel errors for the sample package.
//
// Every caller contract violation matches ErrInvalidArgument through
// errors.Is, and also its own specific sentinel.

package sample

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the class of every error returned by this package.
var ErrInvalidArgument = errors.New("sample: invalid argument")

var (
	// ErrNegativeMin is returned when the lower sampling bound is below zero.
	ErrNegativeMin = fmt.Errorf("%w: negative lower bound", ErrInvalidArgument)

	// ErrInvertedBounds is returned when max < min.
	ErrInvertedBounds = fmt.Errorf("%w: max below min", ErrInvalidArgument)

	// ErrNonFinite is returned when a float bound is NaN or infinite.
	ErrNonFinite = fmt.Errorf("%w: non-finite bound", ErrInvalidArgument)

	// ErrNegativeLength is returned when a requested output length is below zero.
	ErrNegativeLength = fmt.Errorf("%w: negative length", ErrInvalidArgument)

	// ErrEmptyChoice is returned by OneOf when there is nothing to choose from.
	ErrEmptyChoice = fmt.Errorf("%w: empty choice", ErrInvalidArgument)
)

// Method names used as error context prefixes.
const (
	methodFloat64 = "Float64"
	methodBetween = "Between"
	methodString  = "String"
	methodDigits  = "Digits"
	methodOneOf   = "OneOf"
)

// sampleErrorf prefixes err with the method and a formatted detail.
func sampleErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w (%s)", method, err, fmt.Sprintf(format, args...))
}
