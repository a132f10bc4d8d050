// SPDX-License-Identifier: MIT
// Package: numrange/sample

package sample

// OneOf returns one element of items, chosen uniformly via Int(0, len−1).
// Returns ErrEmptyChoice when items is empty.
// Complexity: O(1).
func OneOf[T any](s *Sampler, items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, sampleErrorf(methodOneOf, ErrEmptyChoice, "len=0")
	}

	i, err := s.Int(0, len(items)-1)
	if err != nil {
		var zero T
		return zero, err
	}

	return items[i], nil
}
