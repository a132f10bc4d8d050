// SPDX-License-Identifier: MIT
// Package: numrange/bound
//
// iterator.go — finite, restartable iteration over a bound.
//
// Two shapes with identical output:
//   • Iterator: a pull iterator over the materialized slice.
//   • Values / ValuesStep: an iter.Seq that computes each element on demand,
//     so large spans cost O(1) memory. Every range over it starts afresh.

package bound

import "iter"

// Iterator walks a materialized sequence front to back.
// It is not safe for concurrent use.
type Iterator[T Number] struct {
	items []T
	pos   int
}

// Iterator returns a pull iterator over ToArray().
// Each call materializes anew; iterators never share state.
func (b Bound[T]) Iterator() (*Iterator[T], error) {
	return b.IteratorStep(1)
}

// IteratorStep returns a pull iterator over ToArrayStep(step).
// Complexity: O(span/step) to build, O(1) per Next.
func (b Bound[T]) IteratorStep(step T) (*Iterator[T], error) {
	xs, err := b.materialize(step)
	if err != nil {
		return nil, boundErrorf(methodIterator, err, "bound=%v step=%v", b, step)
	}

	return &Iterator[T]{items: xs}, nil
}

// HasNext reports whether Next will return another element.
func (it *Iterator[T]) HasNext() bool {
	return it.pos < len(it.items)
}

// Next returns the next element, or the zero value and false once exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.pos >= len(it.items) {
		var zero T
		return zero, false
	}
	v := it.items[it.pos]
	it.pos++

	return v, true
}

// Len returns the total number of elements, independent of position.
func (it *Iterator[T]) Len() int {
	return len(it.items)
}

// Remaining returns how many elements Next has yet to return.
func (it *Iterator[T]) Remaining() int {
	return len(it.items) - it.pos
}

// Reset rewinds the iterator to the first element.
func (it *Iterator[T]) Reset() {
	it.pos = 0
}

// Values yields the same elements as ToArray, computed on demand.
func (b Bound[T]) Values() iter.Seq[T] {
	return b.ValuesStep(1)
}

// ValuesStep yields the same elements as ToArrayStep(step), computed on
// demand. Spans above MaxMaterialize are walked; a bound or step that
// ToArrayStep rejects for any other reason yields nothing.
func (b Bound[T]) ValuesStep(step T) iter.Seq[T] {
	return func(yield func(T) bool) {
		w, err := newWalk(b, step)
		if err != nil {
			return
		}
		var i uint64
		for i = 0; ; i++ {
			if !yield(w.at(i)) || i == w.count {
				return
			}
		}
	}
}
