// Package numrange is a small toolkit for inclusive numeric bounds: describe
// a closed interval once, then test membership, enumerate it at a step, or
// draw uniform values from it.
//
// 🚀 What is numrange?
//
//	A generic, allocation-aware library over the signed integer and float widths:
//		• Bounds: start/final with derived lowest/highest and direction
//		• Fit: how many whole steps cover a span, and what is left over
//		• Materialization: ToArray / ToArrayStep, inclusive of start
//		• Iteration: restartable Iterator and lazy iter.Seq views
//		• Streaming: integer-only Stream / StreamStep via IntBound
//		• Sampling: seeded, forkable Sampler with bounded draws, chars and strings
//
// ✨ Why choose numrange?
//
//   - Overflow-safe – int8 through int64 extremes enumerate without wrapping
//   - Deterministic – every random draw goes through an injectable Sampler
//   - Pure Go – no cgo
//
// Everything is organized under two subpackages:
//
//	bound/  — Bound, IntBound, Fit/FitFloat, ToArray, Iterator, Stream
//	sample/ — Sampler, Between/Within/UpTo, Upper/Lower/Digit, String, OneOf
//
// and a command, cmd/rangekit, that exposes both from the shell.
//
// Quick ASCII example:
//
//	New(5, 1).ToArrayStep(2)
//
//	  5 ──► 3 ──► 1        descending, remainder 0
//
//	New(0, 10).ToArrayStep(3)
//
//	  0 ──► 3 ──► 6 ──► 9  remainder 1, 10 is not reached
//
// See bound/doc.go and sample/doc.go for details and examples/ for
// runnable scenarios.
package numrange
