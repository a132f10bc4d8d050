// Package bound models inclusive numeric intervals that remember the order in
// which their endpoints were given, and expands them into ordered sequences.
//
// 🚀 What is a Bound?
//
//	A Bound[T] is the closed interval between a start and a final value of a
//	single numeric width (int8, int16, int32, int64, float32, float64).
//	Giving the endpoints in reverse order declares a descending bound:
//
//	  bound.New(1, 5)   →  1 2 3 4 5
//	  bound.New(5, 1)   →  5 4 3 2 1
//
// ✨ Key features:
//   - Membership: Admit(v) and AdmitBound(other), constant time
//   - Materialization: ToArray / ToArrayStep build the ordered slice
//   - Iteration: Iterator (materialized, restartable) and Values (on-demand iter.Seq)
//   - Streaming: IntBound implements Streamable for integer widths only
//   - Fitting: Fit / FitFloat report how many whole steps fit inside a span
//   - Wrapping: Normalize / NormalizeAll fold out-of-range values back in
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/numrange/bound"
//
//	b := bound.New[int32](1, 6)
//	xs, err := b.ToArrayStep(2) // [1 3 5], 6 is not reachable at step 2
//
//	for v := range bound.NewInt[int8](5, 1).Stream() {
//	  fmt.Println(v) // 5 4 3 2 1
//	}
//
// Steps are magnitudes. A zero step is treated as 1 and a negative step as its
// absolute value on every entry point; direction always comes from the bound.
//
// Performance:
//
//   - Construction, Admit, AdmitBound: O(1)
//   - ToArrayStep, Iterator: O(span/step) time and memory
//   - Values, Stream: O(span/step) time, O(1) memory
package bound
