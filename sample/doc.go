// Package sample draws uniformly distributed values constrained to a numeric
// bound, plus the character and string helpers built on top of them.
//
// Every draw goes through an explicit *Sampler. A Sampler owns its generator,
// is safe for concurrent use, and is reproducible when built WithSeed and
// used from one goroutine; Fork derives independent per-worker streams.
//
// ⚙️ Usage:
//
//	s := sample.New(sample.WithSeed(42))
//
//	d, err := s.Int(1, 6)                               // a die roll
//	h, err := sample.Within(s, bound.New[int8](0, 23))  // an hour
//	id, err := s.String(12)                             // [a-zA-Z0-9]{12}
//
// Sampling contract:
//
//	Float64(min, max) = u·((max + 1) − min) + min,  u ∈ [0, 1)
//
// The +1 makes max reachable for integer widths, which floor (Int) or
// truncate (Int8/Int16/Int32/Int64) the draw. Float widths keep the raw draw,
// so their results lie in [min, max+1). min < 0 and max < min are rejected
// with errors matching ErrInvalidArgument.
package sample
