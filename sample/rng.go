// SPDX-License-Identifier: MIT
// Package: numrange/sample
//
// rng.go — seed policy and stream derivation.
//
// Policy:
//   • seed == 0 passed to WithSeed maps to DefaultSeed, so a zero value is
//     still reproducible.
//   • New without options seeds from crypto/rand; nothing reads the clock
//     unless the entropy source fails.
//   • Fork mixes one draw from the parent with a stream id (SplitMix64), so
//     workers get decorrelated, reproducible generators.

package sample

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// DefaultSeed is used when WithSeed(0) is requested.
const DefaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to DefaultSeed.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// NewSeed returns a high-entropy seed read from crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// entropySeed is NewSeed with a clock fallback for platforms whose entropy
// source is unavailable.
func entropySeed() int64 {
	seed, err := NewSeed()
	if err != nil {
		return time.Now().UnixNano()
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream id into a new 64-bit seed
// using the SplitMix64 finalizer.
//
// Notes:
//   - The additive constant is the 64-bit golden ratio; the two multipliers
//     and shift amounts are the canonical SplitMix64 avalanche (Vigna 2014).
//   - Neighbouring stream ids and parents differing in one bit produce
//     unrelated seeds, so Fork(1) and Fork(2) do not draw correlated values.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
