// SPDX-License-Identifier: MIT
// Package: kolam/pattern
//
// rng.go - deterministic random generation shared by the walker and the
// retry/batch layers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: derived streams decorrelate via a SplitMix64 finalizer,
//     so retry attempts and batch indices never share a stream.
//
// Concurrency:
//   - math/rand.Rand is not goroutine-safe; derive an independent stream per
//     worker instead of sharing one.
package pattern

import "math/rand"

// defaultSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep zero-value configs reproducible.
const defaultSeed int64 = 1

// SeedRNG returns a deterministic *rand.Rand for the given seed.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func SeedRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using the canonical SplitMix64 finalizer (Vigna 2014). Small input
// changes produce large, well-distributed output changes, which keeps retry
// attempts and batch items statistically independent.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
