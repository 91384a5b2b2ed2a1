package fiveflow

import "math/rand"

// defaultSeed replaces seed==0 so the zero Options value stays
// deterministic. Arbitrary but stable.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 selects defaultSeed, anything else is used verbatim.
// The returned generator is not goroutine-safe; one per Search.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed with a stream index into an
// uncorrelated child seed, so each Find attempt draws an independent
// assignment without consuming shared RNG state. SplitMix64 finalizer
// constants (Vigna 2014).
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffledCandidates returns the values -bound..bound in a fresh order
// drawn from rng. Used per backtracking depth so no two depths share a
// candidate order.
func shuffledCandidates(bound int64, rng *rand.Rand) []int64 {
	vals := make([]int64, 0, 2*bound+1)
	for c := -bound; c <= bound; c++ {
		vals = append(vals, c)
	}
	rng.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	return vals
}
