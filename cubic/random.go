// Random cubic graph construction via stub matching (pairing model).
//
// Each vertex contributes three stubs; a shuffled stub list is paired
// consecutively, the pairing is validated without mutating anything
// (no loops, no parallel edges), and the realized graph is accepted only
// when it is additionally connected and bridgeless. Invalid pairings and
// rejected realizations trigger a reshuffle, bounded by a fixed attempt
// budget so the construction either succeeds or fails deterministically.

package cubic

import (
	"fmt"
	"math/rand"
)

// defaultSeed is the fixed stream used when callers pass seed==0.
// Arbitrary but stable, so zero-seed runs stay reproducible.
const defaultSeed int64 = 1

// maxConstructAttempts bounds the reshuffle loop of RandomCubic.
const maxConstructAttempts = 200

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 selects defaultSeed; anything else is used verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomCubic builds a random connected bridgeless cubic graph on n
// vertices using stub matching with bounded retries.
//
// Contract:
//   - n ≥ 4 and n even (3n stubs must pair up); otherwise a sentinel error.
//   - Deterministic per seed: same (n, seed) ⇒ identical graph.
//
// Failure: ErrConstructFailed after maxConstructAttempts rejected
// realizations. Rejection reasons are loops/parallel edges in the pairing
// and realized graphs that are disconnected or carry a bridge.
//
// Complexity: expected O(attempts · n), O(n) space.
func RandomCubic(n int, seed int64) (*Graph, error) {
	if n < 4 {
		return nil, fmt.Errorf("RandomCubic: n=%d: %w", n, ErrTooFewVertices)
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("RandomCubic: n=%d: %w", n, ErrOddVertexCount)
	}

	rng := rngFromSeed(seed)

	// Stub list: vertex i appears cubicDegree times.
	stubCount := n * cubicDegree
	stubs := make([]int, stubCount)
	for i := 0; i < n; i++ {
		for k := 0; k < cubicDegree; k++ {
			stubs[i*cubicDegree+k] = i
		}
	}

	edges := make([]Edge, 0, stubCount/2)
	for attempt := 1; attempt <= maxConstructAttempts; attempt++ {
		rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		// Validate the pairing before building anything.
		valid := true
		seen := make(map[Edge]struct{}, stubCount/2)
		edges = edges[:0]
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			e := Edge{u, v}
			if _, dup := seen[e]; dup {
				valid = false
				break
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
		if !valid {
			continue
		}

		g, err := New(n, edges)
		if err != nil {
			// Pairing was pre-validated; any failure here is a bug.
			return nil, fmt.Errorf("RandomCubic: New: %w", err)
		}

		// Accept only graphs the flow engine can actually consume.
		if !IsConnected(g) || !IsBridgeless(g) {
			continue
		}

		return g, nil
	}

	return nil, fmt.Errorf("RandomCubic: no valid realization after %d attempts: %w",
		maxConstructAttempts, ErrConstructFailed)
}
