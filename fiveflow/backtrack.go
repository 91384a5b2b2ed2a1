package fiveflow

import (
	"fmt"

	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/lattice"
	"github.com/lattark/nzflow/verify"
)

// backtrack performs randomized depth-first coefficient assignment.
// Depth d fixes the coefficient of basis vector d; candidate values
// -MaxBound..MaxBound are shuffled once per depth from the seeded rng.
//
// Pruning: once every basis vector touching an edge has been assigned,
// that edge's flow value is final. A final value of zero or beyond the
// flow bound cuts the whole subtree. Edges no vector touches can never
// become nonzero, so such a basis is rejected up front.
//
// Deterministic per seed. Each candidate assignment counts one step
// against opts.MaxSteps.
func backtrack(asg *bidirect.Assignment, basis *lattice.Basis, opts Options) (Result, error) {
	rank := basis.Rank()
	vecs := basis.Vectors()

	// finalAt[d] lists the edges whose flow becomes final after depth d.
	lastTouch := make([]int, basis.Length())
	for e := range lastTouch {
		lastTouch[e] = -1
	}
	for d, vec := range vecs {
		for e, x := range vec {
			if x != 0 {
				lastTouch[e] = d
			}
		}
	}
	finalAt := make([][]int, rank)
	for e, d := range lastTouch {
		if d < 0 {
			return Result{}, fmt.Errorf("backtrack: edge %d untouched by any basis vector: %w",
				e, ErrSearchExhausted)
		}
		finalAt[d] = append(finalAt[d], e)
	}

	rng := rngFromSeed(opts.Seed)
	cands := make([][]int64, rank)
	for d := range cands {
		cands[d] = shuffledCandidates(opts.MaxBound, rng)
	}

	var (
		flow   = make([]int64, basis.Length())
		coeffs = make([]int64, rank)
		next   = make([]int, rank) // per-depth cursor into cands[d]
		steps  int
		d      int
	)
	applied := make([]bool, rank)

	undo := func() {
		if !applied[d] {
			return
		}
		if c := coeffs[d]; c != 0 {
			for e, x := range vecs[d] {
				flow[e] -= c * x
			}
		}
		applied[d] = false
	}

	for {
		undo()
		if next[d] == len(cands[d]) {
			// Depth exhausted, back up.
			next[d] = 0
			if d == 0 {
				return Result{}, fmt.Errorf("backtrack: %w", ErrSearchExhausted)
			}
			d--

			continue
		}

		if steps >= opts.MaxSteps {
			return Result{}, fmt.Errorf("backtrack: step budget %d: %w", opts.MaxSteps, ErrSearchExhausted)
		}
		steps++

		c := cands[d][next[d]]
		next[d]++
		coeffs[d] = c
		if c != 0 {
			for e, x := range vecs[d] {
				flow[e] += c * x
			}
		}
		applied[d] = true

		ok := true
		for _, e := range finalAt[d] {
			if flow[e] == 0 || flow[e] > verify.MaxFlowValue || flow[e] < -verify.MaxFlowValue {
				ok = false

				break
			}
		}
		if !ok {
			continue // undo happens on the next iteration
		}

		if d == rank-1 {
			if verify.Flow(asg, flow, verify.MaxFlowValue).OK {
				return Result{
					Flow:     flow,
					Coeffs:   coeffs,
					Bound:    maxAbs(coeffs),
					Steps:    steps,
					Strategy: StrategyBacktracking,
					Attempts: 1,
				}, nil
			}

			continue
		}
		d++
	}
}

func maxAbs(vals []int64) int64 {
	var best int64
	for _, v := range vals {
		if v < 0 {
			v = -v
		}
		if v > best {
			best = v
		}
	}

	return best
}
