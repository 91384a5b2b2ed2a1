package fiveflow

import (
	"fmt"

	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/lattice"
	"github.com/lattark/nzflow/verify"
)

// enumState carries the shared mutable state of one enumeration run so
// the recursion does not thread a long parameter list.
type enumState struct {
	asg    *bidirect.Assignment
	vecs   [][]int64
	flow   []int64 // partial combination, updated incrementally
	coeffs []int64
	bound  int64 // current ring A
	steps  int
	budget int // remaining candidate evaluations
}

// enumerate performs exhaustive search in rings of growing coefficient
// bound. Ring A visits exactly the vectors with max|aᵢ| = A, ordered by
// increasing total magnitude Σ|aᵢ|, then by position with values tried
// small-first (0, 1, -1, 2, -2, ...). Rings partition the coefficient
// space, so no vector is ever tested twice across levels.
//
// Seed-independent: identical inputs always yield identical output.
//
// Complexity: O((2·MaxBound+1)^β) candidates worst case, capped by the
// step budget.
func enumerate(asg *bidirect.Assignment, basis *lattice.Basis, opts Options) (Result, error) {
	st := &enumState{
		asg:    asg,
		vecs:   basis.Vectors(),
		flow:   make([]int64, basis.Length()),
		coeffs: make([]int64, basis.Rank()),
		budget: opts.MaxSteps,
	}

	rank := int64(basis.Rank())
	for a := int64(1); a <= opts.MaxBound; a++ {
		st.bound = a
		for total := a; total <= a*rank; total++ {
			found, err := st.ring(0, total, false)
			if err != nil {
				return Result{}, err
			}
			if found {
				return Result{
					Flow:     st.flow,
					Coeffs:   st.coeffs,
					Bound:    a,
					Steps:    st.steps,
					Strategy: StrategyBoundedEnum,
					Attempts: 1,
				}, nil
			}
		}
	}

	return Result{}, fmt.Errorf("enumerate: bound %d: %w", opts.MaxBound, ErrSearchExhausted)
}

// ring assigns coefficients from position pos on, spending exactly
// budget total magnitude, with at least one |aᵢ| = bound among the
// remaining positions unless seen already holds.
func (st *enumState) ring(pos int, budget int64, seen bool) (bool, error) {
	if pos == len(st.coeffs) {
		if budget != 0 || !seen {
			return false, nil
		}
		if st.steps >= st.budget {
			return false, fmt.Errorf("enumerate: step budget %d: %w", st.budget, ErrSearchExhausted)
		}
		st.steps++

		return verify.Flow(st.asg, st.flow, verify.MaxFlowValue).OK, nil
	}

	remaining := int64(len(st.coeffs) - pos)
	if budget > remaining*st.bound {
		return false, nil // cannot spend it all
	}
	if !seen && budget < st.bound {
		return false, nil // cannot reach the ring's bound anymore
	}

	for m := int64(0); m <= st.bound && m <= budget; m++ {
		signs := 2
		if m == 0 {
			signs = 1 // -0 duplicates 0
		}
		for s := 0; s < signs; s++ {
			v := m
			if s == 1 {
				v = -m
			}
			st.apply(pos, v)
			found, err := st.ring(pos+1, budget-m, seen || m == st.bound)
			if err != nil || found {
				return found, err
			}
			st.apply(pos, -v)
		}
	}

	return false, nil
}

// apply adds v·g_pos to the partial flow and records the coefficient.
func (st *enumState) apply(pos int, v int64) {
	st.coeffs[pos] += v
	if v == 0 {
		return
	}
	for e, x := range st.vecs[pos] {
		st.flow[e] += v * x
	}
}
