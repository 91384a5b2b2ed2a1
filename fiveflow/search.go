package fiveflow

import (
	"errors"
	"fmt"

	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/cubic"
	"github.com/lattark/nzflow/lattice"
)

// Search runs one coefficient search over a fixed assignment and basis.
// The returned flow is fully verified. Zero Options fields take the
// package defaults.
//
// Errors: ErrNilAssignment, ErrNilBasis, ErrSearchExhausted.
func Search(asg *bidirect.Assignment, basis *lattice.Basis, opts Options) (Result, error) {
	if asg == nil {
		return Result{}, fmt.Errorf("Search: %w", ErrNilAssignment)
	}
	if basis == nil {
		return Result{}, fmt.Errorf("Search: %w", ErrNilBasis)
	}
	opts = opts.normalized()

	var (
		res Result
		err error
	)
	switch opts.Strategy {
	case StrategyBacktracking:
		res, err = backtrack(asg, basis, opts)
	default:
		res, err = enumerate(asg, basis, opts)
	}
	if err != nil {
		return Result{}, fmt.Errorf("Search: %w", err)
	}

	return res, nil
}

// Find runs the whole pipeline on g: sign assignment, basis
// construction, coefficient search. Not every bidirection admits a flow
// within the bound, so up to MaxAttempts assignments are drawn, each
// from a seed derived off Options.Seed by the attempt index. The first
// verified flow wins; Result.Attempts records how many assignments were
// consumed.
//
// Structural violations (bridges, disconnection, wrong degrees) abort
// immediately: retrying cannot fix the input. Basis construction errors
// abort too. Only ErrSearchExhausted triggers a retry; it is returned
// as is once the attempt budget runs out.
//
// Errors: ErrNilGraph, bidirect.ErrStructural and its causes,
// lattice.ErrMalformedBasis, ErrSearchExhausted.
func Find(g *cubic.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("Find: %w", ErrNilGraph)
	}
	opts = opts.normalized()

	parent := opts.Seed
	if parent == 0 {
		parent = defaultSeed
	}

	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		seed := deriveSeed(parent, uint64(attempt))

		asg, err := bidirect.Assign(g, bidirect.Options{Seed: seed, Policy: opts.SignPolicy})
		if err != nil {
			return Result{}, fmt.Errorf("Find: attempt %d: %w", attempt, err)
		}

		basis, err := lattice.Build(asg, lattice.Options{
			Strategy: opts.BasisStrategy,
			Reduce:   opts.Reduce,
		})
		if err != nil {
			return Result{}, fmt.Errorf("Find: attempt %d: %w", attempt, err)
		}

		searchOpts := opts
		searchOpts.Seed = seed
		res, err := Search(asg, basis, searchOpts)
		if err == nil {
			res.Attempts = attempt

			return res, nil
		}
		if !errors.Is(err, ErrSearchExhausted) {
			return Result{}, fmt.Errorf("Find: attempt %d: %w", attempt, err)
		}
		lastErr = err
	}

	return Result{}, fmt.Errorf("Find: %d attempts: %w", opts.MaxAttempts, lastErr)
}
