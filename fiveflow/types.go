package fiveflow

import (
	"errors"

	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/lattice"
)

// Sentinel errors of the search engine.
var (
	// ErrNilGraph indicates Find received a nil graph.
	ErrNilGraph = errors.New("fiveflow: nil graph")

	// ErrNilAssignment indicates Search received a nil assignment.
	ErrNilAssignment = errors.New("fiveflow: nil assignment")

	// ErrNilBasis indicates Search received a nil basis.
	ErrNilBasis = errors.New("fiveflow: nil basis")

	// ErrSearchExhausted indicates the strategy ran out of candidates or
	// steps without a verified flow. Retryable with a fresh assignment.
	ErrSearchExhausted = errors.New("fiveflow: search exhausted without a valid flow")
)

// Strategy selects the coefficient search algorithm.
type Strategy int

const (
	// StrategyBoundedEnum enumerates coefficient vectors in rings of
	// growing bound. Exhaustive up to MaxBound, seed-independent.
	StrategyBoundedEnum Strategy = iota

	// StrategyBacktracking assigns coefficients depth-first with seeded
	// candidate order and determined-edge pruning.
	StrategyBacktracking
)

// String yields the strategy name for logs and flags.
func (s Strategy) String() string {
	switch s {
	case StrategyBoundedEnum:
		return "enum"
	case StrategyBacktracking:
		return "backtrack"
	default:
		return "unknown"
	}
}

// Defaults applied by Search and Find when the corresponding Options
// field is zero.
const (
	// DefaultMaxBound caps coefficient magnitudes at the flow bound.
	DefaultMaxBound int64 = 4

	// DefaultMaxSteps bounds candidate evaluations per Search call.
	DefaultMaxSteps = 1 << 20

	// DefaultMaxAttempts bounds fresh sign assignments per Find call.
	DefaultMaxAttempts = 5
)

// Options configures Search and Find.
//
//	Strategy      — search algorithm (default StrategyBoundedEnum).
//	Seed          — RNG seed; 0 selects a fixed default stream. Only the
//	                backtracking strategy consumes randomness, but Find
//	                also derives per-attempt assignment seeds from it.
//	MaxBound      — largest |aᵢ| tried (default DefaultMaxBound).
//	MaxSteps      — candidate evaluation budget (default DefaultMaxSteps).
//	MaxAttempts   — sign assignments tried by Find (default DefaultMaxAttempts).
//	SignPolicy    — forwarded to bidirect.Assign.
//	BasisStrategy — forwarded to lattice.Build.
//	Reduce        — LLL-reduce the basis before searching.
type Options struct {
	Strategy      Strategy
	Seed          int64
	MaxBound      int64
	MaxSteps      int
	MaxAttempts   int
	SignPolicy    bidirect.SignPolicy
	BasisStrategy lattice.Strategy
	Reduce        bool
}

// DefaultOptions returns the production defaults: bounded enumeration,
// matching-oriented signs, exact kernel, LLL reduction on.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Strategy:      StrategyBoundedEnum,
		MaxBound:      DefaultMaxBound,
		MaxSteps:      DefaultMaxSteps,
		MaxAttempts:   DefaultMaxAttempts,
		SignPolicy:    bidirect.PolicyMatchingOriented,
		BasisStrategy: lattice.StrategyExactKernel,
		Reduce:        true,
	}
}

// normalized fills zero fields with defaults. Negative values are
// treated as zero.
func (o Options) normalized() Options {
	if o.MaxBound <= 0 {
		o.MaxBound = DefaultMaxBound
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = DefaultMaxSteps
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}

	return o
}

// Result carries a verified flow and search statistics.
//
//	Flow     — per-edge flow values, conservation and bound verified.
//	Coeffs   — basis coefficients producing Flow.
//	Bound    — max|aᵢ| of the winning coefficients.
//	Steps    — candidate evaluations spent by the winning Search.
//	Strategy — strategy that produced the flow.
//	Attempts — sign assignments consumed by Find (1 for a direct Search).
type Result struct {
	Flow     []int64
	Coeffs   []int64
	Bound    int64
	Steps    int
	Strategy Strategy
	Attempts int
}
