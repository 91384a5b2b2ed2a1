package lattice

import (
	"errors"
	"fmt"

	"github.com/lattark/nzflow/bidirect"
)

// Sentinel errors for basis construction and reduction.
var (
	// ErrNilAssignment indicates Build received a nil assignment.
	ErrNilAssignment = errors.New("lattice: nil assignment")

	// ErrNilBasis indicates Reduce received a nil basis.
	ErrNilBasis = errors.New("lattice: nil basis")

	// ErrEmptyKernel indicates the incidence matrix has a trivial kernel;
	// no flow search is possible on this assignment.
	ErrEmptyKernel = errors.New("lattice: incidence kernel is trivial")

	// ErrBadDelta indicates an LLL parameter outside (1/4, 1].
	ErrBadDelta = errors.New("lattice: delta must lie in (1/4, 1]")

	// ErrMalformedBasis indicates a constructed vector that fails
	// conservation. This is an internal invariant breach (a builder bug,
	// never an input property) and is surfaced loudly.
	ErrMalformedBasis = errors.New("lattice: basis vector violates conservation")
)

// Strategy selects how the flow-lattice basis is produced.
type Strategy int

const (
	// StrategyExactKernel computes ker(B) by exact rational elimination.
	StrategyExactKernel Strategy = iota

	// StrategyCycleBasis derives circulations from fundamental cycles of
	// a spanning tree.
	StrategyCycleBasis
)

// DefaultDelta is the conventional LLL reduction parameter.
const DefaultDelta = 0.75

// Options configures Build.
//
//	Strategy — basis construction strategy (default StrategyExactKernel).
//	Reduce   — apply LLL reduction to the raw basis (default true).
//	Delta    — LLL parameter in (1/4, 1] (default DefaultDelta).
type Options struct {
	Strategy Strategy
	Reduce   bool
	Delta    float64
}

// DefaultOptions returns the production defaults: exact kernel, LLL
// reduction with δ = 3/4. Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyExactKernel,
		Reduce:   true,
		Delta:    DefaultDelta,
	}
}

// Basis is an ordered list of integer flow-lattice vectors, each of
// length |E|. Immutable after construction.
type Basis struct {
	vecs   [][]int64
	length int // |E|, shared by all vectors
}

// NewBasis wraps raw vectors in a Basis, deep-copied. All vectors must
// share one length and at least one vector is required.
//
// Build is the usual entry point; NewBasis exists for callers bringing
// an externally computed basis to Reduce.
func NewBasis(vecs [][]int64) (*Basis, error) {
	if len(vecs) == 0 {
		return nil, fmt.Errorf("NewBasis: %w", ErrEmptyKernel)
	}
	length := len(vecs[0])
	cp := make([][]int64, len(vecs))
	for i, v := range vecs {
		if len(v) != length {
			return nil, fmt.Errorf("NewBasis: vector %d has length %d, want %d: %w",
				i, len(v), length, ErrMalformedBasis)
		}
		cp[i] = make([]int64, length)
		copy(cp[i], v)
	}

	return &Basis{vecs: cp, length: length}, nil
}

// Rank returns the number of basis vectors. Complexity: O(1).
func (b *Basis) Rank() int { return len(b.vecs) }

// Length returns the vector length |E|. Complexity: O(1).
func (b *Basis) Length() int { return b.length }

// Vector returns a copy of basis vector i.
// Panics on an out-of-range index (developer error).
func (b *Basis) Vector(i int) []int64 {
	out := make([]int64, b.length)
	copy(out, b.vecs[i])

	return out
}

// Vectors returns a deep copy of all basis vectors. Complexity: O(β·E).
func (b *Basis) Vectors() [][]int64 {
	out := make([][]int64, len(b.vecs))
	for i := range b.vecs {
		out[i] = b.Vector(i)
	}

	return out
}

// Combine returns the flow Σ coeffs[i]·g_i as a fresh vector.
// Panics when len(coeffs) != Rank() (developer error, hot path).
//
// Complexity: O(β·E); zero coefficients are skipped.
func (b *Basis) Combine(coeffs []int64) []int64 {
	if len(coeffs) != len(b.vecs) {
		panic("lattice: coefficient count does not match basis rank")
	}
	out := make([]int64, b.length)
	for i, c := range coeffs {
		if c == 0 {
			continue
		}
		for j, v := range b.vecs[i] {
			out[j] += c * v
		}
	}

	return out
}

// Build produces a flow-lattice basis for the assignment under opts.
//
// Stage 1: dispatch to the configured strategy.
// Stage 2: re-verify every vector against B (ErrMalformedBasis on breach).
// Stage 3: optional LLL reduction.
//
// Errors: ErrNilAssignment, ErrEmptyKernel, ErrMalformedBasis, ErrBadDelta.
func Build(asg *bidirect.Assignment, opts Options) (*Basis, error) {
	if asg == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilAssignment)
	}

	var (
		vecs [][]int64
		err  error
	)
	switch opts.Strategy {
	case StrategyCycleBasis:
		vecs, err = cycleBasis(asg)
	default:
		vecs, err = exactKernel(asg)
	}
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if len(vecs) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrEmptyKernel)
	}

	// The search engine assumes conservation of every combination, which
	// holds iff each basis vector conserves individually. Verify now.
	if err = assertConservation(asg, vecs); err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	basis := &Basis{vecs: vecs, length: asg.Graph().EdgeCount()}
	if !opts.Reduce {
		return basis, nil
	}

	delta := opts.Delta
	if delta == 0 {
		delta = DefaultDelta
	}

	reduced, err := Reduce(basis, delta)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}

	return reduced, nil
}

// assertConservation checks B·g = 0 for every vector, exact integers.
func assertConservation(asg *bidirect.Assignment, vecs [][]int64) error {
	g := asg.Graph()
	for i, vec := range vecs {
		for v := 0; v < g.VertexCount(); v++ {
			var sum int64
			for _, e := range g.IncidentEdges(v) {
				sum += int64(asg.Sign(v, e)) * vec[e]
			}
			if sum != 0 {
				return fmt.Errorf("vector %d, vertex %d: %w", i, v, ErrMalformedBasis)
			}
		}
	}

	return nil
}
