package bidirect

import (
	"errors"
	"fmt"
)

// ErrStructural is the umbrella for every precondition failure: matching
// it with errors.Is identifies an input the engine can never handle,
// as opposed to a retryable search exhaustion.
var ErrStructural = errors.New("bidirect: structural precondition violated")

// Specific precondition sentinels; each wraps ErrStructural so callers
// may match either the class or the exact cause.
var (
	// ErrNilGraph indicates Assign received a nil graph.
	ErrNilGraph = fmt.Errorf("%w: nil graph", ErrStructural)

	// ErrNotCubic indicates a vertex with degree ≠ 3.
	ErrNotCubic = fmt.Errorf("%w: graph is not 3-regular", ErrStructural)

	// ErrDisconnected indicates the graph has more than one component.
	ErrDisconnected = fmt.Errorf("%w: graph is disconnected", ErrStructural)

	// ErrBridgeDetected indicates at least one bridge edge.
	ErrBridgeDetected = fmt.Errorf("%w: graph has a bridge", ErrStructural)

	// ErrBadMatching indicates a caller-supplied matching that is not a
	// perfect matching with a 2-factor complement.
	ErrBadMatching = fmt.Errorf("%w: supplied matching is not perfect", ErrStructural)
)

// SignPolicy selects the rule mapping edges to endpoint-sign patterns.
type SignPolicy int

const (
	// PolicyMatchingOriented orients matching edges and coin-flips the
	// 2-factor edges between oriented and same-sign patterns.
	PolicyMatchingOriented SignPolicy = iota

	// PolicyRandom coin-flips every edge with no matching structure.
	PolicyRandom
)

// Options configures Assign.
//
//	Seed     — RNG seed; 0 selects a fixed default stream.
//	Policy   — sign-assignment rule (default PolicyMatchingOriented).
//	Matching — optional precomputed perfect matching (edge indices).
//	           When nil, Assign searches for one itself.
type Options struct {
	Seed     int64
	Policy   SignPolicy
	Matching []int
}

// DefaultOptions returns the production defaults: matching-oriented
// policy, zero seed (fixed default stream), self-computed matching.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{Policy: PolicyMatchingOriented}
}
