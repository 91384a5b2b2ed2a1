// Lenstra–Lenstra–Lovász short-vector reduction.
//
// The classic formulation: size-reduce each vector against its
// predecessors, and swap adjacent vectors whenever the Lovász condition
// fails for the chosen δ. Basis vectors stay integers throughout; only
// the Gram–Schmidt bookkeeping uses float64, which is ample for the
// small entries produced by the kernel and cycle builders. Every
// operation is unimodular (integer translate or swap), so the spanned
// lattice never changes, only its representation.

package lattice

import (
	"fmt"
	"math"
)

// minDelta is the exclusive lower bound of the valid LLL parameter range.
const minDelta = 0.25

// Reduce returns an LLL-reduced basis spanning the same lattice as b.
// The input basis is not mutated.
//
// Contract: delta ∈ (1/4, 1]. Vectors must be linearly independent
// (guaranteed by Build); dependent inputs make the Gram–Schmidt norms
// collapse and the loop would not terminate, so rank is trusted here.
//
// Complexity: polynomial in rank and length; immaterial at this scale.
func Reduce(b *Basis, delta float64) (*Basis, error) {
	if b == nil {
		return nil, fmt.Errorf("Reduce: %w", ErrNilBasis)
	}
	if delta <= minDelta || delta > 1 {
		return nil, fmt.Errorf("Reduce: delta=%v: %w", delta, ErrBadDelta)
	}

	vecs := b.Vectors() // deep copy; reduction works in place on it
	n := len(vecs)
	if n <= 1 {
		return &Basis{vecs: vecs, length: b.length}, nil
	}

	mu, norms := gramSchmidt(vecs)

	k := 1
	for k < n {
		// Size-reduce vecs[k] against all predecessors, nearest-integer.
		for j := k - 1; j >= 0; j-- {
			if math.Abs(mu[k][j]) > 0.5 {
				q := int64(math.Round(mu[k][j]))
				for i := range vecs[k] {
					vecs[k][i] -= q * vecs[j][i]
				}
				mu, norms = gramSchmidt(vecs)
			}
		}

		// Lovász condition between vecs[k-1] and vecs[k].
		if norms[k] >= (delta-mu[k][k-1]*mu[k][k-1])*norms[k-1] {
			k++
			continue
		}
		vecs[k], vecs[k-1] = vecs[k-1], vecs[k]
		mu, norms = gramSchmidt(vecs)
		if k > 1 {
			k--
		}
	}

	return &Basis{vecs: vecs, length: b.length}, nil
}

// gramSchmidt computes the GSO coefficients μ[i][j] (projection of v_i
// on the j-th orthogonalized direction) and the squared norms of the
// orthogonalized vectors. Recomputed from scratch after every basis
// change; the bases here are tiny, clarity wins over the incremental
// update rules.
func gramSchmidt(vecs [][]int64) (mu [][]float64, norms []float64) {
	n := len(vecs)
	m := len(vecs[0])

	ortho := make([][]float64, n)
	mu = make([][]float64, n)
	norms = make([]float64, n)

	for i := 0; i < n; i++ {
		ortho[i] = make([]float64, m)
		mu[i] = make([]float64, n)
		for x := 0; x < m; x++ {
			ortho[i][x] = float64(vecs[i][x])
		}
		for j := 0; j < i; j++ {
			var dot float64
			for x := 0; x < m; x++ {
				dot += float64(vecs[i][x]) * ortho[j][x]
			}
			if norms[j] != 0 {
				mu[i][j] = dot / norms[j]
			}
			for x := 0; x < m; x++ {
				ortho[i][x] -= mu[i][j] * ortho[j][x]
			}
		}
		for x := 0; x < m; x++ {
			norms[i] += ortho[i][x] * ortho[i][x]
		}
	}

	return mu, norms
}
