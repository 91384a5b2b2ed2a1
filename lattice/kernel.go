// Exact integer kernel of the signed incidence matrix.
//
// Gauss–Jordan elimination over math/big.Rat brings B to reduced row
// echelon form; each free column then yields one kernel direction, whose
// rational entries are scaled by the denominator LCM and divided by the
// entry GCD to obtain a primitive integer vector. No floating point
// enters at any stage, so B·g = 0 holds exactly.

package lattice

import (
	"math/big"

	"github.com/lattark/nzflow/bidirect"
)

// exactKernel returns primitive integer vectors spanning ker_ℤ(B).
//
// Determinism: pivot selection is first-nonzero in row-major order, so
// identical assignments yield identical bases.
//
// Complexity: O(V·E·min(V,E)) rational operations.
func exactKernel(asg *bidirect.Assignment) ([][]int64, error) {
	b := asg.Matrix()
	rows := len(b)
	cols := asg.Graph().EdgeCount()

	// Lift B into rationals.
	r := make([][]*big.Rat, rows)
	for i := range r {
		r[i] = make([]*big.Rat, cols)
		for j := range r[i] {
			r[i][j] = big.NewRat(int64(b[i][j]), 1)
		}
	}

	// Gauss–Jordan to RREF; record pivot column per pivot row.
	pivotCols := make([]int, 0, rows)
	row := 0
	for col := 0; col < cols && row < rows; col++ {
		// Find the first row at or below `row` with a nonzero entry.
		pivot := -1
		for i := row; i < rows; i++ {
			if r[i][col].Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue // free column
		}
		r[row], r[pivot] = r[pivot], r[row]

		// Normalize the pivot row so the pivot entry becomes 1.
		inv := new(big.Rat).Inv(r[row][col])
		for j := col; j < cols; j++ {
			r[row][j].Mul(r[row][j], inv)
		}

		// Eliminate the column everywhere else (Jordan step).
		for i := 0; i < rows; i++ {
			if i == row || r[i][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(r[i][col])
			for j := col; j < cols; j++ {
				t := new(big.Rat).Mul(factor, r[row][j])
				r[i][j].Sub(r[i][j], t)
			}
		}

		pivotCols = append(pivotCols, col)
		row++
	}

	// One kernel vector per free column f: x[f] = 1, x[p_i] = −R[i][f].
	isPivot := make([]bool, cols)
	for _, c := range pivotCols {
		isPivot[c] = true
	}

	var vecs [][]int64
	for f := 0; f < cols; f++ {
		if isPivot[f] {
			continue
		}
		rat := make([]*big.Rat, cols)
		for j := range rat {
			rat[j] = new(big.Rat)
		}
		rat[f].SetInt64(1)
		for i, p := range pivotCols {
			rat[p].Neg(r[i][f])
		}
		vecs = append(vecs, clearDenominators(rat))
	}

	return vecs, nil
}

// clearDenominators scales a rational vector by the LCM of its
// denominators and divides by the GCD of the results, producing a
// primitive integer vector with the same direction. The sign convention
// keeps the first nonzero entry positive for determinism.
func clearDenominators(rat []*big.Rat) []int64 {
	lcm := big.NewInt(1)
	for _, q := range rat {
		if q.Sign() == 0 {
			continue
		}
		d := q.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Div(new(big.Int).Mul(lcm, d), g)
	}

	ints := make([]*big.Int, len(rat))
	gcd := new(big.Int)
	for j, q := range rat {
		v := new(big.Int).Mul(q.Num(), new(big.Int).Div(lcm, q.Denom()))
		ints[j] = v
		if v.Sign() != 0 {
			gcd.GCD(nil, nil, gcd, new(big.Int).Abs(v))
		}
	}
	if gcd.Sign() == 0 {
		gcd.SetInt64(1)
	}

	out := make([]int64, len(rat))
	flip := false
	seenNonzero := false
	for j, v := range ints {
		v.Div(v, gcd)
		if !seenNonzero && v.Sign() != 0 {
			seenNonzero = true
			flip = v.Sign() < 0
		}
		if flip {
			v.Neg(v)
		}
		out[j] = v.Int64()
	}

	return out
}
