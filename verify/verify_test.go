package verify_test

import (
	"testing"

	"github.com/lattark/nzflow/bidirect"
	"github.com/lattark/nzflow/cubic"
	"github.com/lattark/nzflow/lattice"
	"github.com/lattark/nzflow/verify"
	"github.com/stretchr/testify/require"
)

// fixture returns an assignment over K4, its flow-lattice basis, and a
// flow that passes every check, found by brute force over small
// coefficients. Not every sign assignment admits a bounded flow, so
// seeds are scanned until one does.
func fixture(t *testing.T) (*bidirect.Assignment, *lattice.Basis, []int64) {
	t.Helper()

	for seed := int64(1); seed <= 20; seed++ {
		asg, err := bidirect.Assign(cubic.K4(), bidirect.Options{Seed: seed})
		require.NoError(t, err)
		b, err := lattice.Build(asg, lattice.DefaultOptions())
		require.NoError(t, err)

		coeffs := make([]int64, b.Rank())
		var walk func(int) []int64
		walk = func(i int) []int64 {
			if i == len(coeffs) {
				f := b.Combine(coeffs)
				if verify.Flow(asg, f, verify.MaxFlowValue).OK {
					return f
				}

				return nil
			}
			for c := int64(-verify.MaxFlowValue); c <= verify.MaxFlowValue; c++ {
				coeffs[i] = c
				if f := walk(i + 1); f != nil {
					return f
				}
			}

			return nil
		}
		if f := walk(0); f != nil {
			return asg, b, f
		}
	}
	t.Fatal("no K4 assignment in 20 seeds admits a nowhere-zero 5-flow")

	return nil, nil, nil
}

func TestFlow_Accepts(t *testing.T) {
	t.Parallel()

	asg, _, f := fixture(t)

	v := verify.Flow(asg, f, 0) // zero bound selects the default
	require.True(t, v.OK)
	require.Equal(t, verify.CheckNone, v.Check)
	require.Equal(t, "ok", v.String())

	// Negating a flow preserves every property.
	neg := make([]int64, len(f))
	for i, x := range f {
		neg[i] = -x
	}
	require.True(t, verify.Flow(asg, neg, 0).OK)
}

func TestFlow_Shape(t *testing.T) {
	t.Parallel()

	asg, _, f := fixture(t)

	v := verify.Flow(asg, f[:len(f)-1], 0)
	require.False(t, v.OK)
	require.Equal(t, verify.CheckShape, v.Check)

	v = verify.Flow(asg, nil, 0)
	require.Equal(t, verify.CheckShape, v.Check)
}

func TestFlow_Conservation(t *testing.T) {
	t.Parallel()

	asg, _, f := fixture(t)

	// Perturbing a single edge breaks conservation at its endpoints.
	bad := make([]int64, len(f))
	copy(bad, f)
	bad[2]++

	v := verify.Flow(asg, bad, 0)
	require.False(t, v.OK)
	require.Equal(t, verify.CheckConservation, v.Check)
	require.GreaterOrEqual(t, v.Vertex, 0)
	require.Equal(t, -1, v.Edge)
}

func TestFlow_NowhereZero(t *testing.T) {
	t.Parallel()

	asg, b, _ := fixture(t)

	// The all-zero flow conserves everywhere, so the zero check is the
	// first one it can fail.
	zero := make([]int64, b.Length())
	v := verify.Flow(asg, zero, 0)
	require.False(t, v.OK)
	require.Equal(t, verify.CheckNowhereZero, v.Check)
	require.Equal(t, 0, v.Edge)
	require.Equal(t, -1, v.Vertex)
}

func TestFlow_Range(t *testing.T) {
	t.Parallel()

	asg, _, f := fixture(t)

	// 5·f conserves and stays nowhere-zero, but every magnitude leaves
	// the default bound.
	big := make([]int64, len(f))
	for i, x := range f {
		big[i] = 5 * x
	}

	v := verify.Flow(asg, big, 0)
	require.False(t, v.OK)
	require.Equal(t, verify.CheckRange, v.Check)
	require.Equal(t, 0, v.Edge)

	// A wider explicit bound admits the same vector.
	require.True(t, verify.Flow(asg, big, 20).OK)
}

func TestFlow_CheckOrder(t *testing.T) {
	t.Parallel()

	asg, b, _ := fixture(t)

	// A unit vector on one edge violates conservation and nowhere-zero
	// at once; conservation is reported first.
	unit := make([]int64, b.Length())
	unit[0] = 1
	v := verify.Flow(asg, unit, 0)
	require.Equal(t, verify.CheckConservation, v.Check)
}

func TestCheck_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "none", verify.CheckNone.String())
	require.Equal(t, "conservation", verify.CheckConservation.String())
	require.Equal(t, "nowhere-zero", verify.CheckNowhereZero.String())
	require.Equal(t, "range", verify.CheckRange.String())
	require.Equal(t, "shape", verify.CheckShape.String())
}
