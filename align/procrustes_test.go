package align_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/microsoft/graspologic/align"
)

func randomPoints(n, d int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	x := mat.NewDense(n, d, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < d; j++ {
			x.Set(i, j, rng.NormFloat64())
		}
	}

	return x
}

// rotation2D builds the 2×2 rotation by angle theta.
func rotation2D(theta float64) *mat.Dense {
	c, s := math.Cos(theta), math.Sin(theta)

	return mat.NewDense(2, 2, []float64{c, -s, s, c})
}

// TestAlignOrthogonal_RecoversRotation: when Y is exactly a rotated X,
// Procrustes recovers the rotation and the residual vanishes.
func TestAlignOrthogonal_RecoversRotation(t *testing.T) {
	x := randomPoints(40, 2, 1)
	rot := rotation2D(0.83)
	var y mat.Dense
	y.Mul(x, rot)

	aligned, q, err := align.AlignOrthogonal(x, &y)
	require.NoError(t, err)

	require.True(t, mat.EqualApprox(rot, q, 1e-10))
	require.True(t, mat.EqualApprox(&y, aligned, 1e-10))
}

// TestAlignOrthogonal_OrthogonalQ: the recovered transform is orthogonal
// even when no exact alignment exists.
func TestAlignOrthogonal_OrthogonalQ(t *testing.T) {
	x := randomPoints(25, 3, 2)
	y := randomPoints(25, 3, 3)

	_, q, err := align.AlignOrthogonal(x, y)
	require.NoError(t, err)

	var qtq mat.Dense
	qtq.Mul(q.T(), q)
	require.True(t, mat.EqualApprox(eye(3), &qtq, 1e-10))
}

// TestAlignOrthogonal_NeverWorsens: aligning cannot increase the
// Frobenius residual (identity is always a candidate transform).
func TestAlignOrthogonal_NeverWorsens(t *testing.T) {
	x := randomPoints(30, 4, 4)
	y := randomPoints(30, 4, 5)

	aligned, _, err := align.AlignOrthogonal(x, y)
	require.NoError(t, err)

	var before, after mat.Dense
	before.Sub(x, y)
	after.Sub(aligned, y)
	require.LessOrEqual(t, mat.Norm(&after, 2), mat.Norm(&before, 2)+1e-12)
}

func TestAlignSignFlips_KnownFlips(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		1, -4,
		2, 1,
		-1, 2,
	})
	// Dimension 0 agrees in sign with itself, dimension 1 is negated.
	var y mat.Dense
	y.Scale(1, x)
	for i := 0; i < 3; i++ {
		y.Set(i, 1, -x.At(i, 1))
	}

	aligned, flips, err := align.AlignSignFlips(x, &y, align.MaxMagnitude)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -1}, flips)
	require.True(t, mat.EqualApprox(&y, aligned, 1e-12))
}

func TestAlignSignFlips_MedianCriterion(t *testing.T) {
	x := randomPoints(21, 3, 6)
	aligned, flips, err := align.AlignSignFlips(x, x, align.Median)
	require.NoError(t, err)
	// Aligning a matrix to itself never flips anything.
	require.Equal(t, []float64{1, 1, 1}, flips)
	require.True(t, mat.EqualApprox(x, aligned, 1e-12))
}

func TestAlign_Validation(t *testing.T) {
	x := randomPoints(5, 2, 7)

	_, _, err := align.AlignOrthogonal(nil, x)
	require.ErrorIs(t, err, align.ErrNilMatrix)

	_, _, err = align.AlignOrthogonal(x, randomPoints(6, 2, 8))
	require.ErrorIs(t, err, align.ErrDimensionMismatch)

	bad := randomPoints(5, 2, 9)
	bad.Set(0, 0, math.NaN())
	_, _, err = align.AlignOrthogonal(x, bad)
	require.ErrorIs(t, err, align.ErrNonFinite)

	_, _, err = align.AlignSignFlips(x, x, align.Criterion(42))
	require.ErrorIs(t, err, align.ErrBadCriterion)
}

func eye(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
