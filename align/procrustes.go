// Package align - orthogonal Procrustes and sign-flip aligners.
package align

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// AlignOrthogonal solves the orthogonal Procrustes problem: the
// orthogonal Q minimizing ‖X·Q − Y‖_F, obtained in closed form as U·Vᵀ
// from the SVD of XᵀY. Returns X·Q and Q itself.
//
// Contracts:
//   - X, Y of equal shape n×d, n ≥ 1, d ≥ 1, finite.
//   - Inputs are read-only; both results are freshly allocated.
//
// Complexity: O(n·d² + d³).
func AlignOrthogonal(x, y *mat.Dense) (*mat.Dense, *mat.Dense, error) {
	if err := validatePair(x, y); err != nil {
		return nil, nil, err
	}

	var m mat.Dense
	m.Mul(x.T(), y)

	var svd mat.SVD
	if ok := svd.Factorize(&m, mat.SVDThin); !ok {
		return nil, nil, ErrSVDFailed
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var q mat.Dense
	q.Mul(&u, v.T())

	var aligned mat.Dense
	aligned.Mul(x, &q)

	return &aligned, &q, nil
}

// AlignSignFlips aligns X to Y over diagonal ±1 transforms: dimension k
// of X is negated when its criterion statistic disagrees in sign with
// Y's. Returns the flipped copy of X and the per-dimension signs.
//
// A zero criterion value counts as positive, so already-aligned and
// all-zero dimensions are left untouched.
//
// Complexity: O(n·d) for MaxMagnitude, O(n·d·log n) for Median.
func AlignSignFlips(x, y *mat.Dense, crit Criterion) (*mat.Dense, []float64, error) {
	if err := validatePair(x, y); err != nil {
		return nil, nil, err
	}
	switch crit {
	case MaxMagnitude, Median:
		// ok
	default:
		return nil, nil, ErrBadCriterion
	}

	n, d := x.Dims()
	flips := make([]float64, d)
	aligned := mat.NewDense(n, d, nil)
	col := make([]float64, n)

	for k := 0; k < d; k++ {
		mat.Col(col, k, x)
		sx := criterionSign(col, crit)
		mat.Col(col, k, y)
		sy := criterionSign(col, crit)

		flips[k] = sx * sy
		for i := 0; i < n; i++ {
			aligned.Set(i, k, flips[k]*x.At(i, k))
		}
	}

	return aligned, flips, nil
}

// criterionSign evaluates the statistic on one dimension and returns its
// sign, with 0 treated as +1.
func criterionSign(col []float64, crit Criterion) float64 {
	var v float64
	switch crit {
	case Median:
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)
		v = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	default: // MaxMagnitude
		for _, x := range col {
			if math.Abs(x) > math.Abs(v) {
				v = x
			}
		}
	}
	if v < 0 {
		return -1
	}

	return 1
}

// validatePair enforces the shared contracts of both aligners.
func validatePair(x, y *mat.Dense) error {
	if x == nil || y == nil {
		return ErrNilMatrix
	}
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xr == 0 || xc == 0 || yr == 0 || yc == 0 {
		return ErrEmpty
	}
	if xr != yr || xc != yc {
		return ErrDimensionMismatch
	}
	for i := 0; i < xr; i++ {
		for j := 0; j < xc; j++ {
			if bad(x.At(i, j)) || bad(y.At(i, j)) {
				return ErrNonFinite
			}
		}
	}

	return nil
}

func bad(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
