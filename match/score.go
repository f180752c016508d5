// Package match - objective evaluation on discrete permutations.
package match

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// roundScale controls final score stabilization precision (1e-9). It
// removes cross-platform FP drift from reported scores without affecting
// which permutation wins the restart reduction.
const roundScale = 1e9

// Score evaluates the objective of a discrete permutation: the raw QAP
// cost Σ A[i,j]·B[perm[i],perm[j]] under Minimize, its negation under
// Maximize. Lower is better in both cases, and the value agrees exactly
// with Result.Score for the returned permutation (round-trip law).
//
// Contracts:
//   - A, B square, equal order, finite (validated here as at Match entry).
//   - perm must be a bijection on [0, n).
//
// Complexity: O(n²).
func Score(a, b *mat.Dense, perm []int, objective Objective) (float64, error) {
	n, err := validateMatrices(a, b)
	if err != nil {
		return 0, err
	}
	switch objective {
	case Minimize, Maximize:
		// ok
	default:
		return 0, ErrBadObjective
	}
	if len(perm) != n {
		return 0, ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, j := range perm {
		if j < 0 || j >= n || seen[j] {
			return 0, ErrBadPermutation
		}
		seen[j] = true
	}

	var cost float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cost += a.At(i, j) * b.At(perm[i], perm[j])
		}
	}
	if objective == Maximize {
		cost = -cost
	}

	return round1e9(cost), nil
}

// qapCostFlat is the hot-path twin of Score for validated flat inputs.
//
// Complexity: O(n²).
func qapCostFlat(a, b []float64, n int, perm []int) float64 {
	var cost float64
	for i := 0; i < n; i++ {
		ai := i * n
		bi := perm[i] * n
		for j := 0; j < n; j++ {
			cost += a[ai+j] * b[bi+perm[j]]
		}
	}

	return cost
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
