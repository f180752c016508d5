// Package match - input validation shared by Match and MatchSeeded.
//
// Validation runs in three stages, each mapped to one sentinel family:
// configuration (Options.validate, no matrices touched), shape
// (squareness and size agreement), numeric (finiteness). All failures
// abort the call synchronously with no partial Result.
//
// Design principles:
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors.
//   - O(n²) worst case, no hidden allocations beyond the seed set.
package match

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// validateMatrices checks that A and B are non-nil, square, of equal
// order, and finite. Returns the common order n.
//
// Complexity: O(n²).
func validateMatrices(a, b *mat.Dense) (int, error) {
	if a == nil || b == nil {
		return 0, ErrNilMatrix
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != ac || br != bc {
		return 0, ErrNonSquare
	}
	if ar != br {
		return 0, ErrDimensionMismatch
	}

	n := ar
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if x := a.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, ErrNonFinite
			}
			if x := b.At(i, j); math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, ErrNonFinite
			}
		}
	}

	return n, nil
}

// validateSeeds checks that every seed pair lies in [0, n) and that the
// pairs form a partial bijection (no source or target repeats).
//
// Complexity: O(s) time, O(s) space.
func validateSeeds(seeds [][2]int, n int) error {
	srcSeen := make(map[int]struct{}, len(seeds))
	dstSeen := make(map[int]struct{}, len(seeds))
	for _, s := range seeds {
		if s[0] < 0 || s[0] >= n || s[1] < 0 || s[1] >= n {
			return ErrSeedOutOfRange
		}
		if _, ok := srcSeen[s[0]]; ok {
			return ErrSeedDuplicate
		}
		if _, ok := dstSeen[s[1]]; ok {
			return ErrSeedDuplicate
		}
		srcSeen[s[0]] = struct{}{}
		dstSeen[s[1]] = struct{}{}
	}

	return nil
}
