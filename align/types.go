// Package align - sentinel errors and criterion enum.
package align

import "errors"

var (
	// ErrNilMatrix is returned when X or Y is nil.
	ErrNilMatrix = errors.New("align: nil matrix")

	// ErrEmpty is returned when X or Y has no rows or no columns.
	ErrEmpty = errors.New("align: empty matrix")

	// ErrDimensionMismatch is returned when X and Y disagree in shape.
	// Both aligners require equal point counts and dimensions.
	ErrDimensionMismatch = errors.New("align: dimension mismatch")

	// ErrNonFinite is returned when an input contains NaN or ±Inf.
	ErrNonFinite = errors.New("align: non-finite entry")

	// ErrBadCriterion is returned when the sign-flip criterion is not a
	// recognized constant.
	ErrBadCriterion = errors.New("align: unknown criterion")

	// ErrSVDFailed is returned when the SVD of XᵀY does not converge.
	ErrSVDFailed = errors.New("align: svd failed to converge")
)

// Criterion selects the per-dimension statistic compared by
// AlignSignFlips. Closed enum, one case per strategy.
type Criterion int

const (
	// MaxMagnitude flips by the sign of the largest-magnitude entry of
	// each dimension.
	MaxMagnitude Criterion = iota

	// Median flips by the sign of each dimension's median.
	Median
)
