// Package simulate - configuration and sentinel errors.
package simulate

import "errors"

var (
	// ErrNilMatrix is returned when a probability or correlation matrix
	// is nil.
	ErrNilMatrix = errors.New("simulate: nil matrix")

	// ErrNonSquare is returned when P or R is not square.
	ErrNonSquare = errors.New("simulate: matrix is not square")

	// ErrDimensionMismatch is returned when P and R (or the SBM block
	// matrix and size vector) disagree in shape.
	ErrDimensionMismatch = errors.New("simulate: dimension mismatch")

	// ErrBadOrder is returned when a vertex count is not positive.
	ErrBadOrder = errors.New("simulate: vertex count must be positive")

	// ErrBadProbability is returned when an edge probability lies
	// outside [0, 1] or is not finite.
	ErrBadProbability = errors.New("simulate: probability outside [0,1]")

	// ErrBadCorrelation is returned when a correlation lies outside
	// [0, 1] or is not finite.
	ErrBadCorrelation = errors.New("simulate: correlation outside [0,1]")

	// ErrBadBlockSizes is returned when an SBM community size vector is
	// empty or contains a non-positive entry.
	ErrBadBlockSizes = errors.New("simulate: block sizes must be positive")
)

// Options configures a sampling call.
type Options struct {
	// Directed produces an asymmetric adjacency matrix; otherwise the
	// upper triangle is sampled and mirrored.
	Directed bool

	// Loops samples the diagonal as well; otherwise it stays zero.
	Loops bool

	// Seed seeds the generator. Seed == 0 selects a fixed default
	// stream, keeping zero-value behavior deterministic.
	Seed int64
}
