// Package layouts - public option/result types and sentinel errors.
package layouts

import "errors"

var (
	// ErrNilMatrix is returned when the distance matrix is nil.
	ErrNilMatrix = errors.New("layouts: nil distance matrix")

	// ErrNonSquare is returned when it is not square.
	ErrNonSquare = errors.New("layouts: distance matrix is not square")

	// ErrAsymmetry is returned when it is not symmetric within tolerance.
	ErrAsymmetry = errors.New("layouts: distance matrix is not symmetric")

	// ErrBadDistance is returned on negative, NaN or infinite entries.
	ErrBadDistance = errors.New("layouts: invalid distance entry")

	// ErrBadCanvas is returned when the canvas box is not positive.
	ErrBadCanvas = errors.New("layouts: canvas must be positive")

	// ErrDegenerate is returned when the scaling yields no positive
	// eigenvalue, so no embedding dimension carries any information.
	ErrDegenerate = errors.New("layouts: no positive eigenvalue in scaling")
)

// Position is a 2-D vertex coordinate inside the canvas.
type Position struct {
	X, Y float64
}

// Options configures the canvas the positions are scaled into.
type Options struct {
	// Width and Height of the target box; positions are min-max scaled
	// so each axis spans [0, Width] and [0, Height]. Must be positive.
	Width, Height float64
}

// DefaultOptions returns the unit canvas.
func DefaultOptions() Options {
	return Options{Width: 1, Height: 1}
}
