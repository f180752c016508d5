// Package layouts - classical MDS positioning.
package layouts

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/mds"
)

const (
	// symTol is the structural tolerance for symmetry checks on the
	// input distance matrix.
	symTol = 1e-9

	// eigRelTol decides whether the second embedding dimension carries
	// information: eigenvalue 2 must exceed this fraction of eigenvalue
	// 1. Exactly collinear inputs leave round-off-sized positive noise
	// in eigenvalue 2, which min-max scaling would otherwise amplify
	// across the whole canvas.
	eigRelTol = 1e-6
)

// PositionsFromDistances embeds the vertices described by the symmetric
// pairwise distance matrix d into 2-D via Torgerson scaling and rescales
// the result into the canvas. Vertex order is preserved: pos[i] belongs
// to row i of d.
//
// A rank-1 scaling (a line) is padded with a zero Y axis rather than
// rejected; only a fully degenerate scaling is an error.
//
// Complexity: O(n³) time, O(n²) space.
func PositionsFromDistances(d *mat.Dense, opts Options) ([]Position, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrBadCanvas
	}
	n, err := validateDistances(d)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []Position{{X: 0, Y: 0}}, nil
	}

	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, d.At(i, j))
		}
	}

	eig := make([]float64, n)
	var coords mat.Dense
	k, _ := mds.TorgersonScaling(&coords, eig, sym)
	if k == 0 {
		return nil, ErrDegenerate
	}

	// Eigenvalues arrive sorted descending alongside the coordinate
	// columns; dimension 2 is real only when its eigenvalue is a
	// non-trivial fraction of the first.
	_, cols := coords.Dims()
	planar := cols > 1 && k > 1 && eig[1] > eigRelTol*eig[0]

	pos := make([]Position, n)
	for i := 0; i < n; i++ {
		pos[i].X = coords.At(i, 0)
		if planar {
			pos[i].Y = coords.At(i, 1)
		}
	}
	scaleToCanvas(pos, opts)

	return pos, nil
}

// scaleToCanvas min-max scales each axis into [0, Width]×[0, Height].
// A constant axis collapses to the canvas midline.
func scaleToCanvas(pos []Position, opts Options) {
	minX, maxX := pos[0].X, pos[0].X
	minY, maxY := pos[0].Y, pos[0].Y
	for _, p := range pos[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	for i := range pos {
		pos[i].X = scaleAxis(pos[i].X, minX, maxX, opts.Width)
		pos[i].Y = scaleAxis(pos[i].Y, minY, maxY, opts.Height)
	}
}

func scaleAxis(v, lo, hi, span float64) float64 {
	if hi == lo {
		return span / 2
	}

	return (v - lo) / (hi - lo) * span
}

// validateDistances enforces squareness, symmetry, zero-or-positive
// finite entries. Returns the order.
func validateDistances(d *mat.Dense) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	rows, cols := d.Dims()
	if rows != cols || rows == 0 {
		return 0, ErrNonSquare
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := d.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return 0, ErrBadDistance
			}
			if math.Abs(v-d.At(j, i)) > symTol {
				return 0, ErrAsymmetry
			}
		}
	}

	return rows, nil
}
