// Package match - initial doubly-stochastic matrices.
//
// Both initializers produce a row-major n×n matrix inside the Birkhoff
// polytope (entries in [0,1], row and column sums 1 within numerical
// tolerance). Barycenter is deterministic; Randomized consumes the
// restart-private RNG so that repeated restarts are statistically
// independent yet reproducible under a fixed seed.
package match

import "math/rand"

const (
	// balanceTol is the row-sum tolerance sinkhornBalance converges to.
	// The start point only needs to be comfortably inside the polytope;
	// tighter balancing buys nothing for the descent.
	balanceTol = 1e-3

	// maxBalanceSweeps caps the alternating normalizations. Strictly
	// positive matrices reach balanceTol long before this.
	maxBalanceSweeps = 1000
)

// barycenterInit fills dst (row-major n×n) with J/n, the centroid of the
// Birkhoff polytope.
//
// Complexity: O(n²).
func barycenterInit(dst []float64, n int) {
	w := 1.0 / float64(n)
	for i := range dst[:n*n] {
		dst[i] = w
	}
}

// randomizedInit fills dst with (K + J/n)/2 where K is a uniformly random
// positive matrix balanced to doubly-stochastic form by Sinkhorn–Knopp
// sweeps. The convex combination with the barycenter keeps the start well
// inside the polytope.
//
// Complexity: O(n²) per sweep.
func randomizedInit(dst []float64, n int, rng *rand.Rand) {
	for i := 0; i < n*n; i++ {
		// Strictly positive entries guarantee Sinkhorn convergence.
		dst[i] = rng.Float64() + 1e-3
	}
	sinkhornBalance(dst, n)

	w := 1.0 / float64(n)
	for i := 0; i < n*n; i++ {
		dst[i] = (dst[i] + w) / 2
	}
}

// sinkhornBalance alternately normalizes the rows and columns of the
// row-major n×n matrix m in place until every row sum is within
// balanceTol of 1 (column sums are exact after the column half-sweep).
// For strictly positive m this converges to the unique doubly-stochastic
// scaling (Sinkhorn–Knopp).
//
// Complexity: O(n²) per sweep.
func sinkhornBalance(m []float64, n int) {
	var sum float64
	for s := 0; s < maxBalanceSweeps; s++ {
		// Rows.
		for i := 0; i < n; i++ {
			sum = 0
			for j := 0; j < n; j++ {
				sum += m[i*n+j]
			}
			for j := 0; j < n; j++ {
				m[i*n+j] /= sum
			}
		}
		// Columns.
		for j := 0; j < n; j++ {
			sum = 0
			for i := 0; i < n; i++ {
				sum += m[i*n+j]
			}
			for i := 0; i < n; i++ {
				m[i*n+j] /= sum
			}
		}

		// Row deviation left behind by the column pass.
		dev := 0.0
		for i := 0; i < n; i++ {
			sum = 0
			for j := 0; j < n; j++ {
				sum += m[i*n+j]
			}
			if d := sum - 1; d > dev {
				dev = d
			} else if -d > dev {
				dev = -d
			}
		}
		if dev <= balanceTol {
			return
		}
	}
}
