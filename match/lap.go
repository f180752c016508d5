// Package match - exact linear-assignment oracle.
//
// solveLAP is the combinatorial subroutine embedded in every Frank–Wolfe
// iteration (direction finding on the gradient) and invoked once more at
// the end of a restart (projection of the relaxed iterate). The outer
// optimization is only correct if this oracle is exact, so it implements
// the Jonker–Volgenant shortest-augmenting-path scheme with dual
// potentials: a global optimum, not an approximation.
//
// Design:
//   - Pure function: cost in, permutation out; no retained state, no RNG.
//   - Deterministic tie-break: the scan takes the first column achieving
//     the minimum reduced cost, so equal-cost optima resolve identically
//     on every run and platform.
//   - Hot-path discipline: one flat row-major cost slice, O(n) scratch
//     reused across augmentations, no hidden allocations inside loops.
//
// Complexity: O(n³) time, O(n) extra space.
package match

import "math"

// solveLAP returns the assignment perm minimizing Σ cost[i*n+perm[i]] over
// all bijections of [0, n). cost is row-major n×n and is not modified.
// Entries may be +Inf ("forbidden"); if no finite-cost perfect assignment
// exists the result is undefined in value but still a bijection, which is
// sufficient for the matcher because validated inputs are always finite.
//
// Complexity: O(n³).
func solveLAP(n int, cost []float64) []int {
	// 1-based auxiliary arrays; column 0 is the virtual root of each
	// augmenting-path search.
	u := make([]float64, n+1)    // row potentials
	v := make([]float64, n+1)    // column potentials
	p := make([]int, n+1)        // p[j] = row currently matched to column j
	way := make([]int, n+1)      // predecessor column on the alternating path
	minv := make([]float64, n+1) // minimal reduced cost seen per column
	used := make([]bool, n+1)    // columns visited by the current search

	var (
		i0, j0, j1 int
		cur, delta float64
	)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j := 0; j <= n; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		// Dijkstra-style search for the shortest augmenting path from row i.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = math.Inf(1)
			j1 = -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = cost[(i0-1)*n+(j-1)] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				// Strict < keeps the first minimal column: the
				// deterministic tie-break the restart reduction relies on.
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				// Every remaining column is forbidden; bail out of this
				// row, leaving the partial matching as-is.
				break
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Unwind the alternating path, flipping matched edges.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	perm := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] > 0 {
			perm[p[j]-1] = j - 1
		}
	}

	return perm
}
