// Package match - unified entry points and the restart controller.
//
// Match/MatchSeeded validate everything up front, normalize the inputs
// (optional vertex shuffle, seed-first reordering), run NInit independent
// initialize→descend→project restarts - sequentially or on Workers
// goroutines - and reduce to the lowest score with a lowest-restart-index
// tie-break. The reduction is the only synchronization point: restarts
// share nothing but the immutable problem description.
package match

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Match finds an approximate vertex correspondence between two graphs of
// equal order given their adjacency (or flow/distance) matrices.
//
// Contracts:
//   - A and B square, equal order, finite; read-only for the call.
//   - opts validated before any matrix is touched.
//
// Errors: configuration, shape and numeric sentinels from types.go.
//
// Complexity: O(NInit·MaxIter·n³) time, O(n²) per concurrent restart.
func Match(a, b *mat.Dense, opts Options) (Result, error) {
	return MatchSeeded(a, b, nil, opts)
}

// MatchSeeded is Match with a partial correspondence fixed up front:
// each pair (i, j) pins vertex i of A to vertex j of B. Seeded pairs are
// excluded from free optimization; only the unseeded block is relaxed.
// An empty or nil seed set degenerates to Match.
func MatchSeeded(a, b *mat.Dense, seeds [][2]int, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	n, err := validateMatrices(a, b)
	if err != nil {
		return Result{}, err
	}
	if err = validateSeeds(seeds, n); err != nil {
		return Result{}, err
	}

	// Flat row-major copies; the caller's matrices stay untouched.
	aFlat := flatten(a, n)
	bFlat := flatten(b, n)

	// n == 1: the identity is the only bijection. No loop, no restarts,
	// score fixed at zero.
	if n == 1 {
		return Result{Perm: []int{0}}, nil
	}

	// Optional vertex relabeling of A, undone on output. Removes the
	// index-order bias of deterministic assignment tie-breaking.
	// shuf[u] = original vertex of A at working position u.
	var shuf []int
	work := aFlat
	if opts.ShuffleInput {
		shuf = permRange(n, shuffleRNG(opts.Seed))
		work = make([]float64, n*n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				work[u*n+v] = aFlat[shuf[u]*n+shuf[v]]
			}
		}
		if len(seeds) > 0 {
			inv := make([]int, n)
			for u, orig := range shuf {
				inv[orig] = u
			}
			remapped := make([][2]int, len(seeds))
			for k, s := range seeds {
				remapped[k] = [2]int{inv[s[0]], s[1]}
			}
			seeds = remapped
		}
	}

	// Seed-first reordering of both graphs; the free (unseeded) block is
	// what the Frank–Wolfe loop relaxes.
	s := len(seeds)
	nf := n - s
	rowOrder := seedOrder(seeds, n, 0)
	colOrder := seedOrder(seeds, n, 1)

	// composePerm maps a free-block assignment back to original labels.
	composePerm := func(fperm []int) []int {
		perm := make([]int, n)
		for k := 0; k < s; k++ {
			perm[rowOrder[k]] = colOrder[k]
		}
		for u := 0; u < nf; u++ {
			perm[rowOrder[s+u]] = colOrder[s+fperm[u]]
		}
		if shuf != nil {
			orig := make([]int, n)
			for u := 0; u < n; u++ {
				orig[shuf[u]] = perm[u]
			}
			perm = orig
		}

		return perm
	}

	// Fully seeded: nothing to optimize.
	if nf == 0 {
		perm := composePerm(nil)

		return Result{
			Perm:  perm,
			Score: round1e9(opts.objScalar() * qapCostFlat(aFlat, bFlat, n, perm)),
		}, nil
	}

	pb := buildProblem(work, bFlat, n, rowOrder, colOrder, s, opts.objScalar())

	// Independent restarts; results land in private slots, the reduction
	// below is the only synchronization.
	type restartOut struct {
		perm  []int
		score float64
		iters int
	}
	outs := make([]restartOut, opts.NInit)

	run := func(r int) {
		sc := newFWScratch(nf)
		switch opts.Init {
		case Randomized:
			randomizedInit(sc.p, nf, restartRNG(opts.Seed, r))
		default:
			barycenterInit(sc.p, nf)
		}
		fperm, iters := pb.descend(sc, opts.Eps, opts.MaxIter)
		perm := composePerm(fperm)
		outs[r] = restartOut{
			perm:  perm,
			score: opts.objScalar() * qapCostFlat(aFlat, bFlat, n, perm),
			iters: iters,
		}
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.NInit {
		workers = opts.NInit
	}
	if workers <= 1 {
		for r := 0; r < opts.NInit; r++ {
			run(r)
		}
	} else {
		var wg sync.WaitGroup
		idx := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for r := range idx {
					run(r)
				}
			}()
		}
		for r := 0; r < opts.NInit; r++ {
			idx <- r
		}
		close(idx)
		wg.Wait()
	}

	// Reduce: minimum score, ties to the lowest restart index. Strict <
	// makes the winner independent of scheduling.
	best := 0
	for r := 1; r < opts.NInit; r++ {
		if outs[r].score < outs[best].score {
			best = r
		}
	}

	return Result{
		Perm:       outs[best].perm,
		Score:      round1e9(outs[best].score),
		Iterations: outs[best].iters,
		Restart:    best,
	}, nil
}

// flatten copies an n×n Dense into a fresh row-major slice.
func flatten(m *mat.Dense, n int) []float64 {
	out := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+j] = m.At(i, j)
		}
	}

	return out
}

// seedOrder returns the working vertex order for one side: seeded
// vertices first (in seed order), then the remaining vertices ascending.
// side 0 orders A sources, side 1 orders B targets.
func seedOrder(seeds [][2]int, n, side int) []int {
	order := make([]int, 0, n)
	taken := make([]bool, n)
	for _, s := range seeds {
		order = append(order, s[side])
		taken[s[side]] = true
	}
	for v := 0; v < n; v++ {
		if !taken[v] {
			order = append(order, v)
		}
	}

	return order
}

// buildProblem extracts the free blocks of the reordered graphs and the
// constant gradient term contributed by the seeded blocks:
//
//	C = A21·B21ᵀ + A12ᵀ·B12
//
// where A21/A12 (resp. B21/B12) are the free-seeded off-diagonal blocks
// of A (resp. B) under rowOrder (resp. colOrder).
//
// Complexity: O(n²·s + nf²).
func buildProblem(aWork, bFlat []float64, n int, rowOrder, colOrder []int, s int, obj float64) *problem {
	nf := n - s
	pb := &problem{
		nf:  nf,
		a22: make([]float64, nf*nf),
		b22: make([]float64, nf*nf),
		obj: obj,
	}
	for u := 0; u < nf; u++ {
		ru := rowOrder[s+u] * n
		cu := colOrder[s+u] * n
		for v := 0; v < nf; v++ {
			pb.a22[u*nf+v] = aWork[ru+rowOrder[s+v]]
			pb.b22[u*nf+v] = bFlat[cu+colOrder[s+v]]
		}
	}
	if s == 0 {
		return pb
	}

	pb.cons = make([]float64, nf*nf)
	for u := 0; u < nf; u++ {
		ru := rowOrder[s+u]
		for w := 0; w < nf; w++ {
			cw := colOrder[s+w]
			var sum float64
			for k := 0; k < s; k++ {
				// A21·B21ᵀ: seeded columns of the free rows.
				sum += aWork[ru*n+rowOrder[k]] * bFlat[cw*n+colOrder[k]]
				// A12ᵀ·B12: seeded rows of the free columns.
				sum += aWork[rowOrder[k]*n+ru] * bFlat[colOrder[k]*n+cw]
			}
			pb.cons[u*nf+w] = sum
		}
	}

	return pb
}
