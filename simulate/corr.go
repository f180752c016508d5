// Package simulate - correlated graph-pair generators.
//
// Design principles:
//   - Deterministic given Options.Seed; no ambient RNG state.
//   - Strict validation with sentinel errors before any sampling.
//   - One generator per model, all delegating to CorrelatedBernoulli.
package simulate

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// defaultSeed is the fixed stream used when Options.Seed == 0.
const defaultSeed int64 = 1

// CorrelatedBernoulli samples a pair (G1, G2) of binary graphs on n
// vertices. G1 is edge-wise Bernoulli(P); conditioned on G1, G2 uses the
// probability P + R·(1−P) where G1 has the edge and P·(1−R) where it
// does not, which makes R the edge-wise correlation of the pair.
//
// Contracts:
//   - P and R square, equal order, entries in [0, 1].
//   - Undirected output is symmetric; !Loops keeps the diagonal zero.
//
// Complexity: O(n²) time and space.
func CorrelatedBernoulli(p, r *mat.Dense, opts Options) (*mat.Dense, *mat.Dense, error) {
	n, err := validateProbMatrix(p, ErrBadProbability)
	if err != nil {
		return nil, nil, err
	}
	rn, err := validateProbMatrix(r, ErrBadCorrelation)
	if err != nil {
		return nil, nil, err
	}
	if n != rn {
		return nil, nil, ErrDimensionMismatch
	}

	rng := rand.New(rand.NewSource(seedOrDefault(opts.Seed)))

	g1 := sampleEdges(p, n, opts, rng)

	// Conditional probabilities for the second draw.
	p2 := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			pij := p.At(i, j)
			rij := r.At(i, j)
			if g1.At(i, j) == 1 {
				p2.Set(i, j, pij+rij*(1-pij))
			} else {
				p2.Set(i, j, pij*(1-rij))
			}
		}
	}
	g2 := sampleEdges(p2, n, opts, rng)

	return g1, g2, nil
}

// CorrelatedER samples a correlated Erdős–Rényi pair: every edge has
// probability p and pairwise correlation r.
//
// Complexity: O(n²).
func CorrelatedER(n int, p, r float64, opts Options) (*mat.Dense, *mat.Dense, error) {
	if n <= 0 {
		return nil, nil, ErrBadOrder
	}
	if !inUnit(p) {
		return nil, nil, ErrBadProbability
	}
	if !inUnit(r) {
		return nil, nil, ErrBadCorrelation
	}

	pm := constMatrix(n, p)
	rm := constMatrix(n, r)

	return CorrelatedBernoulli(pm, rm, opts)
}

// CorrelatedSBM samples a correlated stochastic-block-model pair.
// sizes[k] is the vertex count of community k; p[k][l] is the edge
// probability between communities k and l; r is the uniform edge-wise
// correlation of the pair.
//
// Complexity: O(n²) with n = Σ sizes.
func CorrelatedSBM(sizes []int, p [][]float64, r float64, opts Options) (*mat.Dense, *mat.Dense, error) {
	if len(sizes) == 0 {
		return nil, nil, ErrBadBlockSizes
	}
	var n int
	for _, s := range sizes {
		if s <= 0 {
			return nil, nil, ErrBadBlockSizes
		}
		n += s
	}
	if len(p) != len(sizes) {
		return nil, nil, ErrDimensionMismatch
	}
	for _, row := range p {
		if len(row) != len(sizes) {
			return nil, nil, ErrDimensionMismatch
		}
		for _, v := range row {
			if !inUnit(v) {
				return nil, nil, ErrBadProbability
			}
		}
	}
	if !inUnit(r) {
		return nil, nil, ErrBadCorrelation
	}

	// Expand the block matrix to a full per-edge probability matrix.
	pm := mat.NewDense(n, n, nil)
	offsets := make([]int, len(sizes)+1)
	for k, s := range sizes {
		offsets[k+1] = offsets[k] + s
	}
	for k := range sizes {
		for l := range sizes {
			for i := offsets[k]; i < offsets[k+1]; i++ {
				for j := offsets[l]; j < offsets[l+1]; j++ {
					pm.Set(i, j, p[k][l])
				}
			}
		}
	}
	rm := constMatrix(n, r)

	return CorrelatedBernoulli(pm, rm, opts)
}

// sampleEdges draws a single binary graph from the per-edge probability
// matrix. Undirected: sample i<j and mirror. Diagonal only when Loops.
func sampleEdges(p *mat.Dense, n int, opts Options, rng *rand.Rand) *mat.Dense {
	g := mat.NewDense(n, n, nil)
	if opts.Directed {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !opts.Loops {
					continue
				}
				if rng.Float64() < p.At(i, j) {
					g.Set(i, j, 1)
				}
			}
		}

		return g
	}

	for i := 0; i < n; i++ {
		if opts.Loops && rng.Float64() < p.At(i, i) {
			g.Set(i, i, 1)
		}
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p.At(i, j) {
				g.Set(i, j, 1)
				g.Set(j, i, 1)
			}
		}
	}

	return g
}

// validateProbMatrix checks squareness and the [0,1] range, returning
// the matrix order. rangeErr distinguishes probability from correlation.
func validateProbMatrix(m *mat.Dense, rangeErr error) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	rows, cols := m.Dims()
	if rows != cols {
		return 0, ErrNonSquare
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if !inUnit(m.At(i, j)) {
				return 0, rangeErr
			}
		}
	}

	return rows, nil
}

func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

func constMatrix(n int, v float64) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, v)
		}
	}

	return m
}

func seedOrDefault(seed int64) int64 {
	if seed == 0 {
		return defaultSeed
	}

	return seed
}
