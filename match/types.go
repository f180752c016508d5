// Package match - public result types and strict sentinel errors.
//
// Error policy follows the library convention: one sentinel per failure
// class, no fmt.Errorf in hot paths, wrap with "ctx: %w" only where extra
// context is essential. Sentinels split into three families mirroring the
// validation stages: configuration, shape, numeric.
package match

import "errors"

// Configuration sentinels - detected when Options are validated, before
// any matrix is touched.
var (
	// ErrBadNInit is returned when Options.NInit is not a positive integer.
	ErrBadNInit = errors.New("match: NInit must be positive")

	// ErrBadInitMethod is returned when Options.Init is not a recognized
	// InitMethod constant.
	ErrBadInitMethod = errors.New("match: unknown init method")

	// ErrBadMaxIter is returned when Options.MaxIter is not a positive integer.
	ErrBadMaxIter = errors.New("match: MaxIter must be positive")

	// ErrNegativeEps is returned when Options.Eps is negative. A negative
	// tolerance would invert the convergence test.
	ErrNegativeEps = errors.New("match: Eps must be non-negative")

	// ErrBadObjective is returned when Options.Objective is not Minimize
	// or Maximize.
	ErrBadObjective = errors.New("match: unknown objective")

	// ErrBadWorkers is returned when Options.Workers is negative.
	ErrBadWorkers = errors.New("match: Workers must be non-negative")
)

// Shape sentinels - detected at Match entry, before any computation.
var (
	// ErrNilMatrix is returned when A or B is nil.
	ErrNilMatrix = errors.New("match: nil adjacency matrix")

	// ErrNonSquare is returned when A or B is not square.
	ErrNonSquare = errors.New("match: adjacency matrix is not square")

	// ErrDimensionMismatch is returned when A and B differ in order.
	ErrDimensionMismatch = errors.New("match: adjacency matrices differ in size")

	// ErrSeedOutOfRange is returned when a seed pair references a vertex
	// outside [0, n).
	ErrSeedOutOfRange = errors.New("match: seed index out of range")

	// ErrSeedDuplicate is returned when two seed pairs share a source or
	// a target vertex (seeds must form a partial bijection).
	ErrSeedDuplicate = errors.New("match: duplicate seed index")
)

// Numeric sentinels.
var (
	// ErrNonFinite is returned when A or B contains NaN or ±Inf. Non-finite
	// entries would silently corrupt the gradient and the line search, so
	// they are rejected up front.
	ErrNonFinite = errors.New("match: non-finite adjacency entry")

	// ErrBadPermutation is returned by Score when perm is not a bijection
	// on [0, n).
	ErrBadPermutation = errors.New("match: perm is not a bijection")
)

// InitMethod selects how the initial doubly-stochastic matrix of a restart
// is produced. It is a closed enum; adding a strategy is a compile-time
// change, not a runtime string dispatch.
type InitMethod int

const (
	// Barycenter starts at J/n, the centroid of the Birkhoff polytope.
	// Deterministic: every restart from the barycenter follows the same
	// trajectory.
	Barycenter InitMethod = iota

	// Randomized starts at (K+J/n)/2 where K is a random non-negative
	// matrix balanced to doubly-stochastic form by Sinkhorn–Knopp sweeps.
	// Each restart draws independently, so restarts explore different
	// basins of the non-convex relaxation.
	Randomized
)

// String returns the canonical lower-case name of the method.
func (m InitMethod) String() string {
	switch m {
	case Barycenter:
		return "barycenter"
	case Randomized:
		return "rand"
	default:
		return "unknown"
	}
}

// Objective fixes the sign convention of the match score.
type Objective int

const (
	// Minimize treats A and B as flow/distance matrices and minimizes the
	// QAP cost Σ A[i,j]·B[σ(i),σ(j)] (the QAPLIB convention).
	Minimize Objective = iota

	// Maximize treats A and B as adjacency matrices and maximizes edge
	// agreement. The reported Score is the negated agreement so that
	// lower is still better; restart selection relies on that ordering.
	Maximize
)

// Result is the outcome of a match call. Immutable once returned.
type Result struct {
	// Perm maps vertices of A to vertices of B: Perm[i] = j means vertex i
	// of A corresponds to vertex j of B. Always a bijection on [0, n).
	Perm []int

	// Score is the objective value of Perm evaluated on the discrete
	// permutation (never on the relaxed iterate). Lower is better under
	// both objectives; see Objective for the exact sign convention.
	Score float64

	// Iterations is the number of Frank–Wolfe steps performed by the
	// restart that produced Perm. Reaching MaxIter without numerical
	// convergence is a normal termination path, not an error; callers may
	// compare Iterations against MaxIter to detect it.
	Iterations int

	// Restart is the index of the restart that produced Perm. Ties on
	// Score break toward the lowest index, so Restart is reproducible
	// regardless of worker count.
	Restart int
}
