// Package match - solver configuration.
//
// Options is a plain value validated once, up front, before any matrix is
// touched. Zero state is shared between calls; the RNG is derived from an
// explicit Seed so that repeated runs, and parallel runs, reproduce bit
// for bit.
package match

// Defaults - single source of truth for DefaultOptions.
const (
	// DefaultNInit is the default restart count.
	DefaultNInit = 1

	// DefaultMaxIter bounds the Frank–Wolfe steps of one restart.
	DefaultMaxIter = 30

	// DefaultEps is the Frobenius-norm convergence tolerance on the
	// iterate change ‖P_new − P_old‖.
	DefaultEps = 0.1

	// DefaultSeed is the fixed stream used when Options.Seed == 0,
	// keeping zero-value behavior deterministic.
	DefaultSeed int64 = 1
)

// Options configures a match call.
type Options struct {
	// NInit is the number of independent initialize→optimize→project
	// restarts. The best (lowest) score across restarts is returned, so
	// increasing NInit never worsens the result for a fixed Seed.
	// Must be positive.
	NInit int

	// Init selects the initializer: Barycenter or Randomized.
	// Restarts beyond the first are redundant under Barycenter unless
	// ShuffleInput perturbs the vertex order.
	Init InitMethod

	// MaxIter bounds the Frank–Wolfe iterations of a single restart.
	// Hitting the bound is a normal termination, not an error.
	// Must be positive.
	MaxIter int

	// Eps is the convergence tolerance: a restart stops once the
	// Frobenius norm of the iterate change drops to Eps or below.
	// Must be non-negative; 0 keeps iterating until MaxIter or an
	// exactly stationary step.
	Eps float64

	// ShuffleInput randomly relabels the vertices of A before optimizing
	// (undone on output) to remove index-order bias from assignment
	// tie-breaking. One draw per match call.
	ShuffleInput bool

	// Objective fixes the score sign convention; see Objective.
	Objective Objective

	// Seed seeds all randomness (shuffle and per-restart initializers).
	// Seed == 0 selects a fixed default stream. Restart r draws from a
	// stream derived from (Seed, r), so results do not depend on Workers.
	Seed int64

	// Workers is the number of goroutines running restarts concurrently.
	// 0 picks GOMAXPROCS. Must be non-negative.
	Workers int
}

// DefaultOptions returns the canonical configuration: a single barycenter
// restart, 30 iterations, Eps 0.1, shuffled input, Minimize objective.
func DefaultOptions() Options {
	return Options{
		NInit:        DefaultNInit,
		Init:         Barycenter,
		MaxIter:      DefaultMaxIter,
		Eps:          DefaultEps,
		ShuffleInput: true,
		Objective:    Minimize,
		Seed:         0,
		Workers:      1,
	}
}

// validate checks internal consistency of the configuration. It is the
// configuration stage of validation: no matrix is referenced here.
//
// Complexity: O(1).
func (o Options) validate() error {
	if o.NInit <= 0 {
		return ErrBadNInit
	}
	switch o.Init {
	case Barycenter, Randomized:
		// ok
	default:
		return ErrBadInitMethod
	}
	if o.MaxIter <= 0 {
		return ErrBadMaxIter
	}
	if o.Eps < 0 {
		return ErrNegativeEps
	}
	switch o.Objective {
	case Minimize, Maximize:
		// ok
	default:
		return ErrBadObjective
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

// objScalar maps the objective to the sign applied to the raw QAP cost:
// +1 minimizes it, −1 maximizes (by minimizing its negation).
func (o Options) objScalar() float64 {
	if o.Objective == Maximize {
		return -1
	}

	return 1
}
