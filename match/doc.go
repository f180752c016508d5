// Package match solves approximate graph matching via the Fast Approximate
// QAP (FAQ) algorithm: a Frank–Wolfe descent over the Birkhoff polytope
// with an exact linear-assignment oracle for direction finding.
//
// 🚀 What is graph matching?
//
//	Given two graphs with adjacency matrices A and B of equal order n,
//	find the bijection σ between their vertex sets that best preserves
//	edge structure. Exact QAP is NP-hard; FAQ relaxes the permutation
//	constraint to the set of doubly-stochastic matrices, descends on the
//	continuous objective, then projects back to a permutation.
//
// ✨ Key features:
//   - Exact Jonker–Volgenant assignment oracle, O(n³) per call
//   - Closed-form line search (the objective is quadratic along a segment)
//   - Barycenter or randomized (Sinkhorn-balanced) initialization
//   - Partial seeding: pin known vertex correspondences
//   - Independent restarts, optionally run on parallel workers with
//     per-restart RNG streams — results are identical either way
//   - Minimize (QAP cost) or Maximize (edge agreement) objectives
//
// ⚙️ Usage:
//
//	import "github.com/microsoft/graspologic/match"
//
//	opts := match.DefaultOptions()
//	opts.NInit = 20
//	opts.Init = match.Randomized
//	opts.Seed = 42
//
//	res, err := match.Match(A, B, opts)
//	// res.Perm[i] is the vertex of B matched to vertex i of A,
//	// res.Score is the objective (lower is better).
//
// Performance:
//
//   - Time:   O(NInit · MaxIter · n³)
//   - Memory: O(n²) per concurrently running restart
//
// See example_test.go for runnable examples.
package match
