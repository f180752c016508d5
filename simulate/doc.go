// Package simulate samples correlated random graph pairs: two graphs
// drawn so that corresponding edges agree more often than independence
// would allow. Such pairs are the canonical test bed for graph matching.
//
// 🚀 What is a correlated pair?
//
//	Draw G1 edge-wise from Bernoulli(P). Conditioned on G1, draw G2 with
//	per-edge probability P + R·(1−P) where G1 has the edge and P·(1−R)
//	where it does not. Marginally G2 ~ Bernoulli(P), and R is exactly
//	the edge-wise correlation between the two graphs.
//
// ✨ Generators:
//   - CorrelatedBernoulli — arbitrary probability matrix P and
//     correlation matrix R
//   - CorrelatedER        — Erdős–Rényi: scalar p and r
//   - CorrelatedSBM       — stochastic block model: per-block
//     probabilities and a scalar r
//
// ⚙️ Usage:
//
//	opts := simulate.Options{Seed: 42}
//	g1, g2, err := simulate.CorrelatedER(100, 0.3, 0.8, opts)
//
// All generators take an explicit seed; there is no ambient RNG state.
// Undirected output is symmetric, and the diagonal stays zero unless
// Loops is set.
//
// Reference: Lyzinski et al., "Seeded Graph Matching for Correlated
// Erdős–Rényi Graphs", JMLR 15, 2014.
package simulate
