// Package graspologic is a statistical toolkit for graphs: approximate
// graph matching, correlated random-graph generation, embedding alignment
// and layout helpers.
//
// 🚀 What is graspologic?
//
//	A pure-Go library that brings together:
//		• Graph matching: Fast Approximate QAP (Frank–Wolfe over the
//		  Birkhoff polytope with an exact assignment oracle), with seeds
//		  and parallel restarts
//		• Simulations: correlated Erdős–Rényi / Bernoulli / SBM graph pairs
//		• Alignment: orthogonal Procrustes and sign-flip normalization
//		  for spectral embeddings
//		• Layouts: classical-MDS vertex positioning from distance matrices
//
// ✨ Why choose graspologic?
//
//   - Deterministic – explicit seeds everywhere; parallel and sequential
//     runs produce identical results
//   - Strict contracts – typed sentinel errors, validated options,
//     documented complexity on every solver
//   - Built on gonum – adjacency matrices are plain *mat.Dense values
//
// Everything is organized under focused subpackages:
//
//	match/    — relaxed QAP graph matching (the numerical core)
//	simulate/ — correlated random-graph pair sampling
//	align/    — Procrustes and sign-flip embedding alignment
//	layouts/  — MDS positioning helpers
//	cmd/      — the graspologic command-line interface
//
// Quick example, matching two isomorphic graphs:
//
//	res, err := match.Match(A, B, match.DefaultOptions())
//	if err != nil { ... }
//	fmt.Println(res.Perm, res.Score)
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/microsoft/graspologic
package graspologic
