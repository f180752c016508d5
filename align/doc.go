// Package align maps one point set (typically a spectral graph
// embedding) onto another, resolving the non-identifiability of
// embeddings: eigenvectors are only defined up to orthogonal
// transformations, so two embeddings of the same graph can differ by a
// rotation or by per-dimension sign flips.
//
// ✨ Aligners:
//   - AlignOrthogonal — full orthogonal Procrustes: the rotation Q
//     minimizing ‖X·Q − Y‖_F in closed form via the SVD of XᵀY.
//   - AlignSignFlips — the restricted diagonal ±1 case: flip each
//     dimension of X so a per-dimension criterion (largest-magnitude
//     entry or median) agrees in sign with Y's.
//
// Both are one-shot linear-algebra computations, deterministic and
// side-effect free; inputs are read-only.
//
// ⚙️ Usage:
//
//	aligned, q, err := align.AlignOrthogonal(x, y)
//	// ‖aligned − Y‖_F is minimal over all orthogonal transforms of X.
//
// Complexity: O(n·d² + d³) for n points in d dimensions.
package align
