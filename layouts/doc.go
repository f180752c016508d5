// Package layouts computes 2-D vertex positions from pairwise graph
// distances via classical multidimensional scaling (Torgerson scaling),
// then rescales them into a caller-chosen canvas box.
//
// The package owns no rendering and no file formats: it produces plain
// coordinates for downstream visualization layers.
//
// ⚙️ Usage:
//
//	pos, err := layouts.PositionsFromDistances(dist, layouts.DefaultOptions())
//	// pos[i] is the (X, Y) position of vertex i inside the canvas.
//
// Complexity: O(n³) for the eigendecomposition behind the scaling.
package layouts
