package layouts_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/microsoft/graspologic/layouts"
)

// lineDistances builds the distance matrix of collinear points at the
// given 1-D coordinates.
func lineDistances(xs []float64) *mat.Dense {
	n := len(xs)
	d := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d.Set(i, j, math.Abs(xs[i]-xs[j]))
		}
	}

	return d
}

// TestPositions_CollinearPoints: points on a line keep their order and
// spacing along X (up to mirroring) and collapse to the canvas midline
// along the uninformative Y axis. Round-off leaves a tiny positive
// second eigenvalue for such inputs; the noise must not be min-max
// amplified into fake Y spread.
func TestPositions_CollinearPoints(t *testing.T) {
	d := lineDistances([]float64{0, 1, 3})
	pos, err := layouts.PositionsFromDistances(d, layouts.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pos, 3)

	for _, p := range pos {
		require.InDelta(t, 0.5, p.Y, 1e-9)
	}
	// Min-max scaling puts the extremes at the canvas edges; the middle
	// point sits a third of the way in, whichever way MDS oriented the axis.
	ratio := math.Abs(pos[1].X-pos[0].X) / math.Abs(pos[2].X-pos[0].X)
	require.InDelta(t, 1.0/3.0, ratio, 1e-9)
}

// TestPositions_CollinearManyPoints: the midline collapse holds for a
// longer line with uneven spacing, not just the minimal case.
func TestPositions_CollinearManyPoints(t *testing.T) {
	xs := []float64{0, 0.5, 2, 3.25, 7, 11}
	pos, err := layouts.PositionsFromDistances(lineDistances(xs), layouts.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, pos, len(xs))

	for i, p := range pos {
		require.InDelta(t, 0.5, p.Y, 1e-9, "vertex %d", i)
	}
	// Relative spacing along X survives the embedding and the rescale.
	span := math.Abs(pos[len(xs)-1].X - pos[0].X)
	for i := 1; i < len(xs)-1; i++ {
		want := (xs[i] - xs[0]) / (xs[len(xs)-1] - xs[0])
		got := math.Abs(pos[i].X-pos[0].X) / span
		require.InDelta(t, want, got, 1e-9, "vertex %d", i)
	}
}

// TestPositions_InsideCanvas: every coordinate lands inside the box and
// both edges of each axis are reached after min-max scaling.
func TestPositions_InsideCanvas(t *testing.T) {
	// Unit square corners.
	s := math.Sqrt2
	d := mat.NewDense(4, 4, []float64{
		0, 1, s, 1,
		1, 0, 1, s,
		s, 1, 0, 1,
		1, s, 1, 0,
	})
	opts := layouts.Options{Width: 10, Height: 4}
	pos, err := layouts.PositionsFromDistances(d, opts)
	require.NoError(t, err)

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pos {
		require.GreaterOrEqual(t, p.X, -1e-9)
		require.LessOrEqual(t, p.X, 10+1e-9)
		require.GreaterOrEqual(t, p.Y, -1e-9)
		require.LessOrEqual(t, p.Y, 4+1e-9)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	require.InDelta(t, 0, minX, 1e-9)
	require.InDelta(t, 10, maxX, 1e-9)
	require.InDelta(t, 0, minY, 1e-9)
	require.InDelta(t, 4, maxY, 1e-9)
}

func TestPositions_SingleVertex(t *testing.T) {
	d := mat.NewDense(1, 1, []float64{0})
	pos, err := layouts.PositionsFromDistances(d, layouts.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, []layouts.Position{{X: 0, Y: 0}}, pos)
}

func TestPositions_Validation(t *testing.T) {
	opts := layouts.DefaultOptions()

	_, err := layouts.PositionsFromDistances(nil, opts)
	require.ErrorIs(t, err, layouts.ErrNilMatrix)

	_, err = layouts.PositionsFromDistances(mat.NewDense(2, 3, nil), opts)
	require.ErrorIs(t, err, layouts.ErrNonSquare)

	asym := mat.NewDense(2, 2, []float64{0, 1, 2, 0})
	_, err = layouts.PositionsFromDistances(asym, opts)
	require.ErrorIs(t, err, layouts.ErrAsymmetry)

	neg := mat.NewDense(2, 2, []float64{0, -1, -1, 0})
	_, err = layouts.PositionsFromDistances(neg, opts)
	require.ErrorIs(t, err, layouts.ErrBadDistance)

	_, err = layouts.PositionsFromDistances(mat.NewDense(2, 2, nil), layouts.Options{Width: 0, Height: 1})
	require.ErrorIs(t, err, layouts.ErrBadCanvas)
}
