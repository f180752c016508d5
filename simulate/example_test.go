package simulate_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/microsoft/graspologic/simulate"
)

// ExampleCorrelatedER draws a perfectly correlated pair: with r = 1 the
// second graph is forced to repeat the first edge for edge.
func ExampleCorrelatedER() {
	g1, g2, err := simulate.CorrelatedER(50, 0.3, 1.0, simulate.Options{Seed: 7})
	if err != nil {
		fmt.Println("sampling failed:", err)

		return
	}
	fmt.Println("identical:", mat.Equal(g1, g2))
	// Output:
	// identical: true
}
