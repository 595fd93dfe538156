package dot_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dot"
)

// ExampleMarshal prints a directed triangle.
func ExampleMarshal() {
	g := core.NewDirected[string]()
	g.AddNodesFrom([]string{"A", "B", "C"})
	g.AddEdgesFrom([][2]int{{0, 1}, {1, 2}, {2, 0}}, core.DefaultWeight)

	fmt.Print(dot.Marshal(g))

	// Output:
	// digraph G {
	//   0;
	//   1;
	//   2;
	//   0 -> 1;
	//   1 -> 2;
	//   2 -> 0;
	// }
}
