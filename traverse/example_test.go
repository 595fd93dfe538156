package traverse_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/traverse"
)

// ExampleIsConnected checks reachability from node 0 on a small square.
func ExampleIsConnected() {
	//     0───1
	//     │   │
	//     2───3
	g := core.New[string]()
	g.AddNodesFrom([]string{"A", "B", "C", "D"})
	g.AddEdgesFrom([][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, core.DefaultWeight)

	fmt.Println("connected:", traverse.IsConnected(g))
	fmt.Println("bipartite:", traverse.IsBipartite(g))
	fmt.Println("eulerian: ", traverse.IsEulerian(g))

	// Output:
	// connected: true
	// bipartite: true
	// eulerian:  true
}
