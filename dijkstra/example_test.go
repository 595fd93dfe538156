package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/dijkstra"
)

// ExampleSingleSource routes across a small weighted city map.
func ExampleSingleSource() {
	g := core.New[string]()
	g.AddNodesFrom([]string{"Depot", "North", "East", "South"})
	g.AddWeightedEdgesFrom([]core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 4},
		{From: 1, To: 2, Weight: 2},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})

	dist, paths := dijkstra.SingleSource(g, 0)
	fmt.Println("distance to South:", dist[3])
	fmt.Println("route to South:   ", paths[3])

	// Output:
	// distance to South: 2
	// route to South:    [0 1 3]
}
