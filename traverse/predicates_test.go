// Package traverse_test validates the structural predicates against the
// contract as specified — reachability from node 0 with narrow cycle/tree/
// DAG semantics — not against the textbook graph-theoretic definitions.
package traverse_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/core"
	"github.com/katalvlaran/densegraph/traverse"
	"github.com/stretchr/testify/require"
)

// path builds an undirected path 0-1-...-(n-1).
func path(n int) *core.Graph[int] {
	g := core.New[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1, core.DefaultWeight); err != nil {
			panic(err)
		}
	}

	return g
}

// cycle builds an undirected cycle over n nodes.
func cycle(n int) *core.Graph[int] {
	g := path(n)
	if err := g.AddEdge(n-1, 0, core.DefaultWeight); err != nil {
		panic(err)
	}

	return g
}

func TestIsConnected(t *testing.T) {
	t.Parallel()

	require.True(t, traverse.IsConnected(path(4)))

	// Node 3 has no edges: unreachable from 0.
	disconnected := path(3)
	disconnected.AddNode(3)
	require.False(t, traverse.IsConnected(disconnected))
}

func TestIsConnected_EmptyAndSingle(t *testing.T) {
	t.Parallel()

	// Vacuously connected: nothing to falsify.
	require.True(t, traverse.IsConnected(core.New[int]()))

	single := core.New[int]()
	single.AddNode(0)
	require.True(t, traverse.IsConnected(single))
}

func TestIsStronglyConnected_FollowsOrientation(t *testing.T) {
	t.Parallel()

	// 0→1→2→0: every node reachable from 0.
	ring := core.NewDirected[int]()
	ring.AddNodesFrom([]int{0, 1, 2})
	require.NoError(t, ring.AddEdgesFrom([][2]int{{0, 1}, {1, 2}, {2, 0}}, core.DefaultWeight))
	require.True(t, traverse.IsStronglyConnected(ring))

	// Only 1→0: node 1 is unreachable from 0.
	oneWay := core.NewDirected[int]()
	oneWay.AddNodesFrom([]int{0, 1})
	require.NoError(t, oneWay.AddEdge(1, 0, core.DefaultWeight))
	require.False(t, traverse.IsStronglyConnected(oneWay))
}

func TestIsCyclic_IsUnreachabilityNotACycleTest(t *testing.T) {
	t.Parallel()

	// A triangle contains a cycle, yet every node is reachable from 0,
	// so the library convention reports false.
	require.False(t, traverse.IsCyclic(cycle(3)))

	// An isolated node makes the graph "cyclic" by the same convention.
	disconnected := path(2)
	disconnected.AddNode(2)
	require.True(t, traverse.IsCyclic(disconnected))

	require.False(t, traverse.IsCyclic(core.New[int]()))
}

func TestIsTreeAndIsDAG_ShareReachabilitySemantics(t *testing.T) {
	t.Parallel()

	// A genuine tree passes.
	require.True(t, traverse.IsTree(path(4)))
	require.True(t, traverse.IsDAG(path(4)))

	// A cycle also passes: the shared body only tests reachability plus
	// discovery-edge existence. Contract as specified.
	require.True(t, traverse.IsTree(cycle(4)))
	require.True(t, traverse.IsDAG(cycle(4)))

	// Unreachable nodes fail both.
	disconnected := path(2)
	disconnected.AddNode(2)
	require.False(t, traverse.IsTree(disconnected))
	require.False(t, traverse.IsDAG(disconnected))

	// Vacuous on the empty graph.
	require.True(t, traverse.IsTree(core.New[int]()))
	require.True(t, traverse.IsDAG(core.New[int]()))
}

func TestIsBipartite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		g    *core.Graph[int]
		want bool
	}{
		{name: "empty", g: core.New[int](), want: true},
		{name: "path", g: path(4), want: true},
		{name: "even_cycle", g: cycle(4), want: true},
		{name: "odd_cycle", g: cycle(3), want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, traverse.IsBipartite(tc.g))
		})
	}
}

func TestIsBipartite_UnreachableNodesStayUncolored(t *testing.T) {
	t.Parallel()

	// Component {0,1} is 2-colorable; the odd cycle {2,3,4} is not, but it
	// is unreachable from node 0 and therefore never colored.
	g := core.New[int]()
	g.AddNodesFrom([]int{0, 1, 2, 3, 4})
	require.NoError(t, g.AddEdgesFrom([][2]int{{0, 1}, {2, 3}, {3, 4}, {4, 2}}, core.DefaultWeight))
	require.True(t, traverse.IsBipartite(g))
}

func TestIsEulerian_NarrowDegreeRule(t *testing.T) {
	t.Parallel()

	// All degrees even.
	require.True(t, traverse.IsEulerian(cycle(4)))

	// Two odd-degree nodes, each with degree exactly 1.
	require.True(t, traverse.IsEulerian(path(3)))

	// Two odd-degree nodes but one has degree 3: rejected by the narrow
	// rule even though a Eulerian path exists in the general theory.
	g := core.New[int]()
	g.AddNodesFrom([]int{0, 1, 2, 3})
	require.NoError(t, g.AddEdgesFrom([][2]int{{0, 1}, {0, 2}, {0, 3}, {2, 3}}, core.DefaultWeight))
	require.False(t, traverse.IsEulerian(g))

	// Four odd-degree nodes.
	star := core.New[int]()
	star.AddNodesFrom([]int{0, 1, 2, 3})
	require.NoError(t, star.AddEdgesFrom([][2]int{{0, 1}, {0, 2}, {0, 3}}, core.DefaultWeight))
	require.False(t, traverse.IsEulerian(star))

	// No nodes at all: zero odd-degree nodes.
	require.True(t, traverse.IsEulerian(core.New[int]()))
}
