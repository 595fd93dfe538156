// Package core_test exercises the node store lifecycle: insertion order,
// bounds-checked access, removal with index shifting, and label equality.
package core_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/core"
	"github.com/stretchr/testify/require"
)

func TestAddNode_AssignsInsertionOrderIndices(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNode("a")
	g.AddNode("b")
	g.AddNodesFrom([]string{"c", "d"})

	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []string{"a", "b", "c", "d"}, g.Labels())

	label, ok := g.Node(2)
	require.True(t, ok)
	require.Equal(t, "c", label)
}

func TestNode_OutOfRangeReturnsAbsent(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNode("only")

	_, ok := g.Node(-1)
	require.False(t, ok)
	_, ok = g.Node(1)
	require.False(t, ok)
}

func TestRemoveNode_ShiftsLaterIndices(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNodesFrom([]string{"a", "b", "c", "d"})

	label, err := g.RemoveNode(1)
	require.NoError(t, err)
	require.Equal(t, "b", label)

	// Every later index shifted down by one.
	require.Equal(t, []string{"a", "c", "d"}, g.Labels())
	got, ok := g.Node(1)
	require.True(t, ok)
	require.Equal(t, "c", got)
}

func TestRemoveNode_OutOfRange(t *testing.T) {
	t.Parallel()

	g := core.New[int]()
	g.AddNode(7)

	_, err := g.RemoveNode(1)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
	_, err = g.RemoveNode(-1)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)

	// Failed removal leaves the store untouched.
	require.Equal(t, 1, g.NodeCount())
}

func TestRemoveNodesFrom_AppliesInGivenOrder(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNodesFrom([]string{"a", "b", "c", "d"})

	// Removing index 1 twice: the second call sees the already-shifted store,
	// so it removes what was originally "c". The shift is the caller's concern.
	removed, err := g.RemoveNodesFrom([]int{1, 1})
	require.NoError(t, err)
	require.Equal(t, []string{"b", "c"}, removed)
	require.Equal(t, []string{"a", "d"}, g.Labels())
}

func TestRemoveNodesFrom_StopsAtFirstBadIndex(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNodesFrom([]string{"a", "b"})

	removed, err := g.RemoveNodesFrom([]int{0, 5})
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)
	require.Equal(t, []string{"a"}, removed)
	require.Equal(t, []string{"b"}, g.Labels())
}

func TestHasNode_RequiresLabelEquality(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNodesFrom([]string{"x", "y"})

	require.True(t, core.HasNode(g, "y"))
	require.False(t, core.HasNode(g, "z"))
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	g := core.New[string]()
	g.AddNodesFrom([]string{"a", "b"})
	require.NoError(t, g.AddEdge(0, 1, 2.5))

	cp := g.Clone()
	require.NoError(t, cp.AddEdge(1, 1, 9))
	_, err := cp.RemoveNode(0)
	require.NoError(t, err)

	// Original is untouched by clone mutation.
	require.Equal(t, 2, g.NodeCount())
	require.False(t, g.HasEdge(1, 1))
	require.True(t, g.HasEdge(0, 1))
}
