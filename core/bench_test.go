package core_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/core"
)

const benchV = 256

// buildDense populates a full directed unit-weight graph of benchV nodes.
func buildDense(b *testing.B) *core.Graph[int] {
	b.Helper()
	g := core.NewDirected[int]()
	for i := 0; i < benchV; i++ {
		g.AddNode(i)
	}
	for i := 0; i < benchV; i++ {
		for j := 0; j < benchV; j++ {
			if i == j {
				continue
			}
			if err := g.AddEdge(i, j, core.DefaultWeight); err != nil {
				b.Fatal(err)
			}
		}
	}

	return g
}

func BenchmarkAddEdge(b *testing.B) {
	g := core.NewDirected[int]()
	for i := 0; i < benchV; i++ {
		g.AddNode(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%benchV, (i+1)%benchV, core.DefaultWeight)
	}
}

func BenchmarkNeighbors(b *testing.B) {
	g := buildDense(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(i % benchV)
	}
}

func BenchmarkDegrees(b *testing.B) {
	g := buildDense(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Degrees()
	}
}
