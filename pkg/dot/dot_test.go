package dot

import (
	"strings"
	"testing"

	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

func TestSourceDirect(t *testing.T) {
	g := graph.NewSparseDirect[float64](4)
	g.AddArc(0, 1, 1.5)
	g.AddArc(1, 2, 2.5)
	g.AddArc(3, 2, 11.5)
	g.AddArc(1, 0, -1.5)

	want := strings.Join([]string{
		"digraph {",
		"\tn0 [label=\"0\"];",
		"\tn1 [label=\"0\"];",
		"\tn2 [label=\"0\"];",
		"\tn3 [label=\"0\"];",
		"\tn0 -> n1 [label=\"1.5\"];",
		"\tn1 -> n2 [label=\"2.5\"];",
		"\tn1 -> n0 [label=\"-1.5\"];",
		"\tn3 -> n2 [label=\"11.5\"];",
		"}",
	}, "\n")
	if got := Source[float64](g); got != want {
		t.Errorf("Source() =\n%s\nwant\n%s", got, want)
	}
}

func TestSourceUndirectDrawsEachEdgeOnce(t *testing.T) {
	g := graph.NewSparseUndirect[float64](4)
	g.AddArc(0, 1, 1.5)
	g.AddArc(1, 2, 2.5)
	g.AddArc(3, 2, 11.5)

	want := strings.Join([]string{
		"graph {",
		"\tn0 [label=\"0\"];",
		"\tn1 [label=\"0\"];",
		"\tn2 [label=\"0\"];",
		"\tn3 [label=\"0\"];",
		"\tn0 -- n1 [label=\"1.5\"];",
		"\tn1 -- n2 [label=\"2.5\"];",
		"\tn2 -- n3 [label=\"11.5\"];",
		"}",
	}, "\n")
	if got := Source[float64](g); got != want {
		t.Errorf("Source() =\n%s\nwant\n%s", got, want)
	}
}

func TestSourceNodeWeights(t *testing.T) {
	g := graph.NewDenseDirect[int](2)
	g.UpdateAllNodesWeight(func(i int, _ int) int { return i + 10 })

	got := Source[int](g)
	for _, stmt := range []string{"n0 [label=\"10\"];", "n1 [label=\"11\"];"} {
		if !strings.Contains(got, stmt) {
			t.Errorf("Source() missing %q:\n%s", stmt, got)
		}
	}
}

func TestSourceEmptyGraph(t *testing.T) {
	g := graph.NewSparseDirect[int](0)
	if got := Source[int](g); got != "digraph {\n\n}" {
		t.Errorf("Source() = %q", got)
	}
}
