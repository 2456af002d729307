package graph

import "fmt"

// Dense stores an N×N presence matrix and a parallel N×N weight matrix.
//
// Unlike [Sparse], Dense de-duplicates: AddArc on an already-present cell
// keeps the stored weight and does not grow ArcCount. This asymmetry is
// part of the backend contract, not an accident; transcoding code relies
// on it when replaying arcs.
type Dense[N Number] struct {
	gtype   GraphType
	nodes   []N
	present [][]bool
	weight  [][]N
	arcs    int
}

// NewDense creates a dense graph with nodeCount nodes, every node weight
// at the additive identity, and no arcs. Memory is O(nodeCount²).
// Panics if nodeCount is negative.
func NewDense[N Number](nodeCount int, gtype GraphType) *Dense[N] {
	nodes := zeroWeights[N](nodeCount)
	present := make([][]bool, nodeCount)
	weight := make([][]N, nodeCount)
	for i := range present {
		present[i] = make([]bool, nodeCount)
		weight[i] = make([]N, nodeCount)
	}
	return &Dense[N]{gtype: gtype, nodes: nodes, present: present, weight: weight}
}

// NewDenseDirect is shorthand for NewDense(nodeCount, Direct).
func NewDenseDirect[N Number](nodeCount int) *Dense[N] {
	return NewDense[N](nodeCount, Direct)
}

// NewDenseUndirect is shorthand for NewDense(nodeCount, Undirect).
func NewDenseUndirect[N Number](nodeCount int) *Dense[N] {
	return NewDense[N](nodeCount, Undirect)
}

// Type reports whether the graph mirrors inserted arcs.
func (g *Dense[N]) Type() GraphType { return g.gtype }

// NodeCount returns the fixed number of nodes.
func (g *Dense[N]) NodeCount() int { return len(g.nodes) }

// ArcCount returns the number of set presence cells.
func (g *Dense[N]) ArcCount() int { return g.arcs }

// AddDefaultArc inserts src→dst with the additive identity weight.
func (g *Dense[N]) AddDefaultArc(src, dst int) {
	var zero N
	g.AddArc(src, dst, zero)
}

// AddArc sets the src→dst cell, plus the mirrored cell for Undirect
// graphs. A cell that is already present is left untouched: the previous
// weight wins and ArcCount does not change.
func (g *Dense[N]) AddArc(src, dst int, weight N) {
	checkNode(src, len(g.nodes), "source")
	checkNode(dst, len(g.nodes), "destination")
	g.makeArc(src, dst, weight)
	if g.gtype == Undirect {
		g.makeArc(dst, src, weight)
	}
}

func (g *Dense[N]) makeArc(src, dst int, weight N) {
	if g.present[src][dst] {
		return
	}
	g.present[src][dst] = true
	g.weight[src][dst] = weight
	g.arcs++
}

// UpdateAllArcsWeight rewrites the weight of every present cell in
// row-major (src, dst) order. For Undirect graphs both mirrored cells are
// updated independently.
func (g *Dense[N]) UpdateAllArcsWeight(f func(src, dst int, weight N) N) {
	for i := range g.present {
		for j, ok := range g.present[i] {
			if ok {
				g.weight[i][j] = f(i, j, g.weight[i][j])
			}
		}
	}
}

// UpdateAllNodesWeight rewrites every node weight in ascending index order.
func (g *Dense[N]) UpdateAllNodesWeight(f func(node int, weight N) N) {
	for i, w := range g.nodes {
		g.nodes[i] = f(i, w)
	}
}

// VisitNodes calls f once per node in ascending index order.
func (g *Dense[N]) VisitNodes(f func(node int, weight N)) {
	for i, w := range g.nodes {
		f(i, w)
	}
}

// VisitArcs calls f once per present cell in row-major (src, dst) order.
func (g *Dense[N]) VisitArcs(f func(src, dst int, weight N)) {
	for i := range g.present {
		for j, ok := range g.present[i] {
			if ok {
				f(i, j, g.weight[i][j])
			}
		}
	}
}

// HasArc reports whether the src→dst cell is present.
func (g *Dense[N]) HasArc(src, dst int) bool {
	checkNode(src, len(g.nodes), "source")
	checkNode(dst, len(g.nodes), "destination")
	return g.present[src][dst]
}

// Cost returns the stored src→dst weight in O(1). The arc is assumed to
// exist; Cost panics when the presence cell is not set.
func (g *Dense[N]) Cost(src, dst int) N {
	checkNode(src, len(g.nodes), "source")
	checkNode(dst, len(g.nodes), "destination")
	if !g.present[src][dst] {
		panic(fmt.Sprintf("graph: no arc %d→%d", src, dst))
	}
	return g.weight[src][dst]
}

var (
	_ Graph[float64]  = (*Dense[float64])(nil)
	_ Coster[float64] = (*Dense[float64])(nil)
)
