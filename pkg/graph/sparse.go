package graph

import "fmt"

// sparseArc is one outgoing entry in a node's adjacency list.
type sparseArc[N Number] struct {
	dst    int
	weight N
}

// Sparse stores one insertion-ordered list of outgoing arcs per node.
//
// AddArc appends unconditionally: inserting the same (src, dst) pair twice
// creates two parallel entries, both visited by VisitArcs and both counted
// by ArcCount. Cost returns the weight of the first inserted match.
type Sparse[N Number] struct {
	gtype GraphType
	nodes []N
	lists [][]sparseArc[N]
	arcs  int
}

// NewSparse creates a sparse graph with nodeCount nodes, every node weight
// at the additive identity, and no arcs. Panics if nodeCount is negative.
func NewSparse[N Number](nodeCount int, gtype GraphType) *Sparse[N] {
	return &Sparse[N]{
		gtype: gtype,
		nodes: zeroWeights[N](nodeCount),
		lists: make([][]sparseArc[N], nodeCount),
	}
}

// NewSparseDirect is shorthand for NewSparse(nodeCount, Direct).
func NewSparseDirect[N Number](nodeCount int) *Sparse[N] {
	return NewSparse[N](nodeCount, Direct)
}

// NewSparseUndirect is shorthand for NewSparse(nodeCount, Undirect).
func NewSparseUndirect[N Number](nodeCount int) *Sparse[N] {
	return NewSparse[N](nodeCount, Undirect)
}

// Type reports whether the graph mirrors inserted arcs.
func (g *Sparse[N]) Type() GraphType { return g.gtype }

// NodeCount returns the fixed number of nodes.
func (g *Sparse[N]) NodeCount() int { return len(g.nodes) }

// ArcCount returns the number of stored arc entries, duplicates and
// mirrored directions included.
func (g *Sparse[N]) ArcCount() int { return g.arcs }

// AddDefaultArc inserts src→dst with the additive identity weight.
func (g *Sparse[N]) AddDefaultArc(src, dst int) {
	var zero N
	g.AddArc(src, dst, zero)
}

// AddArc appends src→dst with the given weight, plus the mirrored entry
// for Undirect graphs. No existing-arc check is performed.
func (g *Sparse[N]) AddArc(src, dst int, weight N) {
	checkNode(src, len(g.nodes), "source")
	checkNode(dst, len(g.nodes), "destination")
	g.makeArc(src, dst, weight)
	if g.gtype == Undirect {
		g.makeArc(dst, src, weight)
	}
}

func (g *Sparse[N]) makeArc(src, dst int, weight N) {
	g.lists[src] = append(g.lists[src], sparseArc[N]{dst: dst, weight: weight})
	g.arcs++
}

// UpdateAllArcsWeight rewrites every stored entry's weight, per source
// node ascending and in insertion order within a node.
func (g *Sparse[N]) UpdateAllArcsWeight(f func(src, dst int, weight N) N) {
	for i, list := range g.lists {
		for j, arc := range list {
			g.lists[i][j].weight = f(i, arc.dst, arc.weight)
		}
	}
}

// UpdateAllNodesWeight rewrites every node weight in ascending index order.
func (g *Sparse[N]) UpdateAllNodesWeight(f func(node int, weight N) N) {
	for i, w := range g.nodes {
		g.nodes[i] = f(i, w)
	}
}

// VisitNodes calls f once per node in ascending index order.
func (g *Sparse[N]) VisitNodes(f func(node int, weight N)) {
	for i, w := range g.nodes {
		f(i, w)
	}
}

// VisitArcs calls f once per stored entry, per source node ascending and
// in insertion order within a node.
func (g *Sparse[N]) VisitArcs(f func(src, dst int, weight N)) {
	for i, list := range g.lists {
		for _, arc := range list {
			f(i, arc.dst, arc.weight)
		}
	}
}

// Successors returns node's outgoing entries in insertion order. The
// returned slice is a copy and may be retained by the caller.
func (g *Sparse[N]) Successors(node int) []Arc[N] {
	checkNode(node, len(g.nodes), "node")
	out := make([]Arc[N], len(g.lists[node]))
	for i, arc := range g.lists[node] {
		out[i] = Arc[N]{Src: node, Dst: arc.dst, Weight: arc.weight}
	}
	return out
}

// HasArc reports whether at least one src→dst entry is stored.
func (g *Sparse[N]) HasArc(src, dst int) bool {
	checkNode(src, len(g.nodes), "source")
	checkNode(dst, len(g.nodes), "destination")
	for _, arc := range g.lists[src] {
		if arc.dst == dst {
			return true
		}
	}
	return false
}

// Cost returns the weight of the first inserted src→dst entry. The arc is
// assumed to exist; Cost panics when it does not.
func (g *Sparse[N]) Cost(src, dst int) N {
	checkNode(src, len(g.nodes), "source")
	checkNode(dst, len(g.nodes), "destination")
	for _, arc := range g.lists[src] {
		if arc.dst == dst {
			return arc.weight
		}
	}
	panic(fmt.Sprintf("graph: no arc %d→%d", src, dst))
}

var (
	_ Graph[float64]  = (*Sparse[float64])(nil)
	_ Coster[float64] = (*Sparse[float64])(nil)
)
