package canonical

import (
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

type nodesKind uint8

const (
	nodesExtended nodesKind = iota
	nodesCompact
)

// IndexedWeight is one non-zero entry of a compact node list. It marshals
// as the two-element array [index, weight].
type IndexedWeight[N graph.Number] struct {
	Index  int
	Weight N
}

// Nodes is the tagged union holding a form's node weights: either an
// extended weight-per-index slice or a compact count plus non-zero list.
// Use [NewNodes] to let the compaction heuristic pick the variant.
type Nodes[N graph.Number] struct {
	kind     nodesKind
	extended []N
	count    int
	weights  []IndexedWeight[N]
}

// NewNodes builds a Nodes value from the full weight sequence, choosing
// compact when strictly more than half of the weights are zero
// (2*zeros > total+1) and extended otherwise.
func NewNodes[N graph.Number](weights []N) Nodes[N] {
	total := len(weights)
	zeros := countZeros(weights)
	if 2*zeros > total+1 {
		return NewCompactNodes(total, nonZeroEntries(weights))
	}
	return NewExtendedNodes(weights)
}

// NewExtendedNodes builds the extended variant holding one weight per
// node index.
func NewExtendedNodes[N graph.Number](weights []N) Nodes[N] {
	return Nodes[N]{kind: nodesExtended, extended: weights}
}

// NewCompactNodes builds the compact variant: count nodes total, with the
// listed entries non-zero and every omitted index implicitly zero. Entries
// must be sorted by ascending index; this is checked on validation, not
// here.
func NewCompactNodes[N graph.Number](count int, weights []IndexedWeight[N]) Nodes[N] {
	return Nodes[N]{kind: nodesCompact, count: count, weights: weights}
}

// Count returns the number of nodes the variant describes.
func (n Nodes[N]) Count() int {
	if n.kind == nodesCompact {
		return n.count
	}
	return len(n.extended)
}

// Compact reports whether the compact variant was chosen.
func (n Nodes[N]) Compact() bool { return n.kind == nodesCompact }

// validate checks internal consistency: compact entries must be strictly
// ascending by index and inside [0, count).
func (n Nodes[N]) validate() error {
	if n.kind == nodesExtended {
		return nil
	}
	if n.count < 0 {
		return errors.New(errors.ErrCodeInvalidForm, "compact node count %d is negative", n.count)
	}
	prev := -1
	for _, entry := range n.weights {
		if entry.Index < 0 || entry.Index >= n.count {
			return errors.New(errors.ErrCodeInvalidForm,
				"compact node index %d out of range [0, %d)", entry.Index, n.count)
		}
		if entry.Index <= prev {
			return errors.New(errors.ErrCodeInvalidForm,
				"compact node index %d not strictly ascending", entry.Index)
		}
		prev = entry.Index
	}
	return nil
}

// apply writes the recorded weights into a freshly-built graph. Extended
// assigns every index; compact assigns only the listed entries and leaves
// the rest at the identity the constructor already set.
func (n Nodes[N]) apply(g graph.Graph[N]) {
	switch n.kind {
	case nodesExtended:
		g.UpdateAllNodesWeight(func(i int, _ N) N { return n.extended[i] })
	case nodesCompact:
		set := make(map[int]N, len(n.weights))
		for _, entry := range n.weights {
			set[entry.Index] = entry.Weight
		}
		g.UpdateAllNodesWeight(func(i int, w N) N {
			if v, ok := set[i]; ok {
				return v
			}
			return w
		})
	}
}

func countZeros[N graph.Number](weights []N) int {
	var zero N
	count := 0
	for _, w := range weights {
		if w == zero {
			count++
		}
	}
	return count
}

func nonZeroEntries[N graph.Number](weights []N) []IndexedWeight[N] {
	var zero N
	out := make([]IndexedWeight[N], 0)
	for i, w := range weights {
		if w != zero {
			out = append(out, IndexedWeight[N]{Index: i, Weight: w})
		}
	}
	return out
}
