// Package path enumerates the cumulative costs of every contiguous
// sub-walk of a node sequence.
//
// Given a walk n0, n1, ..., nk over a weighted graph, [Iter] yields one
// [Step] per (start, end) offset pair with start < end, outer loop over
// the start offset ascending and inner loop over the end offset
// ascending. The cost accumulates one arc at a time as the end offset
// advances and resets when the start offset moves, so each step costs
// O(1) arc lookups and the full enumeration is len*(len-1)/2 steps
// without ever materializing them.
package path

import "github.com/FilippoRanza/simplegraph/pkg/graph"

// Step is one enumerated sub-walk: its first node, its last node, and
// the sum of the arc costs along the walk between them.
type Step[N graph.Number] struct {
	Src  int
	Dst  int
	Cost N
}

// Iter lazily walks the sub-path costs of a node sequence. It is
// single-pass; build a new one to enumerate again. The walk slice is
// borrowed, not copied, and must not change while iterating.
type Iter[N graph.Number] struct {
	costs graph.Coster[N]
	walk  []int
	start int
	end   int
	acc   N
}

// New builds an iterator over walk using costs for arc lookups. A walk
// of length 0 or 1 yields nothing. Every consecutive pair of the walk
// must be an arc of the underlying graph; a missing arc surfaces as the
// cost lookup's panic.
func New[N graph.Number](costs graph.Coster[N], walk []int) *Iter[N] {
	return &Iter[N]{costs: costs, walk: walk, start: 0, end: 1}
}

// Next advances the iterator. It returns the next step and true, or the
// zero step and false once the enumeration is done.
func (it *Iter[N]) Next() (Step[N], bool) {
	for it.start < len(it.walk)-1 {
		if it.end < len(it.walk) {
			it.acc += it.costs.Cost(it.walk[it.end-1], it.walk[it.end])
			step := Step[N]{
				Src:  it.walk[it.start],
				Dst:  it.walk[it.end],
				Cost: it.acc,
			}
			it.end++
			return step, true
		}
		it.start++
		it.end = it.start + 1
		var zero N
		it.acc = zero
	}
	return Step[N]{}, false
}

// Collect drains the iterator into a slice, mostly for tests and small
// walks where laziness buys nothing.
func Collect[N graph.Number](it *Iter[N]) []Step[N] {
	var out []Step[N]
	for {
		step, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, step)
	}
}
