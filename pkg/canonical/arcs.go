package canonical

import (
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

type arcsKind uint8

const (
	arcsSimple arcsKind = iota
	arcsWeighted
)

// Pair is an arc without a weight. It marshals as [src, dst] and is
// replayed with the additive identity weight.
type Pair struct {
	Src int
	Dst int
}

// Triple is an arc with its weight. It marshals as [src, dst, weight].
type Triple[N graph.Number] struct {
	Src    int
	Dst    int
	Weight N
}

// Arcs is the tagged union holding a form's arc entries: simple index
// pairs or weighted triples.
type Arcs[N graph.Number] struct {
	kind     arcsKind
	simple   []Pair
	weighted []Triple[N]
}

// NewSimpleArcs builds the simple variant. Replaying it assigns the
// additive identity to every arc.
func NewSimpleArcs[N graph.Number](pairs []Pair) Arcs[N] {
	return Arcs[N]{kind: arcsSimple, simple: pairs}
}

// NewWeightedArcs builds the weighted variant.
func NewWeightedArcs[N graph.Number](triples []Triple[N]) Arcs[N] {
	return Arcs[N]{kind: arcsWeighted, weighted: triples}
}

// Len returns the number of recorded arc entries.
func (a Arcs[N]) Len() int {
	if a.kind == arcsWeighted {
		return len(a.weighted)
	}
	return len(a.simple)
}

// Weighted reports whether the entries carry weights.
func (a Arcs[N]) Weighted() bool { return a.kind == arcsWeighted }

// validate checks that every endpoint lies inside [0, nodeCount).
func (a Arcs[N]) validate(nodeCount int) error {
	check := func(src, dst int) error {
		if src < 0 || src >= nodeCount {
			return errors.New(errors.ErrCodeInvalidForm,
				"arc source %d out of range [0, %d)", src, nodeCount)
		}
		if dst < 0 || dst >= nodeCount {
			return errors.New(errors.ErrCodeInvalidForm,
				"arc destination %d out of range [0, %d)", dst, nodeCount)
		}
		return nil
	}
	if a.kind == arcsWeighted {
		for _, t := range a.weighted {
			if err := check(t.Src, t.Dst); err != nil {
				return err
			}
		}
		return nil
	}
	for _, p := range a.simple {
		if err := check(p.Src, p.Dst); err != nil {
			return err
		}
	}
	return nil
}

// apply replays the recorded arcs into a freshly-built graph through the
// conditional insert: Direct graphs take every entry as-is, Undirect
// graphs take only src <= dst entries and let the backend's mirroring
// restore the opposite direction. Without the condition every undirected
// edge captured from a mirrored backend would be inserted twice.
func (a Arcs[N]) apply(g graph.Graph[N]) {
	var zero N
	if a.kind == arcsWeighted {
		for _, t := range a.weighted {
			conditionalInsert(g, t.Src, t.Dst, t.Weight)
		}
		return
	}
	for _, p := range a.simple {
		conditionalInsert(g, p.Src, p.Dst, zero)
	}
}

func conditionalInsert[N graph.Number](g graph.Graph[N], src, dst int, weight N) {
	switch g.Type() {
	case graph.Direct:
		g.AddArc(src, dst, weight)
	case graph.Undirect:
		if src <= dst {
			g.AddArc(src, dst, weight)
		}
	}
}
