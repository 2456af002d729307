package canonical

import (
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

// Backend names accepted by [Form.Build].
const (
	BackendSparse = "sparse"
	BackendDense  = "dense"
)

func errInvalidBackend(name string) error {
	return errors.New(errors.ErrCodeInvalidBackend,
		"unknown backend %q: want %q or %q", name, BackendSparse, BackendDense)
}

// Form is the backend-neutral representation of a graph: the type tag,
// the node weights, and the stored arc sequence. Forms are transcoding
// values; build one with [Capture] or [New], consume it with
// [Form.Sparse], [Form.Dense], or the JSON codec, then discard it.
type Form[N graph.Number] struct {
	gtype graph.GraphType
	nodes Nodes[N]
	arcs  Arcs[N]
}

// New assembles a Form from its parts. The parts are not validated until
// the form is materialized or encoded.
func New[N graph.Number](gtype graph.GraphType, nodes Nodes[N], arcs Arcs[N]) *Form[N] {
	return &Form[N]{gtype: gtype, nodes: nodes, arcs: arcs}
}

// Capture builds a Form from any backend's read-only view. Node weights
// go through the compaction heuristic; arcs are recorded weighted,
// verbatim from the backend's stored-arc iteration, so an undirected
// source contributes both mirrored directions and a sparse source
// contributes its duplicates.
func Capture[N graph.Number](g graph.View[N]) *Form[N] {
	weights := make([]N, 0, g.NodeCount())
	g.VisitNodes(func(_ int, w N) {
		weights = append(weights, w)
	})

	triples := make([]Triple[N], 0, g.ArcCount())
	g.VisitArcs(func(src, dst int, w N) {
		triples = append(triples, Triple[N]{Src: src, Dst: dst, Weight: w})
	})

	return &Form[N]{
		gtype: g.Type(),
		nodes: NewNodes(weights),
		arcs:  NewWeightedArcs(triples),
	}
}

// Type returns the recorded graph type.
func (f *Form[N]) Type() graph.GraphType { return f.gtype }

// NodeCount returns the recorded number of nodes.
func (f *Form[N]) NodeCount() int { return f.nodes.Count() }

// ArcCount returns the number of recorded arc entries.
func (f *Form[N]) ArcCount() int { return f.arcs.Len() }

// Nodes returns the node union, for callers that need to inspect which
// variant was chosen.
func (f *Form[N]) Nodes() Nodes[N] { return f.nodes }

// Arcs returns the arc union.
func (f *Form[N]) Arcs() Arcs[N] { return f.arcs }

// Validate checks the whole form for internal consistency without
// building anything: compact node entries must be sorted and in range,
// and every arc endpoint must lie inside [0, NodeCount()).
func (f *Form[N]) Validate() error {
	if err := f.nodes.validate(); err != nil {
		return err
	}
	return f.arcs.validate(f.nodes.Count())
}

// Sparse materializes the form into a fresh sparse backend. The form is
// validated first; on error no graph is returned.
func (f *Form[N]) Sparse() (*graph.Sparse[N], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	g := graph.NewSparse[N](f.nodes.Count(), f.gtype)
	f.apply(g)
	return g, nil
}

// Dense materializes the form into a fresh dense backend. The form is
// validated first; on error no graph is returned.
func (f *Form[N]) Dense() (*graph.Dense[N], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	g := graph.NewDense[N](f.nodes.Count(), f.gtype)
	f.apply(g)
	return g, nil
}

// Build materializes the form into the named backend, [BackendSparse] or
// [BackendDense], behind the backend-agnostic interface.
func (f *Form[N]) Build(backend string) (graph.Graph[N], error) {
	switch backend {
	case BackendSparse:
		return f.Sparse()
	case BackendDense:
		return f.Dense()
	default:
		return nil, errInvalidBackend(backend)
	}
}

func (f *Form[N]) apply(g graph.Graph[N]) {
	f.nodes.apply(g)
	f.arcs.apply(g)
}
