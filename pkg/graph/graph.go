package graph

import "fmt"

// Number is the constraint on node and arc weights. The zero value of any
// Number type acts as the additive identity: new graphs start with every
// node weight at zero, and cost accumulation starts from zero.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// GraphType selects whether arc insertion mirrors the reverse direction.
// It is fixed at construction time.
type GraphType int

const (
	// Direct stores each inserted arc exactly as given.
	Direct GraphType = iota
	// Undirect stores the mirrored arc (dst, src) alongside every
	// inserted arc (src, dst).
	Undirect
)

// String returns "direct" or "undirect".
func (t GraphType) String() string {
	switch t {
	case Direct:
		return "direct"
	case Undirect:
		return "undirect"
	default:
		return fmt.Sprintf("GraphType(%d)", int(t))
	}
}

// ParseType returns the GraphType named by s ("direct" or "undirect").
// The second return is false when s names neither.
func ParseType(s string) (GraphType, bool) {
	switch s {
	case "direct":
		return Direct, true
	case "undirect":
		return Undirect, true
	default:
		return Direct, false
	}
}

// Visitor is the read-only visitation capability shared by all backends.
// Callbacks receive index and weight values by copy and must not mutate
// the graph they are visiting.
type Visitor[N Number] interface {
	// VisitNodes calls f once per node in ascending index order.
	VisitNodes(f func(node int, weight N))

	// VisitArcs calls f once per stored arc entry. For Undirect graphs
	// both mirrored directions are stored, so each is visited once.
	VisitArcs(f func(src, dst int, weight N))

	// NodeCount returns the fixed number of nodes.
	NodeCount() int

	// ArcCount returns the number of stored arc entries. See the package
	// documentation for how the backends diverge on duplicates.
	ArcCount() int
}

// View is the full read-only capability: visitation plus the type tag.
// Transcoding and rendering consume a View and never mutate.
type View[N Number] interface {
	Visitor[N]

	// Type reports whether the graph mirrors inserted arcs.
	Type() GraphType
}

// Graph is the mutable contract implemented by both backends. Callers
// that need backend-agnostic code hold a Graph value; the concrete types
// [Sparse] and [Dense] expose a few extra methods of their own.
type Graph[N Number] interface {
	View[N]

	// AddDefaultArc inserts src→dst with the additive identity weight.
	AddDefaultArc(src, dst int)

	// AddArc inserts src→dst with the given weight. Undirect graphs also
	// insert the mirrored arc dst→src with the same weight.
	AddArc(src, dst int, weight N)

	// UpdateAllArcsWeight replaces the weight of every stored arc entry
	// (src, dst, w) with f(src, dst, w). For Undirect graphs f runs once
	// per stored direction, i.e. twice per logical edge.
	UpdateAllArcsWeight(f func(src, dst int, weight N) N)

	// UpdateAllNodesWeight replaces every node weight w at index i with
	// f(i, w), in ascending index order.
	UpdateAllNodesWeight(f func(node int, weight N) N)
}

// Coster is the single-arc cost lookup capability consumed by walk cost
// iteration. The arc is assumed to exist; implementations panic when it
// does not.
type Coster[N Number] interface {
	Cost(src, dst int) N
}

// Arc is one stored arc entry, as returned by successor queries.
type Arc[N Number] struct {
	Src    int
	Dst    int
	Weight N
}

// TotalEntries returns the number of nodes plus the number of stored arc
// entries, the total statement count a renderer will emit.
func TotalEntries[N Number](v Visitor[N]) int {
	return v.NodeCount() + v.ArcCount()
}

// zeroWeights returns a fresh all-identity node weight slice.
func zeroWeights[N Number](count int) []N {
	if count < 0 {
		panic(fmt.Sprintf("graph: negative node count %d", count))
	}
	return make([]N, count)
}

// checkNode panics unless 0 <= node < count. Index violations are caller
// bugs and abort the operation instead of clamping.
func checkNode(node, count int, what string) {
	if node < 0 || node >= count {
		panic(fmt.Sprintf("graph: %s index %d out of range [0, %d)", what, node, count))
	}
}
