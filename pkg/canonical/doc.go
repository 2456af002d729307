// Package canonical provides a backend-neutral form of a graph, used to
// move graphs between storage backends and across a serialization
// boundary.
//
// # Overview
//
// A [Form] is an ephemeral transcoding value: [Capture] builds one from
// any backend's read-only view, [Form.Sparse] and [Form.Dense] materialize
// it back into a fresh backend, and the JSON codec ([Marshal], [Unmarshal],
// [Form.Encode], [Decode]) carries it across process boundaries. A Form is
// never mutated after construction.
//
// Node weights are stored either extended (one weight per index) or
// compact (count plus the sorted non-zero entries). The choice is made
// once, at capture time, by a pure compaction heuristic: compact wins when
// strictly more than half of the weights are zero, 2*zeros > total+1.
//
// Arcs are stored either weighted (index pair plus weight) or simple
// (index pair only, replayed with the identity weight). Capture always
// records the backend's stored arc sequence verbatim, so an undirected
// source contributes both mirrored directions. On materialization into an
// Undirect graph only the src <= dst entries are replayed and the backend's
// own mirroring restores the opposite direction.
//
// # Wire format
//
// The JSON encoding uses externally tagged unions and tuple-style arrays:
//
//	{
//	  "gtype": "undirect",
//	  "nodes": {"compact": {"count": 10, "weights": [[1, 1.5], [3, 2.0]]}},
//	  "arcs": {"weighted": [[0, 1, 1.5], [1, 0, 1.5]]}
//	}
//
// Decoding validates the whole form before any graph is built: unknown
// tags, compact entries out of range or out of order, and arc endpoints
// outside [0, count) all fail with an INVALID_FORM error and never yield
// a partially-built graph.
package canonical
