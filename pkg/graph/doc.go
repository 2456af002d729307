// Package graph provides weighted directed and undirected graphs with a
// fixed node count and two interchangeable storage backends.
//
// # Overview
//
// A graph is created with a node count and a [GraphType] and is never
// resized afterwards. Nodes are identified by dense indices in
// [0, node count) and carry a numeric weight; arcs connect two node
// indices and carry a weight of the same numeric type. Both weights are
// generic over [Number], so the same graph code works for counters
// (int), distances (float64), or any named numeric type.
//
// Two backends implement the same [Graph] contract:
//
//   - [Sparse]: one append-only list of outgoing arcs per node. Cheap for
//     graphs with few arcs; repeated insertion of the same arc creates
//     parallel entries.
//   - [Dense]: an N×N presence matrix plus an N×N weight matrix. Constant
//     time arc lookup; re-inserting a present arc is a no-op.
//
// The two backends deliberately disagree on duplicate arcs. Sparse appends
// unconditionally, so every AddArc call grows ArcCount and Cost returns the
// first inserted weight. Dense keeps the first weight and leaves ArcCount
// untouched when the presence cell is already set. Code that moves graphs
// between backends must not rely on duplicate multiplicity surviving.
//
// # Undirected graphs
//
// For an [Undirect] graph, AddArc(u, v, w) physically stores both (u, v, w)
// and (v, u, w). The mirror is a real entry, not a derived view: it is
// visited by VisitArcs, counted by ArcCount, and updated independently by
// UpdateAllArcsWeight.
//
// # Errors
//
// Node and arc indices outside [0, node count) are programmer errors and
// panic immediately; so does a Cost lookup for an arc that does not exist.
// There are no recoverable error returns in this package.
//
// # Concurrency
//
// Graphs are not safe for concurrent use. Mutators require exclusive
// access; read-only visitation and cost lookups may run concurrently with
// each other but never with a mutator. Callers must synchronize externally.
package graph
