// Package pkg provides the core libraries for simplegraph weighted-graph modeling.
//
// # Overview
//
// Simplegraph models directed and undirected weighted graphs behind a
// single contract with two interchangeable backends, plus a canonical
// serialization form that moves graphs between them. The pkg directory
// is organized into the following areas:
//
//  1. [graph] - Graph contract and the sparse/dense backends
//  2. [canonical] - Backend-neutral form, JSON codec, transcoding
//  3. [path] - Lazy sub-walk cost enumeration
//  4. [dot] - DOT source generation and graphviz rendering
//  5. [manifest] - TOML graph descriptions
//  6. [cache], [store] - Render artifact cache and graph persistence
//
// # Architecture
//
// The typical data flow:
//
//	JSON form / TOML manifest
//	         ↓
//	    [canonical] package (validate + build)
//	         ↓
//	    [graph] package (sparse or dense backend)
//	         ↓
//	    [dot] / [path] packages (render, walk costs)
//	         ↓
//	    SVG/PNG/DOT/JSON output
//
// # Quick Start
//
// Build a graph, capture it back to a form, and render it:
//
//	import (
//	    "context"
//	    "github.com/FilippoRanza/simplegraph/pkg/canonical"
//	    "github.com/FilippoRanza/simplegraph/pkg/dot"
//	)
//
//	// 1. Decode and build
//	form, _ := canonical.Unmarshal[float64](data)
//	g, _ := form.Build(canonical.BackendSparse)
//
//	// 2. Transcode through the dense backend
//	dense, _ := form.Dense()
//
//	// 3. Render to SVG
//	svg, _ := dot.RenderSVG(context.Background(), dot.Source[float64](g))
//
// # Main Packages
//
// [graph] - The Graph contract (node/arc counts, visitation, updates,
// arc queries) with two implementations: Sparse keeps adjacency lists
// and preserves duplicate arcs, Dense keeps presence and weight
// matrices and deduplicates.
//
// [canonical] - Form, the backend-neutral snapshot of a graph. Node
// weights pick the extended or compact encoding by density, arcs pick
// the simple or weighted encoding by graph kind. Capture snapshots any
// built graph; Build replays into either backend.
//
// [path] - Iter walks every contiguous sub-walk of a node walk and
// yields its accumulated cost, one arc lookup per step.
//
// [dot] - DOT source for any graph view, plus SVG and PNG layout via
// graphviz.
//
// [manifest] - Human-written TOML graph descriptions for the CLI.
//
// [cache] - Render artifact cache with file, Redis and null backends.
//
// [store] - Graph document persistence with memory and MongoDB
// backends, used by the HTTP API.
//
// [errors] - Coded errors shared by the CLI and API surfaces.
//
// [observability] - Optional render and cache instrumentation hooks.
//
// [buildinfo] - ldflags-injected version information.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/canonical/   # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/graph
// [canonical]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/canonical
// [path]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/path
// [dot]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/dot
// [manifest]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/manifest
// [cache]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/cache
// [store]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/store
// [errors]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/FilippoRanza/simplegraph/pkg/buildinfo
package pkg
