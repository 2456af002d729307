// Package manifest reads declarative TOML graph descriptions and turns
// them into live graphs.
//
// A manifest names the graph type, the node count, optional per-node
// weights, and the arc list:
//
//	gtype = "undirect"
//	nodes = 4
//	weights = [0.0, 1.5, 0.0, 2.0]
//
//	[[arc]]
//	src = 0
//	dst = 1
//	weight = 2.5
//
//	[[arc]]
//	src = 1
//	dst = 2
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/FilippoRanza/simplegraph/pkg/canonical"
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

// Arc is one declared arc. Weight defaults to zero when omitted.
type Arc struct {
	Src    int     `toml:"src"`
	Dst    int     `toml:"dst"`
	Weight float64 `toml:"weight"`
}

// Manifest is the parsed TOML description of a graph.
type Manifest struct {
	GType   string    `toml:"gtype"`
	Nodes   int       `toml:"nodes"`
	Weights []float64 `toml:"weights"`
	Arcs    []Arc     `toml:"arc"`
}

// Parse decodes a TOML manifest and validates it.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read manifest %s", path)
	}
	return Parse(data)
}

func (m *Manifest) validate() error {
	if _, ok := graph.ParseType(m.GType); !ok {
		return errors.New(errors.ErrCodeInvalidManifest,
			"unknown gtype %q: want %q or %q", m.GType, graph.Direct, graph.Undirect)
	}
	if m.Nodes < 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "node count %d is negative", m.Nodes)
	}
	if m.Weights != nil && len(m.Weights) != m.Nodes {
		return errors.New(errors.ErrCodeInvalidManifest,
			"%d weights for %d nodes", len(m.Weights), m.Nodes)
	}
	for i, arc := range m.Arcs {
		if arc.Src < 0 || arc.Src >= m.Nodes {
			return errors.New(errors.ErrCodeInvalidManifest,
				"arc %d: source %d out of range [0, %d)", i, arc.Src, m.Nodes)
		}
		if arc.Dst < 0 || arc.Dst >= m.Nodes {
			return errors.New(errors.ErrCodeInvalidManifest,
				"arc %d: destination %d out of range [0, %d)", i, arc.Dst, m.Nodes)
		}
	}
	return nil
}

// Type returns the declared graph type. Parse validated it already.
func (m *Manifest) Type() graph.GraphType {
	gtype, _ := graph.ParseType(m.GType)
	return gtype
}

// Form assembles the backend-neutral form of the manifest: declared
// weights (or all zeros) and the arc list as weighted triples. Manifest
// arcs are single-sided; for an undirected graph each one is normalized
// to src <= dst so the replay's mirror-skipping keeps it.
func (m *Manifest) Form() *canonical.Form[float64] {
	weights := m.Weights
	if weights == nil {
		weights = make([]float64, m.Nodes)
	}
	undirect := m.Type() == graph.Undirect
	triples := make([]canonical.Triple[float64], len(m.Arcs))
	for i, arc := range m.Arcs {
		src, dst := arc.Src, arc.Dst
		if undirect && src > dst {
			src, dst = dst, src
		}
		triples[i] = canonical.Triple[float64]{Src: src, Dst: dst, Weight: arc.Weight}
	}
	return canonical.New(m.Type(), canonical.NewNodes(weights), canonical.NewWeightedArcs(triples))
}

// Build materializes the manifest into the named backend.
func (m *Manifest) Build(backend string) (graph.Graph[float64], error) {
	return m.Form().Build(backend)
}
