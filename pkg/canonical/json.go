package canonical

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

// Union tags of the wire format.
const (
	tagExtended = "extended"
	tagCompact  = "compact"
	tagSimple   = "simple"
	tagWeighted = "weighted"
)

// Marshal encodes the form as JSON.
func Marshal[N graph.Number](f *Form[N]) ([]byte, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode canonical form")
	}
	return data, nil
}

// Unmarshal decodes and validates a JSON form. A malformed payload never
// yields a form, so no partially-built graph can come out of it.
func Unmarshal[N graph.Number](data []byte) (*Form[N], error) {
	var f Form[N]
	if err := json.Unmarshal(data, &f); err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidForm, err, "decode canonical form")
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Encode writes the form to w as indented JSON, ready for files and HTTP
// responses.
func (f *Form[N]) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode canonical form")
	}
	return nil
}

// Decode reads one JSON form from r and validates it.
func Decode[N graph.Number](r io.Reader) (*Form[N], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidForm, err, "read canonical form")
	}
	return Unmarshal[N](data)
}

type formJSON[N graph.Number] struct {
	GType string   `json:"gtype"`
	Nodes Nodes[N] `json:"nodes"`
	Arcs  Arcs[N]  `json:"arcs"`
}

// MarshalJSON implements json.Marshaler.
func (f *Form[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal(formJSON[N]{
		GType: f.gtype.String(),
		Nodes: f.nodes,
		Arcs:  f.arcs,
	})
}

// UnmarshalJSON implements json.Unmarshaler. All three fields are
// required. Structural validation (index ranges, ordering) lives in
// [Form.Validate]; this only rejects shapes the unions cannot
// represent.
func (f *Form[N]) UnmarshalJSON(data []byte) error {
	var raw struct {
		GType *string         `json:"gtype"`
		Nodes json.RawMessage `json:"nodes"`
		Arcs  json.RawMessage `json:"arcs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.GType == nil || raw.Nodes == nil || raw.Arcs == nil {
		return errors.New(errors.ErrCodeInvalidForm, "form needs gtype, nodes and arcs")
	}
	gtype, ok := graph.ParseType(*raw.GType)
	if !ok {
		return errors.New(errors.ErrCodeInvalidForm, "unknown graph type %q", *raw.GType)
	}
	f.gtype = gtype
	if err := json.Unmarshal(raw.Nodes, &f.nodes); err != nil {
		return err
	}
	return json.Unmarshal(raw.Arcs, &f.arcs)
}

// MarshalJSON emits {"extended": [...]} or {"compact": {...}}. Nil
// slices encode as empty arrays, never null.
func (n Nodes[N]) MarshalJSON() ([]byte, error) {
	if n.kind == nodesCompact {
		return json.Marshal(map[string]compactJSON[N]{
			tagCompact: {Count: n.count, Weights: notNil(n.weights)},
		})
	}
	return json.Marshal(map[string][]N{tagExtended: notNil(n.extended)})
}

type compactJSON[N graph.Number] struct {
	Count   int                `json:"count"`
	Weights []IndexedWeight[N] `json:"weights"`
}

// UnmarshalJSON accepts exactly one of the two node tags.
func (n *Nodes[N]) UnmarshalJSON(data []byte) error {
	tag, body, err := unionTag(data, "nodes")
	if err != nil {
		return err
	}
	switch tag {
	case tagExtended:
		var weights []N
		if err := json.Unmarshal(body, &weights); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidForm, err, "extended node weights")
		}
		*n = NewExtendedNodes(weights)
	case tagCompact:
		var compact compactJSON[N]
		if err := json.Unmarshal(body, &compact); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidForm, err, "compact node weights")
		}
		*n = NewCompactNodes(compact.Count, compact.Weights)
	default:
		return errors.New(errors.ErrCodeInvalidForm, "unknown nodes tag %q", tag)
	}
	return nil
}

// MarshalJSON emits {"simple": [...]} or {"weighted": [...]}.
func (a Arcs[N]) MarshalJSON() ([]byte, error) {
	if a.kind == arcsWeighted {
		return json.Marshal(map[string][]Triple[N]{tagWeighted: notNil(a.weighted)})
	}
	return json.Marshal(map[string][]Pair{tagSimple: notNil(a.simple)})
}

func notNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// UnmarshalJSON accepts exactly one of the two arc tags.
func (a *Arcs[N]) UnmarshalJSON(data []byte) error {
	tag, body, err := unionTag(data, "arcs")
	if err != nil {
		return err
	}
	switch tag {
	case tagSimple:
		var pairs []Pair
		if err := json.Unmarshal(body, &pairs); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidForm, err, "simple arcs")
		}
		*a = NewSimpleArcs[N](pairs)
	case tagWeighted:
		var triples []Triple[N]
		if err := json.Unmarshal(body, &triples); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidForm, err, "weighted arcs")
		}
		*a = NewWeightedArcs(triples)
	default:
		return errors.New(errors.ErrCodeInvalidForm, "unknown arcs tag %q", tag)
	}
	return nil
}

// unionTag extracts the single tag of an externally tagged union object.
func unionTag(data []byte, what string) (string, json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return "", nil, errors.Wrap(errors.ErrCodeInvalidForm, err, "%s union", what)
	}
	if len(m) != 1 {
		return "", nil, errors.New(errors.ErrCodeInvalidForm,
			"%s union must carry exactly one tag, got %d", what, len(m))
	}
	for tag, body := range m {
		return tag, body, nil
	}
	return "", nil, nil // unreachable
}

// MarshalJSON emits [index, weight].
func (w IndexedWeight[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{w.Index, w.Weight})
}

// UnmarshalJSON expects a two-element [index, weight] array.
func (w *IndexedWeight[N]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return errors.New(errors.ErrCodeInvalidForm,
			"indexed weight must have 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &w.Index); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidForm, err, "indexed weight index")
	}
	if err := json.Unmarshal(raw[1], &w.Weight); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidForm, err, "indexed weight value")
	}
	return nil
}

// MarshalJSON emits [src, dst].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.Src, p.Dst})
}

// UnmarshalJSON expects a two-element [src, dst] array.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return errors.New(errors.ErrCodeInvalidForm,
			"arc pair must have 2 elements, got %d", len(raw))
	}
	p.Src, p.Dst = raw[0], raw[1]
	return nil
}

// MarshalJSON emits [src, dst, weight].
func (t Triple[N]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Src, t.Dst, t.Weight})
}

// UnmarshalJSON expects a three-element [src, dst, weight] array.
func (t *Triple[N]) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return errors.New(errors.ErrCodeInvalidForm,
			"weighted arc must have 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &t.Src); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidForm, err, "weighted arc source")
	}
	if err := json.Unmarshal(raw[1], &t.Dst); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidForm, err, "weighted arc destination")
	}
	if err := json.Unmarshal(raw[2], &t.Weight); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidForm, err, "weighted arc weight")
	}
	return nil
}

// Hash returns the canonical JSON encoding of the form without
// indentation, usable as a stable cache key source.
func Hash[N graph.Number](f *Form[N]) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash canonical form")
	}
	return buf.Bytes(), nil
}
