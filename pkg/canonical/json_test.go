package canonical

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

func TestMarshalShapes(t *testing.T) {
	tests := []struct {
		name string
		form *Form[float64]
		want string
	}{
		{
			name: "extended weighted",
			form: New(graph.Direct,
				NewExtendedNodes([]float64{1, 2}),
				NewWeightedArcs([]Triple[float64]{{0, 1, 3.5}})),
			want: `{"gtype":"direct","nodes":{"extended":[1,2]},"arcs":{"weighted":[[0,1,3.5]]}}`,
		},
		{
			name: "compact simple",
			form: New(graph.Undirect,
				NewCompactNodes(4, []IndexedWeight[float64]{{Index: 2, Weight: 1.5}}),
				NewSimpleArcs[float64]([]Pair{{0, 1}})),
			want: `{"gtype":"undirect","nodes":{"compact":{"count":4,"weights":[[2,1.5]]}},"arcs":{"simple":[[0,1]]}}`,
		},
		{
			name: "empty extended",
			form: New(graph.Direct,
				NewExtendedNodes([]float64{}),
				NewWeightedArcs[float64](nil)),
			want: `{"gtype":"direct","nodes":{"extended":[]},"arcs":{"weighted":[]}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Marshal(tt.form)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if got := string(data); got != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMarshalNilSlicesAsEmptyArrays(t *testing.T) {
	form := New(graph.Direct, NewExtendedNodes[int](nil), NewSimpleArcs[int](nil))
	data, err := Marshal(form)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"gtype":"direct","nodes":{"extended":[]},"arcs":{"simple":[]}}`
	if got := string(data); got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"unknown gtype", `{"gtype":"mixed","nodes":{"extended":[]},"arcs":{"simple":[]}}`},
		{"missing nodes", `{"gtype":"direct","arcs":{"simple":[]}}`},
		{"missing arcs", `{"gtype":"direct","nodes":{"extended":[]}}`},
		{"unknown nodes tag", `{"gtype":"direct","nodes":{"sparse":[]},"arcs":{"simple":[]}}`},
		{"unknown arcs tag", `{"gtype":"direct","nodes":{"extended":[]},"arcs":{"labelled":[]}}`},
		{"two nodes tags", `{"gtype":"direct","nodes":{"extended":[],"compact":{"count":0,"weights":[]}},"arcs":{"simple":[]}}`},
		{"short pair", `{"gtype":"direct","nodes":{"extended":[1,2]},"arcs":{"simple":[[0]]}}`},
		{"long triple", `{"gtype":"direct","nodes":{"extended":[1,2]},"arcs":{"weighted":[[0,1,2,3]]}}`},
		{"short indexed weight", `{"gtype":"direct","nodes":{"compact":{"count":2,"weights":[[1]]}},"arcs":{"simple":[]}}`},
		{"arc out of range", `{"gtype":"direct","nodes":{"extended":[1]},"arcs":{"simple":[[0,4]]}}`},
		{"compact index out of range", `{"gtype":"direct","nodes":{"compact":{"count":1,"weights":[[3,1]]}},"arcs":{"simple":[]}}`},
		{"compact out of order", `{"gtype":"direct","nodes":{"compact":{"count":4,"weights":[[2,1],[1,1]]}},"arcs":{"simple":[]}}`},
		{"weight wrong type", `{"gtype":"direct","nodes":{"extended":["a"]},"arcs":{"simple":[]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := Unmarshal[float64]([]byte(tt.input))
			if err == nil {
				t.Fatal("Unmarshal() succeeded, want error")
			}
			if form != nil {
				t.Errorf("Unmarshal() returned a form alongside error %v", err)
			}
			if code := errors.GetCode(err); code != errors.ErrCodeInvalidForm {
				t.Errorf("error code = %q, want %q (%v)", code, errors.ErrCodeInvalidForm, err)
			}
		})
	}
}

func TestUnmarshalCompact(t *testing.T) {
	input := `{
		"gtype": "undirect",
		"nodes": {"compact": {"count": 10, "weights": [[1, 1.5], [3, 2.0]]}},
		"arcs": {"weighted": [[0, 1, 1.5], [1, 0, 1.5]]}
	}`
	form, err := Unmarshal[float64]([]byte(input))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if form.Type() != graph.Undirect {
		t.Errorf("Type() = %v, want Undirect", form.Type())
	}
	if got := form.NodeCount(); got != 10 {
		t.Errorf("NodeCount() = %d, want 10", got)
	}
	if !form.Nodes().Compact() {
		t.Error("expected compact nodes")
	}
	if got := form.ArcCount(); got != 2 {
		t.Errorf("ArcCount() = %d, want 2", got)
	}
}

func TestEncodeIndents(t *testing.T) {
	form := New(graph.Direct,
		NewExtendedNodes([]int{1}),
		NewSimpleArcs[int](nil))
	var buf bytes.Buffer
	if err := form.Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "\n  \"gtype\": \"direct\"") {
		t.Errorf("Encode() output not indented:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("Encode() output missing trailing newline")
	}
}

func TestDecodeMatchesUnmarshal(t *testing.T) {
	input := `{"gtype":"direct","nodes":{"extended":[1,2,3]},"arcs":{"weighted":[[0,1,5],[1,2,6]]}}`
	form, err := Decode[int](strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	data, err := Marshal(form)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != input {
		t.Errorf("re-encode = %s, want %s", data, input)
	}
}

func TestHashIsStable(t *testing.T) {
	form := New(graph.Direct,
		NewExtendedNodes([]int{1, 2}),
		NewWeightedArcs([]Triple[int]{{0, 1, 5}}))
	first, err := Hash(form)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := Hash(form)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("Hash() not deterministic")
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, first); err != nil {
		t.Fatalf("hash output is not valid JSON: %v", err)
	}
}
