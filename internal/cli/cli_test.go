package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"convert", "render", "cost", "stats", "inspect", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestParseWalk(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"simple", "0,1,2", []int{0, 1, 2}, false},
		{"spaces", " 0, 1 ,2 ", []int{0, 1, 2}, false},
		{"single", "5", []int{5}, false},
		{"empty", "", nil, true},
		{"blank", "   ", nil, true},
		{"not a number", "0,x,2", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseWalk(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWalk(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidWalk {
					t.Errorf("error code = %q, want %q", code, errors.ErrCodeInvalidWalk)
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("parseWalk(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("parseWalk(%q)[%d] = %d, want %d", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadFormJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	payload := `{"gtype":"direct","nodes":{"extended":[1,2]},"arcs":{"weighted":[[0,1,5]]}}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	form, err := loadForm(path)
	if err != nil {
		t.Fatalf("loadForm() error = %v", err)
	}
	if form.Type() != graph.Direct || form.NodeCount() != 2 || form.ArcCount() != 1 {
		t.Errorf("form = %s, %d nodes, %d arcs", form.Type(), form.NodeCount(), form.ArcCount())
	}
}

func TestLoadFormTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.toml")
	payload := "gtype = \"undirect\"\nnodes = 3\n\n[[arc]]\nsrc = 0\ndst = 1\nweight = 2.5\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	form, err := loadForm(path)
	if err != nil {
		t.Fatalf("loadForm() error = %v", err)
	}
	if form.Type() != graph.Undirect || form.NodeCount() != 3 {
		t.Errorf("form = %s, %d nodes", form.Type(), form.NodeCount())
	}
}

func TestLoadFormMissing(t *testing.T) {
	_, err := loadForm(filepath.Join(t.TempDir(), "nope.json"))
	if code := errors.GetCode(err); code != errors.ErrCodeFileNotFound {
		t.Errorf("error code = %q, want %q", code, errors.ErrCodeFileNotFound)
	}
}

func TestCacheDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error = %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}
