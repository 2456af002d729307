package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/FilippoRanza/simplegraph/pkg/canonical"
	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/manifest"
)

// loadForm reads a graph description from path: a TOML manifest
// (.toml), a JSON canonical form (anything else), or stdin when path is
// "-" (JSON only).
func loadForm(path string) (*canonical.Form[float64], error) {
	if path == "-" {
		return canonical.Decode[float64](os.Stdin)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		return m.Form(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()
	return canonical.Decode[float64](f)
}

// writeOutput writes data to path, or to stdout when path is empty or
// "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// openOutput returns a writer for path, stdout when path is empty or
// "-", and a close function for the file case.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// parseWalk parses a comma-separated list of node indices.
func parseWalk(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.New(errors.ErrCodeInvalidWalk, "empty walk")
	}
	parts := strings.Split(s, ",")
	walk := make([]int, len(parts))
	for i, part := range parts {
		node, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidWalk, err, "walk entry %q", part)
		}
		walk[i] = node
	}
	return walk, nil
}
