// Package dot renders graphs as Graphviz DOT sources and rasterizes
// them through the graphviz engine.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/FilippoRanza/simplegraph/pkg/errors"
	"github.com/FilippoRanza/simplegraph/pkg/graph"
)

// Source renders a DOT description of the graph: one statement per node
// and one per arc, nodes labelled with their weight. Direct graphs
// become a digraph with -> edges; Undirect graphs become a graph with
// -- edges, keeping only the src <= dst half of each mirrored pair so
// every edge is drawn once.
func Source[N graph.Number](g graph.View[N]) string {
	b := newBuilder(g.Type(), graph.TotalEntries[N](g))
	g.VisitNodes(func(node int, weight N) { b.addNode(node, weight) })
	g.VisitArcs(func(src, dst int, weight N) { b.addArc(src, dst, weight) })
	return b.String()
}

type builder struct {
	statements []string
	arrow      string
	keyword    string
	keepArc    func(src, dst int) bool
}

func newBuilder(gtype graph.GraphType, size int) *builder {
	b := &builder{statements: make([]string, 0, size)}
	switch gtype {
	case graph.Direct:
		b.keyword = "digraph"
		b.arrow = "->"
		b.keepArc = func(_, _ int) bool { return true }
	case graph.Undirect:
		b.keyword = "graph"
		b.arrow = "--"
		b.keepArc = func(src, dst int) bool { return src <= dst }
	}
	return b
}

func (b *builder) addNode(node int, weight any) {
	b.statements = append(b.statements, fmt.Sprintf("\tn%d [label=\"%v\"];", node, weight))
}

func (b *builder) addArc(src, dst int, weight any) {
	if !b.keepArc(src, dst) {
		return
	}
	b.statements = append(b.statements,
		fmt.Sprintf("\tn%d %s n%d [label=\"%v\"];", src, b.arrow, dst, weight))
}

func (b *builder) String() string {
	return fmt.Sprintf("%s {\n%s\n}", b.keyword, strings.Join(b.statements, "\n"))
}

// RenderSVG lays the DOT source out with graphviz and returns the SVG
// bytes.
func RenderSVG(ctx context.Context, source string) ([]byte, error) {
	return render(ctx, source, graphviz.SVG)
}

// RenderPNG lays the DOT source out with graphviz and returns the PNG
// bytes.
func RenderPNG(ctx context.Context, source string) ([]byte, error) {
	return render(ctx, source, graphviz.PNG)
}

func render(ctx context.Context, source string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(source))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT source")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render graph")
	}
	return buf.Bytes(), nil
}
