package graph

import (
	"strings"
	"testing"
)

func TestNewDense(t *testing.T) {
	tests := []struct {
		name  string
		count int
		gtype GraphType
	}{
		{name: "Empty", count: 0, gtype: Direct},
		{name: "Direct", count: 4, gtype: Direct},
		{name: "Undirect", count: 6, gtype: Undirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewDense[float64](tt.count, tt.gtype)
			if g.NodeCount() != tt.count {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), tt.count)
			}
			if g.ArcCount() != 0 {
				t.Errorf("ArcCount() = %d, want 0", g.ArcCount())
			}
			if g.Type() != tt.gtype {
				t.Errorf("Type() = %v, want %v", g.Type(), tt.gtype)
			}
			g.VisitNodes(func(i int, w float64) {
				if w != 0 {
					t.Errorf("node %d weight = %v, want 0", i, w)
				}
			})
		})
	}
}

func TestDenseDirectArcs(t *testing.T) {
	g := NewDenseDirect[float64](4)
	g.AddArc(0, 1, 1.0)
	g.AddArc(1, 2, 2.0)
	g.AddArc(2, 3, 3.0)
	g.AddArc(3, 0, 4.0)

	if g.ArcCount() != 4 {
		t.Fatalf("ArcCount() = %d, want 4", g.ArcCount())
	}
	if g.Cost(0, 1) != 1.0 || g.Cost(1, 2) != 2.0 || g.Cost(2, 3) != 3.0 || g.Cost(3, 0) != 4.0 {
		t.Error("stored weights do not match inserted weights")
	}
	// The reverse cells stay unset in a direct graph.
	for _, pair := range [][2]int{{1, 0}, {2, 1}, {3, 2}, {0, 3}} {
		if g.HasArc(pair[0], pair[1]) {
			t.Errorf("unexpected reverse arc %d→%d", pair[0], pair[1])
		}
	}
}

func TestDenseUndirectMirrors(t *testing.T) {
	g := NewDenseUndirect[float64](4)
	g.AddArc(0, 1, 1.0)
	g.AddArc(1, 2, 2.0)

	if g.ArcCount() != 4 {
		t.Fatalf("ArcCount() = %d, want 4", g.ArcCount())
	}
	if g.Cost(1, 0) != 1.0 || g.Cost(2, 1) != 2.0 {
		t.Error("mirrored cells do not carry the inserted weight")
	}
}

func TestDenseDeduplicates(t *testing.T) {
	g := NewDenseDirect[float64](3)
	g.AddArc(0, 1, 1.5)
	before := g.ArcCount()

	// Re-insertion is a no-op: weight keeps its previous value and the
	// count stays put.
	g.AddArc(0, 1, 9.5)
	if g.ArcCount() != before {
		t.Errorf("ArcCount() = %d after re-insert, want %d", g.ArcCount(), before)
	}
	if got := g.Cost(0, 1); got != 1.5 {
		t.Errorf("Cost(0, 1) = %v after re-insert, want 1.5", got)
	}
}

func TestDenseSelfLoopUndirect(t *testing.T) {
	g := NewDenseUndirect[int](2)
	g.AddArc(1, 1, 5)

	// The mirror of a self loop is the same cell, so only one is set.
	if g.ArcCount() != 1 {
		t.Errorf("ArcCount() = %d, want 1", g.ArcCount())
	}
}

func TestDenseUpdateArcsWeight(t *testing.T) {
	g := NewDenseUndirect[float64](4)
	g.AddArc(0, 1, 1.0)
	g.AddArc(1, 2, 2.0)
	g.AddArc(2, 3, 3.0)
	g.AddArc(3, 0, 4.0)

	g.UpdateAllArcsWeight(func(_, _ int, w float64) float64 { return 2.0 * w })

	checks := map[[2]int]float64{
		{0, 1}: 2.0, {1, 2}: 4.0, {2, 3}: 6.0, {3, 0}: 8.0,
		{1, 0}: 2.0, {2, 1}: 4.0, {3, 2}: 6.0, {0, 3}: 8.0,
	}
	for pair, want := range checks {
		if got := g.Cost(pair[0], pair[1]); got != want {
			t.Errorf("Cost(%d, %d) = %v, want %v", pair[0], pair[1], got, want)
		}
	}
}

func TestDenseUpdateArcsRowMajorOrder(t *testing.T) {
	g := NewDenseDirect[int](3)
	g.AddArc(2, 0, 1)
	g.AddArc(0, 2, 1)
	g.AddArc(1, 1, 1)

	var visited [][2]int
	g.UpdateAllArcsWeight(func(src, dst int, w int) int {
		visited = append(visited, [2]int{src, dst})
		return w
	})

	want := [][2]int{{0, 2}, {1, 1}, {2, 0}}
	if len(visited) != len(want) {
		t.Fatalf("callback ran %d times, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestDenseUpdateNodesWeight(t *testing.T) {
	g := NewDenseDirect[float64](5)
	g.UpdateAllNodesWeight(func(i int, _ float64) float64 { return 1.5 * float64(i) })

	g.VisitNodes(func(i int, w float64) {
		if want := 1.5 * float64(i); w != want {
			t.Errorf("node %d weight = %v, want %v", i, w, want)
		}
	})
}

func TestDensePanics(t *testing.T) {
	tests := []struct {
		name string
		want string
		call func()
	}{
		{
			name: "NegativeCount",
			want: "negative node count",
			call: func() { NewDenseDirect[int](-3) },
		},
		{
			name: "SourceOutOfRange",
			want: "out of range",
			call: func() { NewDenseDirect[int](2).AddArc(7, 0, 1) },
		},
		{
			name: "CostOutOfRange",
			want: "out of range",
			call: func() { NewDenseDirect[int](2).Cost(0, 2) },
		},
		{
			name: "MissingArcCost",
			want: "no arc",
			call: func() { NewDenseDirect[int](2).Cost(0, 1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic, got none")
				}
				msg, ok := r.(string)
				if !ok || !strings.Contains(msg, tt.want) {
					t.Errorf("panic = %v, want message containing %q", r, tt.want)
				}
			}()
			tt.call()
		})
	}
}
