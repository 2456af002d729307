package graph

import (
	"strings"
	"testing"
)

func TestNewSparse(t *testing.T) {
	tests := []struct {
		name  string
		count int
		gtype GraphType
	}{
		{name: "EmptyDirect", count: 0, gtype: Direct},
		{name: "EmptyUndirect", count: 0, gtype: Undirect},
		{name: "Direct", count: 5, gtype: Direct},
		{name: "Undirect", count: 7, gtype: Undirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewSparse[float64](tt.count, tt.gtype)
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

func TestSparseDirectArcs(t *testing.T) {
	g := NewSparseDirect[float64](4)
	g.AddArc(0, 1, 1.0)
	g.AddArc(1, 2, 2.0)
	g.AddArc(2, 3, 3.0)
	g.AddArc(3, 0, 4.0)

	if g.ArcCount() != 4 {
		t.Fatalf("ArcCount() = %d, want 4", g.ArcCount())
	}

	want := map[[2]int]float64{{0, 1}: 1.0, {1, 2}: 2.0, {2, 3}: 3.0, {3, 0}: 4.0}
	seen := 0
	g.VisitArcs(func(src, dst int, w float64) {
		seen++
		expect, ok := want[[2]int{src, dst}]
		if !ok {
			t.Errorf("unexpected arc %d→%d", src, dst)
			return
		}
		if w != expect {
			t.Errorf("arc %d→%d weight = %v, want %v", src, dst, w, expect)
		}
	})
	if seen != 4 {
		t.Errorf("visited %d arcs, want 4", seen)
	}
}

func TestSparseUndirectMirrors(t *testing.T) {
	g := NewSparseUndirect[int](4)
	g.AddArc(0, 1, 10)
	g.AddArc(1, 2, 20)
	g.AddArc(2, 3, 30)
	g.AddArc(3, 0, 40)

	// Every insertion stores both directions.
	if g.ArcCount() != 8 {
		t.Fatalf("ArcCount() = %d, want 8", g.ArcCount())
	}
	for n := 0; n < 4; n++ {
		if len(g.Successors(n)) != 2 {
			t.Errorf("node %d has %d successors, want 2", n, len(g.Successors(n)))
		}
	}
	if got := g.Cost(1, 0); got != 10 {
		t.Errorf("Cost(1, 0) = %d, want mirrored weight 10", got)
	}
}

func TestSparseDuplicates(t *testing.T) {
	g := NewSparseDirect[float64](3)
	g.AddArc(0, 1, 1.5)
	g.AddArc(0, 1, 9.5)

	// Duplicates inflate the count and both entries stay visible.
	if g.ArcCount() != 2 {
		t.Errorf("ArcCount() = %d, want 2", g.ArcCount())
	}
	if succ := g.Successors(0); len(succ) != 2 {
		t.Errorf("Successors(0) has %d entries, want 2", len(succ))
	}
	// First inserted entry wins on lookup.
	if got := g.Cost(0, 1); got != 1.5 {
		t.Errorf("Cost(0, 1) = %v, want 1.5", got)
	}
}

func TestSparseSuccessorsOrder(t *testing.T) {
	g := NewSparseDirect[int](4)
	g.AddArc(1, 3, 3)
	g.AddArc(1, 0, 0)
	g.AddArc(1, 2, 2)

	succ := g.Successors(1)
	wantDst := []int{3, 0, 2}
	if len(succ) != len(wantDst) {
		t.Fatalf("Successors(1) has %d entries, want %d", len(succ), len(wantDst))
	}
	for i, arc := range succ {
		if arc.Src != 1 || arc.Dst != wantDst[i] || arc.Weight != wantDst[i] {
			t.Errorf("entry %d = %+v, want {1 %d %d}", i, arc, wantDst[i], wantDst[i])
		}
	}
}

func TestSparseUpdateNodesWeight(t *testing.T) {
	g := NewSparseDirect[float64](5)
	g.UpdateAllNodesWeight(func(i int, _ float64) float64 { return 1.5 * float64(i) })

	g.VisitNodes(func(i int, w float64) {
		if want := 1.5 * float64(i); w != want {
			t.Errorf("node %d weight = %v, want %v", i, w, want)
		}
	})
}

func TestSparseUpdateArcsWeight(t *testing.T) {
	g := NewSparseDirect[float64](4)
	g.AddArc(0, 1, 1.0)
	g.AddArc(1, 2, 2.0)
	g.AddArc(2, 3, 3.0)
	g.AddArc(3, 0, 4.0)

	g.UpdateAllArcsWeight(func(_, _ int, w float64) float64 { return 2.0 * w })

	want := map[[2]int]float64{{0, 1}: 2.0, {1, 2}: 4.0, {2, 3}: 6.0, {3, 0}: 8.0}
	g.VisitArcs(func(src, dst int, w float64) {
		if w != want[[2]int{src, dst}] {
			t.Errorf("arc %d→%d weight = %v, want %v", src, dst, w, want[[2]int{src, dst}])
		}
	})
}

func TestSparseUpdateArcsCallbackArgs(t *testing.T) {
	// The callback must receive the destination index, not the position
	// of the entry in the adjacency list.
	g := NewSparseDirect[int](4)
	g.AddArc(1, 3, 0)

	g.UpdateAllArcsWeight(func(src, dst int, _ int) int {
		if src != 1 || dst != 3 {
			t.Errorf("callback got (%d, %d), want (1, 3)", src, dst)
		}
		return 7
	})
	if got := g.Cost(1, 3); got != 7 {
		t.Errorf("Cost(1, 3) = %d, want 7", got)
	}
}

func TestSparsePanics(t *testing.T) {
	tests := []struct {
		name string
		want string
		call func()
	}{
		{
			name: "NegativeCount",
			want: "negative node count",
			call: func() { NewSparseDirect[int](-1) },
		},
		{
			name: "SourceOutOfRange",
			want: "out of range",
			call: func() { NewSparseDirect[int](2).AddArc(2, 0, 1) },
		},
		{
			name: "DestinationOutOfRange",
			want: "out of range",
			call: func() { NewSparseDirect[int](2).AddArc(0, -1, 1) },
		},
		{
			name: "MissingArcCost",
			want: "no arc",
			call: func() { NewSparseDirect[int](2).Cost(0, 1) },
		},
		{
			name: "SuccessorsOutOfRange",
			want: "out of range",
			call: func() { NewSparseDirect[int](2).Successors(5) },
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
