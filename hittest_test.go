package canvas_test

import (
	"fmt"
	"testing"

	"github.com/droidlayout/canvas"
)

// overlapTree builds R(0,0,100,100) containing A(0,0,60,60) with nested
// C(0,0,30,30), plus sibling B(0,0,40,40) overlapping A.
func overlapTree() *canvas.ViewInfo {
	return canvas.NewViewInfoTree(&canvas.RenderNode{
		Key:    "R",
		Name:   "Root",
		Bounds: canvas.Rect{X: 0, Y: 0, W: 100, H: 100},
		Children: []*canvas.RenderNode{
			{
				Key:    "A",
				Name:   "A",
				Bounds: canvas.Rect{X: 0, Y: 0, W: 60, H: 60},
				Children: []*canvas.RenderNode{
					{Key: "C", Name: "C", Bounds: canvas.Rect{X: 0, Y: 0, W: 30, H: 30}},
				},
			},
			{Key: "B", Name: "B", Bounds: canvas.Rect{X: 0, Y: 0, W: 40, H: 40}},
		},
	})
}

func TestFindAtOutsideRoot(t *testing.T) {
	root := overlapTree()
	for _, p := range []canvas.Point{{X: -1, Y: 50}, {X: 50, Y: -1}, {X: 100, Y: 50}, {X: 50, Y: 100}} {
		if vi := root.FindAt(p.X, p.Y); vi != nil {
			t.Errorf("FindAt(%d,%d) = %q, want nil", p.X, p.Y, vi.Name())
		}
	}
}

func TestFindAtInnermost(t *testing.T) {
	root := overlapTree()

	tests := []struct {
		x, y int
		want string
	}{
		{10, 10, "C"}, // inside C, A, B and R; deepest of the first matching branch wins
		{35, 35, "A"}, // past C, inside A (and B, but A is tested first)
		{50, 50, "A"},
		{80, 80, "Root"}, // only the root contains it
	}
	for _, tt := range tests {
		vi := root.FindAt(tt.x, tt.y)
		if vi == nil || vi.Name() != tt.want {
			t.Errorf("FindAt(%d,%d) = %v, want %q", tt.x, tt.y, vi, tt.want)
		}
	}
}

func TestFindAtNilTree(t *testing.T) {
	var root *canvas.ViewInfo
	if root.FindAt(0, 0) != nil {
		t.Error("nil tree should miss")
	}
}

func TestFindByKey(t *testing.T) {
	root := overlapTree()

	if vi := root.FindByKey("C"); vi == nil || vi.Name() != "C" {
		t.Errorf("FindByKey(C) = %v", vi)
	}
	if vi := root.FindByKey("R"); vi != root {
		t.Errorf("FindByKey(R) = %v, want root", vi)
	}
	if vi := root.FindByKey("missing"); vi != nil {
		t.Errorf("FindByKey(missing) = %v, want nil", vi)
	}

	var empty *canvas.ViewInfo
	if empty.FindByKey("R") != nil {
		t.Error("nil tree should miss")
	}
}

func TestFindOverlappingOrder(t *testing.T) {
	root := overlapTree()

	// (10,10) is inside every node. Order is root, then the matching
	// siblings A and B, then A's matching descendant C.
	got := root.FindOverlapping(10, 10)
	want := []string{"Root", "A", "B", "C"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i, vi := range got {
		if vi.Name() != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, vi.Name(), want[i])
		}
	}
}

func TestFindOverlappingExcludesNonContaining(t *testing.T) {
	root := overlapTree()

	// (50,50) misses B (40x40) and C (30x30).
	got := root.FindOverlapping(50, 50)
	want := []string{"Root", "A"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(got), len(want))
	}
	for i, vi := range got {
		if vi.Name() != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, vi.Name(), want[i])
		}
	}
}

func TestFindOverlappingMiss(t *testing.T) {
	root := overlapTree()
	if got := root.FindOverlapping(200, 200); got != nil {
		t.Errorf("expected no candidates outside the root, got %d", len(got))
	}
}

func TestSelectionRectExpansion(t *testing.T) {
	root := canvas.NewViewInfoTree(&canvas.RenderNode{
		Key:    "thin",
		Bounds: canvas.Rect{X: 50, Y: 50, W: 2, H: 0},
	})

	r := root.SelectionRect()
	if r.W < 6 || r.H < 6 {
		t.Errorf("selection rect %+v not padded to the minimum size", r)
	}
	if !r.ContainsPoint(canvas.Point{X: 50, Y: 50}) {
		t.Errorf("selection rect %+v no longer covers the bounds origin", r)
	}
	if root.Bounds() != (canvas.Rect{X: 50, Y: 50, W: 2, H: 0}) {
		t.Error("Bounds must stay unexpanded")
	}

	// Hit-testing uses the expanded rectangle.
	if root.FindAt(51, 51) != root {
		t.Error("thin view should be clickable through its padded rect")
	}
}

// deepTree builds a perfectly nested chain for the walker benchmarks.
func deepTree(depth int) *canvas.ViewInfo {
	root := &canvas.RenderNode{Key: "n0", Bounds: canvas.Rect{W: 1000, H: 1000}}
	cur := root
	for i := 1; i < depth; i++ {
		child := &canvas.RenderNode{
			Key:    fmt.Sprintf("n%d", i),
			Bounds: canvas.Rect{X: i, Y: i, W: 1000 - 2*i, H: 1000 - 2*i},
		}
		cur.Children = []*canvas.RenderNode{child}
		cur = child
	}
	return canvas.NewViewInfoTree(root)
}

func BenchmarkFindAt(b *testing.B) {
	root := deepTree(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.FindAt(500, 500)
	}
}

func BenchmarkFindOverlapping(b *testing.B) {
	root := deepTree(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root.FindOverlapping(500, 500)
	}
}
