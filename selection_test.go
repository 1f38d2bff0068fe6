package canvas_test

import (
	"testing"

	"github.com/droidlayout/canvas"
)

func newListAndTree(t *testing.T) (*canvas.SelectionList, *canvas.ViewInfo) {
	t.Helper()
	return canvas.NewSelectionList(nil), canvas.NewViewInfoTree(testTree())
}

func TestToggleAppendsAndRemoves(t *testing.T) {
	list, root := newListAndTree(t)
	a := root.FindByKey("A")
	b := root.FindByKey("B")

	if removed := list.Toggle(a); removed {
		t.Error("first toggle should add, not remove")
	}
	list.Toggle(b)
	if list.Len() != 2 {
		t.Fatalf("len = %d, want 2", list.Len())
	}
	if list.Primary().Node() != a {
		t.Error("primary should be the first toggled node")
	}

	// Toggling again removes; a third toggle restores at the back.
	if removed := list.Toggle(a); !removed {
		t.Error("second toggle should remove")
	}
	if list.Contains(a) {
		t.Error("A should be gone")
	}
	list.Toggle(a)
	nodes := list.Nodes()
	if len(nodes) != 2 || nodes[0] != b || nodes[1] != a {
		t.Errorf("expected [B A] after re-toggle, got %d entries", len(nodes))
	}
}

func TestToggleNil(t *testing.T) {
	list, _ := newListAndTree(t)
	list.Toggle(nil)
	if list.Len() != 0 {
		t.Error("toggling nil should be ignored")
	}
}

func TestReplace(t *testing.T) {
	list, root := newListAndTree(t)
	a := root.FindByKey("A")
	b := root.FindByKey("B")

	if !list.Replace(a) {
		t.Error("replacing into an empty list is a change")
	}
	if list.Len() != 1 || list.Primary().Node() != a {
		t.Fatal("expected [A]")
	}

	if list.Replace(a) {
		t.Error("replacing a singleton with itself must report no change")
	}

	if !list.Replace(b) {
		t.Error("replacing with a different node is a change")
	}
	if list.Primary().Node() != b {
		t.Error("expected [B]")
	}

	list.Toggle(a)
	// Two entries now; replacing with one of them still collapses the list.
	if !list.Replace(b) {
		t.Error("collapsing a multi-selection is a change")
	}
	if list.Len() != 1 || list.Primary().Node() != b {
		t.Error("expected [B] after collapse")
	}
}

func TestReplaceNilClears(t *testing.T) {
	list, root := newListAndTree(t)
	list.Toggle(root.FindByKey("A"))

	if !list.Replace(nil) {
		t.Error("clearing a non-empty list is a change")
	}
	if list.Len() != 0 {
		t.Error("list should be empty")
	}
}

func TestSelectAllPreOrder(t *testing.T) {
	list, root := newListAndTree(t)
	list.Toggle(root.FindByKey("B")) // gets discarded

	list.SelectAll(root)
	nodes := list.Nodes()
	if len(nodes) != root.Count() {
		t.Fatalf("selected %d, tree has %d", len(nodes), root.Count())
	}
	if nodes[0] != root {
		t.Error("root should lead the pre-order selection")
	}
	seen := map[*canvas.ViewInfo]bool{}
	for _, vi := range nodes {
		if seen[vi] {
			t.Errorf("%q selected twice", vi.Name())
		}
		seen[vi] = true
	}
}

func TestPrimaryEmpty(t *testing.T) {
	list, _ := newListAndTree(t)
	if list.Primary() != nil {
		t.Error("empty list has no primary")
	}
	if list.Nodes() != nil {
		t.Error("empty list has no nodes")
	}
}

func TestClear(t *testing.T) {
	list, root := newListAndTree(t)
	list.SelectAll(root)
	list.Clear()
	if list.Len() != 0 {
		t.Error("list should be empty after Clear")
	}
}

func TestSelectionSnapshot(t *testing.T) {
	list, root := newListAndTree(t)
	a := root.FindByKey("A")
	list.Toggle(a)

	s := list.Primary()
	if s.Name() != a.Name() {
		t.Errorf("selection name = %q, want %q", s.Name(), a.Name())
	}
	if s.Rect() != a.SelectionRect() {
		t.Errorf("selection rect = %+v, want %+v", s.Rect(), a.SelectionRect())
	}
	if s.Proxy() != nil {
		t.Error("no factory, no proxy")
	}
}

func TestSelectionProxies(t *testing.T) {
	factory := canvas.NewNodeFactory()
	list := canvas.NewSelectionList(factory)
	root := canvas.NewViewInfoTree(testTree())

	list.Toggle(root.FindByKey("A"))
	p := list.Primary().Proxy()
	if p == nil {
		t.Fatal("expected a proxy for a keyed node")
	}
	if p.Key() != "A" {
		t.Errorf("proxy key = %v, want A", p.Key())
	}

	// Unkeyed nodes select fine but carry no proxy.
	anon := canvas.NewViewInfoTree(&canvas.RenderNode{Bounds: canvas.Rect{W: 10, H: 10}})
	list.Toggle(anon)
	if list.Items()[1].Proxy() != nil {
		t.Error("unkeyed node should have no proxy")
	}
}
