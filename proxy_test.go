package canvas_test

import (
	"image"
	"testing"

	"github.com/droidlayout/canvas"
)

func TestProxyReuseAcrossResults(t *testing.T) {
	c, _ := newTestCanvas(t)
	factory := c.NodeFactory()

	if factory.Len() != 3 {
		t.Fatalf("proxies = %d, want 3", factory.Len())
	}
	p := factory.Find("A")
	if p == nil {
		t.Fatal("expected a proxy for A")
	}

	// Same key in the next result: same proxy object, fresh bounds.
	moved := testTree()
	moved.Children[0].Bounds = canvas.Rect{X: 10, Y: 60, W: 30, H: 30}
	moved.Children[0].Name = "A2"
	c.SetResult(canvas.RenderResult{Success: true, Root: moved, Image: image.NewRGBA(image.Rect(0, 0, 100, 100))})

	if factory.Find("A") != p {
		t.Error("proxy should be reused while its key persists")
	}
	if p.Bounds() != (canvas.Rect{X: 10, Y: 60, W: 30, H: 30}) {
		t.Errorf("proxy bounds = %+v, want refreshed", p.Bounds())
	}
	if p.Name() != "A2" {
		t.Errorf("proxy name = %q, want refreshed", p.Name())
	}

	// Key gone: proxy dropped.
	gone := testTree()
	gone.Children = gone.Children[1:]
	c.SetResult(canvas.RenderResult{Success: true, Root: gone, Image: image.NewRGBA(image.Rect(0, 0, 100, 100))})

	if factory.Find("A") != nil {
		t.Error("proxy for a vanished key should be dropped")
	}
	if factory.Len() != 2 {
		t.Errorf("proxies = %d, want 2", factory.Len())
	}
}

func TestProxiesSurviveInvalidResult(t *testing.T) {
	c, _ := newTestCanvas(t)
	p := c.NodeFactory().Find("A")

	c.SetResult(canvas.RenderResult{Success: false})

	if c.NodeFactory().Find("A") != p {
		t.Error("invalid results must not rebuild or drop proxies")
	}
}

func TestFactoryCreateNil(t *testing.T) {
	factory := canvas.NewNodeFactory()
	if factory.Create(nil) != nil {
		t.Error("nil node yields no proxy")
	}

	anon := canvas.NewViewInfoTree(&canvas.RenderNode{Bounds: canvas.Rect{W: 10, H: 10}})
	if factory.Create(anon) != nil {
		t.Error("unkeyed node yields no proxy")
	}
	if factory.Find(nil) != nil {
		t.Error("nil key finds nothing")
	}
	if factory.Len() != 0 {
		t.Errorf("len = %d, want 0", factory.Len())
	}
}

func TestWithNodeFactoryShared(t *testing.T) {
	factory := canvas.NewNodeFactory()
	host := &mockHost{}
	c := canvas.New(host, canvas.WithNodeFactory(factory))
	c.SetResult(testResult())

	if c.NodeFactory() != factory {
		t.Error("canvas should use the supplied factory")
	}
	if factory.Find("R") == nil {
		t.Error("supplied factory should receive the tree's proxies")
	}
}
