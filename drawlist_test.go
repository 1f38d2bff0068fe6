package canvas_test

import (
	"image"
	"testing"

	"github.com/droidlayout/canvas"
)

func TestDrawListPoolReuse(t *testing.T) {
	dl := canvas.AcquireDrawList()
	dl.AddImage(0, 0, image.NewRGBA(image.Rect(0, 0, 4, 4)), 255)
	dl.AddRectOutline(canvas.Rect{W: 10, H: 10}, canvas.ColorRed, canvas.LineSolid)
	canvas.ReleaseDrawList(dl)

	dl2 := canvas.AcquireDrawList()
	defer canvas.ReleaseDrawList(dl2)
	if len(dl2.Cmds) != 0 {
		t.Errorf("acquired list has %d stale commands", len(dl2.Cmds))
	}
}

func TestDrawListClearDropsImages(t *testing.T) {
	dl := canvas.AcquireDrawList()
	defer canvas.ReleaseDrawList(dl)

	dl.AddImage(0, 0, image.NewRGBA(image.Rect(0, 0, 4, 4)), 255)
	cmds := dl.Cmds
	dl.Clear()

	if len(dl.Cmds) != 0 {
		t.Error("Clear should empty the list")
	}
	if cmds[:1][0].Image != nil {
		t.Error("Clear should drop image references from the backing array")
	}
}

func TestAddImageRect(t *testing.T) {
	dl := canvas.AcquireDrawList()
	defer canvas.ReleaseDrawList(dl)

	dl.AddImage(25, 25, image.NewRGBA(image.Rect(0, 0, 80, 60)), 128)
	if len(dl.Cmds) != 1 {
		t.Fatal("expected one command")
	}
	cmd := dl.Cmds[0]
	if cmd.Kind != canvas.CmdImage || cmd.Alpha != 128 {
		t.Errorf("cmd = %+v", cmd)
	}
	want := canvas.Rect{X: 25, Y: 25, W: 80, H: 60}
	if cmd.Rect != want {
		t.Errorf("image rect = %+v, want %+v", cmd.Rect, want)
	}

	dl.AddImage(0, 0, nil, 255)
	if len(dl.Cmds) != 1 {
		t.Error("nil image should be skipped")
	}
}

func TestAddRectOutlineSkipsDegenerate(t *testing.T) {
	dl := canvas.AcquireDrawList()
	defer canvas.ReleaseDrawList(dl)

	dl.AddRectOutline(canvas.Rect{W: 10, H: 10}, 0x0000FF00, canvas.LineSolid) // fully transparent
	dl.AddRectOutline(canvas.Rect{}, canvas.ColorRed, canvas.LineSolid)        // empty
	if len(dl.Cmds) != 0 {
		t.Errorf("expected degenerate outlines to be skipped, got %d", len(dl.Cmds))
	}
}

func TestAddLabelSkipsEmpty(t *testing.T) {
	dl := canvas.AcquireDrawList()
	defer canvas.ReleaseDrawList(dl)

	dl.AddLabel(10, 10, "", canvas.ColorWhite)
	if len(dl.Cmds) != 0 {
		t.Error("empty label should be skipped")
	}

	dl.AddLabel(10, 10, "Button", canvas.ColorWhite)
	if len(dl.Cmds) != 1 || dl.Cmds[0].Text != "Button" {
		t.Errorf("cmds = %+v", dl.Cmds)
	}
}
