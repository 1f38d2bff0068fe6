package canvas

import (
	"image"
	"sync"
)

// CmdKind identifies the kind of a draw command.
type CmdKind uint8

const (
	// CmdImage places the layout bitmap.
	CmdImage CmdKind = iota
	// CmdOutline draws a rectangle outline.
	CmdOutline
	// CmdLabel draws a short text label. Backends without text support may
	// skip these.
	CmdLabel
)

// LineStyle selects the stroke style of an outline.
type LineStyle uint8

const (
	LineSolid LineStyle = iota
	LineDot
)

// DrawCmd is a single draw request. All coordinates are in control
// coordinates (the content margin is already applied by the canvas).
type DrawCmd struct {
	Kind  CmdKind
	Rect  Rect
	Color uint32
	Style LineStyle

	// Image and Alpha are set for CmdImage. Alpha 255 is opaque. Backends
	// that cannot blend must fall back to drawing the image fully opaque
	// rather than failing.
	Image image.Image
	Alpha uint8

	// Text is set for CmdLabel; Rect.X/Rect.Y give the anchor.
	Text string
}

// drawListPool reuses DrawList buffers. The canvas paints a full list every
// redraw, so reusing the command buffer avoids per-paint allocations.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{Cmds: make([]DrawCmd, 0, 64)}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for one paint pass. It is handed to
// Canvas.Paint for the duration of a single call and never stored by the
// canvas.
type DrawList struct {
	Cmds []DrawCmd
}

// Clear resets the DrawList, retaining allocated capacity.
func (dl *DrawList) Clear() {
	for i := range dl.Cmds {
		dl.Cmds[i].Image = nil // Drop image references so the pool doesn't pin them
	}
	dl.Cmds = dl.Cmds[:0]
}

// AddImage places an image at (x, y) with the given alpha (255 = opaque).
func (dl *DrawList) AddImage(x, y int, img image.Image, alpha uint8) {
	if img == nil {
		return
	}
	b := img.Bounds()
	dl.Cmds = append(dl.Cmds, DrawCmd{
		Kind:  CmdImage,
		Rect:  Rect{X: x, Y: y, W: b.Dx(), H: b.Dy()},
		Image: img,
		Alpha: alpha,
	})
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, style LineStyle) {
	if color&0xFF000000 == 0 || r.Empty() {
		return
	}
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdOutline, Rect: r, Color: color, Style: style})
}

// AddLabel draws a text label anchored at (x, y).
func (dl *DrawList) AddLabel(x, y int, text string, color uint32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdLabel, Rect: Rect{X: x, Y: y}, Color: color, Text: text})
}
