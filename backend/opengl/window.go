package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/droidlayout/canvas"
)

// WindowHost implements canvas.Host on top of a GLFW window and forwards its
// mouse events to an attached canvas.
type WindowHost struct {
	window *glfw.Window
	canvas *canvas.Canvas
	dirty  bool
}

// NewWindowHost wraps an existing GLFW window. Attach a canvas before
// entering the event loop.
func NewWindowHost(window *glfw.Window) *WindowHost {
	return &WindowHost{window: window, dirty: true}
}

// Attach binds the canvas and installs the mouse callbacks.
func (h *WindowHost) Attach(c *canvas.Canvas) {
	h.canvas = c
	h.window.SetCursorPosCallback(h.cursorPosCallback)
	h.window.SetMouseButtonCallback(h.mouseButtonCallback)
}

// RequestRedraw marks the window dirty. Repeated requests coalesce into one
// repaint.
func (h *WindowHost) RequestRedraw() {
	h.dirty = true
}

// Dirty reports whether a repaint was requested since the last TakeRedraw.
func (h *WindowHost) Dirty() bool {
	return h.dirty
}

// TakeRedraw consumes the pending redraw request, reporting whether there
// was one.
func (h *WindowHost) TakeRedraw() bool {
	d := h.dirty
	h.dirty = false
	return d
}

// MapContentToScreen converts content coordinates to screen coordinates using
// the window position and the canvas margin.
func (h *WindowHost) MapContentToScreen(p canvas.Point) canvas.Point {
	wx, wy := h.window.GetPos()
	return canvas.Point{X: wx + canvas.Margin + p.X, Y: wy + canvas.Margin + p.Y}
}

// Modifiers samples the modifier keys from the window.
func (h *WindowHost) Modifiers() canvas.Modifiers {
	var mods canvas.Modifiers
	if h.keyDown(glfw.KeyLeftShift) || h.keyDown(glfw.KeyRightShift) {
		mods |= canvas.ModShift
	}
	if h.keyDown(glfw.KeyLeftAlt) || h.keyDown(glfw.KeyRightAlt) {
		mods |= canvas.ModAlt
	}
	if h.keyDown(glfw.KeyLeftControl) || h.keyDown(glfw.KeyRightControl) {
		mods |= canvas.ModCtrl
	}
	if h.keyDown(glfw.KeyLeftSuper) || h.keyDown(glfw.KeyRightSuper) {
		mods |= canvas.ModSuper
	}
	return mods
}

func (h *WindowHost) keyDown(key glfw.Key) bool {
	return h.window.GetKey(key) == glfw.Press
}

func (h *WindowHost) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if h.canvas == nil {
		return
	}
	h.canvas.OnMouseMove(canvas.PointerEvent{X: int(xpos), Y: int(ypos)})
}

func (h *WindowHost) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if h.canvas == nil {
		return
	}
	b, ok := mapMouseButton(button)
	if !ok {
		return
	}
	x, y := w.GetCursorPos()
	ev := canvas.PointerEvent{X: int(x), Y: int(y), Button: b}

	switch action {
	case glfw.Press:
		h.canvas.OnMouseDown(ev)
	case glfw.Release:
		h.canvas.OnMouseUp(ev)
	}
}

func mapMouseButton(button glfw.MouseButton) (canvas.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return canvas.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return canvas.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return canvas.MouseButtonMiddle, true
	default:
		return 0, false
	}
}
