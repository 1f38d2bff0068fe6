// Example displays a synthetic layout rendering in a GLFW window and lets
// you interact with it:
//
//	click        select the view under the cursor
//	shift-click  toggle a view in a multi-selection
//	alt-click    cycle through overlapping views at the click point
//	O            toggle the all-outlines overlay
//	A            select every view
//
// The "rendering bridge" here is faked: the bitmap and bounds tree are built
// in buildResult below. In a real editor they come from the layout renderer.
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/droidlayout/canvas"
	"github.com/droidlayout/canvas/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "canvas example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("canvas renderer: %w", err)
	}
	defer renderer.Delete()

	host := opengl.NewWindowHost(window)
	c := canvas.New(host)
	host.Attach(c)

	// Install the fake rendering result.
	c.SetResult(buildResult())

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyO:
			c.SetShowOutline(!c.ShowOutline())
		case glfw.KeyA:
			c.SelectAll()
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		}
	})

	for !window.ShouldClose() {
		glfw.WaitEvents()

		if !host.TakeRedraw() {
			continue
		}

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		renderer.Resize(w, h)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := canvas.AcquireDrawList()
		c.Paint(dl)
		if err := renderer.Render(dl); err != nil {
			canvas.ReleaseDrawList(dl)
			return fmt.Errorf("render: %w", err)
		}
		canvas.ReleaseDrawList(dl)

		if p := c.Selections().Primary(); p != nil {
			if r, ok := c.ScreenBoundsOf(p.Node()); ok {
				fmt.Printf("primary selection %q at %+v\n", p.Name(), r)
			}
		}

		window.SwapBuffers()
	}

	return nil
}

// buildResult fakes one layout rendering pass: a 400x300 linear layout with
// two buttons and a label, drawn as flat colored blocks.
func buildResult() canvas.RenderResult {
	img := image.NewRGBA(image.Rect(0, 0, 400, 300))

	fill := func(r canvas.Rect, c color.RGBA) {
		draw.Draw(img, image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	rootRect := canvas.Rect{X: 0, Y: 0, W: 400, H: 300}
	buttonA := canvas.Rect{X: 20, Y: 20, W: 160, H: 80}
	buttonB := canvas.Rect{X: 220, Y: 20, W: 160, H: 80}
	label := canvas.Rect{X: 20, Y: 140, W: 360, H: 40}

	fill(rootRect, color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF})
	fill(buttonA, color.RGBA{R: 0x66, G: 0x99, B: 0xCC, A: 0xFF})
	fill(buttonB, color.RGBA{R: 0xCC, G: 0x99, B: 0x66, A: 0xFF})
	fill(label, color.RGBA{R: 0x99, G: 0xCC, B: 0x66, A: 0xFF})

	root := &canvas.RenderNode{
		Key:    "linear_layout",
		Name:   "LinearLayout",
		Bounds: rootRect,
		Children: []*canvas.RenderNode{
			{Key: "button_a", Name: "Button", Bounds: buttonA},
			{Key: "button_b", Name: "Button", Bounds: buttonB},
			{Key: "label", Name: "TextView", Bounds: label},
		},
	}

	return canvas.RenderResult{Success: true, Root: root, Image: img}
}
