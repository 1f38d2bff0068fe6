// Package ebitengine provides an Ebitengine host for the canvas package.
package ebitengine

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/droidlayout/canvas"
)

// Game drives a canvas from an Ebitengine game loop. It implements both
// ebiten.Game and canvas.Host: Update forwards pointer and keyboard input,
// Draw translates the canvas draw list to screen primitives.
//
// Ebitengine repaints every frame anyway; the redraw flag only spares the
// draw-list rebuild on idle frames.
type Game struct {
	canvas *canvas.Canvas

	width  int
	height int

	// Draw list retained across frames; rebuilt only when dirty.
	dirty    bool
	drawList canvas.DrawList

	// GPU copy of the current canvas bitmap. Each rendering result swaps
	// the bitmap wholesale, so only one copy is kept; the previous one is
	// deallocated when the bitmap changes.
	bitmapSrc image.Image
	bitmap    *ebiten.Image

	lastX, lastY int
}

// NewGame creates a host with the given logical screen size. Bind the canvas
// with Attach before running the game.
func NewGame(width, height int) *Game {
	return &Game{
		width:  width,
		height: height,
		dirty:  true,
		lastX:  -1,
		lastY:  -1,
	}
}

// Attach binds the canvas this game drives.
func (g *Game) Attach(c *canvas.Canvas) {
	g.canvas = c
}

// RequestRedraw implements canvas.Host.
func (g *Game) RequestRedraw() {
	g.dirty = true
}

// MapContentToScreen implements canvas.Host using the window position and
// the canvas margin.
func (g *Game) MapContentToScreen(p canvas.Point) canvas.Point {
	wx, wy := ebiten.WindowPosition()
	return canvas.Point{X: wx + canvas.Margin + p.X, Y: wy + canvas.Margin + p.Y}
}

// Modifiers implements canvas.Host.
func (g *Game) Modifiers() canvas.Modifiers {
	var mods canvas.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= canvas.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= canvas.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= canvas.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= canvas.ModSuper
	}
	return mods
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.canvas == nil {
		return nil
	}

	mx, my := ebiten.CursorPosition()
	if mx != g.lastX || my != g.lastY {
		g.lastX, g.lastY = mx, my
		g.canvas.OnMouseMove(canvas.PointerEvent{X: mx, Y: my})
	}

	for _, b := range []ebiten.MouseButton{
		ebiten.MouseButtonLeft,
		ebiten.MouseButtonRight,
		ebiten.MouseButtonMiddle,
	} {
		ev := canvas.PointerEvent{X: mx, Y: my, Button: mapMouseButton(b)}
		if inpututil.IsMouseButtonJustPressed(b) {
			g.canvas.OnMouseDown(ev)
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			g.canvas.OnMouseUp(ev)
		}
	}

	// Keyboard: Ctrl+A selects all, O toggles the outline overlay.
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.canvas.SelectAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.canvas.SetShowOutline(!g.canvas.ShowOutline())
	}

	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF})
	if g.canvas == nil {
		return
	}

	if g.dirty {
		g.dirty = false
		g.drawList.Clear()
		g.canvas.Paint(&g.drawList)
	}

	for _, cmd := range g.drawList.Cmds {
		switch cmd.Kind {
		case canvas.CmdImage:
			g.drawImage(screen, cmd)
		case canvas.CmdOutline:
			drawOutline(screen, cmd)
		case canvas.CmdLabel:
			ebitenutil.DebugPrintAt(screen, cmd.Text, cmd.Rect.X, cmd.Rect.Y)
		}
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) drawImage(screen *ebiten.Image, cmd canvas.DrawCmd) {
	if cmd.Image != g.bitmapSrc {
		if g.bitmap != nil {
			g.bitmap.Deallocate()
		}
		g.bitmapSrc = cmd.Image
		g.bitmap = ebiten.NewImageFromImage(cmd.Image)
	}
	img := g.bitmap

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(cmd.Rect.X), float64(cmd.Rect.Y))
	if cmd.Alpha < 255 {
		op.ColorScale.ScaleAlpha(float32(cmd.Alpha) / 255)
	}
	screen.DrawImage(img, op)
}

func drawOutline(screen *ebiten.Image, cmd canvas.DrawCmd) {
	clr := unpack(cmd.Color)
	x := float32(cmd.Rect.X)
	y := float32(cmd.Rect.Y)
	w := float32(cmd.Rect.W)
	h := float32(cmd.Rect.H)

	if cmd.Style == canvas.LineSolid {
		vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
		return
	}

	// Dotted: stroke each edge as short dashes.
	drawDashed(screen, x, y, x+w, y, clr)
	drawDashed(screen, x+w, y, x+w, y+h, clr)
	drawDashed(screen, x+w, y+h, x, y+h, clr)
	drawDashed(screen, x, y+h, x, y, clr)
}

func drawDashed(screen *ebiten.Image, x1, y1, x2, y2 float32, clr color.Color) {
	const dash = 4
	const gap = 3

	dx := x2 - x1
	dy := y2 - y1
	length := absf(dx) + absf(dy) // Edges are axis-aligned
	if length == 0 {
		return
	}
	ux := dx / length
	uy := dy / length

	for off := float32(0); off < length; off += dash + gap {
		end := off + dash
		if end > length {
			end = length
		}
		vector.StrokeLine(screen, x1+ux*off, y1+uy*off, x1+ux*end, y1+uy*end, 1, clr, false)
	}
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func mapMouseButton(b ebiten.MouseButton) canvas.MouseButton {
	switch b {
	case ebiten.MouseButtonRight:
		return canvas.MouseButtonRight
	case ebiten.MouseButtonMiddle:
		return canvas.MouseButtonMiddle
	default:
		return canvas.MouseButtonLeft
	}
}

func unpack(c uint32) color.Color {
	r, g, b, a := canvas.UnpackRGBA(c)
	return color.RGBA{R: r, G: g, B: b, A: a}
}
