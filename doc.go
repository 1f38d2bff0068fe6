/*
Package canvas implements the interaction core of a layout editor canvas.

The canvas displays the bitmap produced by an external layout rendering pass,
maps pointer positions back to the rendered view hierarchy, and manages
single, multiple and cyclic selection. It performs no rendering or layout
computation of its own: a rendering bridge periodically delivers a complete
RenderResult (success flag, bounds tree, bitmap) and the canvas consumes it
wholesale.

# Quick Start

	host := myHost{}                       // implements canvas.Host
	c := canvas.New(host)

	// A rendering pass finished:
	c.SetResult(canvas.RenderResult{
	    Success: true,
	    Root:    boundsTree,
	    Image:   bitmap,
	})

	// Forward pointer events from the toolkit:
	c.OnMouseMove(canvas.PointerEvent{X: x, Y: y})
	c.OnMouseUp(canvas.PointerEvent{X: x, Y: y, Button: canvas.MouseButtonLeft})

	// Repaint when the host asked for a redraw:
	dl := canvas.AcquireDrawList()
	c.Paint(dl)
	render(dl) // translate dl.Cmds with your toolkit
	canvas.ReleaseDrawList(dl)

# Selection Model

A plain click selects the innermost view under the cursor, replacing the
current selection; clicking the sole selected view again is a no-op and
triggers no redraw. Shift-click toggles the pointed view in and out of a
multi-selection. Alt-click cycles through all views overlapping the click
point: the first alt-click arms a cycle (root first, then containment order)
and each further alt-click at the same origin steps to the next candidate,
without disturbing unrelated selections. Plain or shift clicks disarm the
cycle.

# Frames and Identity

The view-info tree is an immutable per-frame snapshot. Every valid
RenderResult replaces it wholesale; selections survive the swap through their
identity keys, which are looked up in the new tree (stale entries are dropped
silently, found ones get fresh bounds). Node proxies handed to outside
subsystems are reused across frames for the same key.

A failed rendering pass is a normal variant, not an error: the previous
bitmap stays on screen painted half-transparent and tree-dependent
interactions are disabled until the next valid result.

# Hosts

The canvas is a plain component, not a widget subclass. Toolkit integration
happens through the small Host capability interface (redraw requests,
content-to-screen mapping, modifier keys) and by translating DrawList
commands. Ready-made hosts for GLFW/OpenGL and Ebitengine live under
backend/.
*/
package canvas
