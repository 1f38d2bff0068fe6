package canvas

import "image"

// Margin is the fixed gutter, in pixels, around the rendered bitmap. It
// leaves room for the width/height pseudo widgets and is applied consistently
// to both drawing and hit-testing: pointer events in control coordinates are
// shifted by -Margin before hitting the tree, and content rectangles are
// shifted by +Margin before drawing.
const Margin = 25

// Host is the capability interface the canvas requires from whatever widget
// or window embeds it. The canvas is a plain component; it never inherits
// from a toolkit type and talks to the toolkit only through this interface.
type Host interface {
	// RequestRedraw asks the host to schedule a repaint. Requests are
	// idempotent and may be coalesced.
	RequestRedraw()

	// MapContentToScreen converts a point in content coordinates to
	// absolute screen coordinates, accounting for Margin and the host
	// widget's own placement.
	MapContentToScreen(p Point) Point

	// Modifiers returns the modifier keys currently held.
	Modifiers() Modifiers
}

// Canvas displays the bitmap of the last layout rendering pass and handles
// selection interaction against its view-info tree.
//
// All methods must be called from the host's single UI thread. The canvas
// never blocks and performs no layout computation of its own; rendering
// results arrive fully computed via SetResult.
type Canvas struct {
	host    Host
	style   Style
	factory *NodeFactory

	// Last valid rendering state. root and img stay populated when an
	// invalid result arrives, so the stale frame can be shown dimmed.
	root  *ViewInfo
	img   image.Image
	valid bool

	selections *SelectionList

	hover     *ViewInfo
	hoverRect Rect
	hoverOK   bool

	altSel *alternateSelection

	showOutline  bool
	hoverRoot    bool
	altCycleRoot bool
}

// New creates a canvas bound to the given host. The host must not be nil.
func New(host Host, opts ...Option) *Canvas {
	c := &Canvas{
		host:         host,
		style:        DefaultStyle(),
		altCycleRoot: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.factory == nil {
		c.factory = NewNodeFactory()
	}
	c.selections = NewSelectionList(c.factory)
	return c
}

// SetResult installs the outcome of a layout rendering pass.
//
// For a successful result the view-info tree and bitmap are replaced, node
// proxies are rebuilt, and existing selections are re-resolved by key against
// the new tree: entries whose key is gone are dropped, the rest are rebuilt
// with fresh bounds in their previous order. For a failed result the previous
// valid tree and bitmap are kept for display (painted dimmed) and
// tree-dependent interactions are disabled. Either way the pending hover and
// alternate-selection cursor are discarded and a redraw is requested.
func (c *Canvas) SetResult(res RenderResult) {
	c.hover = nil
	c.hoverOK = false

	c.valid = res.Success && res.Root != nil

	if c.valid {
		c.root = NewViewInfoTree(res.Root)
		c.img = res.Image
		c.rebuildProxies()
		c.selections.reresolve(c.root)
	}

	c.altSel = nil

	c.host.RequestRedraw()
}

// rebuildProxies refreshes the proxy for every keyed node in the new tree and
// drops proxies whose key no longer occurs.
func (c *Canvas) rebuildProxies() {
	c.factory.beginRebuild()
	c.createProxies(c.root)
	c.factory.endRebuild()
}

func (c *Canvas) createProxies(vi *ViewInfo) {
	if vi == nil {
		return
	}
	if vi.Key() != nil {
		c.factory.Create(vi)
	}
	for _, child := range vi.Children() {
		c.createProxies(child)
	}
}

// IsResultValid reports whether the last SetResult carried a successful
// rendering. When false the canvas may still display an outdated bitmap and
// tree-dependent interactions are disabled.
func (c *Canvas) IsResultValid() bool { return c.valid }

// Root returns the root of the last valid view-info tree, or nil before the
// first valid result.
func (c *Canvas) Root() *ViewInfo { return c.root }

// Image returns the last valid rendering bitmap, or nil.
func (c *Canvas) Image() image.Image { return c.img }

// NodeFactory returns the factory holding the per-key node proxies.
func (c *Canvas) NodeFactory() *NodeFactory { return c.factory }

// Selections returns the current selection list. Callers must treat it as
// read-only; mutating interactions go through the pointer handlers.
func (c *Canvas) Selections() *SelectionList { return c.selections }

// HoverView returns the node currently hovered, or nil.
func (c *Canvas) HoverView() *ViewInfo { return c.hover }

// HoverRect returns the hover outline rectangle in control coordinates.
// The second result is false when nothing is hovered.
func (c *Canvas) HoverRect() (Rect, bool) { return c.hoverRect, c.hoverOK }

// ShowOutline reports whether the all-outlines overlay is enabled.
func (c *Canvas) ShowOutline() bool { return c.showOutline }

// SetShowOutline toggles the overlay that outlines every view.
func (c *Canvas) SetShowOutline(enabled bool) {
	c.showOutline = enabled
	c.host.RequestRedraw()
}

// FindAt resolves a point in content coordinates to the innermost view,
// or nil. Returns nil while no valid tree is installed.
func (c *Canvas) FindAt(x, y int) *ViewInfo {
	if !c.valid {
		return nil
	}
	return c.root.FindAt(x, y)
}

// ScreenBoundsOf returns the node's selection rectangle in absolute screen
// coordinates, using the host's mapping. The second result is false for a
// nil node.
func (c *Canvas) ScreenBoundsOf(vi *ViewInfo) (Rect, bool) {
	if vi == nil {
		return Rect{}, false
	}
	r := vi.SelectionRect()
	p := c.host.MapContentToScreen(Point{X: r.X, Y: r.Y})
	return Rect{X: p.X, Y: p.Y, W: r.W, H: r.H}, true
}

// SelectAll selects every view of the current tree in pre-order, root first.
// With no valid tree it just clears the selection.
func (c *Canvas) SelectAll() {
	c.selections.Clear()
	c.altSel = nil

	if c.valid {
		c.selections.SelectAll(c.root)
	}
	c.host.RequestRedraw()
}

// OnMouseMove updates the hover state. The root is not hovered unless the
// WithHoverRoot option enabled it; it is always under the cursor and
// outlining it adds nothing.
func (c *Canvas) OnMouseMove(ev PointerEvent) {
	if !c.valid {
		return
	}

	vi := c.root.FindAt(ev.X-Margin, ev.Y-Margin)
	if vi == c.root && !c.hoverRoot {
		vi = nil
	}

	needsUpdate := vi != c.hover
	c.hover = vi

	if vi == nil {
		c.hoverOK = false
	} else {
		c.hoverRect = vi.SelectionRect().Offset(Margin, Margin)
		c.hoverOK = true
	}

	if needsUpdate {
		c.host.RequestRedraw()
	}
}

// OnMouseDown is a reserved hook; selection happens on mouse up.
func (c *Canvas) OnMouseDown(ev PointerEvent) {}

// OnDoubleClick is a reserved hook.
func (c *Canvas) OnDoubleClick(ev PointerEvent) {}

// OnMouseUp performs selection. Shift toggles the pointed node in and out of
// a multi-selection. Alt arms or advances alternate-selection cycling through
// the candidates overlapping the click point (shift is ignored while alt is
// held). With no modifier the pointed node replaces the selection; clicking
// the sole selected node again changes nothing and triggers no redraw.
func (c *Canvas) OnMouseUp(ev PointerEvent) {
	if !c.valid {
		return
	}

	mods := c.host.Modifiers()
	isShift := mods.Has(ModShift)
	isAlt := mods.Has(ModAlt)

	x := ev.X - Margin
	y := ev.Y - Margin
	vi := c.root.FindAt(x, y)

	switch {
	case isShift && !isAlt:
		c.altSel = nil

		// Nothing under the cursor: likely a missed click, keep the
		// existing selection untouched.
		if vi != nil {
			c.selections.Toggle(vi)
			c.host.RequestRedraw()
		}

	case isAlt:
		if c.altSel == nil || c.altSel.originView() != vi {
			// Arm a fresh cycle at this origin.
			c.altSel = newAlternateSelection(vi, c.altCandidatesAt(x, y))

			// The candidates may be partially selected already;
			// cycling owns them now.
			c.selections.removeAll(c.altSel.candidates)

			if cur := c.altSel.current(); cur != nil {
				c.selections.insertFront(cur)
			}
		} else {
			// Same origin: step to the next candidate.
			c.selections.remove(c.altSel.current())
			if next := c.altSel.next(); next != nil {
				c.selections.insertFront(next)
			}
		}
		c.host.RequestRedraw()

	default:
		c.altSel = nil
		if c.selections.Replace(vi) {
			c.host.RequestRedraw()
		}
	}
}

// altCandidatesAt collects the cycle candidates overlapping a content point.
// The root leads the list unless the WithAltCycleRoot option disabled it.
func (c *Canvas) altCandidatesAt(x, y int) []*ViewInfo {
	candidates := c.root.FindOverlapping(x, y)
	if !c.altCycleRoot && len(candidates) > 0 && candidates[0] == c.root {
		candidates = candidates[1:]
	}
	return candidates
}

// Stale results are painted half-transparent.
const staleAlpha = 128

// Vertical distance between a selection rectangle and its name label.
const labelOffset = 12

// Paint fills the draw list for one repaint: the bitmap (dimmed when the
// result is stale), the optional all-outlines overlay, the hover outline,
// and the selection outlines with a distinguished parent outline when exactly
// one node is selected. The draw list is used only for the duration of the
// call; the canvas keeps no reference to it.
func (c *Canvas) Paint(dl *DrawList) {
	if c.img != nil {
		alpha := uint8(255)
		if !c.valid {
			alpha = staleAlpha
		}
		dl.AddImage(Margin, Margin, c.img, alpha)
	}

	if c.showOutline && c.root != nil {
		c.paintOutline(dl, c.root)
	}

	if c.hoverOK {
		dl.AddRectOutline(c.hoverRect, c.style.HoverColor, LineDot)
	}

	n := c.selections.Len()
	if n > 0 {
		if n == 1 {
			c.paintParentSelection(dl, c.selections.Primary())
		}
		for _, s := range c.selections.Items() {
			r := s.Rect().Offset(Margin, Margin)
			dl.AddRectOutline(r, c.style.SelectionColor, LineSolid)
			dl.AddLabel(r.X, r.Y-labelOffset, s.Name(), c.style.LabelColor)
		}
	}
}

func (c *Canvas) paintOutline(dl *DrawList, vi *ViewInfo) {
	dl.AddRectOutline(vi.Bounds().Offset(Margin, Margin), c.style.OutlineColor, LineDot)
	for _, child := range vi.Children() {
		c.paintOutline(dl, child)
	}
}

// paintParentSelection outlines the parent of a sole selection, showing the
// container the selected node sits in.
func (c *Canvas) paintParentSelection(dl *DrawList, s *Selection) {
	parent := s.Node().Parent()
	if parent == nil {
		return
	}
	dl.AddRectOutline(parent.SelectionRect().Offset(Margin, Margin), c.style.SelectionColor, LineDot)
}
