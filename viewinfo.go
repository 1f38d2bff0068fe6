package canvas

import "image"

// RenderResult is the output of one external layout rendering pass.
// An unsuccessful result carries no usable tree or image; the canvas then
// keeps displaying the previous valid result, dimmed.
type RenderResult struct {
	// Success reports whether the rendering pass produced a usable
	// bounds tree and bitmap.
	Success bool

	// Root is the root of the raw bounds tree computed by the bridge.
	// Nil when Success is false.
	Root *RenderNode

	// Image is the rendered layout bitmap. Nil when Success is false.
	Image image.Image
}

// RenderNode is one element of the raw bounds tree supplied by the rendering
// bridge. Bounds are absolute, in content coordinates.
type RenderNode struct {
	// Key identifies the element across rendering passes. It must be
	// comparable with ==. A nil key marks an element with no durable
	// identity (no proxy is created for it).
	Key any

	// Name is a short display name for the element.
	Name string

	// Bounds is the element's absolute bounding rectangle.
	Bounds Rect

	// Children, in document order.
	Children []*RenderNode
}

// Minimum hit-target size. Selection rectangles are padded out to this size
// so that thin or empty views remain clickable.
const selectionMinSize = 6

// ViewInfo is one node of the immutable per-frame snapshot the canvas hit-tests
// and selects against. A new tree is built wholesale from every valid
// RenderResult; nodes are never mutated afterwards. Selections hold on to
// nodes only until the next rebuild, after which they are re-resolved by key.
type ViewInfo struct {
	key           any
	name          string
	bounds        Rect
	selectionRect Rect
	parent        *ViewInfo
	children      []*ViewInfo
}

// NewViewInfoTree builds a ViewInfo snapshot from a raw bounds tree.
// Returns nil for a nil root.
func NewViewInfoTree(root *RenderNode) *ViewInfo {
	return newViewInfo(root, nil)
}

func newViewInfo(n *RenderNode, parent *ViewInfo) *ViewInfo {
	if n == nil {
		return nil
	}
	vi := &ViewInfo{
		key:           n.Key,
		name:          n.Name,
		bounds:        n.Bounds,
		selectionRect: expandSelectionRect(n.Bounds),
		parent:        parent,
	}
	if len(n.Children) > 0 {
		vi.children = make([]*ViewInfo, 0, len(n.Children))
		for _, c := range n.Children {
			if child := newViewInfo(c, vi); child != nil {
				vi.children = append(vi.children, child)
			}
		}
	}
	return vi
}

// expandSelectionRect pads the bounding rectangle out to the minimum
// hit-target size, keeping it centered.
func expandSelectionRect(r Rect) Rect {
	if r.W < selectionMinSize {
		r = r.Inflate((selectionMinSize-r.W+1)/2, 0)
	}
	if r.H < selectionMinSize {
		r = r.Inflate(0, (selectionMinSize-r.H+1)/2)
	}
	return r
}

// Key returns the node's identity key, the durable handle across tree
// rebuilds. May be nil.
func (vi *ViewInfo) Key() any { return vi.key }

// Name returns the node's display name.
func (vi *ViewInfo) Name() string { return vi.name }

// Bounds returns the node's absolute bounding rectangle in content
// coordinates.
func (vi *ViewInfo) Bounds() Rect { return vi.bounds }

// SelectionRect returns the possibly-expanded rectangle used for hit-testing
// and selection drawing. It always contains Bounds.
func (vi *ViewInfo) SelectionRect() Rect { return vi.selectionRect }

// Parent returns the node's parent, or nil for the root.
func (vi *ViewInfo) Parent() *ViewInfo { return vi.parent }

// Children returns the node's children in document order.
// The returned slice must not be modified.
func (vi *ViewInfo) Children() []*ViewInfo { return vi.children }

// Count returns the number of nodes in the subtree, including the receiver.
// A nil receiver counts zero.
func (vi *ViewInfo) Count() int {
	if vi == nil {
		return 0
	}
	n := 1
	for _, c := range vi.children {
		n += c.Count()
	}
	return n
}
