package canvas

// FindAt returns the innermost node whose selection rectangle contains the
// given content-coordinate point, testing children before concluding that the
// receiver itself is the match. Returns nil when no node contains the point.
// Safe to call on a nil receiver (empty tree).
func (vi *ViewInfo) FindAt(x, y int) *ViewInfo {
	if vi == nil || !vi.selectionRect.Contains(x, y) {
		return nil
	}

	// Prefer the deepest matching child.
	for _, child := range vi.children {
		if v := child.FindAt(x, y); v != nil {
			return v
		}
	}

	// No child matched; the receiver is the innermost match.
	return vi
}

// FindByKey returns the first node in the subtree whose identity key equals
// the given key, depth-first, or nil if absent. Used to re-resolve selections
// against a freshly rebuilt tree. Safe to call on a nil receiver.
func (vi *ViewInfo) FindByKey(key any) *ViewInfo {
	if vi == nil {
		return nil
	}
	if vi.key == key {
		return vi
	}
	for _, child := range vi.children {
		if v := child.FindByKey(key); v != nil {
			return v
		}
	}
	return nil
}

// FindOverlapping collects every node whose selection rectangle contains the
// point, ordered for alternate-selection cycling: the receiver first (if it
// contains the point), then at each level all matching siblings before
// descending into the matching children. Returns nil when nothing matches.
// Safe to call on a nil receiver.
func (vi *ViewInfo) FindOverlapping(x, y int) []*ViewInfo {
	if vi == nil {
		return nil
	}
	var out []*ViewInfo
	if vi.selectionRect.Contains(x, y) {
		out = append(out, vi)
	}
	return vi.appendOverlappingChildren(x, y, out)
}

func (vi *ViewInfo) appendOverlappingChildren(x, y int, out []*ViewInfo) []*ViewInfo {
	// Siblings at this level first, then recurse. This keeps the cycle
	// order by containment rather than strict depth-first.
	for _, child := range vi.children {
		if child.selectionRect.Contains(x, y) {
			out = append(out, child)
		}
	}
	for _, child := range vi.children {
		if child.selectionRect.Contains(x, y) {
			out = child.appendOverlappingChildren(x, y, out)
		}
	}
	return out
}
