package canvas

// Selection wraps one selected view node together with the paint state cached
// for it. Entries are rebuilt whenever the view-info tree is replaced; only
// the node's key survives a rebuild.
type Selection struct {
	node  *ViewInfo
	name  string
	rect  Rect
	proxy *NodeProxy
}

func newSelection(vi *ViewInfo, factory *NodeFactory) *Selection {
	s := &Selection{
		node: vi,
		name: vi.Name(),
		rect: vi.SelectionRect(),
	}
	if factory != nil && vi.Key() != nil {
		s.proxy = factory.Create(vi)
	}
	return s
}

// Node returns the selected view node.
func (s *Selection) Node() *ViewInfo { return s.node }

// Name returns the selected node's display name.
func (s *Selection) Name() string { return s.name }

// Rect returns the selection rectangle in content coordinates.
func (s *Selection) Rect() Rect { return s.rect }

// Proxy returns the node proxy for the selected node, or nil when the node
// has no identity key.
func (s *Selection) Proxy() *NodeProxy { return s.proxy }

// SelectionList is the ordered set of current selections. The first entry is
// the primary selection. A node appears at most once.
type SelectionList struct {
	items   []*Selection
	factory *NodeFactory
}

// NewSelectionList creates an empty selection list. The factory may be nil;
// selections then carry no node proxies.
func NewSelectionList(factory *NodeFactory) *SelectionList {
	return &SelectionList{factory: factory}
}

// Len returns the number of selected nodes.
func (l *SelectionList) Len() int { return len(l.items) }

// Primary returns the first selection, or nil when the list is empty.
func (l *SelectionList) Primary() *Selection {
	if len(l.items) == 0 {
		return nil
	}
	return l.items[0]
}

// Items returns the selections in order. The returned slice must not be
// modified.
func (l *SelectionList) Items() []*Selection { return l.items }

// Nodes returns the selected nodes in order.
func (l *SelectionList) Nodes() []*ViewInfo {
	if len(l.items) == 0 {
		return nil
	}
	nodes := make([]*ViewInfo, len(l.items))
	for i, s := range l.items {
		nodes[i] = s.node
	}
	return nodes
}

// Contains returns true if the node is currently selected.
func (l *SelectionList) Contains(vi *ViewInfo) bool {
	for _, s := range l.items {
		if s.node == vi {
			return true
		}
	}
	return false
}

// Toggle removes the node if it is selected and reports true, otherwise
// appends it and reports false. A nil node is ignored.
func (l *SelectionList) Toggle(vi *ViewInfo) bool {
	if vi == nil {
		return false
	}
	if l.remove(vi) {
		return true
	}
	l.items = append(l.items, newSelection(vi, l.factory))
	return false
}

// Replace clears the list and selects the given node, or just clears when the
// node is nil. Reports whether the list changed observably; replacing a
// singleton selection with the same node is a no-op and reports false, which
// callers use to skip a redraw.
func (l *SelectionList) Replace(vi *ViewInfo) bool {
	if len(l.items) == 1 && vi != nil && l.items[0].node == vi {
		return false
	}
	l.items = l.items[:0]
	if vi != nil {
		l.items = append(l.items, newSelection(vi, l.factory))
	}
	return true
}

// SelectAll clears the list and selects the whole subtree in pre-order,
// root first.
func (l *SelectionList) SelectAll(root *ViewInfo) {
	l.items = l.items[:0]
	l.appendTree(root)
}

func (l *SelectionList) appendTree(vi *ViewInfo) {
	if vi == nil {
		return
	}
	l.items = append(l.items, newSelection(vi, l.factory))
	for _, c := range vi.Children() {
		l.appendTree(c)
	}
}

// Clear empties the list unconditionally.
func (l *SelectionList) Clear() {
	l.items = l.items[:0]
}

// remove deletes the entry for the node, reporting whether it was present.
func (l *SelectionList) remove(vi *ViewInfo) bool {
	if vi == nil {
		return false
	}
	for i, s := range l.items {
		if s.node == vi {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

// removeAll deletes the entries for every node in the given set.
func (l *SelectionList) removeAll(nodes []*ViewInfo) {
	if len(nodes) == 0 {
		return
	}
	kept := l.items[:0]
	for _, s := range l.items {
		if !containsNode(nodes, s.node) {
			kept = append(kept, s)
		}
	}
	l.items = kept
}

// insertFront prepends a selection for the node, making it primary.
func (l *SelectionList) insertFront(vi *ViewInfo) {
	l.items = append([]*Selection{newSelection(vi, l.factory)}, l.items...)
}

// reresolve rebuilds every entry against a freshly built tree, looking each
// one up by key. Entries whose key is nil or no longer exists are dropped
// silently; found ones are rebuilt with fresh bounds, preserving their
// relative order. Nil keys carry no identity, so such entries cannot be
// matched to a node of the new tree.
func (l *SelectionList) reresolve(root *ViewInfo) {
	kept := l.items[:0]
	for _, s := range l.items {
		key := s.node.Key()
		if key == nil {
			continue
		}
		if vi := root.FindByKey(key); vi != nil {
			kept = append(kept, newSelection(vi, l.factory))
		}
	}
	l.items = kept
}

func containsNode(nodes []*ViewInfo, vi *ViewInfo) bool {
	for _, n := range nodes {
		if n == vi {
			return true
		}
	}
	return false
}
