package canvas

// NodeProxy is the stable object handed to outside subsystems (rules,
// descriptors, outlines) for one rendered element. Proxies are created
// lazily and reused across tree rebuilds for the same identity key, with
// their bounds refreshed, so outside holders keep a valid reference while
// the underlying ViewInfo nodes are replaced wholesale.
type NodeProxy struct {
	key    any
	name   string
	bounds Rect
}

// Key returns the identity key the proxy is bound to.
func (p *NodeProxy) Key() any { return p.key }

// Name returns the element's display name as of the last rebuild.
func (p *NodeProxy) Name() string { return p.name }

// Bounds returns the element's bounding rectangle as of the last rebuild.
func (p *NodeProxy) Bounds() Rect { return p.bounds }

// NodeFactory creates and reuses NodeProxy objects keyed by node identity.
// Stale proxies, whose key no longer appears in the rebuilt tree, are dropped
// after each rebuild.
type NodeFactory struct {
	proxies *KeyStore[NodeProxy]
}

// NewNodeFactory creates an empty factory.
func NewNodeFactory() *NodeFactory {
	return &NodeFactory{proxies: NewKeyStore[NodeProxy]()}
}

// Create returns the proxy for the node's key, creating it on first use and
// refreshing its bounds and name otherwise. Returns nil for nodes without an
// identity key.
func (f *NodeFactory) Create(vi *ViewInfo) *NodeProxy {
	if vi == nil || vi.Key() == nil {
		return nil
	}
	p := f.proxies.Get(vi.Key(), NodeProxy{key: vi.Key()})
	p.name = vi.Name()
	p.bounds = vi.Bounds()
	return p
}

// Find returns the proxy for the key, or nil when none exists.
func (f *NodeFactory) Find(key any) *NodeProxy {
	if key == nil {
		return nil
	}
	return f.proxies.Lookup(key)
}

// Len returns the number of live proxies.
func (f *NodeFactory) Len() int {
	return f.proxies.Len()
}

// beginRebuild marks the start of a tree rebuild; proxies not re-created
// before endRebuild are dropped.
func (f *NodeFactory) beginRebuild() {
	f.proxies.NextFrame()
}

func (f *NodeFactory) endRebuild() {
	f.proxies.Cleanup()
}
