package canvas

// Option configures a Canvas instance.
type Option func(*Canvas)

// WithStyle sets the canvas colors.
func WithStyle(style Style) Option {
	return func(c *Canvas) { c.style = style }
}

// WithHoverRoot controls whether the root node can be hovered. The default
// is false: the root is always under the cursor and hovering it carries no
// information.
func WithHoverRoot(enabled bool) Option {
	return func(c *Canvas) { c.hoverRoot = enabled }
}

// WithAltCycleRoot controls whether the root node takes part in alternate
// selection cycling. The default is true: the root is the first cycle
// candidate when it contains the click point.
func WithAltCycleRoot(enabled bool) Option {
	return func(c *Canvas) { c.altCycleRoot = enabled }
}

// WithNodeFactory sets a shared node-proxy factory. By default each canvas
// owns its own factory.
func WithNodeFactory(factory *NodeFactory) Option {
	return func(c *Canvas) { c.factory = factory }
}
