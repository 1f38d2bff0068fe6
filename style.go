package canvas

// Style holds the colors the canvas paints with.
type Style struct {
	// SelectionColor outlines selected nodes.
	SelectionColor uint32

	// HoverColor outlines the node under the cursor.
	HoverColor uint32

	// OutlineColor is used by the show-all-outlines overlay.
	OutlineColor uint32

	// LabelColor is used for selection name labels.
	LabelColor uint32
}

// DefaultStyle returns the default canvas colors: red selection, orange
// hover, green outlines.
func DefaultStyle() Style {
	return Style{
		SelectionColor: ColorRed,
		HoverColor:     RGBA(0xFF, 0x99, 0x00, 0xFF),
		OutlineColor:   ColorGreen,
		LabelColor:     ColorRed,
	}
}
