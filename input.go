package canvas

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Modifiers is a bitmask of modifier keys held during an interaction.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModAlt
	ModCtrl
	ModSuper
)

// Has returns true if all the given modifiers are set.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// PointerEvent carries a pointer position in control coordinates plus the
// button involved, if any. Modifier keys are not part of the event; the
// canvas samples them from its Host when an interaction needs them.
type PointerEvent struct {
	X, Y   int
	Button MouseButton
}

// Pos returns the event position as a Point.
func (e PointerEvent) Pos() Point {
	return Point{X: e.X, Y: e.Y}
}
