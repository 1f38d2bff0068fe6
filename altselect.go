package canvas

// alternateSelection is the armed state of alt-click cycling: the node
// originally under the cursor, the ordered list of candidates overlapping the
// click point, and the cycle position. A fresh one is created whenever the
// origin node changes; plain or shift clicks discard it.
type alternateSelection struct {
	origin     *ViewInfo
	candidates []*ViewInfo
	index      int
}

func newAlternateSelection(origin *ViewInfo, candidates []*ViewInfo) *alternateSelection {
	return &alternateSelection{origin: origin, candidates: candidates}
}

// originView returns the node that was under the cursor when the cursor was
// armed. May be nil when the alt-click hit empty space.
func (a *alternateSelection) originView() *ViewInfo {
	return a.origin
}

// current returns the candidate at the cycle position, or nil when there are
// no candidates.
func (a *alternateSelection) current() *ViewInfo {
	if len(a.candidates) == 0 {
		return nil
	}
	return a.candidates[a.index]
}

// next advances the cycle position, wrapping around, and returns the new
// current candidate.
func (a *alternateSelection) next() *ViewInfo {
	if len(a.candidates) == 0 {
		return nil
	}
	a.index = (a.index + 1) % len(a.candidates)
	return a.candidates[a.index]
}
