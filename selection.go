package quickmenu

// Selections remembers the last highlighted selectable index per menu
// identifier. Entries are keyed by menu ID rather than stack position, so
// returning to a previously visited menu restores its cursor even when the
// path differs. Entries live until Reset.
type Selections struct {
	indices map[string]int
	wrap    bool
}

// NewSelections creates an empty tracker. When wrap is true, movement past
// either end of a menu wraps to the opposite end; otherwise it clamps.
func NewSelections(wrap bool) *Selections {
	return &Selections{indices: make(map[string]int), wrap: wrap}
}

// Current returns the tracked index for the menu, or 0 when unseen.
func (s *Selections) Current(menuID string) int {
	return s.indices[menuID]
}

// Move shifts the tracked index by delta within [0, count). Movement on a
// menu with no selectable entries is a no-op. Reports whether the index
// changed.
func (s *Selections) Move(menuID string, delta, count int) bool {
	if count <= 0 {
		return false
	}
	cur := s.indices[menuID]
	if cur < 0 || cur >= count {
		cur = 0
	}
	next := cur + delta
	if s.wrap {
		next = ((next % count) + count) % count
	} else {
		if next < 0 {
			next = 0
		}
		if next >= count {
			next = count - 1
		}
	}
	s.indices[menuID] = next
	return next != cur
}

// Set stores an explicit index, e.g. from pointer hover. Out-of-range values
// are clamped into [0, count). Reports whether the index changed.
func (s *Selections) Set(menuID string, index, count int) bool {
	if count <= 0 {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index >= count {
		index = count - 1
	}
	cur, ok := s.indices[menuID]
	s.indices[menuID] = index
	return !ok || cur != index
}

// Clamp reconciles the tracked index against a new selectable count, for use
// after a menu is re-resolved and its entries may have changed.
func (s *Selections) Clamp(menuID string, count int) {
	cur, ok := s.indices[menuID]
	if !ok {
		return
	}
	if count <= 0 {
		s.indices[menuID] = 0
		return
	}
	if cur < 0 {
		s.indices[menuID] = 0
	} else if cur >= count {
		s.indices[menuID] = count - 1
	}
}

// Reset drops all tracked indices.
func (s *Selections) Reset() {
	s.indices = make(map[string]int)
}
