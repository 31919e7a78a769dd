package state

// History is a linear undo/redo stack of full shape-list snapshots.
// index is -1 until the first commit and otherwise points at the live entry.
type History struct {
	entries [][]Shape
	index   int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Commit drops every entry after the cursor, appends a copy of shapes and
// moves the cursor onto it.
func (h *History) Commit(shapes []Shape) {
	h.entries = append(h.entries[:h.index+1], CloneShapes(shapes))
	h.index = len(h.entries) - 1
}

// Undo steps back one entry and returns a copy of it. It is a no-op when
// there is nothing to step back to.
func (h *History) Undo() ([]Shape, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	h.index--
	return CloneShapes(h.entries[h.index]), true
}

// Redo steps forward one entry and returns a copy of it.
func (h *History) Redo() ([]Shape, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.index++
	return CloneShapes(h.entries[h.index]), true
}

func (h *History) CanUndo() bool { return h.index > 0 }

func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

// Index returns the cursor, -1 when nothing was ever committed.
func (h *History) Index() int { return h.index }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Current returns a copy of the live entry.
func (h *History) Current() ([]Shape, bool) {
	if h.index < 0 {
		return nil, false
	}
	return CloneShapes(h.entries[h.index]), true
}
