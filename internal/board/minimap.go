package board

import (
	"time"

	"SketchBoard/internal/minimap"
	"SketchBoard/internal/state"
)

// MinimapFrame renders the overview for a canvas of screenW x screenH.
// It only reads the session.
func (s *Session) MinimapFrame(screenW, screenH float64, elapsed time.Duration) minimap.Frame {
	return s.mini.Frame(s.displayShapes(), s.view, screenW, screenH, elapsed)
}

// MinimapPointerDown recenters the view on the clicked overview point.
func (s *Session) MinimapPointerDown(local state.Point, screenW, screenH float64) {
	s.mini.PointerDown(s.shapes, s.view, local, screenW, screenH)
	s.changed()
}

func (s *Session) MinimapPointerMove(local state.Point, screenW, screenH float64) {
	if !s.mini.Dragging() {
		return
	}
	s.mini.PointerMove(s.shapes, s.view, local, screenW, screenH)
	s.changed()
}

func (s *Session) MinimapPointerUp() { s.mini.PointerUp() }
