package board

import (
	"testing"
	"time"

	"SketchBoard/internal/minimap"
	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimapNavigation(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 1000, 700))
	calls := 0
	s.OnChange(func() { calls++ })

	local := state.Point{X: 120, Y: 90}
	s.MinimapPointerDown(local, 800, 600)

	want := minimap.Project(s.Shapes(), s.Options().Minimap).ToWorld(local)
	center := s.Viewport().ScreenToWorld(state.Point{X: 400, Y: 300})
	assert.InDelta(t, want.X, center.X, 1e-9)
	assert.InDelta(t, want.Y, center.Y, 1e-9)
	assert.Equal(t, 1, calls)

	s.MinimapPointerUp()
	before := s.Viewport().Position()
	s.MinimapPointerMove(state.Point{X: 10, Y: 10}, 800, 600)
	assert.Equal(t, before, s.Viewport().Position())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, s.history.Len(), "navigation is not an edit")
}

func TestMinimapFrameIsReadOnly(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 100, 100))
	s.Add(rect("b", 300, 0, 100, 100))
	s.Connect("a", "b")
	entries := s.history.Len()

	for i := 0; i < 10; i++ {
		f := s.MinimapFrame(800, 600, time.Duration(i)*16*time.Millisecond)
		require.NotEmpty(t, f.Items)
	}
	assert.Equal(t, entries, s.history.Len())
	assert.Equal(t, 1.0, s.Viewport().Scale())
}
