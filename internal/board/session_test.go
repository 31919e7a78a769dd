package board

import (
	"testing"

	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(DefaultOptions(), zap.NewNop())
}

func rect(id string, x, y, w, h float64) state.Shape {
	return state.Shape{ID: id, Type: state.Rectangle, X: x, Y: y, Width: w, Height: h}
}

func TestSessionMutationsCommitOnce(t *testing.T) {
	s := newSession(t)

	s.Add(rect("a", 0, 0, 10, 10))
	assert.Equal(t, 0, s.history.Index())
	s.Add(rect("b", 20, 0, 10, 10))
	assert.Equal(t, 1, s.history.Index())

	assert.True(t, s.Update(rect("a", 5, 5, 10, 10)))
	assert.Equal(t, 2, s.history.Index())

	assert.True(t, s.Delete("b"))
	assert.Equal(t, 3, s.history.Index())
	require.Len(t, s.Shapes(), 1)
	assert.Equal(t, 5.0, s.Shapes()[0].X)
}

func TestSessionUnknownIDsAreNoOps(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))

	assert.False(t, s.Update(rect("ghost", 1, 1, 1, 1)))
	assert.False(t, s.Delete("ghost"))
	assert.False(t, s.Move("ghost", 1, 1))
	assert.Equal(t, 1, s.history.Len())
}

func TestSessionAddAssignsIDAndNormalizes(t *testing.T) {
	s := newSession(t)
	id := s.Add(state.Shape{Type: state.Rectangle, X: 50, Y: 50, Width: -20, Height: -10})

	require.NotEmpty(t, id)
	got, ok := state.Find(s.Shapes(), id)
	require.True(t, ok)
	assert.Equal(t, state.Shape{ID: id, Type: state.Rectangle, X: 30, Y: 40, Width: 20, Height: 10}, got)
}

func TestSessionUndoRedo(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))
	assert.False(t, s.CanUndo(), "the first commit is the base state")

	s.Add(rect("b", 20, 0, 10, 10))
	before := state.CloneShapes(s.Shapes())

	require.True(t, s.CanUndo())
	require.True(t, s.Undo())
	assert.Len(t, s.Shapes(), 1)
	assert.True(t, s.CanRedo())

	require.True(t, s.Redo())
	assert.Equal(t, before, s.Shapes())
	assert.False(t, s.Redo())

	s.Undo()
	s.Add(rect("c", 40, 0, 10, 10))
	assert.False(t, s.CanRedo(), "a fresh edit drops the redo branch")
}

func TestSessionUndoDropsStaleSelection(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))
	s.Add(rect("b", 20, 0, 10, 10))
	require.True(t, s.Select("b"))

	s.Undo()
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestSessionConnect(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))
	s.Add(rect("b", 20, 0, 10, 10))

	assert.True(t, s.Connect("a", "b"))
	entries := s.history.Len()

	assert.False(t, s.Connect("a", "b"), "duplicate")
	assert.False(t, s.Connect("a", "a"), "self edge")
	assert.False(t, s.Connect("a", "ghost"))
	assert.False(t, s.Connect("ghost", "a"))
	assert.Equal(t, entries, s.history.Len())

	a, _ := state.Find(s.Shapes(), "a")
	assert.Equal(t, []string{"b"}, a.ConnectedTo)
}

func TestSessionLinkBlocks(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))
	s.Add(rect("b", 20, 0, 10, 10))

	ok, err := s.LinkBlocks(state.Block{ID: "a", Type: "note"}, state.Block{ID: "b", Type: "okr"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.LinkBlocks(state.Block{ID: "a", Type: "note"}, state.Block{ID: "b"})
	assert.Error(t, err)
}

func TestSessionDeleteKeepsOtherEdges(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))
	s.Add(rect("b", 20, 0, 10, 10))
	s.Connect("a", "b")

	assert.NotPanics(t, func() { s.Delete("b") })
	a, _ := state.Find(s.Shapes(), "a")
	assert.Equal(t, []string{"b"}, a.ConnectedTo)
}

func TestSessionTransforms(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))
	s.Add(state.Shape{ID: "d", Type: state.Drawing, X: 0, Y: 0, Width: 10, Height: 10,
		Points: []state.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}})

	require.True(t, s.Move("a", 5, -5))
	require.True(t, s.Resize("a", 30, 40))
	require.True(t, s.Rotate("a", 45))
	a, _ := state.Find(s.Shapes(), "a")
	assert.Equal(t, state.Shape{ID: "a", Type: state.Rectangle, X: 5, Y: -5, Width: 30, Height: 40, Rotation: 45}, a)

	require.True(t, s.Resize("d", 20, 5))
	d, _ := state.Find(s.Shapes(), "d")
	assert.Equal(t, []state.Point{{X: 0, Y: 0}, {X: 20, Y: 5}}, d.Points)

	require.True(t, s.Move("d", 1, 1))
	d, _ = state.Find(s.Shapes(), "d")
	assert.Equal(t, []state.Point{{X: 1, Y: 1}, {X: 21, Y: 6}}, d.Points)
}

func TestSessionReplace(t *testing.T) {
	s := newSession(t)
	s.Add(rect("a", 0, 0, 10, 10))

	s.Replace([]state.Shape{rect("x", 0, 0, -5, 5), {Type: state.Line, Width: 3}})
	require.Len(t, s.Shapes(), 2)
	assert.Equal(t, -5.0, s.Shapes()[0].X)
	assert.NotEmpty(t, s.Shapes()[1].ID)
	assert.True(t, s.CanUndo())
}

func TestSessionNotifiesListeners(t *testing.T) {
	s := newSession(t)
	calls := 0
	s.OnChange(func() { calls++ })

	s.Add(rect("a", 0, 0, 10, 10))
	s.Update(rect("ghost", 0, 0, 1, 1))
	s.ToggleGrid()
	assert.Equal(t, 2, calls)
}

func TestDeleteSelected(t *testing.T) {
	s := newSession(t)
	assert.False(t, s.DeleteSelected())

	s.Add(rect("a", 0, 0, 10, 10))
	assert.False(t, s.Select("ghost"))
	require.True(t, s.Select("a"))
	assert.True(t, s.DeleteSelected())
	assert.Empty(t, s.Shapes())
}
