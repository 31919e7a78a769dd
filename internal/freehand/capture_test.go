package freehand

import (
	"testing"

	"SketchBoard/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureSinglePointIsDiscarded(t *testing.T) {
	c := NewCapture()
	c.Begin(state.Point{X: 0, Y: 0})

	_, ok := c.Complete()
	assert.False(t, ok)
	assert.Equal(t, Idle, c.Phase())
	assert.Empty(t, c.Points())
}

func TestCaptureProducesDrawing(t *testing.T) {
	c := NewCapture()
	c.Begin(state.Point{X: 0, Y: 0})
	c.Add(state.Point{X: 10, Y: 0})
	c.Add(state.Point{X: 10, Y: 10})
	require.Equal(t, Capturing, c.Phase())

	s, ok := c.Complete()
	require.True(t, ok)
	assert.Equal(t, state.Drawing, s.Type)
	assert.Equal(t, 0.0, s.X)
	assert.Equal(t, 0.0, s.Y)
	assert.Equal(t, 10.0, s.Width)
	assert.Equal(t, 10.0, s.Height)
	assert.Equal(t, []state.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, s.Points)

	assert.Equal(t, Idle, c.Phase())
	assert.Empty(t, c.Points())
}

func TestCaptureBoundsUseMinimum(t *testing.T) {
	c := NewCapture()
	c.Begin(state.Point{X: 5, Y: 5})
	c.Add(state.Point{X: -5, Y: 20})

	s, ok := c.Complete()
	require.True(t, ok)
	assert.Equal(t, state.Rect{X: -5, Y: 5, Width: 10, Height: 15}, s.Bounds())
}

func TestCaptureIgnoresMovesWhileIdle(t *testing.T) {
	c := NewCapture()
	c.Add(state.Point{X: 1, Y: 1})
	c.Add(state.Point{X: 2, Y: 2})

	assert.Empty(t, c.Points())
	_, ok := c.Complete()
	assert.False(t, ok)
}

func TestCaptureCancel(t *testing.T) {
	c := NewCapture()
	c.Begin(state.Point{})
	c.Add(state.Point{X: 3, Y: 4})
	c.Add(state.Point{X: 6, Y: 8})

	c.Cancel()

	assert.Equal(t, Idle, c.Phase())
	_, ok := c.Complete()
	assert.False(t, ok)
}

func TestCaptureBeginClearsBuffer(t *testing.T) {
	c := NewCapture()
	c.Begin(state.Point{X: 1})
	c.Add(state.Point{X: 2})
	c.Begin(state.Point{X: 9})

	assert.Equal(t, []state.Point{{X: 9}}, c.Points())
}

func TestCompletedShapeOwnsItsPoints(t *testing.T) {
	c := NewCapture()
	c.Begin(state.Point{})
	c.Add(state.Point{X: 4, Y: 4})
	s, ok := c.Complete()
	require.True(t, ok)

	c.Begin(state.Point{X: 100, Y: 100})
	c.Add(state.Point{X: 101, Y: 101})

	assert.Equal(t, state.Point{}, s.Points[0])
}

func TestPreview(t *testing.T) {
	c := NewCapture()
	assert.Nil(t, c.Preview(DefaultStrokeOptions()))

	c.Begin(state.Point{})
	for i := 1; i <= 20; i++ {
		c.Add(state.Point{X: float64(i * 5), Y: 0})
	}
	outline := c.Preview(DefaultStrokeOptions())
	assert.NotEmpty(t, outline)
	assert.Len(t, c.Points(), 21)
}
