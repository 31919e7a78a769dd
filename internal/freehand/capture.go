// Package freehand buffers pointer samples during a draw gesture and turns
// them into drawing shapes and filled stroke outlines.
package freehand

import "SketchBoard/internal/state"

// Phase of a capture.
type Phase int

const (
	Idle Phase = iota
	Capturing
)

func (p Phase) String() string {
	if p == Capturing {
		return "capturing"
	}
	return "idle"
}

// MinPoints is the fewest samples that make a stroke.
const MinPoints = 2

// Capture is the transient drawing session. Raw samples are kept as-is;
// smoothing only happens when an outline is requested.
type Capture struct {
	phase  Phase
	points []state.Point
}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Phase() Phase { return c.phase }

func (c *Capture) Active() bool { return c.phase == Capturing }

// Begin starts a new stroke at p. A Begin while already capturing restarts.
func (c *Capture) Begin(p state.Point) {
	c.phase = Capturing
	c.points = append(c.points[:0], p)
}

// Add appends a sample. It is ignored while idle.
func (c *Capture) Add(p state.Point) {
	if c.phase != Capturing {
		return
	}
	c.points = append(c.points, p)
}

// Points returns a copy of the buffer.
func (c *Capture) Points() []state.Point {
	return append([]state.Point(nil), c.points...)
}

// Complete ends the gesture. It returns a drawing shape spanning the
// bounding box of the samples, or false when fewer than MinPoints were
// captured. The buffer is cleared either way. The returned shape has no id.
func (c *Capture) Complete() (state.Shape, bool) {
	defer c.reset()
	if c.phase != Capturing || len(c.points) < MinPoints {
		return state.Shape{}, false
	}
	b, _ := state.PointsBounds(c.points)
	return state.Shape{
		Type:   state.Drawing,
		X:      b.X,
		Y:      b.Y,
		Width:  b.Width,
		Height: b.Height,
		Points: append([]state.Point(nil), c.points...),
	}, true
}

// Cancel abandons the gesture without producing anything.
func (c *Capture) Cancel() {
	c.reset()
}

// Preview returns the outline of the in-progress stroke, nil when idle.
func (c *Capture) Preview(opts StrokeOptions) []state.Point {
	if c.phase != Capturing {
		return nil
	}
	return Outline(c.points, opts)
}

func (c *Capture) reset() {
	c.phase = Idle
	c.points = c.points[:0]
}
