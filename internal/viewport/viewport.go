// Package viewport maps between world space (shape coordinates) and screen
// space (pixels).
//
// Position is the world point shown at the screen origin, so
//
//	screen = (world - Position) * Scale
//
// Rotation is shape-local and never part of this transform. The viewport
// does not clamp; zoom limits belong to whoever drives it.
package viewport

import "SketchBoard/internal/state"

type Viewport struct {
	scale    float64
	position state.Point
}

// New returns a viewport at scale 1 with the world origin at the screen
// origin.
func New() *Viewport {
	return &Viewport{scale: 1}
}

func (v *Viewport) Scale() float64 { return v.scale }

func (v *Viewport) Position() state.Point { return v.position }

// SetScale ignores non-positive values.
func (v *Viewport) SetScale(s float64) {
	if s > 0 {
		v.scale = s
	}
}

func (v *Viewport) SetPosition(p state.Point) { v.position = p }

func (v *Viewport) WorldToScreen(p state.Point) state.Point {
	return state.Point{
		X: (p.X - v.position.X) * v.scale,
		Y: (p.Y - v.position.Y) * v.scale,
	}
}

func (v *Viewport) ScreenToWorld(p state.Point) state.Point {
	return state.Point{
		X: p.X/v.scale + v.position.X,
		Y: p.Y/v.scale + v.position.Y,
	}
}

// Pan moves the view by a screen-space delta: content follows the pointer.
func (v *Viewport) Pan(dx, dy float64) {
	v.position.X -= dx / v.scale
	v.position.Y -= dy / v.scale
}

// ZoomAt multiplies the scale by factor keeping the world point under the
// screen point anchor fixed.
func (v *Viewport) ZoomAt(factor float64, anchor state.Point) {
	if factor <= 0 {
		return
	}
	v.SetScaleAt(v.scale*factor, anchor)
}

// SetScaleAt sets the scale keeping the world point under anchor fixed.
func (v *Viewport) SetScaleAt(s float64, anchor state.Point) {
	if s <= 0 {
		return
	}
	w := v.ScreenToWorld(anchor)
	v.scale = s
	v.position = state.Point{
		X: w.X - anchor.X/s,
		Y: w.Y - anchor.Y/s,
	}
}

// VisibleRect is the world box covered by a screen of the given size.
func (v *Viewport) VisibleRect(screenW, screenH float64) state.Rect {
	return state.Rect{
		X:      v.position.X,
		Y:      v.position.Y,
		Width:  screenW / v.scale,
		Height: screenH / v.scale,
	}
}

// CenterOn moves the view so world point p sits in the middle of a screen
// of the given size.
func (v *Viewport) CenterOn(p state.Point, screenW, screenH float64) {
	v.position = state.Point{
		X: p.X - screenW/(2*v.scale),
		Y: p.Y - screenH/(2*v.scale),
	}
}

// Reset restores scale 1 at the origin.
func (v *Viewport) Reset() {
	v.scale = 1
	v.position = state.Point{}
}
