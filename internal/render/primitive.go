package render

import "SketchBoard/internal/state"

// Primitive is the closed set of geometries a host has to know how to draw.
type Primitive interface {
	isPrimitive()
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// RoundedRect is a rectangle with rounded corners.
type RoundedRect struct {
	X, Y, Width, Height, Radius float64
}

// Ellipse is centered at Center with radii RX, RY.
type Ellipse struct {
	Center state.Point
	RX, RY float64
}

// Segment is a straight stroke.
type Segment struct {
	From, To state.Point
}

// QuadCurve is a quadratic Bézier.
type QuadCurve struct {
	From, Control, To state.Point
}

// Polygon is a closed outline, filled.
type Polygon struct {
	Points []state.Point
}

func (Rect) isPrimitive()        {}
func (RoundedRect) isPrimitive() {}
func (Ellipse) isPrimitive()     {}
func (Segment) isPrimitive()     {}
func (QuadCurve) isPrimitive()   {}
func (Polygon) isPrimitive()     {}

// Role picks the palette colour for an item.
type Role int

const (
	RoleShape Role = iota
	RolePreview
	RoleMinimapShape
	RoleMinimapEdge
	RoleMinimapViewport
)

type Style struct {
	Role       Role
	Fill       bool
	Width      float64
	Dash       []float64
	DashOffset float64
}

// Item is one drawable unit. When Sketch is set the host strokes those
// polylines instead of the exact primitive. Rotation is in radians about
// Pivot.
type Item struct {
	ShapeID   string
	Primitive Primitive
	Sketch    [][]state.Point
	Style     Style
	Rotation  float64
	Pivot     state.Point
}
