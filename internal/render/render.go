// Package render turns the shape list into drawable items. It is a pure
// function of the list: hosts call Render again whenever the list changes.
package render

import (
	"hash/fnv"
	"math"

	"SketchBoard/internal/freehand"
	"SketchBoard/internal/state"
)

const (
	// HeadLength is the length of each arrowhead stroke.
	HeadLength = 20.0
	// HeadAngle is the angle between each head stroke and the shaft.
	HeadAngle = math.Pi / 6
)

type Options struct {
	Roughness   float64
	Bowing      float64
	Seed        int64
	StrokeWidth float64
	Stroke      freehand.StrokeOptions
}

// DefaultOptions is the standard hand-drawn look.
func DefaultOptions() Options {
	return Options{
		Roughness:   1,
		Bowing:      1,
		Seed:        1,
		StrokeWidth: 2,
		Stroke:      freehand.DefaultStrokeOptions(),
	}
}

type Renderer struct {
	opts   Options
	sketch *Sketcher
}

func New(opts Options) *Renderer {
	return &Renderer{
		opts:   opts,
		sketch: NewSketcher(opts.Seed, opts.Roughness, opts.Bowing),
	}
}

// Render returns the items for every shape in paint order.
func (r *Renderer) Render(shapes []state.Shape) []Item {
	items := make([]Item, 0, len(shapes))
	for _, s := range shapes {
		items = append(items, r.Shape(s)...)
	}
	return items
}

// Shape renders one shape. Unknown types render nothing.
func (r *Renderer) Shape(s state.Shape) []Item {
	key := shapeKey(s.ID)
	style := Style{Role: RoleShape, Width: r.opts.StrokeWidth}

	var items []Item
	switch s.Type {
	case state.Rectangle:
		b := s.Bounds()
		items = append(items, Item{
			Primitive: Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height},
			Sketch:    r.sketchPolyline(corners(b), true, key),
			Style:     style,
		})
	case state.Circle:
		b := s.Bounds()
		e := Ellipse{Center: b.Center(), RX: b.Width / 2, RY: b.Height / 2}
		items = append(items, Item{
			Primitive: e,
			Sketch:    r.sketchEllipse(e, key),
			Style:     style,
		})
	case state.Line:
		items = append(items, r.segment(segmentOf(s), key, style))
	case state.Arrow:
		shaft := segmentOf(s)
		items = append(items, r.segment(shaft, key, style))
		left, right := ArrowHead(shaft.To, math.Atan2(s.Height, s.Width))
		items = append(items, r.segment(left, key+1, style), r.segment(right, key+2, style))
	case state.Drawing:
		items = append(items, r.Stroke(s.Points))
	default:
		return nil
	}

	for i := range items {
		items[i].ShapeID = s.ID
		if s.Rotation != 0 {
			items[i].Rotation = s.Rotation * math.Pi / 180
			items[i].Pivot = s.Center()
		}
	}
	return items
}

// Stroke renders a freehand point sequence through the outline algorithm.
// The capture preview and committed drawings both go through here.
func (r *Renderer) Stroke(points []state.Point) Item {
	return Item{
		Primitive: Polygon{Points: freehand.Outline(points, r.opts.Stroke)},
		Style:     Style{Role: RoleShape, Fill: true},
	}
}

// Preview renders an in-progress stroke. Only the role differs from Stroke.
func (r *Renderer) Preview(points []state.Point) Item {
	it := r.Stroke(points)
	it.Style.Role = RolePreview
	return it
}

// Pending renders a shape that is still being dragged out.
func (r *Renderer) Pending(s state.Shape) []Item {
	items := r.Shape(s)
	for i := range items {
		items[i].Style.Role = RolePreview
	}
	return items
}

// ArrowHead returns the two head strokes ending at tip for a shaft pointing
// along angle.
func ArrowHead(tip state.Point, angle float64) (Segment, Segment) {
	back := func(a float64) state.Point {
		return state.Point{
			X: tip.X - HeadLength*math.Cos(a),
			Y: tip.Y - HeadLength*math.Sin(a),
		}
	}
	return Segment{From: tip, To: back(angle - HeadAngle)},
		Segment{From: tip, To: back(angle + HeadAngle)}
}

func (r *Renderer) segment(seg Segment, key float64, style Style) Item {
	it := Item{Primitive: seg, Style: style}
	if r.sketch.Roughness() > 0 {
		it.Sketch = r.sketch.Line(seg.From, seg.To, key)
	}
	return it
}

func (r *Renderer) sketchPolyline(pts []state.Point, closed bool, key float64) [][]state.Point {
	if r.sketch.Roughness() == 0 {
		return nil
	}
	return r.sketch.Polyline(pts, closed, key)
}

func (r *Renderer) sketchEllipse(e Ellipse, key float64) [][]state.Point {
	if r.sketch.Roughness() == 0 {
		return nil
	}
	return r.sketch.Ellipse(e.Center, e.RX, e.RY, key)
}

func segmentOf(s state.Shape) Segment {
	return Segment{
		From: state.Point{X: s.X, Y: s.Y},
		To:   state.Point{X: s.X + s.Width, Y: s.Y + s.Height},
	}
}

func corners(b state.Rect) []state.Point {
	return []state.Point{
		{X: b.MinX(), Y: b.MinY()},
		{X: b.MaxX(), Y: b.MinY()},
		{X: b.MaxX(), Y: b.MaxY()},
		{X: b.MinX(), Y: b.MaxY()},
	}
}

// shapeKey spreads shape ids over the noise field so neighbouring shapes
// do not wobble in step.
func shapeKey(id string) float64 {
	h := fnv.New32a()
	h.Write([]byte(id))
	return float64(h.Sum32()%100000) / 10
}
