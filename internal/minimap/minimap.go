// Package minimap renders a scaled overview of the board and turns clicks
// on it into viewport moves.
//
// Frame is a pure function of the shapes, the viewport and the elapsed
// time; the time only drives the dashed border of the viewport box.
package minimap

import (
	"math"
	"time"

	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
	"SketchBoard/internal/viewport"
)

// DefaultBounds is used when the board is empty.
var DefaultBounds = state.Rect{X: 0, Y: 0, Width: 1000, Height: 1000}

// minExtent keeps the scale finite for zero-size content.
const minExtent = 1e-3

type Config struct {
	Width        float64
	Height       float64
	Padding      float64
	CornerRadius float64
	// EdgeBend moves the curve control point off the midpoint, as a
	// fraction of the edge length. Zero keeps it on the midpoint.
	EdgeBend float64
	// DashSpeed is how fast the viewport border scrolls, in px per second.
	DashSpeed float64
	Dash      []float64
}

func DefaultConfig() Config {
	return Config{
		Width:        240,
		Height:       180,
		Padding:      20,
		CornerRadius: 2,
		DashSpeed:    30,
		Dash:         []float64{4, 4},
	}
}

// Projection maps world space to minimap-local pixels.
type Projection struct {
	Bounds  state.Rect
	Scale   float64
	Padding float64
}

// Project fits the padded bounds of shapes into the minimap with a uniform
// scale.
func Project(shapes []state.Shape, cfg Config) Projection {
	b, ok := state.ShapesBounds(shapes)
	if !ok {
		b = DefaultBounds
	}
	b = b.Expand(cfg.Padding)

	cw := math.Max(b.Width, minExtent)
	ch := math.Max(b.Height, minExtent)
	scale := math.Min((cfg.Width-2*cfg.Padding)/cw, (cfg.Height-2*cfg.Padding)/ch)
	if scale <= 0 || math.IsNaN(scale) {
		scale = minExtent
	}
	return Projection{Bounds: b, Scale: scale, Padding: cfg.Padding}
}

func (p Projection) ToLocal(w state.Point) state.Point {
	return state.Point{
		X: (w.X - p.Bounds.X + p.Padding) * p.Scale,
		Y: (w.Y - p.Bounds.Y + p.Padding) * p.Scale,
	}
}

func (p Projection) ToWorld(l state.Point) state.Point {
	return state.Point{
		X: l.X/p.Scale - p.Padding + p.Bounds.X,
		Y: l.Y/p.Scale - p.Padding + p.Bounds.Y,
	}
}

func (p Projection) RectToLocal(r state.Rect) state.Rect {
	o := p.ToLocal(state.Point{X: r.X, Y: r.Y})
	return state.Rect{X: o.X, Y: o.Y, Width: r.Width * p.Scale, Height: r.Height * p.Scale}
}

// Frame is one minimap render.
type Frame struct {
	Projection Projection
	// Items are in paint order: edges, shapes, viewport box.
	Items []render.Item
	// Viewport is the visible area in minimap-local pixels.
	Viewport state.Rect
}

type Minimap struct {
	cfg      Config
	dragging bool
}

func New(cfg Config) *Minimap {
	return &Minimap{cfg: cfg}
}

func (m *Minimap) Config() Config { return m.cfg }

// Frame builds the overview for the given state. screenW and screenH are
// the main canvas size in pixels.
func (m *Minimap) Frame(shapes []state.Shape, vp *viewport.Viewport, screenW, screenH float64, elapsed time.Duration) Frame {
	proj := Project(shapes, m.cfg)
	items := m.edges(shapes, proj)

	for _, s := range shapes {
		r := proj.RectToLocal(s.Bounds())
		items = append(items, render.Item{
			ShapeID:   s.ID,
			Primitive: render.RoundedRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Radius: m.cfg.CornerRadius},
			Style:     render.Style{Role: render.RoleMinimapShape, Fill: true},
		})
	}

	view := proj.RectToLocal(vp.VisibleRect(screenW, screenH))
	items = append(items, render.Item{
		Primitive: render.Rect{X: view.X, Y: view.Y, Width: view.Width, Height: view.Height},
		Style: render.Style{
			Role:       render.RoleMinimapViewport,
			Width:      1,
			Dash:       m.cfg.Dash,
			DashOffset: DashOffset(elapsed, m.cfg.DashSpeed, m.cfg.Dash),
		},
	})

	return Frame{Projection: proj, Items: items, Viewport: view}
}

// edges draws every connectedTo relation whose target still exists.
func (m *Minimap) edges(shapes []state.Shape, proj Projection) []render.Item {
	byID := make(map[string]state.Shape, len(shapes))
	for _, s := range shapes {
		byID[s.ID] = s
	}

	var items []render.Item
	for _, s := range shapes {
		for _, id := range s.ConnectedTo {
			target, ok := byID[id]
			if !ok || id == s.ID {
				continue
			}
			from := proj.ToLocal(s.Center())
			to := proj.ToLocal(target.Center())
			curve := edgeCurve(from, to, m.cfg.EdgeBend)

			style := render.Style{Role: render.RoleMinimapEdge, Width: 1}
			items = append(items, render.Item{ShapeID: s.ID, Primitive: curve, Style: style})

			left, right := render.ArrowHead(to, tangentAngle(curve))
			items = append(items,
				render.Item{ShapeID: s.ID, Primitive: left, Style: style},
				render.Item{ShapeID: s.ID, Primitive: right, Style: style},
			)
		}
	}
	return items
}

func edgeCurve(from, to state.Point, bend float64) render.QuadCurve {
	mid := from.Lerp(to, 0.5)
	d := to.Sub(from)
	ctrl := mid.Add(state.Point{X: -d.Y, Y: d.X}.Mul(bend))
	return render.QuadCurve{From: from, Control: ctrl, To: to}
}

// tangentAngle is the direction of the curve where it meets its end.
func tangentAngle(c render.QuadCurve) float64 {
	d := c.To.Sub(c.Control)
	if d.X == 0 && d.Y == 0 {
		d = c.To.Sub(c.From)
	}
	return math.Atan2(d.Y, d.X)
}

// DashOffset scrolls a dash pattern over time. It wraps at the pattern
// length so the value stays small.
func DashOffset(elapsed time.Duration, speed float64, dash []float64) float64 {
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if period <= 0 {
		return 0
	}
	return -math.Mod(elapsed.Seconds()*speed, period)
}

// Navigate recenters the main view on the world point under the local
// minimap point.
func (m *Minimap) Navigate(shapes []state.Shape, vp *viewport.Viewport, local state.Point, screenW, screenH float64) {
	w := Project(shapes, m.cfg).ToWorld(local)
	vp.CenterOn(w, screenW, screenH)
}

// PointerDown starts a click or drag on the minimap.
func (m *Minimap) PointerDown(shapes []state.Shape, vp *viewport.Viewport, local state.Point, screenW, screenH float64) {
	m.dragging = true
	m.Navigate(shapes, vp, local, screenW, screenH)
}

// PointerMove follows the pointer while it stays down.
func (m *Minimap) PointerMove(shapes []state.Shape, vp *viewport.Viewport, local state.Point, screenW, screenH float64) {
	if !m.dragging {
		return
	}
	m.Navigate(shapes, vp, local, screenW, screenH)
}

func (m *Minimap) PointerUp() { m.dragging = false }

func (m *Minimap) Dragging() bool { return m.dragging }
