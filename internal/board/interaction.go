package board

import (
	"SketchBoard/internal/freehand"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"

	"go.uber.org/zap"
)

type gestureKind int

const (
	gestureNone gestureKind = iota
	gestureCreate
	gestureMove
	gesturePan
)

// gesture is an uncommitted pointer interaction. Nothing in here reaches
// history until the pointer is released.
type gesture struct {
	kind    gestureKind
	start   state.Point // world
	last    state.Point // screen, for panning
	origin  state.Shape
	pending state.Shape
	moved   bool
}

// PointerDown starts a gesture for the active tool at screen point p.
func (s *Session) PointerDown(p state.Point) {
	s.cancelGesture()
	world := s.view.ScreenToWorld(p)

	if s.tool == ToolDraw {
		s.capture.Begin(world)
		s.changed()
		return
	}
	if typ, ok := s.tool.ShapeType(); ok {
		start := s.snapPoint(world)
		s.gesture = gesture{
			kind:    gestureCreate,
			start:   start,
			pending: state.Shape{Type: typ, X: start.X, Y: start.Y},
		}
		return
	}
	if s.tool != ToolSelect {
		return
	}

	tol := s.opts.HitTolerance / s.view.Scale()
	if hit, ok := state.HitTest(s.shapes, world, tol); ok {
		s.selected = hit.ID
		s.gesture = gesture{kind: gestureMove, start: world, origin: hit, pending: hit}
		s.changed()
		return
	}
	if s.selected != "" {
		s.selected = ""
		s.changed()
	}
	s.gesture = gesture{kind: gesturePan, last: p}
}

// PointerMove updates the gesture in progress.
func (s *Session) PointerMove(p state.Point) {
	if s.capture.Active() {
		s.capture.Add(s.view.ScreenToWorld(p))
		s.changed()
		return
	}

	g := &s.gesture
	switch g.kind {
	case gestureCreate:
		end := s.snapPoint(s.view.ScreenToWorld(p))
		g.pending.Width = end.X - g.start.X
		g.pending.Height = end.Y - g.start.Y
	case gestureMove:
		d := s.view.ScreenToWorld(p).Sub(g.start)
		to := s.snapPoint(state.Point{X: g.origin.X + d.X, Y: g.origin.Y + d.Y})
		g.pending = translate(g.origin, to.X-g.origin.X, to.Y-g.origin.Y)
		g.moved = g.pending.X != g.origin.X || g.pending.Y != g.origin.Y
	case gesturePan:
		d := p.Sub(g.last)
		g.last = p
		s.view.Pan(d.X, d.Y)
	default:
		return
	}
	s.changed()
}

// PointerUp finishes the gesture and commits its result, if any.
func (s *Session) PointerUp() {
	if s.capture.Active() {
		shape, ok := s.capture.Complete()
		if !ok {
			s.logger.Debug("stroke discarded", zap.Int("min_points", freehand.MinPoints))
			s.changed()
			return
		}
		s.Add(shape)
		return
	}

	g := s.gesture
	s.gesture = gesture{}
	switch g.kind {
	case gestureCreate:
		shape := state.Normalize(g.pending)
		if degenerate(shape) {
			s.logger.Debug("empty shape discarded", zap.String("type", string(shape.Type)))
			s.changed()
			return
		}
		s.selected = s.Add(shape)
	case gestureMove:
		if g.moved {
			s.Update(g.pending)
		}
	}
}

// PointerLeave abandons whatever was in progress without committing.
func (s *Session) PointerLeave() {
	if s.capture.Active() || s.gesture.kind != gestureNone {
		s.cancelGesture()
		s.changed()
	}
}

// Scroll zooms about the cursor. Positive dy zooms in.
func (s *Session) Scroll(dy float64, at state.Point) {
	switch {
	case dy > 0:
		s.ZoomIn(at)
	case dy < 0:
		s.ZoomOut(at)
	}
}

// Pending renders the gesture in progress: the live stroke outline or the
// shape being dragged out.
func (s *Session) Pending() []render.Item {
	if s.capture.Active() {
		return []render.Item{s.renderer.Preview(s.capture.Points())}
	}
	if s.gesture.kind == gestureCreate {
		return s.renderer.Pending(state.Normalize(s.gesture.pending))
	}
	return nil
}

// displayShapes is the committed list with a dragged shape shown at its
// current position.
func (s *Session) displayShapes() []state.Shape {
	if s.gesture.kind == gestureMove && s.gesture.moved {
		shapes, _ := state.UpdateShape(s.shapes, s.gesture.pending)
		return shapes
	}
	return s.shapes
}

func (s *Session) cancelGesture() {
	s.capture.Cancel()
	s.gesture = gesture{}
}

func degenerate(sh state.Shape) bool {
	if sh.Type.IsSegment() {
		return sh.Width == 0 && sh.Height == 0
	}
	return sh.Width == 0 || sh.Height == 0
}
