package board

import (
	"math"

	"SketchBoard/internal/state"

	"go.uber.org/zap"
)

// Tool is the active toolbar tool.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = "rectangle"
	ToolCircle    Tool = "circle"
	ToolArrow     Tool = "arrow"
	ToolLine      Tool = "line"
	ToolDraw      Tool = "draw"
	ToolSticky    Tool = "sticky"
	ToolText      Tool = "text"
	ToolImage     Tool = "image"
)

// Tools lists every tool in toolbar order.
var Tools = []Tool{
	ToolSelect, ToolRectangle, ToolCircle, ToolArrow, ToolLine,
	ToolDraw, ToolSticky, ToolText, ToolImage,
}

func (t Tool) Valid() bool {
	for _, v := range Tools {
		if v == t {
			return true
		}
	}
	return false
}

// ShapeType is the shape a drag-to-create tool makes.
func (t Tool) ShapeType() (state.ShapeType, bool) {
	switch t {
	case ToolRectangle:
		return state.Rectangle, true
	case ToolCircle:
		return state.Circle, true
	case ToolArrow:
		return state.Arrow, true
	case ToolLine:
		return state.Line, true
	}
	return "", false
}

func (s *Session) Tool() Tool { return s.tool }

// SetTool switches tools and abandons any gesture in progress. Unknown
// tools are ignored.
func (s *Session) SetTool(t Tool) bool {
	if !t.Valid() {
		return false
	}
	if t == s.tool {
		return true
	}
	s.cancelGesture()
	s.tool = t
	s.logger.Debug("tool", zap.String("tool", string(t)))
	s.changed()
	return true
}

func (s *Session) ToggleGrid() bool {
	s.showGrid = !s.showGrid
	s.changed()
	return s.showGrid
}

func (s *Session) ToggleSnap() bool {
	s.snap = !s.snap
	s.changed()
	return s.snap
}

func (s *Session) ToggleTemplates() bool {
	s.templatesOpen = !s.templatesOpen
	s.changed()
	return s.templatesOpen
}

func (s *Session) ToggleExport() bool {
	s.exportOpen = !s.exportOpen
	s.changed()
	return s.exportOpen
}

func (s *Session) GridVisible() bool { return s.showGrid }

func (s *Session) SnapEnabled() bool { return s.snap }

func (s *Session) TemplatesOpen() bool { return s.templatesOpen }

func (s *Session) ExportOpen() bool { return s.exportOpen }

func (s *Session) GridSize() float64 { return s.opts.GridSize }

// ZoomIn zooms one step about the screen point anchor.
func (s *Session) ZoomIn(anchor state.Point) {
	s.ZoomTo(s.view.Scale()*s.opts.ZoomStep, anchor)
}

// ZoomOut zooms one step out about the screen point anchor.
func (s *Session) ZoomOut(anchor state.Point) {
	s.ZoomTo(s.view.Scale()/s.opts.ZoomStep, anchor)
}

// ZoomTo sets the scale, clamped to the configured limits.
func (s *Session) ZoomTo(scale float64, anchor state.Point) {
	scale = s.clampZoom(scale)
	if scale == s.view.Scale() {
		return
	}
	s.view.SetScaleAt(scale, anchor)
	s.changed()
}

// Pan moves the view by a screen-space delta.
func (s *Session) Pan(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	s.view.Pan(dx, dy)
	s.changed()
}

func (s *Session) ResetView() {
	s.view.Reset()
	s.changed()
}

func (s *Session) clampZoom(scale float64) float64 {
	lo, hi := s.opts.MinZoom, s.opts.MaxZoom
	if lo <= 0 || hi < lo {
		return scale
	}
	return math.Max(lo, math.Min(hi, scale))
}

func (s *Session) snapPoint(p state.Point) state.Point {
	if !s.snap || s.opts.GridSize <= 0 {
		return p
	}
	g := s.opts.GridSize
	return state.Point{X: math.Round(p.X/g) * g, Y: math.Round(p.Y/g) * g}
}
