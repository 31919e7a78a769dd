// Package board is the canvas session: one shape list, its history, the
// viewport and the in-progress gesture for a single open board.
//
// All methods are meant to be called from the UI goroutine.
package board

import (
	"SketchBoard/internal/config"
	"SketchBoard/internal/freehand"
	"SketchBoard/internal/minimap"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
	"SketchBoard/internal/viewport"

	"go.uber.org/zap"
)

type Options struct {
	GridSize   float64
	ShowGrid   bool
	SnapToGrid bool
	ZoomStep   float64
	MinZoom    float64
	MaxZoom    float64
	// HitTolerance is in screen pixels.
	HitTolerance float64
	Render       render.Options
	Minimap      minimap.Config
}

func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig picks the session settings out of a loaded config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		GridSize:     cfg.Canvas.GridSize,
		ShowGrid:     cfg.Canvas.ShowGrid,
		SnapToGrid:   cfg.Canvas.SnapToGrid,
		ZoomStep:     cfg.Canvas.ZoomStep,
		MinZoom:      cfg.Canvas.MinZoom,
		MaxZoom:      cfg.Canvas.MaxZoom,
		HitTolerance: cfg.Canvas.HitTolerance,
		Render: render.Options{
			Roughness:   cfg.Sketch.Roughness,
			Bowing:      cfg.Sketch.Bowing,
			Seed:        cfg.Sketch.Seed,
			StrokeWidth: cfg.Sketch.StrokeWidth,
			Stroke: freehand.StrokeOptions{
				Size:       cfg.Freehand.Size,
				Thinning:   cfg.Freehand.Thinning,
				Smoothing:  cfg.Freehand.Smoothing,
				Streamline: cfg.Freehand.Streamline,
			},
		},
		Minimap: minimap.Config{
			Width:        cfg.Minimap.Width,
			Height:       cfg.Minimap.Height,
			Padding:      cfg.Minimap.Padding,
			CornerRadius: minimap.DefaultConfig().CornerRadius,
			EdgeBend:     cfg.Minimap.EdgeBend,
			DashSpeed:    cfg.Minimap.DashSpeed,
			Dash:         minimap.DefaultConfig().Dash,
		},
	}
}

type Session struct {
	logger   *zap.Logger
	opts     Options
	shapes   []state.Shape
	history  *state.History
	view     *viewport.Viewport
	capture  *freehand.Capture
	renderer *render.Renderer
	mini     *minimap.Minimap

	tool          Tool
	showGrid      bool
	snap          bool
	templatesOpen bool
	exportOpen    bool
	selected      string
	gesture       gesture

	listeners []func()
}

func NewSession(opts Options, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		logger:   logger,
		opts:     opts,
		history:  state.NewHistory(),
		view:     viewport.New(),
		capture:  freehand.NewCapture(),
		renderer: render.New(opts.Render),
		mini:     minimap.New(opts.Minimap),
		tool:     ToolSelect,
		showGrid: opts.ShowGrid,
		snap:     opts.SnapToGrid,
	}
}

// OnChange registers fn to run after anything visible changes.
func (s *Session) OnChange(fn func()) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) changed() {
	for _, fn := range s.listeners {
		fn()
	}
}

// Shapes is the committed shape list. Callers must not modify it.
func (s *Session) Shapes() []state.Shape { return s.shapes }

func (s *Session) Viewport() *viewport.Viewport { return s.view }

func (s *Session) Capture() *freehand.Capture { return s.capture }

func (s *Session) Options() Options { return s.opts }

func (s *Session) commit(next []state.Shape, action string, id string) {
	s.shapes = next
	s.history.Commit(next)
	s.logger.Debug("commit",
		zap.String("action", action),
		zap.String("shape_id", id),
		zap.Int("shapes", len(next)),
		zap.Int("history_index", s.history.Index()),
	)
	s.changed()
}

// Add commits a new shape and returns its id. An empty id gets a fresh one.
func (s *Session) Add(shape state.Shape) string {
	if shape.ID == "" {
		shape.ID = state.NewShapeID()
	}
	shape = state.Normalize(shape)
	s.commit(state.AddShape(s.shapes, shape), "add", shape.ID)
	return shape.ID
}

// Update replaces the shape with the same id. Unknown ids are ignored.
func (s *Session) Update(shape state.Shape) bool {
	next, ok := state.UpdateShape(s.shapes, state.Normalize(shape))
	if !ok {
		s.logger.Debug("update of unknown shape ignored", zap.String("shape_id", shape.ID))
		return false
	}
	s.commit(next, "update", shape.ID)
	return true
}

// Delete removes a shape. Unknown ids are ignored.
func (s *Session) Delete(id string) bool {
	next, ok := state.DeleteShape(s.shapes, id)
	if !ok {
		s.logger.Debug("delete of unknown shape ignored", zap.String("shape_id", id))
		return false
	}
	if s.selected == id {
		s.selected = ""
	}
	s.commit(next, "delete", id)
	return true
}

// Replace commits a whole list handed over by an outside collaborator.
func (s *Session) Replace(shapes []state.Shape) {
	next := make([]state.Shape, len(shapes))
	for i, sh := range shapes {
		if sh.ID == "" {
			sh.ID = state.NewShapeID()
		}
		next[i] = state.Normalize(sh.Clone())
	}
	s.cancelGesture()
	s.dropStaleSelection(next)
	s.commit(next, "replace", "")
}

func (s *Session) Undo() bool {
	shapes, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore(shapes, "undo")
	return true
}

func (s *Session) Redo() bool {
	shapes, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore(shapes, "redo")
	return true
}

func (s *Session) CanUndo() bool { return s.history.CanUndo() }

func (s *Session) CanRedo() bool { return s.history.CanRedo() }

func (s *Session) restore(shapes []state.Shape, action string) {
	s.cancelGesture()
	s.shapes = shapes
	s.dropStaleSelection(shapes)
	s.logger.Debug(action, zap.Int("history_index", s.history.Index()))
	s.changed()
}

func (s *Session) dropStaleSelection(shapes []state.Shape) {
	if s.selected != "" && state.IndexOf(shapes, s.selected) < 0 {
		s.selected = ""
	}
}

// Connect adds a directed edge from one shape to another. Self edges,
// unknown ids and existing edges are ignored.
func (s *Session) Connect(from, to string) bool {
	if from == to {
		return false
	}
	src, ok := state.Find(s.shapes, from)
	if !ok || state.IndexOf(s.shapes, to) < 0 || src.IsConnectedTo(to) {
		return false
	}
	src = src.Clone()
	src.ConnectedTo = append(src.ConnectedTo, to)
	next, _ := state.UpdateShape(s.shapes, src)
	s.logger.Debug("connect", zap.String("from", from), zap.String("to", to))
	s.commit(next, "connect", from)
	return true
}

// LinkBlocks connects the shapes that carry the ids of two blocks.
func (s *Session) LinkBlocks(from, to state.Block) (bool, error) {
	if err := from.Validate(); err != nil {
		return false, err
	}
	if err := to.Validate(); err != nil {
		return false, err
	}
	return s.Connect(from.ID, to.ID), nil
}

// Move shifts a shape by a world-space delta.
func (s *Session) Move(id string, dx, dy float64) bool {
	sh, ok := state.Find(s.shapes, id)
	if !ok || (dx == 0 && dy == 0) {
		return false
	}
	return s.Update(translate(sh, dx, dy))
}

// Resize sets the extents of a shape. Drawings scale their points.
func (s *Session) Resize(id string, width, height float64) bool {
	sh, ok := state.Find(s.shapes, id)
	if !ok {
		return false
	}
	return s.Update(resize(sh, width, height))
}

// Rotate sets the rotation of a shape in degrees.
func (s *Session) Rotate(id string, degrees float64) bool {
	sh, ok := state.Find(s.shapes, id)
	if !ok {
		return false
	}
	sh.Rotation = degrees
	return s.Update(sh)
}

func (s *Session) Select(id string) bool {
	if id != "" && state.IndexOf(s.shapes, id) < 0 {
		return false
	}
	s.selected = id
	s.changed()
	return true
}

func (s *Session) Selected() (state.Shape, bool) {
	if s.selected == "" {
		return state.Shape{}, false
	}
	return state.Find(s.shapes, s.selected)
}

func (s *Session) DeleteSelected() bool {
	if s.selected == "" {
		return false
	}
	return s.Delete(s.selected)
}

// Items renders the board plus any in-progress gesture, in paint order.
func (s *Session) Items() []render.Item {
	items := s.renderer.Render(s.displayShapes())
	return append(items, s.Pending()...)
}

func translate(sh state.Shape, dx, dy float64) state.Shape {
	sh = sh.Clone()
	sh.X += dx
	sh.Y += dy
	for i := range sh.Points {
		sh.Points[i].X += dx
		sh.Points[i].Y += dy
	}
	return sh
}

func resize(sh state.Shape, width, height float64) state.Shape {
	sh = sh.Clone()
	if len(sh.Points) > 0 {
		fx, fy := 1.0, 1.0
		if sh.Width != 0 {
			fx = width / sh.Width
		}
		if sh.Height != 0 {
			fy = height / sh.Height
		}
		for i, p := range sh.Points {
			sh.Points[i] = state.Point{X: sh.X + (p.X-sh.X)*fx, Y: sh.Y + (p.Y-sh.Y)*fy}
		}
	}
	sh.Width = width
	sh.Height = height
	return sh
}
