package ui

import (
	"image"
	"time"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/raster"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// MinimapWidget shows the board overview. A repeating animation repaints
// it every frame so the viewport border keeps scrolling; painting never
// writes to the session.
type MinimapWidget struct {
	widget.BaseWidget
	session *board.Session
	canvas  *BoardWidget
	palette config.Palette
	started time.Time
	down    bool
}

var _ fyne.Draggable = (*MinimapWidget)(nil)
var _ desktop.Mouseable = (*MinimapWidget)(nil)

func NewMinimapWidget(s *board.Session, main *BoardWidget, palette config.Palette) *MinimapWidget {
	m := &MinimapWidget{session: s, canvas: main, palette: palette, started: time.Now()}
	m.ExtendBaseWidget(m)
	return m
}

func (m *MinimapWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	m.down = true
	w, h := m.canvas.ScreenSize()
	m.session.MinimapPointerDown(toPoint(e.Position), w, h)
}

func (m *MinimapWidget) Dragged(e *fyne.DragEvent) {
	if !m.down {
		return
	}
	w, h := m.canvas.ScreenSize()
	m.session.MinimapPointerMove(toPoint(e.Position), w, h)
}

func (m *MinimapWidget) MouseUp(*desktop.MouseEvent) { m.release() }

func (m *MinimapWidget) DragEnd() { m.release() }

func (m *MinimapWidget) release() {
	m.down = false
	m.session.MinimapPointerUp()
}

func (m *MinimapWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &minimapRenderer{widget: m}
	r.raster = canvas.NewRaster(r.draw)
	r.anim = fyne.NewAnimation(time.Second, func(float32) { r.raster.Refresh() })
	r.anim.Curve = fyne.AnimationLinear
	r.anim.RepeatCount = fyne.AnimationRepeatForever
	r.anim.Start()
	return r
}

type minimapRenderer struct {
	widget *MinimapWidget
	raster *canvas.Raster
	anim   *fyne.Animation
}

func (r *minimapRenderer) draw(w, h int) image.Image {
	m := r.widget
	sw, sh := m.canvas.ScreenSize()
	frame := m.session.MinimapFrame(sw, sh, time.Since(m.started))

	scale := 1.0
	if width := m.Size().Width; width > 0 {
		scale = float64(w) / float64(width)
	}
	return raster.Minimap(w, h, frame, scale, m.palette)
}

func (r *minimapRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *minimapRenderer) Refresh() { r.raster.Refresh() }

func (r *minimapRenderer) Layout(size fyne.Size) { r.raster.Resize(size) }

func (r *minimapRenderer) MinSize() fyne.Size {
	cfg := r.widget.session.Options().Minimap
	return fyne.NewSize(float32(cfg.Width), float32(cfg.Height))
}

func (r *minimapRenderer) Destroy() { r.anim.Stop() }
