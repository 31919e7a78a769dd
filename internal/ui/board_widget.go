package ui

import (
	"image"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/raster"
	"SketchBoard/internal/state"
	"SketchBoard/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget hosts the main canvas. It forwards pointer input to the
// session and repaints from the session on every change.
type BoardWidget struct {
	widget.BaseWidget
	session *board.Session
	palette config.Palette
	down    bool
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(s *board.Session, palette config.Palette) *BoardWidget {
	b := &BoardWidget{session: s, palette: palette}
	b.ExtendBaseWidget(b)
	return b
}

// ScreenSize is the canvas size in screen units.
func (b *BoardWidget) ScreenSize() (float64, float64) {
	size := b.Size()
	return float64(size.Width), float64(size.Height)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.down = true
	b.session.PointerDown(toPoint(e.Position))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !b.down {
		return
	}
	b.down = false
	b.session.PointerUp()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if !b.down {
		return
	}
	b.session.PointerMove(toPoint(e.Position))
}

// DragEnd can arrive before or after MouseUp; the second release is a no-op.
func (b *BoardWidget) DragEnd() {
	if !b.down {
		return
	}
	b.down = false
	b.session.PointerUp()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseOut() {
	b.down = false
	b.session.PointerLeave()
}

func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	b.session.Scroll(float64(e.Scrolled.DY), toPoint(e.Position))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	raster *canvas.Raster
}

// draw paints at device resolution. The raster may be larger than the
// widget on HiDPI screens, so the view is scaled to match.
func (r *boardWidgetRenderer) draw(w, h int) image.Image {
	s := r.board.session
	vp := s.Viewport()
	if width := r.board.Size().Width; width > 0 {
		ratio := float64(w) / float64(width)
		scaled := viewport.New()
		scaled.SetScale(vp.Scale() * ratio)
		scaled.SetPosition(vp.Position())
		vp = scaled
	}

	opts := raster.BoardOptions{Palette: r.board.palette}
	if s.GridVisible() {
		opts.GridSize = s.GridSize()
	}
	return raster.Board(w, h, s.Items(), vp, opts)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
