package ui

import (
	"SketchBoard/internal/board"
	"SketchBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Toolbar carries the board commands. Panels it toggles are owned by the
// window.
type Toolbar struct {
	session *board.Session
	canvas  *BoardWidget

	Tools *widget.Select
	Grid  *widget.Check
	Snap  *widget.Check

	OnTemplates func(open bool)
	OnExport    func(open bool)
}

func NewToolbar(s *board.Session, canvas *BoardWidget) *Toolbar {
	t := &Toolbar{session: s, canvas: canvas}

	names := make([]string, len(board.Tools))
	for i, tool := range board.Tools {
		names[i] = string(tool)
	}
	t.Tools = widget.NewSelect(names, func(name string) {
		s.SetTool(board.Tool(name))
	})
	t.Tools.SetSelected(string(s.Tool()))

	t.Grid = widget.NewCheck("Grid", func(on bool) {
		if on != s.GridVisible() {
			s.ToggleGrid()
		}
	})
	t.Grid.Checked = s.GridVisible()
	t.Snap = widget.NewCheck("Snap", func(on bool) {
		if on != s.SnapEnabled() {
			s.ToggleSnap()
		}
	})
	t.Snap.Checked = s.SnapEnabled()
	return t
}

// center is the zoom anchor for toolbar zooms.
func (t *Toolbar) center() state.Point {
	w, h := t.canvas.ScreenSize()
	return state.Point{X: w / 2, Y: h / 2}
}

func (t *Toolbar) ToggleTemplates() {
	open := t.session.ToggleTemplates()
	if t.OnTemplates != nil {
		t.OnTemplates(open)
	}
}

func (t *Toolbar) ToggleExport() {
	open := t.session.ToggleExport()
	if t.OnExport != nil {
		t.OnExport(open)
	}
}

// Object lays the toolbar out in one row.
func (t *Toolbar) Object() fyne.CanvasObject {
	s := t.session
	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { s.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { s.Redo() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ZoomInIcon(), func() { s.ZoomIn(t.center()) }),
		widget.NewToolbarAction(theme.ZoomOutIcon(), func() { s.ZoomOut(t.center()) }),
		widget.NewToolbarAction(theme.ZoomFitIcon(), s.ResetView),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DeleteIcon(), func() { s.DeleteSelected() }),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ListIcon(), t.ToggleTemplates),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), t.ToggleExport),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		t.Tools,
		widget.NewSeparator(),
		actions,
		widget.NewSeparator(),
		t.Grid,
		t.Snap,
		layout.NewSpacer(),
	)
}
