package ui

import (
	"fmt"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"
)

const appID = "io.sketchboard.app"

// Exporter receives finished export requests. Encoding happens outside the
// board.
type Exporter func(board.ExportRequest)

// Window is one open board with its widgets.
type Window struct {
	fyne.Window
	Session *board.Session
	Board   *BoardWidget
	Minimap *MinimapWidget
	Toolbar *Toolbar
	Status  *widget.Label

	logger    *zap.Logger
	exporter  Exporter
	templates fyne.CanvasObject
}

// NewWindow builds a board window on a.
func NewWindow(a fyne.App, cfg *config.Config, logger *zap.Logger, exporter Exporter) (*Window, error) {
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	w := &Window{
		Window:   a.NewWindow(cfg.Window.Title),
		Session:  board.NewSession(board.OptionsFromConfig(cfg), logger.Named("board")),
		Status:   widget.NewLabel("Ready"),
		logger:   logger,
		exporter: exporter,
	}
	w.Board = NewBoardWidget(w.Session, palette)
	w.Minimap = NewMinimapWidget(w.Session, w.Board, palette)
	w.Toolbar = NewToolbar(w.Session, w.Board)
	w.Toolbar.OnTemplates = w.showTemplates
	w.Toolbar.OnExport = w.showExport

	w.templates = container.NewVBox(widget.NewLabel("Templates"), widget.NewSeparator())
	w.templates.Hide()

	w.Session.OnChange(func() {
		w.Board.Refresh()
		w.Status.SetText(w.status())
	})

	overlay := container.NewVBox(layout.NewSpacer(), container.NewHBox(layout.NewSpacer(), w.Minimap))
	content := container.NewBorder(
		w.Toolbar.Object(), w.Status, nil, w.templates,
		container.NewStack(w.Board, overlay),
	)
	w.SetContent(content)
	w.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	w.addShortcuts()
	return w, nil
}

func (w *Window) status() string {
	return fmt.Sprintf("%d shapes · %s · %.0f%%",
		len(w.Session.Shapes()), w.Session.Tool(), w.Session.Viewport().Scale()*100)
}

func (w *Window) addShortcuts() {
	s := w.Session
	c := w.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { s.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift},
		func(fyne.Shortcut) { s.Redo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault},
		func(fyne.Shortcut) { s.Redo() })
	c.SetOnTypedKey(func(e *fyne.KeyEvent) {
		switch e.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			s.DeleteSelected()
		case fyne.KeyEscape:
			s.PointerLeave()
		}
	})
}

func (w *Window) showTemplates(open bool) {
	w.logger.Info("templates panel", zap.Bool("open", open))
	if open {
		w.templates.Show()
	} else {
		w.templates.Hide()
	}
}

func (w *Window) showExport(open bool) {
	w.logger.Info("export panel", zap.Bool("open", open))
	if !open {
		return
	}

	format := widget.NewSelect([]string{string(board.FormatPNG), string(board.FormatPDF)}, nil)
	format.SetSelected(string(board.FormatPNG))
	quality := widget.NewSelect([]string{string(board.QualityStandard), string(board.QualityHigh)}, nil)
	quality.SetSelected(string(board.QualityStandard))
	area := widget.NewSelect([]string{string(board.AreaVisible), string(board.AreaAll)}, nil)
	area.SetSelected(string(board.AreaAll))

	items := []*widget.FormItem{
		widget.NewFormItem("Format", format),
		widget.NewFormItem("Quality", quality),
		widget.NewFormItem("Area", area),
	}
	dialog.ShowForm("Export", "Export", "Cancel", items, func(ok bool) {
		if w.Session.ExportOpen() {
			w.Session.ToggleExport()
		}
		if !ok {
			return
		}
		sw, sh := w.Board.ScreenSize()
		req, err := w.Session.ExportRequest(
			board.Format(format.Selected), board.Quality(quality.Selected), board.Area(area.Selected), sw, sh)
		if err != nil {
			w.logger.Error("export request", zap.Error(err))
			dialog.ShowError(err, w.Window)
			return
		}
		if w.exporter != nil {
			w.exporter(req)
		}
	}, w.Window)
}

// RunApp opens one board window and blocks until it is closed.
func RunApp(cfg *config.Config, logger *zap.Logger, exporter Exporter) error {
	a := app.NewWithID(appID)
	w, err := NewWindow(a, cfg, logger, exporter)
	if err != nil {
		return err
	}
	w.ShowAndRun()
	return nil
}
