// Package raster paints render items into images with gg.
package raster

import (
	"image"
	"image/color"
	"math"

	"SketchBoard/internal/config"
	"SketchBoard/internal/minimap"
	"SketchBoard/internal/render"
	"SketchBoard/internal/state"
	"SketchBoard/internal/viewport"

	"github.com/fogleman/gg"
)

// minGridSpacing is the closest two grid lines get on screen before the
// grid is hidden.
const minGridSpacing = 4.0

// Color maps a style role to a theme colour.
func Color(p config.Palette, role render.Role) color.Color {
	switch role {
	case render.RolePreview:
		return p.Preview
	case render.RoleMinimapShape:
		return p.MinimapShape
	case render.RoleMinimapEdge:
		return p.MinimapEdge
	case render.RoleMinimapViewport:
		return p.MinimapViewport
	default:
		return p.Stroke
	}
}

// Draw paints items in order using the current transform of dc.
func Draw(dc *gg.Context, items []render.Item, p config.Palette) {
	for _, it := range items {
		drawItem(dc, it, Color(p, it.Style.Role))
	}
}

func drawItem(dc *gg.Context, it render.Item, c color.Color) {
	dc.Push()
	defer dc.Pop()

	if it.Rotation != 0 {
		dc.RotateAbout(it.Rotation, it.Pivot.X, it.Pivot.Y)
	}
	dc.SetColor(c)
	width := it.Style.Width
	if width <= 0 {
		width = 1
	}
	dc.SetLineWidth(width)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	if len(it.Style.Dash) > 0 {
		dc.SetDash(it.Style.Dash...)
		dc.SetDashOffset(it.Style.DashOffset)
	}

	if len(it.Sketch) > 0 && !it.Style.Fill {
		for _, pass := range it.Sketch {
			polyline(dc, pass)
			dc.Stroke()
		}
		return
	}

	switch pr := it.Primitive.(type) {
	case render.Rect:
		dc.DrawRectangle(pr.X, pr.Y, pr.Width, pr.Height)
	case render.RoundedRect:
		dc.DrawRoundedRectangle(pr.X, pr.Y, pr.Width, pr.Height, pr.Radius)
	case render.Ellipse:
		dc.DrawEllipse(pr.Center.X, pr.Center.Y, pr.RX, pr.RY)
	case render.Segment:
		dc.DrawLine(pr.From.X, pr.From.Y, pr.To.X, pr.To.Y)
	case render.QuadCurve:
		dc.MoveTo(pr.From.X, pr.From.Y)
		dc.QuadraticTo(pr.Control.X, pr.Control.Y, pr.To.X, pr.To.Y)
	case render.Polygon:
		smoothPolygon(dc, pr.Points)
	default:
		return
	}
	if it.Style.Fill {
		dc.Fill()
	} else {
		dc.Stroke()
	}
}

func polyline(dc *gg.Context, pts []state.Point) {
	for i, p := range pts {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
}

// smoothPolygon closes the outline with quadratic segments through the
// midpoints of consecutive points.
func smoothPolygon(dc *gg.Context, pts []state.Point) {
	n := len(pts)
	if n < 3 {
		polyline(dc, pts)
		dc.ClosePath()
		return
	}
	start := pts[0].Lerp(pts[1], 0.5)
	dc.MoveTo(start.X, start.Y)
	for i := 1; i <= n; i++ {
		a := pts[i%n]
		m := a.Lerp(pts[(i+1)%n], 0.5)
		dc.QuadraticTo(a.X, a.Y, m.X, m.Y)
	}
	dc.ClosePath()
}

// DrawGrid paints world-aligned grid lines across a w x h screen.
func DrawGrid(dc *gg.Context, vp *viewport.Viewport, w, h int, size float64, c color.Color) {
	if size <= 0 || size*vp.Scale() < minGridSpacing {
		return
	}
	view := vp.VisibleRect(float64(w), float64(h))
	dc.Push()
	defer dc.Pop()
	dc.SetColor(c)
	dc.SetLineWidth(1)

	for x := math.Floor(view.MinX()/size) * size; x <= view.MaxX(); x += size {
		sx := vp.WorldToScreen(state.Point{X: x}).X
		dc.DrawLine(sx, 0, sx, float64(h))
	}
	for y := math.Floor(view.MinY()/size) * size; y <= view.MaxY(); y += size {
		sy := vp.WorldToScreen(state.Point{Y: y}).Y
		dc.DrawLine(0, sy, float64(w), sy)
	}
	dc.Stroke()
}

// BoardOptions control a board image.
type BoardOptions struct {
	// GridSize is the world spacing of grid lines; zero hides the grid.
	GridSize float64
	Palette  config.Palette
}

// Board paints the background, grid and items as seen through vp.
func Board(w, h int, items []render.Item, vp *viewport.Viewport, opts BoardOptions) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetColor(opts.Palette.Background)
	dc.Clear()
	DrawGrid(dc, vp, w, h, opts.GridSize, opts.Palette.Grid)

	pos := vp.Position()
	dc.Push()
	dc.Scale(vp.Scale(), vp.Scale())
	dc.Translate(-pos.X, -pos.Y)
	Draw(dc, items, opts.Palette)
	dc.Pop()
	return imageOf(dc)
}

// Minimap paints one minimap frame. Frame items are in minimap-local units;
// scale maps them to image pixels.
func Minimap(w, h int, f minimap.Frame, scale float64, p config.Palette) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetColor(p.MinimapBackground)
	dc.Clear()
	if scale > 0 {
		dc.Scale(scale, scale)
	}
	Draw(dc, f.Items, p)
	return imageOf(dc)
}

func imageOf(dc *gg.Context) *image.RGBA {
	return dc.Image().(*image.RGBA)
}
