package board

import (
	"fmt"

	"SketchBoard/internal/state"

	"go.uber.org/zap"
)

type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

type Quality string

const (
	QualityStandard Quality = "standard"
	QualityHigh     Quality = "high"
)

type Area string

const (
	AreaVisible Area = "visible"
	AreaAll     Area = "all"
)

// ExportRequest is what the board hands to an external encoder. Shapes is
// a private copy.
type ExportRequest struct {
	Format  Format  `validate:"oneof=png pdf"`
	Quality Quality `validate:"oneof=standard high"`
	Area    Area    `validate:"oneof=visible all"`

	Shapes   []state.Shape
	Scale    float64 `validate:"gt=0"`
	Position state.Point
	// Region is the world box to encode.
	Region state.Rect
	// PixelRatio is 2 for high quality.
	PixelRatio float64 `validate:"gt=0"`
}

// ExportRequest snapshots the board for an export. screenW and screenH are
// the canvas size, used for the visible area.
func (s *Session) ExportRequest(format Format, quality Quality, area Area, screenW, screenH float64) (ExportRequest, error) {
	req := ExportRequest{
		Format:     format,
		Quality:    quality,
		Area:       area,
		Scale:      s.view.Scale(),
		Position:   s.view.Position(),
		PixelRatio: 1,
	}
	if quality == QualityHigh {
		req.PixelRatio = 2
	}
	if err := state.Validator().Struct(req); err != nil {
		return ExportRequest{}, fmt.Errorf("export request: %w", err)
	}

	visible := s.view.VisibleRect(screenW, screenH)
	switch area {
	case AreaVisible:
		req.Region = visible
		for _, sh := range s.shapes {
			if sh.Bounds().Overlaps(visible) {
				req.Shapes = append(req.Shapes, sh.Clone())
			}
		}
	case AreaAll:
		req.Shapes = state.CloneShapes(s.shapes)
		if b, ok := state.ShapesBounds(s.shapes); ok {
			req.Region = b
		} else {
			req.Region = visible
		}
	}

	s.logger.Info("export requested",
		zap.String("format", string(format)),
		zap.String("quality", string(quality)),
		zap.String("area", string(area)),
		zap.Int("shapes", len(req.Shapes)),
	)
	return req, nil
}
