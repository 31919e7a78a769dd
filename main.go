package main

import (
	"flag"
	"fmt"
	"os"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/ui"

	"go.uber.org/zap"
)

func main() {
	path := flag.String("config", "sketchboard.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchboard: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sketchboard: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting", zap.String("config", *path), zap.String("level", cfg.Log.Level))
	if err := ui.RunApp(cfg, logger, logExport(logger)); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(cfg config.Log) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc.Level = level
	return zc.Build()
}

// logExport stands in for the file encoder, which lives outside the board.
func logExport(logger *zap.Logger) ui.Exporter {
	return func(req board.ExportRequest) {
		logger.Info("export ready",
			zap.String("format", string(req.Format)),
			zap.String("quality", string(req.Quality)),
			zap.String("area", string(req.Area)),
			zap.Int("shapes", len(req.Shapes)),
			zap.Float64("pixel_ratio", req.PixelRatio),
		)
	}
}
