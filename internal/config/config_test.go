package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 240.0, cfg.Minimap.Width)
	assert.Equal(t, 180.0, cfg.Minimap.Height)
	assert.Equal(t, 1.2, cfg.Canvas.ZoomStep)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Canvas, cfg.Canvas)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	data := []byte(`
canvas:
  grid_size: 32
  snap_to_grid: true
sketch:
  roughness: 0
log:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32.0, cfg.Canvas.GridSize)
	assert.True(t, cfg.Canvas.SnapToGrid)
	assert.Equal(t, 0.0, cfg.Sketch.Roughness)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched sections keep their defaults
	assert.Equal(t, Default().Minimap, cfg.Minimap)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas: [1, 2"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas:\n  min_zoom: 4\n  max_zoom: 2\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SKETCHBOARD_LOG_LEVEL", "WARN")
	t.Setenv("SKETCHBOARD_SNAP_TO_GRID", "true")
	t.Setenv("SKETCHBOARD_SEED", "42")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Canvas.SnapToGrid)
	assert.Equal(t, int64(42), cfg.Sketch.Seed)
}

func TestLoadEnvBadNumber(t *testing.T) {
	t.Setenv("SKETCHBOARD_GRID_SIZE", "wide")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero grid", func(c *Config) { c.Canvas.GridSize = 0 }},
		{"zoom step not above one", func(c *Config) { c.Canvas.ZoomStep = 1 }},
		{"negative roughness", func(c *Config) { c.Sketch.Roughness = -1 }},
		{"thinning out of range", func(c *Config) { c.Freehand.Thinning = 2 }},
		{"bad colour", func(c *Config) { c.Theme.Stroke = "black" }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
		{"empty title", func(c *Config) { c.Window.Title = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestPalette(t *testing.T) {
	p, err := Default().Theme.Palette()
	require.NoError(t, err)

	r, g, b, a := p.Stroke.RGBA()
	assert.Equal(t, uint32(0x1e1e), r)
	assert.Equal(t, uint32(0x1e1e), g)
	assert.Equal(t, uint32(0x1e1e), b)
	assert.Equal(t, uint32(0xffff), a)

	theme := Default().Theme
	theme.Grid = "#zzzzzz"
	_, err = theme.Palette()
	assert.Error(t, err)
}
