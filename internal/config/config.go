// Package config loads board settings from defaults, an optional YAML file
// and SKETCHBOARD_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const envPrefix = "SKETCHBOARD_"

type Config struct {
	Window   Window   `yaml:"window"`
	Canvas   Canvas   `yaml:"canvas"`
	Sketch   Sketch   `yaml:"sketch"`
	Freehand Freehand `yaml:"freehand"`
	Minimap  Minimap  `yaml:"minimap"`
	Theme    Theme    `yaml:"theme"`
	Log      Log      `yaml:"log"`
}

type Window struct {
	Title  string  `yaml:"title" validate:"required"`
	Width  float32 `yaml:"width" validate:"gt=0"`
	Height float32 `yaml:"height" validate:"gt=0"`
}

type Canvas struct {
	GridSize   float64 `yaml:"grid_size" validate:"gt=0"`
	ShowGrid   bool    `yaml:"show_grid"`
	SnapToGrid bool    `yaml:"snap_to_grid"`
	ZoomStep   float64 `yaml:"zoom_step" validate:"gt=1"`
	MinZoom    float64 `yaml:"min_zoom" validate:"gt=0"`
	MaxZoom    float64 `yaml:"max_zoom" validate:"gtfield=MinZoom"`
	// HitTolerance is in screen pixels.
	HitTolerance float64 `yaml:"hit_tolerance" validate:"gte=0"`
}

type Sketch struct {
	Roughness   float64 `yaml:"roughness" validate:"gte=0"`
	Bowing      float64 `yaml:"bowing" validate:"gte=0"`
	Seed        int64   `yaml:"seed"`
	StrokeWidth float64 `yaml:"stroke_width" validate:"gt=0"`
}

type Freehand struct {
	Size       float64 `yaml:"size" validate:"gt=0"`
	Thinning   float64 `yaml:"thinning" validate:"gte=-1,lte=1"`
	Smoothing  float64 `yaml:"smoothing" validate:"gte=0,lte=1"`
	Streamline float64 `yaml:"streamline" validate:"gte=0,lte=1"`
}

type Minimap struct {
	Width     float64 `yaml:"width" validate:"gt=0"`
	Height    float64 `yaml:"height" validate:"gt=0"`
	Padding   float64 `yaml:"padding" validate:"gte=0"`
	EdgeBend  float64 `yaml:"edge_bend"`
	DashSpeed float64 `yaml:"dash_speed" validate:"gte=0"`
}

type Theme struct {
	Background        string `yaml:"background" validate:"hexcolor"`
	Stroke            string `yaml:"stroke" validate:"hexcolor"`
	Preview           string `yaml:"preview" validate:"hexcolor"`
	Grid              string `yaml:"grid" validate:"hexcolor"`
	MinimapBackground string `yaml:"minimap_background" validate:"hexcolor"`
	MinimapShape      string `yaml:"minimap_shape" validate:"hexcolor"`
	MinimapEdge       string `yaml:"minimap_edge" validate:"hexcolor"`
	MinimapViewport   string `yaml:"minimap_viewport" validate:"hexcolor"`
}

type Log struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Window: Window{Title: "SketchBoard", Width: 1280, Height: 800},
		Canvas: Canvas{
			GridSize:     20,
			ShowGrid:     true,
			ZoomStep:     1.2,
			MinZoom:      0.1,
			MaxZoom:      5,
			HitTolerance: 6,
		},
		Sketch:   Sketch{Roughness: 1, Bowing: 1, Seed: 1, StrokeWidth: 2},
		Freehand: Freehand{Size: 8, Thinning: 0.5, Smoothing: 0.5, Streamline: 0.5},
		Minimap:  Minimap{Width: 240, Height: 180, Padding: 20, DashSpeed: 30},
		Theme: Theme{
			Background:        "#f5f6f8",
			Stroke:            "#1e1e1e",
			Preview:           "#6b7280",
			Grid:              "#dcdcdc",
			MinimapBackground: "#ffffff",
			MinimapShape:      "#94a3b8",
			MinimapEdge:       "#64748b",
			MinimapViewport:   "#2563eb",
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is fine; an empty
// path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// applyEnv overlays the few settings that make sense to flip per run.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(envPrefix + key); ok {
			*dst = v
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(envPrefix + key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = b
		return nil
	}
	float := func(key string, dst *float64) error {
		v, ok := lookup(envPrefix + key)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s%s: %w", envPrefix, key, err)
		}
		*dst = f
		return nil
	}

	str("LOG_LEVEL", &c.Log.Level)
	c.Log.Level = strings.ToLower(c.Log.Level)
	if v, ok := lookup(envPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", envPrefix, err)
		}
		c.Sketch.Seed = seed
	}
	for _, err := range []error{
		boolean("LOG_DEVELOPMENT", &c.Log.Development),
		boolean("SHOW_GRID", &c.Canvas.ShowGrid),
		boolean("SNAP_TO_GRID", &c.Canvas.SnapToGrid),
		float("GRID_SIZE", &c.Canvas.GridSize),
		float("ROUGHNESS", &c.Sketch.Roughness),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Palette is the parsed theme.
type Palette struct {
	Background        color.Color
	Stroke            color.Color
	Preview           color.Color
	Grid              color.Color
	MinimapBackground color.Color
	MinimapShape      color.Color
	MinimapEdge       color.Color
	MinimapViewport   color.Color
}

// Palette parses every theme colour.
func (t Theme) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", t.Background, &p.Background},
		{"stroke", t.Stroke, &p.Stroke},
		{"preview", t.Preview, &p.Preview},
		{"grid", t.Grid, &p.Grid},
		{"minimap_background", t.MinimapBackground, &p.MinimapBackground},
		{"minimap_shape", t.MinimapShape, &p.MinimapShape},
		{"minimap_edge", t.MinimapEdge, &p.MinimapEdge},
		{"minimap_viewport", t.MinimapViewport, &p.MinimapViewport},
	} {
		c, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}
