package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/palette"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Page struct {
		WidthMM  float64 `yaml:"width_mm"`
		HeightMM float64 `yaml:"height_mm"`
	} `yaml:"page"`
	MarginMM float64 `yaml:"margin_mm"`
	GapMM    float64 `yaml:"gap_mm"`
	Grid     struct {
		Columns int `yaml:"columns"`
		Rows    int `yaml:"rows"`
	} `yaml:"grid"`
	Style        string            `yaml:"style"`
	DefaultColor string            `yaml:"default_color"`
	Palette      map[string]string `yaml:"palette"`
	Output       string            `yaml:"output"`
}

// Default is a portrait A4 sheet of 3x3 filled cards on a gray default.
func Default() *Config {
	cfg := &Config{
		MarginMM:     10,
		GapMM:        3.5,
		Style:        palette.Filled.String(),
		DefaultColor: palette.DefaultColorName,
		Output:       utils.DefaultOutputName,
	}
	cfg.Page.WidthMM = utils.A4_WIDTH_MM
	cfg.Page.HeightMM = utils.A4_HEIGHT_MM
	cfg.Grid.Columns = 3
	cfg.Grid.Rows = 3
	return cfg
}

// Load reads a YAML file over the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Style == "" {
		cfg.Style = palette.Filled.String()
	}
	if cfg.DefaultColor == "" {
		cfg.DefaultColor = palette.DefaultColorName
	}
	if cfg.Output == "" {
		cfg.Output = utils.DefaultOutputName
	}

	return cfg, nil
}

// Validate reports every problem that would stop generation before any
// drawing starts.
func (c *Config) Validate() error {
	var errs []error

	if c.Page.WidthMM <= 0 || c.Page.HeightMM <= 0 {
		errs = append(errs, fmt.Errorf("page size must be positive, got %.1fx%.1f mm", c.Page.WidthMM, c.Page.HeightMM))
	}
	if c.MarginMM < 0 {
		errs = append(errs, fmt.Errorf("margin must not be negative, got %.1f mm", c.MarginMM))
	}
	if c.GapMM < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative, got %.1f mm", c.GapMM))
	}
	if c.Grid.Columns <= 0 || c.Grid.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid must have at least one column and row, got %dx%d", c.Grid.Columns, c.Grid.Rows))
	}
	if _, err := palette.ParseMode(c.Style); err != nil {
		errs = append(errs, err)
	}

	p, rejected := palette.Default().With(c.Palette)
	if len(rejected) > 0 {
		errs = append(errs, fmt.Errorf("palette entries are not hex colors: %s", strings.Join(rejected, ", ")))
	}
	if res := p.Resolve(c.DefaultColor, palette.Color{}); res.Source == palette.SourceDefault {
		errs = append(errs, fmt.Errorf("default color %q is neither a palette name nor a hex code", c.DefaultColor))
	}

	if len(errs) == 0 {
		if _, err := layout.Compute(c.Shape()); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

func (c *Config) Shape() layout.Shape {
	return layout.Shape{
		PageWidth:  utils.MMToPt(c.Page.WidthMM),
		PageHeight: utils.MMToPt(c.Page.HeightMM),
		Margin:     utils.MMToPt(c.MarginMM),
		Gap:        utils.MMToPt(c.GapMM),
		Cols:       c.Grid.Columns,
		Rows:       c.Grid.Rows,
	}
}

func (c *Config) Mode() palette.Mode {
	m, _ := palette.ParseMode(c.Style)
	return m
}

// Colors returns the effective palette and the default card color.
func (c *Config) Colors() (*palette.Palette, palette.Color) {
	p, _ := palette.Default().With(c.Palette)
	fallback, _ := palette.Default().Lookup(palette.DefaultColorName)
	return p, p.Resolve(c.DefaultColor, fallback).Color
}
