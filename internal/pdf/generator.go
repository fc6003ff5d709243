package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kpauljoseph/cardsheet/internal/config"
	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/placement"
	"github.com/kpauljoseph/cardsheet/pkg/logger"
	"github.com/kpauljoseph/cardsheet/pkg/models"
)

var ErrNoCards = errors.New("nothing to generate: no cards supplied")

// Report summarizes one generation run.
type Report struct {
	CardsRead int
	CardsUsed int
	Front     []CellReport
	Back      []CellReport
	Warnings  []string
}

func (r *Report) Dropped() int {
	if r.CardsRead > r.CardsUsed {
		return r.CardsRead - r.CardsUsed
	}
	return 0
}

// Fallbacks lists the cells that wanted an image but were drawn as text.
func (r *Report) Fallbacks() []CellReport {
	var out []CellReport
	for _, cells := range [][]CellReport{r.Front, r.Back} {
		for _, cell := range cells {
			if cell.Fallback != nil {
				out = append(out, cell)
			}
		}
	}
	return out
}

type CanvasFactory func(grid layout.Grid) Canvas

type Generator struct {
	cfg       *config.Config
	grid      layout.Grid
	logger    *logger.Logger
	newCanvas CanvasFactory
}

type GeneratorOption func(*Generator)

func WithCanvas(factory CanvasFactory) GeneratorOption {
	return func(g *Generator) {
		g.newCanvas = factory
	}
}

// NewGenerator validates cfg once; nothing is revalidated per card.
func NewGenerator(cfg *config.Config, logger *logger.Logger, options ...GeneratorOption) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := layout.Compute(cfg.Shape())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}

	g := &Generator{
		cfg:    cfg,
		grid:   grid,
		logger: logger,
		newCanvas: func(grid layout.Grid) Canvas {
			return NewFpdfCanvas(grid, "Flashcards")
		},
	}
	for _, opt := range options {
		opt(g)
	}
	return g, nil
}

func (g *Generator) Grid() layout.Grid {
	return g.grid
}

func (g *Generator) PageDimensions() models.PageDimensions {
	return models.PageDimensions{Width: g.grid.PageWidth, Height: g.grid.PageHeight}
}

// Generate writes the two-page document for cards to w.
func (g *Generator) Generate(ctx context.Context, cards []models.Card, src ImageSource, w io.Writer) (*Report, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	capacity := g.grid.Capacity()
	report := &Report{CardsRead: len(cards), CardsUsed: min(len(cards), capacity)}
	if report.Dropped() > 0 {
		g.logger.Info("Only the first %d of %d cards fit on the sheet", capacity, len(cards))
	}
	cards = models.FitToCapacity(cards, capacity)

	pal, def := g.cfg.Colors()
	canvas := g.newCanvas(g.grid)
	composer := NewComposer(canvas, g.grid, ComposerOptions{
		Palette:      pal,
		DefaultColor: def,
		Mode:         g.cfg.Mode(),
		Images:       src,
	}, g.logger)

	g.logger.Debug("Composing front page (%s style)", g.cfg.Mode())
	front, err := composer.ComposeFront(cards)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g.logger.Debug("Composing back page")
	back, err := composer.ComposeBack(cards)
	if err != nil {
		return nil, err
	}

	if phase := composer.Phase(); phase != Finished {
		return nil, fmt.Errorf("%w: document closed during %s page", ErrPhase, phase)
	}
	if err := canvas.Output(w); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	report.Front, report.Back = front, back
	if b, ok := src.(interface{ Warnings() []string }); ok {
		report.Warnings = append(report.Warnings, b.Warnings()...)
	}
	report.Warnings = append(report.Warnings, composer.Warnings()...)
	return report, nil
}

// GenerateFile writes the document to path. A partially written file is
// removed on failure.
func (g *Generator) GenerateFile(ctx context.Context, cards []models.Card, src ImageSource, path string) (*Report, error) {
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	report, err := g.Generate(ctx, cards, src, f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", path, cerr)
	}
	if err != nil {
		if rerr := os.Remove(path); rerr != nil {
			g.logger.Warn("failed to remove incomplete %s: %v", path, rerr)
		}
		return nil, err
	}

	g.logger.Info("Wrote %s (%d cards, %d image fallbacks)", path, report.CardsUsed, len(report.Fallbacks()))
	return report, nil
}

// Layouts counts cells per layout, front and back together.
func (r *Report) Layouts() map[placement.Layout]int {
	out := make(map[placement.Layout]int)
	for _, cells := range [][]CellReport{r.Front, r.Back} {
		for _, cell := range cells {
			out[cell.Layout]++
		}
	}
	return out
}
