package pdf

import (
	"errors"
	"fmt"
	"image"

	"github.com/kpauljoseph/cardsheet/internal/images"
	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/palette"
	"github.com/kpauljoseph/cardsheet/internal/placement"
	"github.com/kpauljoseph/cardsheet/pkg/logger"
	"github.com/kpauljoseph/cardsheet/pkg/models"
)

const (
	BorderWidth   = 1.0
	CutGuideWidth = 0.2
)

var (
	FrontFont = placement.TextStyle{Size: 16, Leading: 18}
	BackFont  = placement.TextStyle{Size: 12.5, Leading: 14.5}
)

var ErrPhase = errors.New("page composed out of order")

type Phase int

const (
	FrontPage Phase = iota
	BackPage
	Finished
)

func (p Phase) String() string {
	switch p {
	case FrontPage:
		return "front"
	case BackPage:
		return "back"
	default:
		return "finished"
	}
}

// CellReport records how one cell was drawn.
type CellReport struct {
	Index     int
	Side      models.Side
	Address   layout.Address
	Layout    placement.Layout
	Fallback  *placement.Fallback
	Color     palette.Resolution
	Lines     int
	Truncated bool
}

type Composer struct {
	canvas       Canvas
	grid         layout.Grid
	palette      *palette.Palette
	defaultColor palette.Color
	mode         palette.Mode
	images       ImageSource
	logger       *logger.Logger

	phase    Phase
	warnings []string
}

type ComposerOptions struct {
	Palette      *palette.Palette
	DefaultColor palette.Color
	Mode         palette.Mode
	Images       ImageSource
}

func NewComposer(canvas Canvas, grid layout.Grid, opts ComposerOptions, logger *logger.Logger) *Composer {
	p := opts.Palette
	if p == nil {
		p = palette.Default()
	}
	return &Composer{
		canvas:       canvas,
		grid:         grid,
		palette:      p,
		defaultColor: opts.DefaultColor,
		mode:         opts.Mode,
		images:       opts.Images,
		logger:       logger,
	}
}

func (c *Composer) Phase() Phase {
	return c.phase
}

func (c *Composer) Warnings() []string {
	return c.warnings
}

// ComposeFront draws the front page: every card in natural order, a border
// around each cell, then the cut guides across the whole page.
func (c *Composer) ComposeFront(cards []models.Card) ([]CellReport, error) {
	if c.phase != FrontPage {
		return nil, fmt.Errorf("%w: front requested during %s page", ErrPhase, c.phase)
	}
	cards = models.FitToCapacity(cards, c.grid.Capacity())

	if err := c.canvas.BeginPage(); err != nil {
		return nil, fmt.Errorf("failed to begin front page: %w", err)
	}

	reports := make([]CellReport, 0, len(cards))
	for i, card := range cards {
		addr := c.grid.FrontAddress(i)
		res := c.palette.Resolve(card.ColorKey, c.defaultColor)
		if res.Unrecognized {
			c.warn("card %d: unknown color %q, using default %s", i+1, res.Token, c.defaultColor.Hex())
		}

		style := palette.FrontStyle(res.Color, c.mode)
		report, err := c.drawCell(i, models.Front, card, addr, style, FrontFont)
		if err != nil {
			return nil, err
		}
		report.Color = res

		if err := c.canvas.Draw(placement.StrokeRect{
			Rect:  c.grid.Rect(addr),
			Color: palette.LightGray,
			Width: BorderWidth,
		}); err != nil {
			return nil, fmt.Errorf("failed to draw border of card %d: %w", i+1, err)
		}
		reports = append(reports, report)
	}

	guides := c.grid.CutGuides()
	cmds := make([]placement.Command, 0, len(guides))
	for _, seg := range guides {
		cmds = append(cmds, placement.Line{Segment: seg, Color: palette.Black, Width: CutGuideWidth})
	}
	if err := c.canvas.Draw(cmds...); err != nil {
		return nil, fmt.Errorf("failed to draw cut guides: %w", err)
	}

	if err := c.canvas.EndPage(); err != nil {
		return nil, fmt.Errorf("failed to finish front page: %w", err)
	}
	c.phase = BackPage
	return reports, nil
}

// ComposeBack draws the answers with the columns mirrored so each back sits
// behind its front after a long-edge flip.
func (c *Composer) ComposeBack(cards []models.Card) ([]CellReport, error) {
	if c.phase != BackPage {
		return nil, fmt.Errorf("%w: back requested during %s page", ErrPhase, c.phase)
	}
	cards = models.FitToCapacity(cards, c.grid.Capacity())

	if err := c.canvas.BeginPage(); err != nil {
		return nil, fmt.Errorf("failed to begin back page: %w", err)
	}

	style := palette.BackStyle()
	reports := make([]CellReport, 0, len(cards))
	for i, card := range cards {
		report, err := c.drawCell(i, models.Back, card, c.grid.BackAddress(i), style, BackFont)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	if err := c.canvas.EndPage(); err != nil {
		return nil, fmt.Errorf("failed to finish back page: %w", err)
	}
	c.phase = Finished
	return reports, nil
}

func (c *Composer) drawCell(index int, side models.Side, card models.Card, addr layout.Address,
	style palette.Style, font placement.TextStyle) (CellReport, error) {
	req := placement.Request{
		Cell:    c.grid.Rect(addr),
		Content: card.Text(side),
		Style:   style,
		Font:    font,
	}

	img, failure, release := c.prepareImage(index, side, card.Image(side), style.ImageBackground)
	defer release()
	req.Image, req.ImageFailure = img, failure

	p := placement.Place(req, c.canvas)
	if err := c.canvas.Draw(p.Commands...); err != nil {
		if !errors.Is(err, ErrImageDraw) {
			return CellReport{}, fmt.Errorf("failed to draw %s of card %d: %w", side, index+1, err)
		}
		req.Image = nil
		req.ImageFailure = &placement.Fallback{Reason: placement.ImageDrawFailed, Err: err}
		p = placement.Place(req, c.canvas)
		if err := c.canvas.Draw(p.Commands...); err != nil {
			return CellReport{}, fmt.Errorf("failed to draw %s of card %d: %w", side, index+1, err)
		}
	}

	if p.Fallback != nil {
		c.warn("card %d %s: %v, drawing text only", index+1, side, p.Fallback)
	}
	if p.Truncated {
		c.warn("card %d %s: text truncated to %d lines", index+1, side, len(p.Lines))
	}
	c.logger.Trace("card %d %s at (%d,%d): %s layout, %d lines", index+1, side, addr.Row, addr.Col, p.Layout, len(p.Lines))

	return CellReport{
		Index:     index,
		Side:      side,
		Address:   addr,
		Layout:    p.Layout,
		Fallback:  p.Fallback,
		Lines:     len(p.Lines),
		Truncated: p.Truncated,
	}, nil
}

// prepareImage resolves, composites and registers the image of one cell.
// The returned release func must be called once the cell is drawn.
func (c *Composer) prepareImage(index int, side models.Side, ref string, bg palette.Color) (*placement.Image, *placement.Fallback, func()) {
	noop := func() {}
	if ref == "" {
		return nil, nil, noop
	}

	src := lookup(c.images, ref)
	if src == nil {
		return nil, &placement.Fallback{
			Reason: placement.ImageMissing,
			Err:    fmt.Errorf("%w: %s", images.ErrNotFound, ref),
		}, noop
	}

	comp, err := images.NewComposite(src, bg)
	if err != nil {
		reason := placement.ImageCompositeFailed
		if errors.Is(err, images.ErrEmptyImage) {
			reason = placement.ImageZeroDimension
		}
		return nil, &placement.Fallback{Reason: reason, Err: fmt.Errorf("%s: %w", ref, err)}, noop
	}

	release := func() {
		if err := comp.Close(); err != nil {
			c.warn("card %d %s: failed to release image %s: %v", index+1, side, ref, err)
		}
	}

	data, err := comp.PNG()
	if err != nil {
		release()
		return nil, &placement.Fallback{Reason: placement.ImageCompositeFailed, Err: fmt.Errorf("%s: %w", ref, err)}, noop
	}

	name := fmt.Sprintf("card-%d-%s", index, side)
	if err := c.canvas.RegisterImage(name, data); err != nil {
		release()
		return nil, &placement.Fallback{Reason: placement.ImageDrawFailed, Err: err}, noop
	}

	return &placement.Image{Name: name, Width: comp.Width, Height: comp.Height}, nil, release
}

func (c *Composer) warn(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
	c.logger.Warn(format, args...)
}

func lookup(src ImageSource, name string) image.Image {
	if src == nil {
		return nil
	}
	img, ok := src.Lookup(name)
	if !ok {
		return nil
	}
	return img
}
