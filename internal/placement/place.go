package placement

import (
	"math"
	"strings"

	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/palette"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

const (
	// Padding is always applied around a text box.
	Padding = 6.0
	// ImageRatio bounds a lone image to this share of the content area.
	ImageRatio = 0.9
	// ImageBandFraction sizes the square image band next to text.
	ImageBandFraction = 0.5
)

// ElementSpacing separates the image band, the text band and the cell edges.
var ElementSpacing = utils.CMToPt(0.8)

type Layout int

const (
	TextOnly Layout = iota
	ImageOnly
	ImageWithText
)

func (l Layout) String() string {
	switch l {
	case ImageOnly:
		return "image"
	case ImageWithText:
		return "image+text"
	default:
		return "text"
	}
}

type FallbackReason string

const (
	ImageMissing         FallbackReason = "image missing from bundle"
	ImageZeroDimension   FallbackReason = "image has a zero dimension"
	ImageCompositeFailed FallbackReason = "image compositing failed"
	ImageDrawFailed      FallbackReason = "image could not be drawn"
)

// Fallback explains why a cell that asked for an image got text only.
type Fallback struct {
	Reason FallbackReason
	Err    error
}

func (f *Fallback) Error() string {
	if f.Err != nil {
		return string(f.Reason) + ": " + f.Err.Error()
	}
	return string(f.Reason)
}

func (f *Fallback) Unwrap() error {
	return f.Err
}

type TextStyle struct {
	Size    float64
	Leading float64
}

// Image is an image already registered with the canvas under Name.
type Image struct {
	Name   string
	Width  int
	Height int
}

type Request struct {
	Cell    layout.Rect
	Content string
	Image   *Image
	// ImageFailure is set when the cell had an image reference that could
	// not be turned into an Image.
	ImageFailure *Fallback
	Style        palette.Style
	Font         TextStyle
}

type Placement struct {
	Layout    Layout
	Commands  []Command
	Fallback  *Fallback
	Lines     []string
	Truncated bool
	TextBox   layout.Rect
	ImageRect layout.Rect
}

// Place lays out one cell: background, optional frame, then image and text
// following the text-only, image-only or image-with-text rule.
func Place(req Request, m Measurer) Placement {
	var p Placement
	p.Commands = append(p.Commands, FillRect{Rect: req.Cell, Color: req.Style.Fill})
	if req.Style.HasFrame {
		half := req.Style.FrameWidth / 2
		p.Commands = append(p.Commands, StrokeRect{
			Rect:  req.Cell.Inset(half),
			Color: req.Style.Frame,
			Width: req.Style.FrameWidth,
		})
	}

	content := req.Cell.Inset(req.Style.Inset)
	text := strings.TrimSpace(req.Content)

	switch {
	case req.ImageFailure != nil:
		p.Fallback = req.ImageFailure
	case req.Image == nil:
	case req.Image.Width <= 0 || req.Image.Height <= 0:
		p.Fallback = &Fallback{Reason: ImageZeroDimension, Err: ErrZeroDimension}
	case text == "":
		w, h, _ := FitImage(req.Image.Width, req.Image.Height, ImageRatio*content.W, ImageRatio*content.H)
		p.Layout = ImageOnly
		p.ImageRect = Center(content, w, h)
		p.Commands = append(p.Commands, DrawImage{Name: req.Image.Name, Rect: p.ImageRect})
		return p
	default:
		side := content.H * ImageBandFraction
		band := layout.Rect{
			X: content.X + (content.W-side)/2,
			Y: content.Y + ElementSpacing,
			W: side,
			H: side,
		}
		w, h, _ := FitImage(req.Image.Width, req.Image.Height, side, side)
		p.Layout = ImageWithText
		p.ImageRect = Center(band, w, h)
		p.Commands = append(p.Commands, DrawImage{Name: req.Image.Name, Rect: p.ImageRect})

		p.TextBox = layout.Rect{
			X: content.X,
			Y: band.Top() + ElementSpacing,
			W: content.W,
			H: math.Max(0, content.H-(3*ElementSpacing+side)),
		}
		p.placeText(p.TextBox, text, req, m)
		return p
	}

	p.Layout = TextOnly
	p.TextBox = content
	p.placeText(content, text, req, m)
	return p
}

// placeText wraps and vertically centers text inside box. Lines that do
// not fit are dropped, but at least one line is always kept.
func (p *Placement) placeText(box layout.Rect, text string, req Request, m Measurer) {
	inner := box.Inset(Padding)
	font := req.Font
	lines := WrapText(text, inner.W, font.Size, m)

	maxLines := int(math.Floor(inner.H / font.Leading))
	if maxLines < 1 {
		maxLines = 1
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		p.Truncated = true
	}
	p.Lines = lines

	height := math.Min(float64(len(lines))*font.Leading, math.Max(inner.H, 0))
	top := inner.Y + (inner.H-height)/2 + height
	for k, line := range lines {
		w := m.TextWidth(line, font.Size)
		p.Commands = append(p.Commands, TextLine{
			X:     inner.X + (inner.W-w)/2,
			Y:     top - font.Size - float64(k)*font.Leading,
			Text:  line,
			Size:  font.Size,
			Color: req.Style.Text,
		})
	}
}
