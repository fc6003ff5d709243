package placement

import (
	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/palette"
)

// Command is one drawing instruction for a canvas. All coordinates are PDF
// points with a lower-left origin.
type Command interface {
	command()
}

type FillRect struct {
	Rect  layout.Rect
	Color palette.Color
}

type StrokeRect struct {
	Rect  layout.Rect
	Color palette.Color
	Width float64
}

type Line struct {
	Segment layout.Segment
	Color   palette.Color
	Width   float64
}

// TextLine draws one already-wrapped line with its baseline at Y.
type TextLine struct {
	X, Y  float64
	Text  string
	Size  float64
	Color palette.Color
}

type DrawImage struct {
	Name string
	Rect layout.Rect
}

func (FillRect) command()   {}
func (StrokeRect) command() {}
func (Line) command()       {}
func (TextLine) command()   {}
func (DrawImage) command()  {}
