package palette

import (
	"fmt"
	"strings"

	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

type Mode int

const (
	Filled Mode = iota
	Framed
)

// FrameWidth is the border width of framed fronts, in points.
var FrameWidth = utils.MMToPt(4)

func (m Mode) String() string {
	if m == Framed {
		return "framed"
	}
	return "filled"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "filled", "fill":
		return Filled, nil
	case "framed", "frame":
		return Framed, nil
	default:
		return Filled, fmt.Errorf("unknown style %q (want filled or framed)", s)
	}
}

// Style is the per-cell appearance derived from a resolved color.
type Style struct {
	Fill Color
	// Frame is drawn just inside the cell edge when HasFrame is set.
	Frame      Color
	HasFrame   bool
	FrameWidth float64
	Text       Color
	// ImageBackground is what transparent image pixels are composited onto.
	ImageBackground Color
	// Inset is applied to every side of the cell before content placement.
	Inset float64
}

// FrontStyle derives the front style of a card. In framed mode content sits
// on white, so text is always black.
func FrontStyle(cardColor Color, mode Mode) Style {
	if mode == Framed {
		return Style{
			Fill:            White,
			Frame:           cardColor,
			HasFrame:        true,
			FrameWidth:      FrameWidth,
			Text:            Black,
			ImageBackground: White,
			Inset:           FrameWidth,
		}
	}
	return Style{
		Fill:            cardColor,
		Text:            TextColorOn(cardColor),
		ImageBackground: cardColor,
	}
}

// BackStyle is fixed: white background, black text, no frame.
func BackStyle() Style {
	return Style{Fill: White, Text: Black, ImageBackground: White}
}
