package pdf

import (
	"image"
	"io"

	"github.com/kpauljoseph/cardsheet/internal/placement"
)

// Canvas is the drawing surface the composer writes to. Coordinates are PDF
// points with a lower-left origin.
type Canvas interface {
	placement.Measurer
	BeginPage() error
	// RegisterImage makes an encoded PNG drawable under name.
	RegisterImage(name string, png []byte) error
	Draw(cmds ...placement.Command) error
	EndPage() error
	Output(w io.Writer) error
}

// ImageSource resolves image references by exact file name.
type ImageSource interface {
	Lookup(name string) (image.Image, bool)
}
