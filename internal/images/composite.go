package images

import (
	"bytes"
	"errors"
	"image"

	"github.com/disintegration/imaging"

	"github.com/kpauljoseph/cardsheet/internal/palette"
)

var (
	ErrEmptyImage = errors.New("image has no pixels")
	ErrReleased   = errors.New("composite already released")
)

// Composite is an image flattened onto an opaque background, ready for a
// PDF image primitive that cannot blend alpha itself. It holds its pixels
// and encoded bytes until Close.
type Composite struct {
	Width  int
	Height int

	img     *image.NRGBA
	encoded []byte
}

func NewComposite(src image.Image, bg palette.Color) (*Composite, error) {
	if src == nil {
		return nil, ErrEmptyImage
	}
	bounds := src.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	canvas := imaging.New(bounds.Dx(), bounds.Dy(), bg.RGBA())
	flat := imaging.Overlay(canvas, src, image.Pt(0, 0), 1.0)

	return &Composite{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		img:    flat,
	}, nil
}

// PNG returns the encoded composite; the encoding is done once.
func (c *Composite) PNG() ([]byte, error) {
	if c.img == nil {
		return nil, ErrReleased
	}
	if c.encoded == nil {
		var buf bytes.Buffer
		if err := imaging.Encode(&buf, c.img, imaging.PNG); err != nil {
			return nil, err
		}
		c.encoded = buf.Bytes()
	}
	return c.encoded, nil
}

// Close releases the pixels and encoded bytes. It is safe to call twice.
func (c *Composite) Close() error {
	c.img = nil
	c.encoded = nil
	return nil
}
