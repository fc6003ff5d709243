package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/palette"
	"github.com/kpauljoseph/cardsheet/internal/placement"
	"github.com/kpauljoseph/cardsheet/pkg/version"
)

const FontFamily = "Helvetica"

var ErrImageDraw = errors.New("image draw failed")

// FpdfCanvas draws onto a go-pdf/fpdf document. fpdf places its origin at
// the top-left corner, so every y coordinate is flipped against the page
// height.
type FpdfCanvas struct {
	doc        *fpdf.Fpdf
	pageHeight float64
	translate  func(string) string
	pageOpen   bool
}

func NewFpdfCanvas(grid layout.Grid, title string) *FpdfCanvas {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: grid.PageWidth, Ht: grid.PageHeight},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator(version.GetVersionInfo(), true)
	if title != "" {
		doc.SetTitle(title, true)
	}
	doc.SetFont(FontFamily, "", 12)

	return &FpdfCanvas{
		doc:        doc,
		pageHeight: grid.PageHeight,
		translate:  doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (c *FpdfCanvas) TextWidth(text string, size float64) float64 {
	c.doc.SetFontSize(size)
	return c.doc.GetStringWidth(c.translate(text))
}

func (c *FpdfCanvas) BeginPage() error {
	if c.pageOpen {
		return fmt.Errorf("%w: page already open", ErrPhase)
	}
	c.doc.AddPage()
	c.pageOpen = true
	return c.doc.Error()
}

func (c *FpdfCanvas) RegisterImage(name string, png []byte) error {
	c.doc.RegisterImageOptionsReader(name, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	if err := c.doc.Error(); err != nil {
		c.doc.ClearError()
		return fmt.Errorf("failed to register image %s: %w", name, err)
	}
	return nil
}

func (c *FpdfCanvas) Draw(cmds ...placement.Command) error {
	if !c.pageOpen {
		return fmt.Errorf("%w: no open page", ErrPhase)
	}
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case placement.FillRect:
			c.setFill(cmd.Color)
			c.doc.Rect(cmd.Rect.X, c.flip(cmd.Rect.Top()), cmd.Rect.W, cmd.Rect.H, "F")
		case placement.StrokeRect:
			c.setDraw(cmd.Color, cmd.Width)
			c.doc.Rect(cmd.Rect.X, c.flip(cmd.Rect.Top()), cmd.Rect.W, cmd.Rect.H, "D")
		case placement.Line:
			c.setDraw(cmd.Color, cmd.Width)
			c.doc.Line(cmd.Segment.From.X, c.flip(cmd.Segment.From.Y), cmd.Segment.To.X, c.flip(cmd.Segment.To.Y))
		case placement.TextLine:
			c.doc.SetTextColor(int(cmd.Color.R), int(cmd.Color.G), int(cmd.Color.B))
			c.doc.SetFontSize(cmd.Size)
			c.doc.Text(cmd.X, c.flip(cmd.Y), c.translate(cmd.Text))
		case placement.DrawImage:
			c.doc.ImageOptions(cmd.Name, cmd.Rect.X, c.flip(cmd.Rect.Top()), cmd.Rect.W, cmd.Rect.H,
				false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")
			if err := c.doc.Error(); err != nil {
				c.doc.ClearError()
				return fmt.Errorf("%w: %s: %v", ErrImageDraw, cmd.Name, err)
			}
		default:
			return fmt.Errorf("unsupported drawing command %T", cmd)
		}
	}
	return c.doc.Error()
}

// EndPage closes the current page. fpdf finishes a page lazily, so this only
// guards against drawing between pages.
func (c *FpdfCanvas) EndPage() error {
	if !c.pageOpen {
		return fmt.Errorf("%w: no open page", ErrPhase)
	}
	c.pageOpen = false
	return c.doc.Error()
}

func (c *FpdfCanvas) Output(w io.Writer) error {
	if c.pageOpen {
		return fmt.Errorf("%w: page still open", ErrPhase)
	}
	return c.doc.Output(w)
}

func (c *FpdfCanvas) flip(y float64) float64 {
	return c.pageHeight - y
}

// setFill and setDraw always restate the color in DeviceRGB. fpdf writes
// colors with equal channels as DeviceGray, which viewers may map to a
// different shade than the RGB value.
func (c *FpdfCanvas) setFill(col palette.Color) {
	c.doc.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.doc.RawWriteStr(rgbOperator(col, "rg"))
}

func (c *FpdfCanvas) setDraw(col palette.Color, width float64) {
	c.doc.SetDrawColor(int(col.R), int(col.G), int(col.B))
	c.doc.RawWriteStr(rgbOperator(col, "RG"))
	c.doc.SetLineWidth(width)
}

func rgbOperator(col palette.Color, op string) string {
	return fmt.Sprintf("%.3f %.3f %.3f %s", float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, op)
}
