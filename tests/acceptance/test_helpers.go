package acceptance

import (
	"archive/zip"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"
)

// WriteTable writes rows as a semicolon separated card table.
func WriteTable(dir, name string, rows [][]string) (string, error) {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, ";"))
		b.WriteString("\n")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write table: %w", err)
	}
	return path, nil
}

// WriteImageZip stores each image as a PNG entry of a new ZIP archive.
func WriteImageZip(dir, name string, imgs map[string]image.Image) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create zip: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for entry, img := range imgs {
		w, err := zw.Create(entry)
		if err != nil {
			return "", fmt.Errorf("failed to add %s: %w", entry, err)
		}
		if err := imaging.Encode(w, img, imaging.PNG); err != nil {
			return "", fmt.Errorf("failed to encode %s: %w", entry, err)
		}
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish zip: %w", err)
	}
	return path, nil
}

// Filled returns a w x h image of a single color.
func Filled(w, h int, c color.NRGBA) *image.NRGBA {
	return imaging.New(w, h, c)
}

// HalfTransparent is opaque c on its left half and fully transparent on
// its right half.
func HalfTransparent(w, h int, c color.NRGBA) *image.NRGBA {
	img := imaging.New(w, h, color.NRGBA{})
	for y := 0; y < h; y++ {
		for x := 0; x < w/2; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// RenderedPage is one page rasterized at 72 dpi, so one pixel covers one
// PDF point.
type RenderedPage struct {
	img        image.Image
	pageHeight float64
}

func RenderPages(pdfPath string) ([]RenderedPage, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var pages []RenderedPage
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, 72)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", n+1, err)
		}
		pages = append(pages, RenderedPage{img: img, pageHeight: float64(img.Bounds().Dy())})
	}
	return pages, nil
}

func (p RenderedPage) Image() image.Image {
	return p.img
}

// At samples the pixel under a point given in PDF coordinates with a
// lower-left origin.
func (p RenderedPage) At(x, y float64) color.NRGBA {
	b := p.img.Bounds()
	px := b.Min.X + int(x)
	py := b.Min.Y + int(p.pageHeight-y)
	return color.NRGBAModel.Convert(p.img.At(px, py)).(color.NRGBA)
}

// Near reports whether two colors differ by at most tol on every channel.
func Near(a, b color.NRGBA, tol int) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= tol && d(a.G, b.G) <= tol && d(a.B, b.B) <= tol
}
