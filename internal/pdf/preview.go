package pdf

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/go-fitz"

	"github.com/kpauljoseph/cardsheet/pkg/logger"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

const DefaultPreviewDPI = 72.0

// PagePreview is one rasterized page written to disk.
type PagePreview struct {
	PageNum   int
	ImagePath string
	Hash      string
	Width     int
	Height    int
}

type Previewer struct {
	outputDir string
	dpi       float64
	logger    *logger.Logger
}

func NewPreviewer(outputDir string, dpi float64, logger *logger.Logger) (*Previewer, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create preview directory: %w", err)
	}
	if dpi <= 0 {
		dpi = DefaultPreviewDPI
	}
	return &Previewer{
		outputDir: outputDir,
		dpi:       dpi,
		logger:    logger,
	}, nil
}

// Render rasterizes every page of pdfPath to a PNG in the output directory.
func (p *Previewer) Render(ctx context.Context, pdfPath string) ([]PagePreview, error) {
	p.logger.Debug("Rendering previews of %s at %.0f dpi", pdfPath, p.dpi)

	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	var previews []PagePreview

	// Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(pageNum, p.dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageNum+1, err)
		}

		preview, err := p.save(img, base, pageNum)
		if err != nil {
			return nil, err
		}
		p.logger.Trace("Page %d: %dx%d px, hash %s", pageNum+1, preview.Width, preview.Height, preview.Hash)
		previews = append(previews, preview)
	}

	return previews, nil
}

func (p *Previewer) save(img image.Image, base string, pageNum int) (PagePreview, error) {
	hash, err := utils.GenerateImageHash(img)
	if err != nil {
		return PagePreview{}, fmt.Errorf("failed to hash page %d: %w", pageNum+1, err)
	}

	path := filepath.Join(p.outputDir, fmt.Sprintf("%s_page%d.png", base, pageNum+1))
	if err := imaging.Save(img, path); err != nil {
		return PagePreview{}, fmt.Errorf("failed to save page %d: %w", pageNum+1, err)
	}

	bounds := img.Bounds()
	return PagePreview{
		PageNum:   pageNum,
		ImagePath: path,
		Hash:      hash,
		Width:     bounds.Dx(),
		Height:    bounds.Dy(),
	}, nil
}
