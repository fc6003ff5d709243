package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	textpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/kpauljoseph/cardsheet/pkg/logger"
	"github.com/kpauljoseph/cardsheet/pkg/models"
)

// ExpectedPages is the page count of every generated document.
const ExpectedPages = 2

type Inspection struct {
	Path string
	// ValidationErr is nil when pdfcpu accepted the file.
	ValidationErr error
	Pages         int
	Dimensions    []models.PageDimensions
	Text          []string
}

func (i *Inspection) Valid() bool {
	return i.ValidationErr == nil
}

// Check reports whether the document has the generated shape: valid, two
// pages, every page of the given size.
func (i *Inspection) Check(page models.PageDimensions, tolerance float64) error {
	if i.ValidationErr != nil {
		return fmt.Errorf("%s is not a valid PDF: %w", i.Path, i.ValidationErr)
	}
	if i.Pages != ExpectedPages {
		return fmt.Errorf("%s has %d pages, want %d", i.Path, i.Pages, ExpectedPages)
	}
	for n, dim := range i.Dimensions {
		if abs(dim.Width-page.Width) > tolerance || abs(dim.Height-page.Height) > tolerance {
			return fmt.Errorf("%s page %d is %.2fx%.2f pt, want %.2fx%.2f pt",
				i.Path, n+1, dim.Width, dim.Height, page.Width, page.Height)
		}
	}
	return nil
}

type Inspector struct {
	logger *logger.Logger
}

func NewInspector(logger *logger.Logger) *Inspector {
	return &Inspector{logger: logger}
}

func (in *Inspector) Inspect(ctx context.Context, path string) (*Inspection, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	result := &Inspection{Path: path}
	result.ValidationErr = api.ValidateFile(path, nil)
	if result.ValidationErr != nil {
		in.logger.Warn("validation of %s failed: %v", path, result.ValidationErr)
		return result, nil
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}
	result.Pages = pages

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get page dimensions: %w", err)
	}
	for _, dim := range dims {
		result.Dimensions = append(result.Dimensions, models.PageDimensions{Width: dim.Width, Height: dim.Height})
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text, err := extractText(path)
	if err != nil {
		in.logger.Warn("couldn't extract text from %s: %v", path, err)
	}
	result.Text = text

	in.logger.Debug("Inspected %s: %d pages", path, pages)
	return result, nil
}

// extractText returns the plain text of each page, one entry per page.
func extractText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	reader, err := textpdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to create text reader: %w", err)
	}

	pages := make([]string, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return pages, fmt.Errorf("page %d: %w", i, err)
		}
		pages[i-1] = strings.TrimSpace(content)
	}
	return pages, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
