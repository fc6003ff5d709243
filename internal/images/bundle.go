package images

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/kpauljoseph/cardsheet/internal/scanner"
	"github.com/kpauljoseph/cardsheet/pkg/logger"
)

var ErrNotFound = errors.New("image not found in bundle")

// Bundle holds decoded images keyed by their exact base filename.
type Bundle struct {
	images   map[string]image.Image
	warnings []string
	logger   *logger.Logger
}

func NewBundle(logger *logger.Logger) *Bundle {
	return &Bundle{
		images: make(map[string]image.Image),
		logger: logger,
	}
}

func (b *Bundle) Add(name string, img image.Image) {
	b.images[name] = img
}

// Lookup resolves a card's image reference. Names are matched exactly.
func (b *Bundle) Lookup(name string) (image.Image, bool) {
	if b == nil || name == "" {
		return nil, false
	}
	img, ok := b.images[name]
	return img, ok
}

func (b *Bundle) Len() int {
	if b == nil {
		return 0
	}
	return len(b.images)
}

func (b *Bundle) Names() []string {
	names := make([]string, 0, len(b.images))
	for name := range b.images {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Warnings lists entries that looked like images but could not be decoded.
func (b *Bundle) Warnings() []string {
	if b == nil {
		return nil
	}
	return b.warnings
}

func (b *Bundle) warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	b.warnings = append(b.warnings, msg)
	b.logger.Warn("%s", msg)
}

func IsImageName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// Load reads a bundle from a ZIP archive or a directory.
func Load(ctx context.Context, bundlePath string, logger *logger.Logger) (*Bundle, error) {
	info, err := os.Stat(bundlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image bundle: %w", err)
	}
	if info.IsDir() {
		return LoadDir(ctx, bundlePath, logger)
	}
	return OpenZip(bundlePath, logger)
}

func OpenZip(zipPath string, logger *logger.Logger) (*Bundle, error) {
	f, err := os.Open(zipPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open zip: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat zip: %w", err)
	}
	return ReadZip(f, info.Size(), logger)
}

// ReadZip decodes every PNG/JPEG entry of an archive. Entries in nested
// folders are keyed by their base name; the first entry wins on collisions.
func ReadZip(r io.ReaderAt, size int64, logger *logger.Logger) (*Bundle, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip: %w", err)
	}

	b := NewBundle(logger)
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		name := path.Base(entry.Name)
		if strings.HasPrefix(name, "._") || !IsImageName(name) {
			continue
		}
		if _, dup := b.images[name]; dup {
			b.warn("duplicate image %s in zip, keeping the first", entry.Name)
			continue
		}

		img, err := decodeEntry(entry)
		if err != nil {
			b.warn("could not load image %s: %v", entry.Name, err)
			continue
		}
		b.Add(name, img)
		logger.Debug("Loaded image %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy())
	}

	if b.Len() == 0 {
		b.warn("no valid image found in zip")
	}
	logger.Info("Loaded %d images from zip", b.Len())
	return b, nil
}

func decodeEntry(entry *zip.File) (image.Image, error) {
	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return imaging.Decode(rc, imaging.AutoOrientation(true))
}

func LoadDir(ctx context.Context, dir string, logger *logger.Logger) (*Bundle, error) {
	b := NewBundle(logger)
	files, err := scanner.New(logger).FindImages(ctx, dir)
	if errors.Is(err, scanner.ErrNoImages) {
		b.warn("no valid image found in %s", dir)
		return b, nil
	}
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		name := filepath.Base(file.AbsolutePath)
		if _, dup := b.images[name]; dup {
			b.warn("duplicate image %s in directory, keeping the first", file.RelativePath)
			continue
		}
		img, err := imaging.Open(file.AbsolutePath, imaging.AutoOrientation(true))
		if err != nil {
			b.warn("could not load image %s: %v", file.RelativePath, err)
			continue
		}
		b.Add(name, img)
		logger.Debug("Loaded image %s (%dx%d)", name, img.Bounds().Dx(), img.Bounds().Dy())
	}

	logger.Info("Loaded %d images from %s", b.Len(), dir)
	return b, nil
}
