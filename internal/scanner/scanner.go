package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kpauljoseph/cardsheet/pkg/logger"
)

var ErrNoImages = errors.New("no image files found")

type ImageFile struct {
	AbsolutePath string
	RelativePath string
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

func isImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

// FindImages walks dir recursively and returns every PNG/JPEG file, sorted
// by relative path so bundles load deterministically.
func (s *DirectoryScanner) FindImages(ctx context.Context, dir string) ([]ImageFile, error) {
	var files []ImageFile

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving %s: %w", dir, err)
	}

	err = filepath.Walk(absDir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") || !isImage(path) {
			return nil
		}

		relPath, err := filepath.Rel(absDir, path)
		if err != nil {
			relPath = path
		}
		s.logger.Debug("Found image (%d): %s", len(files)+1, relPath)

		files = append(files, ImageFile{
			AbsolutePath: path,
			RelativePath: relPath,
		})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s or its subdirectories", ErrNoImages, dir)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}
