package utils

import (
	"os"
	"path/filepath"
)

const DefaultOutputName = "cartes_recto_verso.pdf"

func GetDefaultOutputDir() string {
	tmpDir, err := os.MkdirTemp("", "cardsheet-output-*")
	if err != nil {
		// If we can't create a temp directory, fall back to local directory
		return "cardsheet-previews"
	}
	return tmpDir
}

// GetDefaultOutputPath places the generated PDF next to the input table.
func GetDefaultOutputPath(tablePath string) string {
	if tablePath == "" {
		return DefaultOutputName
	}
	return filepath.Join(filepath.Dir(tablePath), DefaultOutputName)
}
