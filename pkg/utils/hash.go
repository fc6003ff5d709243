package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
)

// GenerateImageHash fingerprints rendered pixels so two rasterized pages can
// be compared without keeping both images around.
func GenerateImageHash(img image.Image) (string, error) {
	if img == nil {
		return "", fmt.Errorf("nil image")
	}
	hasher := sha256.New()
	bounds := img.Bounds()
	fmt.Fprintf(hasher, "%dx%d;", bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			fmt.Fprintf(hasher, "%d%d%d%d", r, g, b, a)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
