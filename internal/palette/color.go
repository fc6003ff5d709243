package palette

import (
	"fmt"
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

type Color struct {
	R, G, B uint8
}

var (
	White     = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	Black     = Color{}
	LightGray = Color{R: 0xD3, G: 0xD3, B: 0xD3}
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}(?:[0-9a-fA-F]{3})?)$`)

// ParseHex accepts 3 or 6 hex digits with or without a leading '#'. Three
// digit codes are expanded by doubling each digit.
func ParseHex(s string) (Color, bool) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Color{}, false
	}
	digits := m[1]
	if len(digits) == 3 {
		var b strings.Builder
		for _, d := range digits {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		digits = b.String()
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

func MustHex(s string) Color {
	c, ok := ParseHex(s)
	if !ok {
		panic(fmt.Sprintf("palette: invalid hex color %q", s))
	}
	return c
}

func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// Luminance is the relative luminance of the normalized channels.
func (c Color) Luminance() float64 {
	return 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
}

const darkThreshold = 0.55

// IsDark reports whether white text reads better than black text on c.
// Pure white is never dark.
func IsDark(c Color) bool {
	if c == White {
		return false
	}
	return c.Luminance() < darkThreshold
}

// TextColorOn picks black or white text for a background.
func TextColorOn(bg Color) Color {
	if IsDark(bg) {
		return White
	}
	return Black
}
