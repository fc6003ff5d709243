package placement

import (
	"errors"

	"github.com/kpauljoseph/cardsheet/internal/layout"
)

var ErrZeroDimension = errors.New("image has a zero dimension")

// FitImage scales a w×h image into a budget, preserving aspect ratio. The
// width-constrained height is tried first; if it overflows the budget the
// size is re-derived from the height instead.
func FitImage(w, h int, budgetW, budgetH float64) (float64, float64, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, ErrZeroDimension
	}
	fw := budgetW
	fh := float64(h) / float64(w) * fw
	if fh > budgetH {
		fh = budgetH
		fw = float64(w) / float64(h) * fh
	}
	return fw, fh, nil
}

// Center returns a w×h rectangle centered in box.
func Center(box layout.Rect, w, h float64) layout.Rect {
	return layout.Rect{
		X: box.X + (box.W-w)/2,
		Y: box.Y + (box.H-h)/2,
		W: w,
		H: h,
	}
}
