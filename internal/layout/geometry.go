package layout

import (
	"errors"
	"fmt"
)

var ErrInvalidGeometry = errors.New("invalid grid geometry")

// Rect is a rectangle in PDF points with a lower-left origin.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64   { return r.Y + r.H }

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

type Point struct {
	X, Y float64
}

// Shape is the immutable input of Compute.
type Shape struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Gap        float64
	Cols       int
	Rows       int
}

type Grid struct {
	PageWidth  float64
	PageHeight float64
	CellWidth  float64
	CellHeight float64
	Margin     float64
	Gap        float64
	Cols       int
	Rows       int
	// Origin is the lower-left corner of the grid area.
	Origin Point
}

// Compute derives cell sizes from the page, margins and gaps. It fails only
// on configurations that cannot hold a single positive cell.
func Compute(s Shape) (Grid, error) {
	switch {
	case s.Cols <= 0 || s.Rows <= 0:
		return Grid{}, fmt.Errorf("%w: grid shape %dx%d", ErrInvalidGeometry, s.Cols, s.Rows)
	case s.PageWidth <= 0 || s.PageHeight <= 0:
		return Grid{}, fmt.Errorf("%w: page size %.2fx%.2f", ErrInvalidGeometry, s.PageWidth, s.PageHeight)
	case s.Margin < 0 || s.Gap < 0:
		return Grid{}, fmt.Errorf("%w: negative margin %.2f or gap %.2f", ErrInvalidGeometry, s.Margin, s.Gap)
	}

	usableW := s.PageWidth - 2*s.Margin - float64(s.Cols-1)*s.Gap
	usableH := s.PageHeight - 2*s.Margin - float64(s.Rows-1)*s.Gap
	g := Grid{
		PageWidth:  s.PageWidth,
		PageHeight: s.PageHeight,
		CellWidth:  usableW / float64(s.Cols),
		CellHeight: usableH / float64(s.Rows),
		Margin:     s.Margin,
		Gap:        s.Gap,
		Cols:       s.Cols,
		Rows:       s.Rows,
		Origin:     Point{X: s.Margin, Y: s.Margin},
	}
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return Grid{}, fmt.Errorf("%w: cells would be %.2fx%.2f", ErrInvalidGeometry, g.CellWidth, g.CellHeight)
	}
	return g, nil
}

func (g Grid) Capacity() int {
	return g.Cols * g.Rows
}

// CellRect returns the rectangle of a cell. Row 0 is the top row of the
// page, so y decreases as row grows.
func (g Grid) CellRect(row, col int) Rect {
	x := g.Origin.X + float64(col)*(g.CellWidth+g.Gap)
	top := g.PageHeight - g.Origin.Y - float64(row)*(g.CellHeight+g.Gap)
	return Rect{X: x, Y: top - g.CellHeight, W: g.CellWidth, H: g.CellHeight}
}

// Page returns the full page rectangle.
func (g Grid) Page() Rect {
	return Rect{W: g.PageWidth, H: g.PageHeight}
}
