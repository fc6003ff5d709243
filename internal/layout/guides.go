package layout

type Segment struct {
	From, To Point
}

func (s Segment) Vertical() bool {
	return s.From.X == s.To.X
}

// CutGuides returns full-bleed lines along both edges of every column and
// every row. Each line crosses the whole page so it stays visible past the
// grid for manual cutting.
func (g Grid) CutGuides() []Segment {
	guides := make([]Segment, 0, 2*(g.Cols+g.Rows))
	for col := 0; col < g.Cols; col++ {
		r := g.CellRect(0, col)
		for _, x := range []float64{r.X, r.Right()} {
			guides = append(guides, Segment{From: Point{X: x, Y: 0}, To: Point{X: x, Y: g.PageHeight}})
		}
	}
	for row := g.Rows - 1; row >= 0; row-- {
		r := g.CellRect(row, 0)
		for _, y := range []float64{r.Y, r.Top()} {
			guides = append(guides, Segment{From: Point{X: 0, Y: y}, To: Point{X: g.PageWidth, Y: y}})
		}
	}
	return guides
}
