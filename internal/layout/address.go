package layout

type Address struct {
	Row int
	Col int
}

// FrontAddress maps a card index to its cell on the front page.
func (g Grid) FrontAddress(i int) Address {
	return Address{Row: i / g.Cols, Col: i % g.Cols}
}

// MirrorColumn returns the back-page column for a front-page column. Only
// columns are mirrored; a long-edge duplex flip keeps rows in place.
func (g Grid) MirrorColumn(col int) int {
	return g.Cols - 1 - col
}

// BackAddress maps a card index to its cell on the back page.
func (g Grid) BackAddress(i int) Address {
	a := g.FrontAddress(i)
	a.Col = g.MirrorColumn(a.Col)
	return a
}

func (g Grid) Rect(a Address) Rect {
	return g.CellRect(a.Row, a.Col)
}
