package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardsheet/internal/layout"
)

var _ = Describe("Cell Addressing", func() {
	var g layout.Grid

	BeforeEach(func() {
		var err error
		g, err = layout.Compute(a4Shape())
		Expect(err).NotTo(HaveOccurred())
	})

	It("should map front indices row by row", func() {
		Expect(g.FrontAddress(0)).To(Equal(layout.Address{Row: 0, Col: 0}))
		Expect(g.FrontAddress(2)).To(Equal(layout.Address{Row: 0, Col: 2}))
		Expect(g.FrontAddress(4)).To(Equal(layout.Address{Row: 1, Col: 1}))
		Expect(g.FrontAddress(8)).To(Equal(layout.Address{Row: 2, Col: 2}))
	})

	It("should mirror columns and never rows", func() {
		for i := 0; i < g.Capacity(); i++ {
			front := g.FrontAddress(i)
			back := g.BackAddress(i)
			Expect(back.Row).To(Equal(i / g.Cols))
			Expect(back.Col).To(Equal(g.Cols - 1 - i%g.Cols))
			Expect(back.Row).To(Equal(front.Row))
		}
	})

	It("should visit every back cell exactly once", func() {
		seen := map[layout.Address]bool{}
		for i := 0; i < g.Capacity(); i++ {
			seen[g.BackAddress(i)] = true
		}
		Expect(seen).To(HaveLen(g.Capacity()))
	})

	It("should put a card and its back at mirrored x positions", func() {
		for i := 0; i < g.Capacity(); i++ {
			front := g.Rect(g.FrontAddress(i))
			back := g.Rect(g.BackAddress(i))
			Expect(back.Y).To(Equal(front.Y))
			Expect(back.X).To(BeNumerically("~", g.PageWidth-front.Right(), 1e-9))
		}
	})
})

var _ = Describe("Cut Guides", func() {
	It("should run along both edges of every column and row", func() {
		g, err := layout.Compute(a4Shape())
		Expect(err).NotTo(HaveOccurred())

		guides := g.CutGuides()
		Expect(guides).To(HaveLen(2 * (g.Cols + g.Rows)))

		var vertical, horizontal int
		for _, s := range guides {
			if s.Vertical() {
				vertical++
				Expect(s.From.Y).To(BeZero())
				Expect(s.To.Y).To(Equal(g.PageHeight))
			} else {
				horizontal++
				Expect(s.From.X).To(BeZero())
				Expect(s.To.X).To(Equal(g.PageWidth))
			}
		}
		Expect(vertical).To(Equal(2 * g.Cols))
		Expect(horizontal).To(Equal(2 * g.Rows))
	})

	It("should line up with cell edges", func() {
		g, err := layout.Compute(a4Shape())
		Expect(err).NotTo(HaveOccurred())

		guides := g.CutGuides()
		first := g.CellRect(0, 0)
		Expect(guides[0].From.X).To(Equal(first.X))
		Expect(guides[1].From.X).To(Equal(first.Right()))

		bottomRow := g.CellRect(g.Rows-1, 0)
		Expect(guides[2*g.Cols].From.Y).To(Equal(bottomRow.Y))
		Expect(guides[2*g.Cols+1].From.Y).To(Equal(bottomRow.Top()))
	})
})
