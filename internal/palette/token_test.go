package palette_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardsheet/internal/palette"
)

var _ = Describe("ExtractColorKey", func() {
	DescribeTable("splits the token from the question",
		func(raw, key, text string, pos palette.TokenPosition) {
			got := palette.ExtractColorKey(raw)
			Expect(got.Key).To(Equal(key))
			Expect(got.Text).To(Equal(text))
			Expect(got.Position).To(Equal(pos))
		},
		Entry("leading", "(bleu) capital of France?", "bleu", "capital of France?", palette.LeadingToken),
		Entry("trailing", "capital of France? (bleu)", "bleu", "capital of France?", palette.TrailingToken),
		Entry("leading wins", "(bleu) capital? (rouge)", "bleu", "capital? (rouge)", palette.LeadingToken),
		Entry("hex token", "  (#F0A)  question  ", "#F0A", "question", palette.LeadingToken),
		Entry("token with spaces", "( vert ) q", "vert", "q", palette.LeadingToken),
		Entry("only a token", "(jaune)", "jaune", "", palette.LeadingToken),
		Entry("two trailing groups", "q (a) (b)", "b", "q (a)", palette.TrailingToken),
		Entry("no token", "  plain question  ", "", "plain question", palette.NoToken),
		Entry("parentheses in the middle", "what (really) is it?", "", "what (really) is it?", palette.NoToken),
		Entry("empty parentheses", "() question", "", "() question", palette.NoToken),
		Entry("multi-line text", "(rose) line one\nline two", "rose", "line one\nline two", palette.LeadingToken),
	)
})

var _ = Describe("Front style", func() {
	It("should fill the cell in filled mode", func() {
		s := palette.FrontStyle(palette.MustHex("#2D6CDF"), palette.Filled)
		Expect(s.Fill).To(Equal(palette.MustHex("#2D6CDF")))
		Expect(s.HasFrame).To(BeFalse())
		Expect(s.Inset).To(BeZero())
		Expect(s.Text).To(Equal(palette.White))
		Expect(s.ImageBackground).To(Equal(s.Fill))
	})

	It("should frame a white cell in framed mode", func() {
		s := palette.FrontStyle(palette.MustHex("#2D6CDF"), palette.Framed)
		Expect(s.Fill).To(Equal(palette.White))
		Expect(s.HasFrame).To(BeTrue())
		Expect(s.Frame).To(Equal(palette.MustHex("#2D6CDF")))
		Expect(s.Inset).To(Equal(palette.FrameWidth))
		Expect(s.FrameWidth).To(BeNumerically("~", 11.339, 0.001))
		Expect(s.Text).To(Equal(palette.Black))
		Expect(s.ImageBackground).To(Equal(palette.White))
	})

	It("should keep the back white", func() {
		s := palette.BackStyle()
		Expect(s.Fill).To(Equal(palette.White))
		Expect(s.Text).To(Equal(palette.Black))
		Expect(s.HasFrame).To(BeFalse())
	})

	DescribeTable("ParseMode",
		func(in string, want palette.Mode, ok bool) {
			m, err := palette.ParseMode(in)
			if ok {
				Expect(err).NotTo(HaveOccurred())
				Expect(m).To(Equal(want))
			} else {
				Expect(err).To(HaveOccurred())
			}
		},
		Entry("empty defaults to filled", "", palette.Filled, true),
		Entry("filled", "filled", palette.Filled, true),
		Entry("framed", "Framed", palette.Framed, true),
		Entry("unknown", "dotted", palette.Filled, false),
	)
})
