package placement_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardsheet/internal/placement"
)

var _ = Describe("Text", func() {
	m := monoMeasurer{}

	Context("NormalizeText", func() {
		DescribeTable("turns separators into line breaks",
			func(in string, want []string) {
				Expect(placement.NormalizeText(in)).To(Equal(want))
			},
			Entry("semicolon", "a;b", []string{"a", "b"}),
			Entry("newline", "a\nb", []string{"a", "b"}),
			Entry("windows newline", "a\r\nb", []string{"a", "b"}),
			Entry("mixed", "a;b\nc", []string{"a", "b", "c"}),
			Entry("consecutive", "a;;b", []string{"a", "", "b"}),
			Entry("none", "plain", []string{"plain"}),
		)
	})

	Context("WrapText", func() {
		It("should substitute a non-breaking blank for empty text", func() {
			Expect(placement.WrapText("", 100, 10, m)).To(Equal([]string{placement.NonBreakingBlank}))
			Expect(placement.WrapText("   ", 100, 10, m)).To(Equal([]string{placement.NonBreakingBlank}))
		})

		It("should keep short text on one line", func() {
			Expect(placement.WrapText("hello world", 100, 10, m)).To(Equal([]string{"hello world"}))
		})

		It("should wrap at word boundaries", func() {
			// 10 runes fit in 50pt at size 10.
			Expect(placement.WrapText("aaaa bbbb cccc", 50, 10, m)).To(Equal([]string{"aaaa bbbb", "cccc"}))
		})

		It("should honour explicit breaks", func() {
			Expect(placement.WrapText("one;two", 100, 10, m)).To(Equal([]string{"one", "two"}))
		})

		It("should split words wider than the line", func() {
			Expect(placement.WrapText("abcdefghijkl", 25, 10, m)).To(Equal([]string{"abcde", "fghij", "kl"}))
		})

		It("should split multi-byte words on rune boundaries", func() {
			Expect(placement.WrapText("éééééé", 15, 10, m)).To(Equal([]string{"ééé", "ééé"}))
		})

		It("should terminate on a non-positive width", func() {
			Expect(placement.WrapText("ab", 0, 10, m)).To(Equal([]string{"a", "b"}))
		})
	})
})
