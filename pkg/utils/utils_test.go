package utils_test

import (
	"image"
	"image/color"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

var _ = Describe("Utils", func() {
	Context("unit conversion", func() {
		DescribeTable("MMToPt",
			func(mm, pt float64) {
				Expect(utils.MMToPt(mm)).To(BeNumerically("~", pt, 0.01))
			},
			Entry("A4 width", utils.A4_WIDTH_MM, 595.28),
			Entry("A4 height", utils.A4_HEIGHT_MM, 841.89),
			Entry("frame width", 4.0, 11.34),
			Entry("zero", 0.0, 0.0),
		)

		It("should convert centimeters through millimeters", func() {
			Expect(utils.CMToPt(1)).To(BeNumerically("~", utils.MMToPt(10), 1e-9))
		})

		It("should round trip points and millimeters", func() {
			Expect(utils.PtToMM(utils.MMToPt(3.5))).To(BeNumerically("~", 3.5, 1e-9))
		})
	})

	Context("GetDefaultOutputPath", func() {
		It("should place the PDF next to the table", func() {
			path := utils.GetDefaultOutputPath(filepath.Join("decks", "geo.csv"))
			Expect(path).To(Equal(filepath.Join("decks", utils.DefaultOutputName)))
		})

		It("should fall back to the working directory", func() {
			Expect(utils.GetDefaultOutputPath("")).To(Equal(utils.DefaultOutputName))
		})
	})

	Context("GenerateImageHash", func() {
		solid := func(c color.Color) image.Image {
			img := image.NewRGBA(image.Rect(0, 0, 4, 4))
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					img.Set(x, y, c)
				}
			}
			return img
		}

		It("should be stable for identical pixels", func() {
			a, err := utils.GenerateImageHash(solid(color.White))
			Expect(err).NotTo(HaveOccurred())
			b, err := utils.GenerateImageHash(solid(color.White))
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("should differ for different pixels", func() {
			a, _ := utils.GenerateImageHash(solid(color.White))
			b, _ := utils.GenerateImageHash(solid(color.Black))
			Expect(a).NotTo(Equal(b))
		})

		It("should reject a nil image", func() {
			_, err := utils.GenerateImageHash(nil)
			Expect(err).To(HaveOccurred())
		})
	})
})
