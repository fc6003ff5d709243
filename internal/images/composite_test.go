package images_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardsheet/internal/images"
	"github.com/kpauljoseph/cardsheet/internal/palette"
)

var _ = Describe("Composite", func() {
	It("should flatten transparency onto the background color", func() {
		bg := palette.MustHex("#2D6CDF")
		c, err := images.NewComposite(halfTransparent(4, 2), bg)
		Expect(err).NotTo(HaveOccurred())
		defer c.Close()

		Expect(c.Width).To(Equal(4))
		Expect(c.Height).To(Equal(2))

		data, err := c.PNG()
		Expect(err).NotTo(HaveOccurred())
		img, err := png.Decode(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		Expect(color.NRGBAModel.Convert(img.At(0, 0))).To(Equal(color.NRGBA{R: 255, A: 255}))
		Expect(color.NRGBAModel.Convert(img.At(3, 1))).To(Equal(bg.RGBA()))
	})

	It("should encode an opaque PNG", func() {
		c, err := images.NewComposite(halfTransparent(4, 2), palette.White)
		Expect(err).NotTo(HaveOccurred())
		defer c.Close()

		data, err := c.PNG()
		Expect(err).NotTo(HaveOccurred())

		decoded, err := png.Decode(bytes.NewReader(data))
		Expect(err).NotTo(HaveOccurred())
		_, _, _, a := decoded.At(3, 0).RGBA()
		Expect(a).To(Equal(uint32(0xFFFF)))
	})

	It("should composite shifted source bounds from their origin", func() {
		src := halfTransparent(4, 4).SubImage(image.Rect(2, 2, 4, 4))
		c, err := images.NewComposite(src, palette.White)
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Width).To(Equal(2))
		Expect(c.Height).To(Equal(2))
	})

	It("should refuse empty images", func() {
		_, err := images.NewComposite(image.NewNRGBA(image.Rect(0, 0, 0, 5)), palette.White)
		Expect(err).To(MatchError(images.ErrEmptyImage))

		_, err = images.NewComposite(nil, palette.White)
		Expect(err).To(MatchError(images.ErrEmptyImage))
	})

	It("should release its resources and tolerate double close", func() {
		c, err := images.NewComposite(halfTransparent(2, 2), palette.White)
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Close()).To(Succeed())
		Expect(c.Close()).To(Succeed())

		_, err = c.PNG()
		Expect(err).To(MatchError(images.ErrReleased))
	})
})
