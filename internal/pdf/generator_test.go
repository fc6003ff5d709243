package pdf_test

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/cardsheet/internal/config"
	"github.com/kpauljoseph/cardsheet/internal/images"
	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/internal/pdf"
	"github.com/kpauljoseph/cardsheet/internal/placement"
	"github.com/kpauljoseph/cardsheet/pkg/models"
)

var _ = Describe("Generator", func() {
	var (
		ctx    context.Context
		cfg    *config.Config
		canvas *recordingCanvas
		gen    *pdf.Generator
	)

	BeforeEach(func() {
		ctx = context.Background()
		cfg = config.Default()
		canvas = newRecordingCanvas()
	})

	JustBeforeEach(func() {
		var err error
		gen, err = pdf.NewGenerator(cfg, pdfTestLogger(), pdf.WithCanvas(func(layout.Grid) pdf.Canvas {
			return canvas
		}))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should refuse to generate without cards", func() {
		var out bytes.Buffer
		_, err := gen.Generate(ctx, nil, nil, &out)
		Expect(err).To(MatchError(pdf.ErrNoCards))
		Expect(out.Len()).To(BeZero())
		Expect(canvas.pages).To(BeEmpty())
	})

	It("should not leave a file behind without cards", func() {
		path := filepath.Join(GinkgoT().TempDir(), "out.pdf")
		_, err := gen.GenerateFile(ctx, []models.Card{}, nil, path)
		Expect(err).To(MatchError(pdf.ErrNoCards))
		Expect(path).NotTo(BeAnExistingFile())
	})

	It("should report read, used and dropped cards", func() {
		var out bytes.Buffer
		report, err := gen.Generate(ctx, numberedCards(12), nil, &out)
		Expect(err).NotTo(HaveOccurred())

		Expect(report.CardsRead).To(Equal(12))
		Expect(report.CardsUsed).To(Equal(9))
		Expect(report.Dropped()).To(Equal(3))
		Expect(report.Front).To(HaveLen(9))
		Expect(report.Back).To(HaveLen(9))
		Expect(report.Layouts()).To(HaveKeyWithValue(placement.TextOnly, 18))
		Expect(out.String()).To(HavePrefix("%PDF"))
		Expect(canvas.pages).To(HaveLen(2))
	})

	It("should collect bundle and cell warnings", func() {
		bundle := images.NewBundle(pdfTestLogger())
		cards := []models.Card{{Question: "q", FrontImage: "gone.png", ColorKey: "nope"}}

		var out bytes.Buffer
		report, err := gen.Generate(ctx, cards, bundle, &out)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Fallbacks()).To(HaveLen(1))
		Expect(report.Fallbacks()[0].Fallback.Reason).To(Equal(placement.ImageMissing))
		Expect(report.Warnings).To(ContainElement(ContainSubstring("gone.png")))
		Expect(report.Warnings).To(ContainElement(ContainSubstring("nope")))
	})

	It("should stop on a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		var out bytes.Buffer
		_, err := gen.Generate(cancelled, numberedCards(1), nil, &out)
		Expect(err).To(MatchError(context.Canceled))
	})

	Context("with an invalid configuration", func() {
		It("should fail before drawing", func() {
			bad := config.Default()
			bad.Grid.Rows = 0
			_, err := pdf.NewGenerator(bad, pdfTestLogger())
			Expect(err).To(MatchError(config.ErrInvalidConfig))
		})
	})
})

var _ = Describe("Generated documents", func() {
	var (
		ctx     context.Context
		tempDir string
		outPath string
		gen     *pdf.Generator
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		tempDir, err = os.MkdirTemp("", "cardsheet-pdf-test-*")
		Expect(err).NotTo(HaveOccurred())
		outPath = filepath.Join(tempDir, "cards.pdf")

		gen, err = pdf.NewGenerator(config.Default(), pdfTestLogger())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should write a valid two-page A4 document", func() {
		bundle := images.NewBundle(pdfTestLogger())
		bundle.Add("dot.png", solid(16, 16, color.NRGBA{G: 160, A: 200}))
		cards := numberedCards(9)
		cards[4].FrontImage = "dot.png"
		cards[4].BackImage = "dot.png"

		report, err := gen.GenerateFile(ctx, cards, bundle, outPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Fallbacks()).To(BeEmpty())
		Expect(outPath).To(BeAnExistingFile())

		inspection, err := pdf.NewInspector(pdfTestLogger()).Inspect(ctx, outPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(inspection.Valid()).To(BeTrue())
		Expect(inspection.Pages).To(Equal(pdf.ExpectedPages))
		Expect(inspection.Check(gen.PageDimensions(), 0.5)).To(Succeed())
	})

	It("should render one preview per page", func() {
		_, err := gen.GenerateFile(ctx, numberedCards(2), nil, outPath)
		Expect(err).NotTo(HaveOccurred())

		previewer, err := pdf.NewPreviewer(filepath.Join(tempDir, "previews"), 0, pdfTestLogger())
		Expect(err).NotTo(HaveOccurred())
		previews, err := previewer.Render(ctx, outPath)
		Expect(err).NotTo(HaveOccurred())

		Expect(previews).To(HaveLen(2))
		for _, p := range previews {
			Expect(p.ImagePath).To(BeAnExistingFile())
			Expect(p.Width).To(BeNumerically("~", 595, 2))
			Expect(p.Height).To(BeNumerically("~", 842, 2))
		}
		Expect(previews[0].Hash).NotTo(Equal(previews[1].Hash))
	})

	It("should reject a file that is not a PDF", func() {
		junk := filepath.Join(tempDir, "junk.pdf")
		Expect(os.WriteFile(junk, []byte("not a pdf"), 0644)).To(Succeed())

		inspection, err := pdf.NewInspector(pdfTestLogger()).Inspect(ctx, junk)
		Expect(err).NotTo(HaveOccurred())
		Expect(inspection.Valid()).To(BeFalse())
		Expect(inspection.Check(gen.PageDimensions(), 0.5)).To(HaveOccurred())
	})

	It("should fail to inspect a missing file", func() {
		_, err := pdf.NewInspector(pdfTestLogger()).Inspect(ctx, filepath.Join(tempDir, "none.pdf"))
		Expect(err).To(HaveOccurred())
	})
})
