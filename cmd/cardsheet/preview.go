package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardsheet/internal/pdf"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

func newPreviewCmd(a *app) *cobra.Command {
	var (
		outputDir string
		dpi       float64
	)

	cmd := &cobra.Command{
		Use:   "preview PDF",
		Short: "Render every page of a PDF to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputDir == "" {
				outputDir = utils.GetDefaultOutputDir()
			}
			previewer, err := pdf.NewPreviewer(outputDir, dpi, a.log)
			if err != nil {
				return err
			}
			previews, err := previewer.Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Saved page images to:\n")
			for _, p := range previews {
				fmt.Fprintf(out, "Page %d: %s (%dx%d, hash %.12s)\n", p.PageNum+1, p.ImagePath, p.Width, p.Height, p.Hash)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "directory to save page images (default: a new temp directory)")
	cmd.Flags().Float64Var(&dpi, "dpi", pdf.DefaultPreviewDPI, "rendering resolution")
	return cmd
}
