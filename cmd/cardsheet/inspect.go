package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardsheet/internal/pdf"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

func newInspectCmd(a *app) *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "inspect PDF",
		Short: "Validate a PDF and print its pages, sizes and text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inspection, err := pdf.NewInspector(a.log).Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Analyzing PDF: %s\n", inspection.Path)
			if !inspection.Valid() {
				fmt.Fprintf(out, "Valid: no (%v)\n", inspection.ValidationErr)
				return fmt.Errorf("%s failed validation", inspection.Path)
			}
			fmt.Fprintf(out, "Valid: yes\nPages: %d\n", inspection.Pages)

			for i, dim := range inspection.Dimensions {
				fmt.Fprintf(out, "\nPage %d:\n", i+1)
				fmt.Fprintf(out, "Dimensions (Width x Height): %.3f x %.3f points (%.1f x %.1f mm)\n",
					dim.Width, dim.Height, utils.PtToMM(dim.Width), utils.PtToMM(dim.Height))
				if showText && i < len(inspection.Text) {
					fmt.Fprintf(out, "Text:\n%s\n", indent(inspection.Text[i]))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showText, "text", true, "print the text of each page")
	return cmd
}

func indent(s string) string {
	if s == "" {
		return "  (none)"
	}
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
