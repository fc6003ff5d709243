package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardsheet/internal/config"
	"github.com/kpauljoseph/cardsheet/internal/images"
	"github.com/kpauljoseph/cardsheet/internal/pdf"
	"github.com/kpauljoseph/cardsheet/internal/placement"
	"github.com/kpauljoseph/cardsheet/internal/table"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

type generateOptions struct {
	configPath   string
	imagesPath   string
	style        string
	defaultColor string
	output       string
	skipCheck    bool
}

func newGenerateCmd(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate TABLE",
		Short: "Generate the two-page flashcard PDF from a CSV or XLSX table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVarP(&opts.imagesPath, "images", "i", "", "ZIP archive or directory holding the card images")
	cmd.Flags().StringVar(&opts.style, "style", "", "front style: filled or framed (overrides config)")
	cmd.Flags().StringVar(&opts.defaultColor, "default-color", "", "palette name or hex code for cards without a color (overrides config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PDF path (default: next to the table)")
	cmd.Flags().BoolVar(&opts.skipCheck, "no-check", false, "skip validating the written PDF")
	return cmd
}

func runGenerate(cmd *cobra.Command, a *app, tablePath string, opts generateOptions) error {
	ctx := cmd.Context()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if opts.style != "" {
		cfg.Style = opts.style
	}
	if opts.defaultColor != "" {
		cfg.DefaultColor = opts.defaultColor
	}

	output := opts.output
	if output == "" {
		output = cfg.Output
		if output == utils.DefaultOutputName {
			output = utils.GetDefaultOutputPath(tablePath)
		}
	}

	gen, err := pdf.NewGenerator(cfg, a.log)
	if err != nil {
		return err
	}

	a.log.Info("Reading cards from %s", tablePath)
	cards, err := table.ReadFile(tablePath, a.log)
	if err != nil {
		return fmt.Errorf("error reading table: %w", err)
	}
	a.log.Info("Found %d cards", len(cards))

	var bundle *images.Bundle
	if opts.imagesPath != "" {
		bundle, err = images.Load(ctx, opts.imagesPath, a.log)
		if err != nil {
			return fmt.Errorf("error loading images: %w", err)
		}
		a.log.Info("Loaded %d images from %s", bundle.Len(), opts.imagesPath)
	}

	report, err := gen.GenerateFile(ctx, cards, bundle, output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", output)
	fmt.Fprintf(out, "Cards: %d read, %d placed", report.CardsRead, report.CardsUsed)
	if report.Dropped() > 0 {
		fmt.Fprintf(out, ", %d dropped", report.Dropped())
	}
	fmt.Fprintln(out)
	layouts := report.Layouts()
	fmt.Fprintf(out, "Cells: %d text, %d image, %d image+text\n",
		layouts[placement.TextOnly], layouts[placement.ImageOnly], layouts[placement.ImageWithText])
	for _, cell := range report.Fallbacks() {
		fmt.Fprintf(out, "  card %d %s: %v\n", cell.Index+1, cell.Side, cell.Fallback)
	}
	if len(report.Warnings) > 0 {
		fmt.Fprintf(out, "Warnings: %d\n", len(report.Warnings))
	}

	if opts.skipCheck {
		return nil
	}
	inspection, err := pdf.NewInspector(a.log).Inspect(ctx, output)
	if err != nil {
		return fmt.Errorf("error checking output: %w", err)
	}
	if err := inspection.Check(gen.PageDimensions(), 0.5); err != nil {
		return err
	}
	a.log.Debug("Output passed validation")
	return nil
}
