package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardsheet/internal/config"
	"github.com/kpauljoseph/cardsheet/internal/layout"
	"github.com/kpauljoseph/cardsheet/pkg/utils"
)

func newGridCmd(a *app) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the computed cell rectangles and the front/back column mapping",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			grid, err := layout.Compute(cfg.Shape())
			if err != nil {
				return err
			}
			a.log.Debug("Grid computed from %s", describeSource(configPath))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Page: %.2f x %.2f pt\n", grid.PageWidth, grid.PageHeight)
			fmt.Fprintf(out, "Cell: %.2f x %.2f pt (%.1f x %.1f mm), %d x %d, capacity %d\n",
				grid.CellWidth, grid.CellHeight, utils.PtToMM(grid.CellWidth), utils.PtToMM(grid.CellHeight),
				grid.Cols, grid.Rows, grid.Capacity())

			for i := 0; i < grid.Capacity(); i++ {
				front := grid.FrontAddress(i)
				back := grid.BackAddress(i)
				r := grid.Rect(front)
				fmt.Fprintf(out, "card %d: front (%d,%d) back (%d,%d) at x=%.2f y=%.2f\n",
					i+1, front.Row, front.Col, back.Row, back.Col, r.X, r.Y)
			}

			for _, seg := range grid.CutGuides() {
				if seg.Vertical() {
					fmt.Fprintf(out, "cut: vertical at x=%.2f\n", seg.From.X)
				} else {
					fmt.Fprintf(out, "cut: horizontal at y=%.2f\n", seg.From.Y)
				}
			}

			pal, def := cfg.Colors()
			fmt.Fprintf(out, "Style: %s, default color %s\n", cfg.Mode(), def.Hex())
			fmt.Fprintf(out, "Palette: %s\n", strings.Join(pal.Names(), ", "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}

func describeSource(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
