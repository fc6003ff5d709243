package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kpauljoseph/cardsheet/pkg/logger"
	"github.com/kpauljoseph/cardsheet/pkg/version"
)

type app struct {
	log     *logger.Logger
	verbose bool
	debug   bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "cardsheet",
		Short:         "Print duplex flashcard sheets from a card table",
		Long:          "cardsheet lays out up to nine flashcards on an A4 sheet: questions on the front page, answers on a column-mirrored back page, ready for duplex printing and cutting.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.SetVerbose(a.verbose)
			if a.debug {
				a.log.SetLevel(logger.LevelTrace)
			}
			a.log.Debug("Verbose logging enabled")
		},
	}

	root.SetVersionTemplate(version.GetDetailedVersionInfo())
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug mode with trace logging")

	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newInspectCmd(a))
	root.AddCommand(newPreviewCmd(a))
	root.AddCommand(newGridCmd(a))
	return root
}

func main() {
	a := &app{log: logger.New(logger.WithPrefix("[cardsheet] "))}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		a.log.Error("%v", err)
		stop()
		os.Exit(1)
	}
}
