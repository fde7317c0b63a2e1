package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func mainCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Generate renal arterial trees",
		Long: `tree grows afferent-arteriole-terminated renal arterial trees from
allometric vessel statistics, with either the bifurcating (abt) or the
segmented (ksabt) model.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(statsCmd())

	return cmd
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
