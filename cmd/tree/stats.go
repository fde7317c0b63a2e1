package main

import (
	"github.com/spf13/cobra"

	"github.com/willbeason/renal-tree/pkg/stats"
)

type statsFlags struct {
	generationFlags

	trees int
}

func statsCmd() *cobra.Command {
	f := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Generate many trees and summarize their size and shape",
		Long: `stats grows --trees trees with consecutive streams of the same seed and
prints the distribution of branch counts, afferent counts, depth and total
vessel length. Tree 0 is the tree generate produces with the same seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().IntVarP(&f.trees, "trees", "n", 100, "number of trees to generate")

	return cmd
}

func runStats(cmd *cobra.Command, f *statsFlags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	model, _ := cfg.ParsedModel()

	r := startRun(loggerFromContext(cmd.Context()), cfg)

	rep, err := stats.Ensemble(model, cfg.Tree, f.trees, cfg.Seed)
	if err != nil {
		return err
	}
	r.ensemble(rep)

	printReport(cmd.OutOrStdout(), rep)
	return nil
}
