package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/renal-tree/pkg/config"
	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/render"
	"github.com/willbeason/renal-tree/pkg/stats"
	"github.com/willbeason/renal-tree/pkg/tree"
)

type generateFlags struct {
	generationFlags

	format   string
	nephrons bool
	width    int
	output   string
}

func generateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one tree and render it as SVG, PNG or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, f)
		},
	}

	d := config.Default()
	f.register(cmd)
	cmd.Flags().StringVarP(&f.format, "format", "f", d.Render.Format, "output format: svg, png or json")
	cmd.Flags().BoolVar(&f.nephrons, "nephrons", d.Render.Nephrons, "draw a nephron at the end of every afferent arteriole")
	cmd.Flags().IntVar(&f.width, "width", d.Render.Width, "output width in pixels")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, f *generateFlags) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Render.Format = f.format
	}
	if cmd.Flags().Changed("nephrons") {
		cfg.Render.Nephrons = f.nephrons
	}
	if cmd.Flags().Changed("width") {
		cfg.Render.Width = f.width
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	model, _ := cfg.ParsedModel()
	format, _ := cfg.Render.ParsedFormat()
	if format == render.FormatPNG && f.output == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "png output needs --output")
	}

	r := startRun(loggerFromContext(cmd.Context()), cfg)

	t, err := tree.Generate(model, cfg.Tree, tree.NewSource(cfg.Seed, 0))
	if err != nil {
		return err
	}

	r.grown(stats.Summarize(t))

	return writeOutput(cmd.OutOrStdout(), f.output, func(w io.Writer) error {
		return render.Write(t, format, w, cfg.Render.Options()...)
	})
}

// writeOutput writes to the file at path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "creating %s", path)
	}

	if err := write(out); err != nil {
		_ = out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "closing %s", path)
	}
	return nil
}
