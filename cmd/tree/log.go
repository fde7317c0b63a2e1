package main

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/willbeason/renal-tree/pkg/config"
	"github.com/willbeason/renal-tree/pkg/stats"
	"github.com/willbeason/renal-tree/pkg/tree"
)

// newLogger writes timestamped records at or above level to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// A run times one generate or stats invocation. Every record it logs carries
// the model and seed, so any logged tree can be regrown.
type run struct {
	logger *log.Logger
	model  tree.Model
	seed   uint64
	start  time.Time
}

// startRun expects cfg to be validated.
func startRun(l *log.Logger, cfg config.Config) *run {
	model, _ := cfg.ParsedModel()
	l.Debug("Generating", "model", model, "seed", cfg.Seed, "params", cfg.Tree)
	return &run{logger: l, model: model, seed: cfg.Seed, start: time.Now()}
}

func (r *run) info(msg string, keyvals ...interface{}) {
	kv := append([]interface{}{"model", r.model, "seed", r.seed}, keyvals...)
	kv = append(kv, "elapsed", time.Since(r.start).Round(time.Millisecond))
	r.logger.Info(msg, kv...)
}

// grown logs the shape of a single generated tree.
func (r *run) grown(s stats.Summary) {
	r.info("Generated tree",
		"branches", s.Branches,
		"afferents", s.Afferents,
		"sides", s.SideBranches,
		"depth", s.MaxDepth)
}

// ensemble logs the mean shape of an ensemble; the full distribution goes to stdout.
func (r *run) ensemble(rep stats.Report) {
	r.info("Generated ensemble",
		"trees", rep.Trees,
		"afferents", formatNumber(rep.Afferents.Mean),
		"depth", formatNumber(rep.MaxDepth.Mean))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext falls back to log.Default() when no logger is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
