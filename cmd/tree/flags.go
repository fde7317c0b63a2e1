package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/willbeason/renal-tree/pkg/config"
)

// generationFlags are shared by every command that grows trees.
type generationFlags struct {
	configPath string

	model               string
	seed                uint64
	initDiam            float64
	stopDiam            float64
	angleSpread         float64
	angleRandomness     float64
	afferentAngleSpread float64
}

func (f *generationFlags) register(cmd *cobra.Command) {
	d := config.Default()
	flags := cmd.Flags()

	flags.StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	flags.StringVarP(&f.model, "model", "m", d.Model, "tree model: abt or ksabt")
	flags.Uint64Var(&f.seed, "seed", d.Seed, "random seed; 0 picks one from the clock")
	flags.Float64Var(&f.initDiam, "init-diam", d.Tree.InitDiam, "root vessel diameter")
	flags.Float64Var(&f.stopDiam, "stop-diam", d.Tree.StopDiam, "diameter at or below which vessels become afferent arterioles")
	flags.Float64Var(&f.angleSpread, "angle-spread", d.Tree.AngleSpread, "angle between a vessel and its daughters, in radians")
	flags.Float64Var(&f.angleRandomness, "angle-randomness", d.Tree.AngleRandomness, "width of the random jitter added to daughter angles")
	flags.Float64Var(&f.afferentAngleSpread, "afferent-angle-spread", d.Tree.AfferentAngleSpread, "angle between a vessel and its afferent arterioles")
}

// resolve loads the configuration file, if any, and applies explicitly set flags over it.
func (f *generationFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("model") {
		cfg.Model = f.model
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("init-diam") {
		cfg.Tree.InitDiam = f.initDiam
	}
	if flags.Changed("stop-diam") {
		cfg.Tree.StopDiam = f.stopDiam
	}
	if flags.Changed("angle-spread") {
		cfg.Tree.AngleSpread = f.angleSpread
	}
	if flags.Changed("angle-randomness") {
		cfg.Tree.AngleRandomness = f.angleRandomness
	}
	if flags.Changed("afferent-angle-spread") {
		cfg.Tree.AfferentAngleSpread = f.afferentAngleSpread
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	return cfg, nil
}
