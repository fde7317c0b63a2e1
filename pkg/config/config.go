// Package config loads run configuration from TOML.
//
// A configuration file overlays the defaults; keys it omits keep their default
// values:
//
//	model = "ksabt"
//	seed = 42
//
//	[tree]
//	init_diameter = 300.0
//	stop_diameter = 22.0
//	angle_spread = 0.2
//
//	[render]
//	format = "png"
//	nephrons = true
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/render"
	"github.com/willbeason/renal-tree/pkg/tree"
)

// Config is everything needed for one generate or stats run.
type Config struct {
	Model string `toml:"model"`

	// Seed seeds the random source. Zero asks for a time-based seed.
	Seed uint64 `toml:"seed"`

	Tree   tree.Params `toml:"tree"`
	Render Render      `toml:"render"`
}

// Render holds output settings.
type Render struct {
	Format        string  `toml:"format"`
	Nephrons      bool    `toml:"nephrons"`
	Width         int     `toml:"width"`
	StrokeScale   float64 `toml:"stroke_scale"`
	NephronRadius float64 `toml:"nephron_radius"`
}

// Default is the configuration used when no file is given.
func Default() Config {
	return Config{
		Model: string(tree.ModelABT),
		Tree:  tree.DefaultParams(300, 22, 0.2),
		Render: Render{
			Format:        string(render.FormatSVG),
			Width:         render.DefaultWidth,
			StrokeScale:   render.DefaultStrokeScale,
			NephronRadius: render.DefaultNephronRadius,
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeIO, err, "opening config %s", path)
	}
	defer f.Close()

	return Read(f)
}

// Read decodes TOML from r over the defaults and validates the result.
func Read(r io.Reader) (Config, error) {
	cfg := Default()

	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field that can be checked without generating.
func (c Config) Validate() error {
	if _, err := c.ParsedModel(); err != nil {
		return err
	}
	if _, err := c.Render.ParsedFormat(); err != nil {
		return err
	}
	if c.Render.Width <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "render width must be positive, got %d", c.Render.Width)
	}
	if c.Render.StrokeScale <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "stroke scale must be positive, got %g", c.Render.StrokeScale)
	}
	if c.Render.NephronRadius < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "nephron radius must not be negative, got %g", c.Render.NephronRadius)
	}
	return c.Tree.Validate()
}

func (c Config) ParsedModel() (tree.Model, error) {
	return tree.ParseModel(c.Model)
}

func (r Render) ParsedFormat() (render.Format, error) {
	return render.ParseFormat(r.Format)
}

// Options converts the render settings to sink options.
func (r Render) Options() []render.Option {
	opts := []render.Option{
		render.WithWidth(r.Width),
		render.WithStrokeScale(r.StrokeScale),
	}
	if r.Nephrons {
		opts = append(opts, render.WithNephrons(r.NephronRadius))
	}
	return opts
}
