package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/render"
	"github.com/willbeason/renal-tree/pkg/tree"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	m, err := cfg.ParsedModel()
	require.NoError(t, err)
	assert.Equal(t, tree.ModelABT, m)
	assert.Equal(t, tree.DefaultAngleRandomness, cfg.Tree.AngleRandomness)
	assert.Equal(t, tree.DefaultAfferentAngleSpread, cfg.Tree.AfferentAngleSpread)
	assert.Len(t, cfg.Render.Options(), 2)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
model = "KSABT"
seed = 42

[tree]
init_diameter = 150.0
stop_diameter = 20.0

[render]
format = "png"
nephrons = true
nephron_radius = 12.5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	m, err := cfg.ParsedModel()
	require.NoError(t, err)
	assert.Equal(t, tree.ModelKSABT, m)
	assert.Equal(t, uint64(42), cfg.Seed)

	assert.Equal(t, 150.0, cfg.Tree.InitDiam)
	assert.Equal(t, 20.0, cfg.Tree.StopDiam)
	// Omitted keys keep their defaults.
	assert.Equal(t, 0.2, cfg.Tree.AngleSpread)
	assert.Equal(t, tree.DefaultAfferentAngleSpread, cfg.Tree.AfferentAngleSpread)

	f, err := cfg.Render.ParsedFormat()
	require.NoError(t, err)
	assert.Equal(t, render.FormatPNG, f)
	assert.True(t, cfg.Render.Nephrons)
	assert.Equal(t, 12.5, cfg.Render.NephronRadius)
	assert.Equal(t, render.DefaultWidth, cfg.Render.Width)
	assert.Len(t, cfg.Render.Options(), 3)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, errors.ErrCodeIO))
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errors.Code
	}{
		{"syntax", `model = `, errors.ErrCodeInvalidConfig},
		{"unknown key", `colour = "red"`, errors.ErrCodeInvalidConfig},
		{"unknown model", `model = "oak"`, errors.ErrCodeInvalidConfig},
		{"unknown format", "[render]\nformat = \"gif\"", errors.ErrCodeInvalidFormat},
		{"zero width", "[render]\nwidth = 0", errors.ErrCodeInvalidConfig},
		{"stop above init", "[tree]\ninit_diameter = 20.0\nstop_diameter = 22.0", errors.ErrCodeInvalidConfig},
		{"wrong type", "[tree]\ninit_diameter = \"big\"", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.in))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err), "%v", err)
		})
	}
}
