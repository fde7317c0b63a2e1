package tree

import (
	"math"
	"math/rand/v2"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/geometry"
	"github.com/willbeason/renal-tree/pkg/variate"
)

const (
	DefaultAngleRandomness     = 0.2
	DefaultAfferentAngleSpread = 0.6
)

// Origin is where the root vessel starts.
var Origin = geometry.XY{X: 250, Y: 500}

// Source is the uniform random capability generation draws from.
type Source = variate.Source

// NewSource returns a PCG source. Each stream of a seed is an independent sequence.
func NewSource(seed, stream uint64) Source {
	return rand.New(rand.NewPCG(seed, stream))
}

// Params controls the shape of a generated tree. Diameters and lengths share
// the units of the morphometric regressions (micrometres).
type Params struct {
	// InitDiam is the diameter of the root vessel.
	InitDiam float64 `toml:"init_diameter" json:"initDiam"`

	// StopDiam is the diameter at or below which a daughter becomes an afferent arteriole.
	StopDiam float64 `toml:"stop_diameter" json:"stopDiam"`

	// AngleSpread is the angular offset of non-terminal daughters from their parent.
	AngleSpread float64 `toml:"angle_spread" json:"angleSpread"`

	// AngleRandomness is the width of the uniform jitter added to every daughter angle.
	AngleRandomness float64 `toml:"angle_randomness" json:"angleRandomness"`

	// AfferentAngleSpread is the angular offset of afferent arterioles from their parent.
	AfferentAngleSpread float64 `toml:"afferent_angle_spread" json:"afferentAngleSpread"`
}

// DefaultParams fills in the default angular randomness and afferent spread.
func DefaultParams(initDiam, stopDiam, angleSpread float64) Params {
	return Params{
		InitDiam:            initDiam,
		StopDiam:            stopDiam,
		AngleSpread:         angleSpread,
		AngleRandomness:     DefaultAngleRandomness,
		AfferentAngleSpread: DefaultAfferentAngleSpread,
	}
}

// Validate requires initDiam > stopDiam > 0 and a non-negative angle spread.
func (p Params) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"initial diameter", p.InitDiam},
		{"stop diameter", p.StopDiam},
		{"angle spread", p.AngleSpread},
		{"angle randomness", p.AngleRandomness},
		{"afferent angle spread", p.AfferentAngleSpread},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be finite, got %g", f.name, f.value)
		}
	}

	switch {
	case p.StopDiam <= 0:
		return errors.New(errors.ErrCodeInvalidConfig, "stop diameter must be positive, got %g", p.StopDiam)
	case p.InitDiam <= p.StopDiam:
		return errors.New(errors.ErrCodeInvalidConfig,
			"initial diameter %g must exceed stop diameter %g", p.InitDiam, p.StopDiam)
	case p.AngleSpread < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "angle spread must not be negative, got %g", p.AngleSpread)
	case p.AngleRandomness < 0:
		return errors.New(errors.ErrCodeInvalidConfig, "angle randomness must not be negative, got %g", p.AngleRandomness)
	}

	return nil
}
