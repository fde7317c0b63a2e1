package variate

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/renal-tree/pkg/errors"
)

// constant always returns the same uniform draw. A value of 0 makes StdNormal
// return exactly 0, so every sampler returns its regression mean.
type constant float64

func (c constant) Float64() float64 { return float64(c) }

// script replays draws in order and then repeats its last value.
type script struct {
	draws []float64
	next  int
}

func (s *script) Float64() float64 {
	v := s.draws[min(s.next, len(s.draws)-1)]
	s.next++
	return v
}

func TestStdNormalZeroDeviation(t *testing.T) {
	assert.Equal(t, 0.0, StdNormal(constant(0)))
}

func TestStdNormalBoxMuller(t *testing.T) {
	// u1 = 1 - 0.75, u2 = 0.25: sqrt(-2 ln 0.25) * sin(pi/2)
	src := &script{draws: []float64{0.75, 0.25}}
	assert.InDelta(t, math.Sqrt(-2*math.Log(0.25)), StdNormal(src), 1e-12)
	assert.Equal(t, 2, src.next)
}

func TestStdNormalMoments(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const n = 200000

	var sum, sumSq float64
	for range n {
		z := StdNormal(rng)
		require.False(t, math.IsNaN(z) || math.IsInf(z, 0))
		sum += z
		sumSq += z * z
	}

	mean := sum / n
	variance := sumSq/n - mean*mean
	assert.InDelta(t, 0.0, mean, 0.01)
	assert.InDelta(t, 1.0, variance, 0.02)
}

func TestMeans(t *testing.T) {
	src := constant(0)

	length, err := VesselLength(src, 100)
	require.NoError(t, err)
	assert.InDelta(t, 905.27, length, 1e-9)

	afferent, err := AfferentLength(src, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1.38*30-6.128, afferent, 1e-12)

	first, err := FirstDaughterDiameter(src, 100)
	require.NoError(t, err)
	want := 8.9379e-6*1e6 - 4.5937e-3*1e4 + 1.2133*100 - 7.82
	assert.InDelta(t, want, first, 1e-12)
	assert.Greater(t, first, 0.0)
	assert.Less(t, first, 100.0)

	side, err := SegmentAfferentDiameter(src)
	require.NoError(t, err)
	assert.Equal(t, 14.3, side)
}

func TestSecondDaughterDiameterMurray(t *testing.T) {
	for _, tt := range []struct{ parent, first float64 }{
		{100, 76.5109},
		{300, 184.1},
		{30, 29.9},
		{22, 1},
	} {
		second := SecondDaughterDiameter(tt.parent, tt.first)
		assert.Greater(t, second, 0.0)
		assert.InDelta(t, math.Pow(tt.parent, 3), math.Pow(tt.first, 3)+math.Pow(second, 3), 1e-6)
	}
}

func TestNextSegmentOffset(t *testing.T) {
	offset, err := NextSegmentOffset(constant(0.5))
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.5)*SegmentOffsetScale, offset, 1e-12)

	// A draw of 0 would place the side branch at distance 0; it is redrawn.
	src := &script{draws: []float64{0, 0.5}}
	offset, err = NextSegmentOffset(src)
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.5)*SegmentOffsetScale, offset, 1e-12)
	assert.Equal(t, 2, src.next)
}

func TestNextSegmentOffsetMean(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	const n = 100000

	var sum float64
	for range n {
		offset, err := NextSegmentOffset(rng)
		require.NoError(t, err)
		sum += offset
	}
	assert.InDelta(t, SegmentOffsetScale, sum/n, 1.5)
}

func TestRejectionRedraws(t *testing.T) {
	// A draw just below 1 gives u1 = 1e-9 and Z above 6; with the negative deviation
	// scale of short afferents that length is negative and must be discarded.
	src := &script{draws: []float64{1 - 1e-9, 0.25, 0, 0}}
	length, err := AfferentLength(src, 20)
	require.NoError(t, err)
	assert.InDelta(t, MeanAfferentLength(20), length, 1e-12)
	assert.Equal(t, 4, src.next)
}

func TestSampledValuesRespectConstraints(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for _, diam := range []float64{10, 22, 50, 100, 300} {
		for range 1000 {
			first, err := FirstDaughterDiameter(rng, diam)
			require.NoError(t, err)
			assert.True(t, first > 0 && first < diam, "first daughter %g of %g", first, diam)

			length, err := VesselLength(rng, diam)
			require.NoError(t, err)
			assert.Greater(t, length, 0.0)

			afferent, err := AfferentLength(rng, diam)
			require.NoError(t, err)
			assert.Greater(t, afferent, 0.0)
		}
	}
}

func TestNonConvergence(t *testing.T) {
	// The cubic mean is negative for a parent of 6, and with no deviation every
	// draw is rejected.
	_, err := FirstDaughterDiameter(constant(0), 6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNonConvergence))

	// A draw of 0 always maps to a zero offset.
	_, err = NextSegmentOffset(constant(0))
	assert.True(t, errors.Is(err, errors.ErrCodeNonConvergence))
}
