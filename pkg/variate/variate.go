// Package variate samples vessel lengths and diameters from allometric regressions
// fitted to renal arterial morphometry.
//
// Every stochastic quantity is a regression mean perturbed by a standard-normal
// deviation whose scale is itself linear in that mean. Constrained quantities are
// rejection-sampled: invalid draws are discarded and redrawn, up to MaxAttempts.
package variate

import (
	"math"

	"github.com/willbeason/renal-tree/pkg/errors"
)

// MaxAttempts bounds every rejection-sampling loop. For realistic diameters a
// valid draw is found within a handful of tries.
const MaxAttempts = 10000

// Source is a uniform random draw in [0, 1). *rand.Rand from math/rand and
// math/rand/v2 both satisfy it.
type Source interface {
	Float64() float64
}

// Regression coefficients. These must not be rounded.
const (
	lengthSlope     = 7.2059
	lengthIntercept = 1.8468e2

	afferentLengthSlope     = 1.38
	afferentLengthIntercept = -6.128

	// Shared by vessel and afferent lengths.
	lengthDeviationSlope     = 7.6004e-1
	lengthDeviationIntercept = -1.3577e2

	daughterCubic     = 8.9379e-6
	daughterQuadratic = -4.5937e-3
	daughterLinear    = 1.2133
	daughterConstant  = -7.82

	// Shared by daughter and segment afferent diameters.
	diameterDeviationSlope     = 8.7881e-2
	diameterDeviationIntercept = 2.1139e-1

	segmentAfferentDiameterMean = 1.43e1

	// SegmentOffsetScale is the mean distance between side-branch afferent arterioles.
	SegmentOffsetScale = 9.93567e1
)

// StdNormal draws from the standard normal distribution with the Box-Muller transform.
//
// The first uniform is reflected onto (0, 1] so the logarithm stays finite.
func StdNormal(src Source) float64 {
	u1 := 1 - src.Float64()
	u2 := src.Float64()

	return math.Sqrt(-2*math.Log(u1)) * math.Sin(2*math.Pi*u2)
}

// deviate returns mean perturbed by (slope*mean + intercept) standard deviations.
func deviate(src Source, mean, slope, intercept float64) float64 {
	return mean + (slope*mean+intercept)*StdNormal(src)
}

// rejectionSample redraws until valid accepts a value.
func rejectionSample(name string, draw func() float64, valid func(float64) bool) (float64, error) {
	for range MaxAttempts {
		v := draw()
		if valid(v) {
			return v, nil
		}
	}
	return 0, errors.New(errors.ErrCodeNonConvergence, "%s: no valid draw after %d attempts", name, MaxAttempts)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// MeanVesselLength is the regression mean length of a vessel with diameter diam.
func MeanVesselLength(diam float64) float64 {
	return lengthSlope*diam + lengthIntercept
}

// VesselLength samples the length of a non-afferent vessel of diameter diam.
func VesselLength(src Source, diam float64) (float64, error) {
	mean := MeanVesselLength(diam)
	return rejectionSample("vessel length", func() float64 {
		return deviate(src, mean, lengthDeviationSlope, lengthDeviationIntercept)
	}, positive)
}

// MeanAfferentLength is the regression mean length of an afferent arteriole
// leaving a parent of diameter parentDiam.
func MeanAfferentLength(parentDiam float64) float64 {
	return afferentLengthSlope*parentDiam + afferentLengthIntercept
}

// AfferentLength samples the length of an afferent arteriole leaving a parent of
// diameter parentDiam.
func AfferentLength(src Source, parentDiam float64) (float64, error) {
	mean := MeanAfferentLength(parentDiam)
	return rejectionSample("afferent length", func() float64 {
		return deviate(src, mean, lengthDeviationSlope, lengthDeviationIntercept)
	}, positive)
}

// MeanFirstDaughterDiameter is the cubic regression for the first daughter of a
// parent with diameter parentDiam.
func MeanFirstDaughterDiameter(parentDiam float64) float64 {
	return daughterCubic*math.Pow(parentDiam, 3) +
		daughterQuadratic*math.Pow(parentDiam, 2) +
		daughterLinear*parentDiam +
		daughterConstant
}

// FirstDaughterDiameter samples the first daughter diameter at a bifurcation.
// The result is strictly between 0 and parentDiam.
func FirstDaughterDiameter(src Source, parentDiam float64) (float64, error) {
	mean := MeanFirstDaughterDiameter(parentDiam)
	return rejectionSample("first daughter diameter", func() float64 {
		return deviate(src, mean, diameterDeviationSlope, diameterDeviationIntercept)
	}, func(d float64) bool {
		return d > 0 && d < parentDiam
	})
}

// SecondDaughterDiameter applies Murray's law: parent³ = first³ + second³.
func SecondDaughterDiameter(parentDiam, firstDiam float64) float64 {
	return math.Cbrt(math.Pow(parentDiam, 3) - math.Pow(firstDiam, 3))
}

// SegmentAfferentDiameter samples the diameter of an afferent arteriole sprouting
// from the side of a vessel. It does not depend on the parent.
func SegmentAfferentDiameter(src Source) (float64, error) {
	return rejectionSample("segment afferent diameter", func() float64 {
		return deviate(src, segmentAfferentDiameterMean, diameterDeviationSlope, diameterDeviationIntercept)
	}, positive)
}

// NextSegmentOffset samples the exponentially distributed distance along a vessel
// to the next side-branch afferent arteriole. The offset is strictly positive.
func NextSegmentOffset(src Source) (float64, error) {
	return rejectionSample("segment offset", func() float64 {
		return -math.Log(1-src.Float64()) * SegmentOffsetScale
	}, positive)
}
