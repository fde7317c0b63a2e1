// Package stats summarizes generated trees, singly and across many seeds.
package stats

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/tree"
)

// Summary describes one tree.
type Summary struct {
	Branches  int
	Afferents int

	// SideBranches counts afferent arterioles sprouting along a vessel (KSABT only).
	SideBranches int

	// MaxDepth is the number of branches on the longest root-to-leaf path.
	MaxDepth int

	TotalLength float64

	// AfferentCubeSum is the sum of cubed afferent diameters. In an ABT Murray's
	// law makes it equal the cubed root diameter.
	AfferentCubeSum float64
}

// Summarize computes the Summary of t.
func Summarize(t *tree.Tree) Summary {
	s := Summary{Branches: len(t.Branches)}

	depth := make([]int, len(t.Branches))
	for i, b := range t.Branches {
		depth[i] = 1
		if b.Parent >= 0 {
			depth[i] = depth[b.Parent] + 1
		}
		s.MaxDepth = max(s.MaxDepth, depth[i])
		s.TotalLength += b.Length

		if !b.IsAfferent {
			continue
		}
		s.Afferents++
		s.AfferentCubeSum += math.Pow(b.Diameter, 3)
		if b.Junction == tree.JunctionSide {
			s.SideBranches++
		}
	}

	return s
}

// Distribution describes one quantity across an ensemble.
type Distribution struct {
	Mean   float64
	StdDev float64
	Min    float64
	P5     float64
	Median float64
	P95    float64
	Max    float64
}

func describe(data stats.Float64Data) (Distribution, error) {
	var d Distribution
	var err error

	for _, f := range []struct {
		dst *float64
		fn  func(stats.Float64Data) (float64, error)
	}{
		{&d.Mean, stats.Mean},
		{&d.StdDev, stats.StandardDeviation},
		{&d.Min, stats.Min},
		{&d.Median, stats.Median},
		{&d.Max, stats.Max},
		{&d.P5, func(in stats.Float64Data) (float64, error) { return stats.PercentileNearestRank(in, 5) }},
		{&d.P95, func(in stats.Float64Data) (float64, error) { return stats.PercentileNearestRank(in, 95) }},
	} {
		if *f.dst, err = f.fn(data); err != nil {
			return Distribution{}, err
		}
	}

	return d, nil
}

// Report describes an ensemble of trees generated with the same parameters.
type Report struct {
	Model  tree.Model
	Params tree.Params
	Trees  int

	Branches     Distribution
	Afferents    Distribution
	SideBranches Distribution
	MaxDepth     Distribution
	TotalLength  Distribution
}

// Ensemble generates n trees, the i-th from tree.NewSource(seed, i),
// and describes them. It stops at the first generation error.
func Ensemble(m tree.Model, p tree.Params, n int, seed uint64) (Report, error) {
	if n < 1 {
		return Report{}, errors.New(errors.ErrCodeInvalidConfig, "ensemble needs at least one tree, got %d", n)
	}

	var branches, afferents, sides, depths, lengths stats.Float64Data
	for i := range n {
		t, err := tree.Generate(m, p, tree.NewSource(seed, uint64(i)))
		if err != nil {
			return Report{}, err
		}

		s := Summarize(t)
		branches = append(branches, float64(s.Branches))
		afferents = append(afferents, float64(s.Afferents))
		sides = append(sides, float64(s.SideBranches))
		depths = append(depths, float64(s.MaxDepth))
		lengths = append(lengths, s.TotalLength)
	}

	r := Report{Model: m, Params: p, Trees: n}
	for _, f := range []struct {
		dst  *Distribution
		data stats.Float64Data
	}{
		{&r.Branches, branches},
		{&r.Afferents, afferents},
		{&r.SideBranches, sides},
		{&r.MaxDepth, depths},
		{&r.TotalLength, lengths},
	} {
		d, err := describe(f.data)
		if err != nil {
			return Report{}, errors.Wrap(errors.ErrCodeInternal, err, "describing ensemble")
		}
		*f.dst = d
	}

	return r, nil
}
