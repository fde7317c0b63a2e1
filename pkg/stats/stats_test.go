package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/tree"
)

func TestSummarize(t *testing.T) {
	tr := &tree.Tree{Branches: []tree.Branch{
		{Index: 0, Parent: -1, Junction: tree.JunctionRoot, Length: 10, Diameter: 30},
		{Index: 1, Parent: 0, Junction: tree.JunctionBifurcation, Length: 5, Diameter: 25},
		{Index: 2, Parent: 1, Junction: tree.JunctionSide, Length: 1, Diameter: 14, IsAfferent: true},
		{Index: 3, Parent: 1, Junction: tree.JunctionContinuation, Length: 2, Diameter: 25},
		{Index: 4, Parent: 3, Junction: tree.JunctionBifurcation, Length: 1, Diameter: 20, IsAfferent: true},
		{Index: 5, Parent: 3, Junction: tree.JunctionBifurcation, Length: 1, Diameter: 21, IsAfferent: true},
		{Index: 6, Parent: 0, Junction: tree.JunctionBifurcation, Length: 3, Diameter: 19, IsAfferent: true},
	}}

	s := Summarize(tr)
	assert.Equal(t, 7, s.Branches)
	assert.Equal(t, 4, s.Afferents)
	assert.Equal(t, 1, s.SideBranches)
	assert.Equal(t, 4, s.MaxDepth)
	assert.Equal(t, 23.0, s.TotalLength)
	assert.Equal(t, 14.0*14*14+20*20*20+21*21*21+19*19*19, s.AfferentCubeSum)
}

func TestSummarizeABTConservesCubes(t *testing.T) {
	p := tree.DefaultParams(200, 22, 0.2)
	r, err := Ensemble(tree.ModelABT, p, 1, 9)
	require.NoError(t, err)
	require.Equal(t, 1, r.Trees)
	assert.Zero(t, r.SideBranches.Max)
	assert.GreaterOrEqual(t, r.Afferents.Min, math.Pow(200.0/22, 3))
}

func TestEnsemble(t *testing.T) {
	p := tree.DefaultParams(120, 22, 0.2)

	for _, m := range tree.Models {
		r, err := Ensemble(m, p, 25, 1)
		require.NoError(t, err)
		assert.Equal(t, m, r.Model)
		assert.Equal(t, 25, r.Trees)

		for _, d := range []Distribution{r.Branches, r.Afferents, r.MaxDepth, r.TotalLength} {
			assert.Positive(t, d.Mean)
			assert.GreaterOrEqual(t, d.StdDev, 0.0)
			assert.True(t, d.Min <= d.P5 && d.P5 <= d.Median && d.Median <= d.P95 && d.P95 <= d.Max, "%+v", d)
			assert.True(t, d.Min <= d.Mean && d.Mean <= d.Max, "%+v", d)
		}

		// Every ABT branch is a root, a vessel with two daughters or an afferent.
		if m == tree.ModelABT {
			assert.InDelta(t, 2*r.Afferents.Mean-1, r.Branches.Mean, 1e-9)
		} else {
			assert.Positive(t, r.SideBranches.Mean)
		}
	}

	again, err := Ensemble(tree.ModelKSABT, p, 25, 1)
	require.NoError(t, err)
	first, err := Ensemble(tree.ModelKSABT, p, 25, 1)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestEnsembleErrors(t *testing.T) {
	_, err := Ensemble(tree.ModelABT, tree.DefaultParams(100, 22, 0.2), 0, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))

	_, err = Ensemble(tree.ModelABT, tree.DefaultParams(10, 22, 0.2), 3, 1)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig))
}
