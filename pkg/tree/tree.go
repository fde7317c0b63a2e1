// Package tree grows renal arterial trees as flat, pre-ordered lists of
// vessel segments, using the ABT or KSABT model.
package tree

import "github.com/willbeason/renal-tree/pkg/geometry"

// A Junction records how a Branch came to exist.
type Junction string

const (
	// JunctionRoot is the single vessel generation starts from.
	JunctionRoot Junction = "root"
	// JunctionBifurcation is one of the two daughters at a Murray's-law split.
	JunctionBifurcation Junction = "bifurcation"
	// JunctionSide is an afferent arteriole sprouting partway along a vessel.
	JunctionSide Junction = "side"
	// JunctionContinuation is the rest of a vessel after a side branch.
	// It keeps the diameter and angle of the segment before it.
	JunctionContinuation Junction = "continuation"
)

// A Branch is a straight vessel segment.
//
// Branches are immutable once generated; End always equals
// geometry.Endpoint(Start, Length, Angle).
type Branch struct {
	// Index is the position of the branch in generation order. Renderers use it as
	// a stable key.
	Index int

	// Parent is the Index of the branch this one starts from, or -1 for the root.
	// Parents always precede their children.
	Parent int

	Junction Junction

	Start geometry.XY
	End   geometry.XY

	// Angle is measured in radians clockwise from straight up.
	Angle float64

	Length   float64
	Diameter float64

	// IsAfferent is true for terminal afferent arterioles. Nothing branches from them.
	IsAfferent bool
}

// A Tree is the flat output of one generation pass.
type Tree struct {
	Model    Model
	Params   Params
	Branches []Branch
}

// Generate builds a tree with the given model.
func Generate(m Model, p Params, src Source) (*Tree, error) {
	branches, err := m.Generate(p, src)
	if err != nil {
		return nil, err
	}

	return &Tree{
		Model:    m,
		Params:   p,
		Branches: branches,
	}, nil
}

// Afferents returns the terminal branches in generation order.
func (t *Tree) Afferents() []Branch {
	var result []Branch
	for _, b := range t.Branches {
		if b.IsAfferent {
			result = append(result, b)
		}
	}
	return result
}

// Children returns, for every branch index, the indices of its children in
// generation order.
func (t *Tree) Children() [][]int {
	children := make([][]int, len(t.Branches))
	for _, b := range t.Branches {
		if b.Parent >= 0 {
			children[b.Parent] = append(children[b.Parent], b.Index)
		}
	}
	return children
}

// Bounds is the bounding box of every branch endpoint.
func (t *Tree) Bounds() geometry.Bounds {
	bounds := geometry.EmptyBounds()
	for _, b := range t.Branches {
		bounds = bounds.Extend(b.Start).Extend(b.End)
	}
	return bounds
}
