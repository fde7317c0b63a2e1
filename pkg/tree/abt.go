package tree

// ABT generates an asymmetric bifurcating tree.
//
// Starting from a root of diameter p.InitDiam, every vessel is emitted and then
// split into two daughters until daughters fall to p.StopDiam, where they become
// afferent arterioles. Branches are returned in pre-order. On error no branches
// are returned.
func ABT(p Params, src Source) ([]Branch, error) {
	g, err := newGenerator(p, src)
	if err != nil {
		return nil, err
	}

	root, err := g.root()
	if err != nil {
		return nil, err
	}

	if err := g.pushABT(root); err != nil {
		return nil, err
	}
	return g.branches, nil
}

func (g *generator) pushABT(d draft) error {
	b := g.emit(d)
	if b.IsAfferent {
		return nil
	}
	return g.bifurcate(b, 0, true, g.pushABT)
}
