package tree

import "github.com/willbeason/renal-tree/pkg/variate"

// KSABT generates a segmented asymmetric bifurcating tree.
//
// It builds on ABT: before a vessel bifurcates, the distance to the next side
// branch is compared with the vessel's length. If the side branch falls within
// the vessel, the vessel is cut there, an afferent arteriole sprouts from the cut
// and the rest of the vessel continues with the same diameter and angle. The
// remaining distance is carried into daughters. The root always bifurcates.
func KSABT(p Params, src Source) ([]Branch, error) {
	g, err := newGenerator(p, src)
	if err != nil {
		return nil, err
	}

	if err := g.ksabt(); err != nil {
		return nil, err
	}
	return g.branches, nil
}

func (g *generator) ksabt() error {
	d, err := g.root()
	if err != nil {
		return err
	}

	root := g.emit(d)
	return g.bifurcate(root, 0, false, g.pushKSABT)
}

func (g *generator) pushKSABT(d draft) error {
	if d.afferent {
		g.emit(d)
		return nil
	}

	budget := d.budget
	if budget <= 0 {
		var err error
		if budget, err = g.segmentOffset(); err != nil {
			return err
		}
	}

	if budget < d.length {
		return g.segment(d, budget)
	}

	b := g.emit(d)
	return g.bifurcate(b, budget-d.length, true, g.pushKSABT)
}

// segment cuts d at offset, sprouts an afferent arteriole from the cut and
// continues the vessel for the remaining length.
func (g *generator) segment(d draft, offset float64) error {
	afferentLeft := g.coin()
	sideDiam, err := variate.SegmentAfferentDiameter(g.src)
	if err != nil {
		return err
	}

	remaining := d.length - offset
	cut := g.emit(d.truncated(offset))

	sideBranch, err := g.afferent(cut, sideDiam, afferentLeft, g.jitter(), JunctionSide)
	if err != nil {
		return err
	}
	if err := g.pushKSABT(sideBranch); err != nil {
		return err
	}

	return g.pushKSABT(draft{
		parent:   cut.Index,
		junction: JunctionContinuation,
		start:    cut.End,
		angle:    cut.Angle,
		length:   remaining,
		diameter: cut.Diameter,
	})
}
