package tree

import (
	"github.com/willbeason/renal-tree/pkg/geometry"
	"github.com/willbeason/renal-tree/pkg/variate"
)

// A draft is a vessel that has been sampled but not yet emitted. Drafts are
// values; adjusting one never touches an emitted Branch.
type draft struct {
	parent   int
	junction Junction
	start    geometry.XY
	angle    float64
	length   float64
	diameter float64
	afferent bool

	// budget is the remaining distance to the next side branch. Zero means a fresh
	// offset is drawn when the vessel is evaluated. Only KSABT reads it.
	budget float64
}

// truncated is d shortened to length, keeping its start, angle and diameter.
func (d draft) truncated(length float64) draft {
	d.length = length
	return d
}

// generator holds the state of one generation pass.
//
// Recursion depth is the number of vessels on the longest root-to-leaf path: a
// few dozen bifurcations for realistic diameters, plus one level per side branch
// in KSABT.
type generator struct {
	params   Params
	src      Source
	branches []Branch

	// segmentOffset draws the distance along a vessel to its next side branch.
	segmentOffset func() (float64, error)
}

func newGenerator(p Params, src Source) (*generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return &generator{
		params: p,
		src:    src,
		segmentOffset: func() (float64, error) {
			return variate.NextSegmentOffset(src)
		},
	}, nil
}

// emit appends the final form of d and returns it.
func (g *generator) emit(d draft) Branch {
	b := Branch{
		Index:      len(g.branches),
		Parent:     d.parent,
		Junction:   d.junction,
		Start:      d.start,
		End:        geometry.Endpoint(d.start, d.length, d.angle),
		Angle:      d.angle,
		Length:     d.length,
		Diameter:   d.diameter,
		IsAfferent: d.afferent,
	}
	g.branches = append(g.branches, b)
	return b
}

func (g *generator) root() (draft, error) {
	length, err := variate.VesselLength(g.src, g.params.InitDiam)
	if err != nil {
		return draft{}, err
	}

	return draft{
		parent:   -1,
		junction: JunctionRoot,
		start:    Origin,
		length:   length,
		diameter: g.params.InitDiam,
	}, nil
}

// coin is a fair coin flip; true means left.
func (g *generator) coin() bool {
	return g.src.Float64() >= 0.5
}

func (g *generator) jitter() float64 {
	r := g.params.AngleRandomness
	return g.src.Float64()*r - r*0.5
}

// side is the sign of the angular offset for a left or right daughter.
func side(left bool) float64 {
	if left {
		return 1
	}
	return -1
}

// bifurcate splits parent into two Murray's-law daughters, each pushed in turn.
// With randomSide the first daughter goes left or right on a coin flip;
// otherwise it goes left.
func (g *generator) bifurcate(parent Branch, budget float64, randomSide bool, push func(draft) error) error {
	first, err := variate.FirstDaughterDiameter(g.src, parent.Diameter)
	if err != nil {
		return err
	}
	second := variate.SecondDaughterDiameter(parent.Diameter, first)

	firstLeft := true
	if randomSide {
		firstLeft = g.coin()
	}

	d, err := g.daughter(parent, first, firstLeft, budget)
	if err != nil {
		return err
	}
	if err := push(d); err != nil {
		return err
	}

	d, err = g.daughter(parent, second, !firstLeft, budget)
	if err != nil {
		return err
	}
	return push(d)
}

// daughter samples one daughter of parent. Daughters at or below the stop
// diameter become afferent arterioles.
func (g *generator) daughter(parent Branch, diam float64, left bool, budget float64) (draft, error) {
	jitter := g.jitter()
	if diam <= g.params.StopDiam {
		return g.afferent(parent, diam, left, jitter, JunctionBifurcation)
	}

	length, err := variate.VesselLength(g.src, diam)
	if err != nil {
		return draft{}, err
	}

	return draft{
		parent:   parent.Index,
		junction: JunctionBifurcation,
		start:    parent.End,
		angle:    parent.Angle + jitter + side(left)*g.params.AngleSpread,
		length:   length,
		diameter: diam,
		budget:   budget,
	}, nil
}

// afferent samples a terminal arteriole leaving parent. Its length depends on the
// parent's diameter, not its own.
func (g *generator) afferent(parent Branch, diam float64, left bool, jitter float64, j Junction) (draft, error) {
	length, err := variate.AfferentLength(g.src, parent.Diameter)
	if err != nil {
		return draft{}, err
	}

	return draft{
		parent:   parent.Index,
		junction: j,
		start:    parent.End,
		angle:    parent.Angle + jitter + side(left)*g.params.AfferentAngleSpread,
		length:   length,
		diameter: diam,
		afferent: true,
	}, nil
}
