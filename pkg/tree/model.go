package tree

import (
	"strings"

	"github.com/willbeason/renal-tree/pkg/errors"
)

// Model selects the tree construction algorithm.
type Model string

const (
	// ModelABT is the asymmetric bifurcating tree: every vessel either terminates
	// or splits into two Murray's-law daughters.
	ModelABT Model = "abt"

	// ModelKSABT is the segmented ABT: vessels also sprout afferent arterioles
	// along their length before bifurcating.
	ModelKSABT Model = "ksabt"
)

// Models lists every supported model.
var Models = []Model{ModelABT, ModelKSABT}

// ParseModel accepts a model name in any case.
func ParseModel(s string) (Model, error) {
	m := Model(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModelABT, ModelKSABT:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidConfig, "unknown model %q (want abt or ksabt)", s)
}

// Generate runs the model and returns its branches in generation order.
func (m Model) Generate(p Params, src Source) ([]Branch, error) {
	switch m {
	case ModelABT:
		return ABT(p, src)
	case ModelKSABT:
		return KSABT(p, src)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown model %q", string(m))
}
