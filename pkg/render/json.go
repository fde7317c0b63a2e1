package render

import (
	"encoding/json"
	"io"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/tree"
)

type jsonOutput struct {
	Model    tree.Model   `json:"model"`
	Params   tree.Params  `json:"params"`
	Branches []jsonBranch `json:"branches"`
}

// jsonBranch is the record an external renderer consumes.
type jsonBranch struct {
	Index      int     `json:"idx"`
	Parent     int     `json:"parent"`
	Junction   string  `json:"junction"`
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	Angle      float64 `json:"angle"`
	Length     float64 `json:"len"`
	Diameter   float64 `json:"diameter"`
	IsAfferent bool    `json:"isAfferent"`
}

// JSON writes t as a pretty-printed document of branch records in generation order.
func JSON(t *tree.Tree, w io.Writer) error {
	out := jsonOutput{
		Model:    t.Model,
		Params:   t.Params,
		Branches: make([]jsonBranch, len(t.Branches)),
	}

	for i, b := range t.Branches {
		out.Branches[i] = jsonBranch{
			Index:      b.Index,
			Parent:     b.Parent,
			Junction:   string(b.Junction),
			X1:         b.Start.X,
			Y1:         b.Start.Y,
			X2:         b.End.X,
			Y2:         b.End.Y,
			Angle:      b.Angle,
			Length:     b.Length,
			Diameter:   b.Diameter,
			IsAfferent: b.IsAfferent,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encoding json")
	}
	return nil
}
