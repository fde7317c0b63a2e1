package render

import (
	"io"

	"github.com/fogleman/gg"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/tree"
)

// PNG rasterizes t onto a white background and writes it to w.
func PNG(t *tree.Tree, w io.Writer, opts ...Option) error {
	o := newOptions(opts...)
	v := view(t, o)
	width, height := v.pixels(o.width)
	scale := float64(width) / v.Width()

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Tree coordinates already grow downward like image coordinates.
	c.Scale(scale, scale)
	c.Translate(-v.Min.X, -v.Min.Y)
	c.SetLineCapRound()

	for _, b := range t.Branches {
		c.SetColor(stroke(b).rgba)
		// gg line widths are in pixels, independent of the transform.
		c.SetLineWidth(max(b.Diameter*o.strokeScale*scale, 1))
		c.DrawLine(b.Start.X, b.Start.Y, b.End.X, b.End.Y)
		c.Stroke()
	}

	if o.nephrons {
		c.SetColor(nephronPaint.rgba)
		for _, b := range t.Branches {
			if b.IsAfferent {
				c.DrawCircle(b.End.X, b.End.Y, o.nephronRadius)
				c.Fill()
			}
		}
	}

	if err := c.EncodePNG(w); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "encoding png")
	}
	return nil
}
