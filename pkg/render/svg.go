package render

import (
	"bytes"
	"fmt"

	"github.com/willbeason/renal-tree/pkg/tree"
)

// SVG renders t as a standalone SVG document whose viewBox is the tree's bounding box.
func SVG(t *tree.Tree, opts ...Option) []byte {
	o := newOptions(opts...)
	v := view(t, o)
	w, h := v.pixels(o.width)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g" width="%d" height="%d">`+"\n",
		v.Min.X, v.Min.Y, v.Width(), v.Height(), w, h)
	buf.WriteString("  <g>\n")

	for _, b := range t.Branches {
		fmt.Fprintf(&buf, `    <line id="id-%d" x1="%g" y1="%g" x2="%g" y2="%g" style="stroke-width:%gpx;stroke:%s"/>`+"\n",
			b.Index, b.Start.X, b.Start.Y, b.End.X, b.End.Y, b.Diameter*o.strokeScale, stroke(b).name)
	}

	if o.nephrons {
		for _, b := range t.Branches {
			if !b.IsAfferent {
				continue
			}
			fmt.Fprintf(&buf, `    <circle id="id-nephron%d" cx="%g" cy="%g" r="%g" fill="%s"/>`+"\n",
				b.Index, b.End.X, b.End.Y, o.nephronRadius, nephronPaint.name)
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}
