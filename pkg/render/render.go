// Package render draws generated trees.
//
// Every sink draws one line per branch in generation order, with
// stroke width proportional to diameter. Afferent arterioles are green and
// other vessels red. Nephrons, when enabled, are circles at the end of every
// afferent arteriole. The view is fitted to the tree's bounding box.
package render

import (
	"image/color"
	"io"
	"strings"

	"github.com/willbeason/renal-tree/pkg/errors"
	"github.com/willbeason/renal-tree/pkg/geometry"
	"github.com/willbeason/renal-tree/pkg/tree"
)

// Format is an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

// ParseFormat accepts a format name in any case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatSVG, FormatPNG, FormatJSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, png or json)", s)
}

const (
	DefaultWidth         = 690
	DefaultStrokeScale   = 0.2
	DefaultNephronRadius = 20.0
)

// paint is a color with its SVG name.
type paint struct {
	name string
	rgba color.RGBA
}

var (
	afferentPaint = paint{"green", color.RGBA{G: 0x80, A: 0xff}}
	vesselPaint   = paint{"red", color.RGBA{R: 0xff, A: 0xff}}
	nephronPaint  = paint{"black", color.RGBA{A: 0xff}}
)

// Option configures a sink.
type Option func(*options)

type options struct {
	width         int
	strokeScale   float64
	nephrons      bool
	nephronRadius float64
}

// WithWidth sets the output width in pixels. The height follows the tree's aspect ratio.
func WithWidth(w int) Option { return func(o *options) { o.width = w } }

// WithStrokeScale sets the stroke width per unit diameter.
func WithStrokeScale(s float64) Option { return func(o *options) { o.strokeScale = s } }

// WithNephrons draws a circle of radius r at the end of every afferent arteriole.
func WithNephrons(r float64) Option {
	return func(o *options) { o.nephrons = true; o.nephronRadius = r }
}

func newOptions(opts ...Option) options {
	o := options{
		width:         DefaultWidth,
		strokeScale:   DefaultStrokeScale,
		nephronRadius: DefaultNephronRadius,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 {
		o.width = DefaultWidth
	}
	return o
}

// viewport is the drawn region in tree coordinates.
type viewport struct {
	geometry.Bounds
}

// view fits t's bounding box, padded so nephrons at the edge stay visible.
func view(t *tree.Tree, o options) viewport {
	b := t.Bounds()
	if b.Empty() {
		b = geometry.Bounds{Min: tree.Origin, Max: tree.Origin}
	}

	pad := 0.0
	if o.nephrons {
		pad = o.nephronRadius
	}
	b.Min.X -= pad
	b.Min.Y -= pad
	b.Max.X += pad
	b.Max.Y += pad

	// A single vertical vessel has no width.
	if b.Width() == 0 {
		b.Min.X--
		b.Max.X++
	}
	if b.Height() == 0 {
		b.Min.Y--
		b.Max.Y++
	}
	return viewport{b}
}

// pixels is the output size for width w, keeping the aspect ratio.
func (v viewport) pixels(w int) (int, int) {
	h := int(float64(w) * v.Height() / v.Width())
	return w, max(h, 1)
}

func stroke(b tree.Branch) paint {
	if b.IsAfferent {
		return afferentPaint
	}
	return vesselPaint
}

// Write renders t in format f to w.
func Write(t *tree.Tree, f Format, w io.Writer, opts ...Option) error {
	switch f {
	case FormatSVG:
		if _, err := w.Write(SVG(t, opts...)); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "writing svg")
		}
		return nil
	case FormatPNG:
		return PNG(t, w, opts...)
	case FormatJSON:
		return JSON(t, w)
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", string(f))
}
