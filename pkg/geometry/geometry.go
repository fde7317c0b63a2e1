// Package geometry places vessel segments in screen coordinates.
package geometry

import "math"

// XY is a point in screen coordinates: X grows to the right and Y grows downward.
type XY struct {
	X, Y float64
}

// Endpoint returns the point reached by travelling length from origin at angle.
//
// An angle of 0 points straight up the screen; positive angles rotate clockwise.
func Endpoint(origin XY, length, angle float64) XY {
	return XY{
		X: origin.X + length*math.Sin(angle),
		Y: origin.Y - length*math.Cos(angle),
	}
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max XY
}

// EmptyBounds returns a box that any Extend call replaces.
func EmptyBounds() Bounds {
	return Bounds{
		Min: XY{X: math.Inf(1), Y: math.Inf(1)},
		Max: XY{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Extend returns the smallest box containing both b and p.
func (b Bounds) Extend(p XY) Bounds {
	b.Min.X = math.Min(b.Min.X, p.X)
	b.Min.Y = math.Min(b.Min.Y, p.Y)
	b.Max.X = math.Max(b.Max.X, p.X)
	b.Max.Y = math.Max(b.Max.Y, p.Y)
	return b
}

// Width is the horizontal extent of b.
func (b Bounds) Width() float64 {
	return b.Max.X - b.Min.X
}

// Height is the vertical extent of b.
func (b Bounds) Height() float64 {
	return b.Max.Y - b.Min.Y
}

// Empty is true if no point has been added to b.
func (b Bounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}
