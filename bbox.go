package schem

import "math"

// BBox is an axis-aligned bounding box over drawing coordinates.
// A valid box satisfies XMin <= XMax and YMin <= YMax; boxes are always
// recomputed from geometry, never mutated piecewise.
type BBox struct {
	XMin, YMin, XMax, YMax float64
}

// EmptyBBox returns the identity box for Union folding: any box
// unioned with it is returned unchanged.
func EmptyBBox() BBox {
	return BBox{
		XMin: math.Inf(1), YMin: math.Inf(1),
		XMax: math.Inf(-1), YMax: math.Inf(-1),
	}
}

// IsEmpty reports whether the box contains no points.
func (b BBox) IsEmpty() bool {
	return b.XMin > b.XMax || b.YMin > b.YMax
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.XMax - b.XMin
}

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.YMax - b.YMin
}

// Union returns the smallest box containing both b and other.
func (b BBox) Union(other BBox) BBox {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return BBox{
		XMin: math.Min(b.XMin, other.XMin),
		YMin: math.Min(b.YMin, other.YMin),
		XMax: math.Max(b.XMax, other.XMax),
		YMax: math.Max(b.YMax, other.YMax),
	}
}

// Expand returns the box grown by d on every side.
func (b BBox) Expand(d float64) BBox {
	if b.IsEmpty() {
		return b
	}
	return BBox{
		XMin: b.XMin - d, YMin: b.YMin - d,
		XMax: b.XMax + d, YMax: b.YMax + d,
	}
}

// pointsBBox returns the bounding box of a point slice, skipping
// Gap markers. Returns the empty box for an all-gap or empty slice.
func pointsBBox(pts []Point) BBox {
	b := EmptyBBox()
	for _, p := range pts {
		if p.IsGap() {
			continue
		}
		b = b.Union(BBox{XMin: p.X, YMin: p.Y, XMax: p.X, YMax: p.Y})
	}
	return b
}
