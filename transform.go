package schem

import "fmt"

// Ref selects how a Transform's local shift applies to a point.
// Two-point segments (connector dots, arrows) carry a lead-length
// correction baked into their local coordinates; the start of such a
// segment must skip the local shift and the end must receive it twice
// to land symmetrically after lead extension.
type Ref int

const (
	// RefNone applies the full local shift (the default).
	RefNone Ref = iota
	// RefStart suppresses the local shift.
	RefStart
	// RefEnd doubles the local shift.
	RefEnd
)

// String returns the reference tag name.
func (r Ref) String() string {
	switch r {
	case RefStart:
		return "start"
	case RefEnd:
		return "end"
	default:
		return "none"
	}
}

// mirror returns the reference tag after a horizontal mirror:
// start and end swap, none is unchanged. Vertical flips do not swap.
func (r Ref) mirror() Ref {
	switch r {
	case RefStart:
		return RefEnd
	case RefEnd:
		return RefStart
	default:
		return RefNone
	}
}

// Transform converts local element coordinates to global drawing
// coordinates. Application order is fixed: the point plus the local
// shift is scaled by the zoom factor, rotated by Theta, then moved by
// the global shift.
//
// Transform is an immutable value; there is no composition algebra
// beyond this single-level apply. Callers compose by constructing a new
// Transform with derived parameters.
type Transform struct {
	// Theta is the rotation angle in degrees, counter-clockwise.
	Theta float64
	// Shift is the global translation, applied last.
	Shift Point
	// LocalShift is the pre-translation applied before zoom and
	// rotation, subject to the Ref tag at apply time.
	LocalShift Point
	// Zoom is the uniform scale factor, always > 0.
	Zoom float64
}

// NewTransform builds a Transform, validating the zoom factor.
// A zoom <= 0 is a caller error and returns ErrInvalidTransform.
func NewTransform(theta float64, shift, localShift Point, zoom float64) (Transform, error) {
	if zoom <= 0 {
		return Transform{}, fmt.Errorf("%w: zoom %v must be > 0", ErrInvalidTransform, zoom)
	}
	return Transform{Theta: theta, Shift: shift, LocalShift: localShift, Zoom: zoom}, nil
}

// Identity returns the identity transform: Apply(p, RefNone) == p.
func Identity() Transform {
	return Transform{Zoom: 1}
}

// Apply transforms a single point from local to global coordinates.
// The ref tag selects local-shift handling; see Ref. Gap markers pass
// through unchanged.
func (t Transform) Apply(p Point, ref Ref) Point {
	if p.IsGap() {
		return p
	}
	var lshift Point
	switch ref {
	case RefStart:
		lshift = Point{}
	case RefEnd:
		lshift = t.LocalShift.Mul(2)
	default:
		lshift = t.LocalShift
	}
	return p.Add(lshift).Mul(t.Zoom).Rotate(t.Theta).Add(t.Shift)
}

// ApplyAll transforms a point slice with RefNone, preserving order and
// Gap markers. No points are reordered or deduplicated.
func (t Transform) ApplyAll(pts []Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p, RefNone)
	}
	return out
}

// String describes the transform for diagnostics.
func (t Transform) String() string {
	return fmt.Sprintf("Transform(xy=%v theta=%v zoom=%v)", t.Shift, t.Theta, t.Zoom)
}
