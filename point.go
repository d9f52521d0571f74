package schem

import "math"

// Point represents a 2D point or vector in drawing coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Gap is a sentinel point used inside line paths to lift the pen:
// the path on either side of a Gap is drawn as a separate stroke.
var Gap = Point{X: math.NaN(), Y: math.NaN()}

// IsGap reports whether p is the Gap sentinel.
func (p Point) IsGap() bool {
	return math.IsNaN(p.X) && math.IsNaN(p.Y)
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{X: 0, Y: 0}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by theta degrees counter-clockwise
// around the origin.
func (p Point) Rotate(theta float64) Point {
	rad := theta * math.Pi / 180
	cos := math.Cos(rad)
	sin := math.Sin(rad)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// MirrorX returns the point reflected about the vertical line x = axisX.
// Gap markers pass through unchanged.
func (p Point) MirrorX(axisX float64) Point {
	if p.IsGap() {
		return p
	}
	return Point{X: 2*axisX - p.X, Y: p.Y}
}

// Flip returns the point reflected about the x-axis (y negated).
// Gap markers pass through unchanged.
func (p Point) Flip() Point {
	if p.IsGap() {
		return p
	}
	return Point{X: p.X, Y: -p.Y}
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
